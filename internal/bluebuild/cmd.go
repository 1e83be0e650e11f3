// Package bluebuild hosts the CLI entry point shared by cmd/bluebuild.
package bluebuild

import (
	"errors"

	"github.com/blue-build/bluebuild/internal/cmd/factory"
	"github.com/blue-build/bluebuild/internal/cmd/root"
	"github.com/blue-build/bluebuild/internal/cmdutil"
	"github.com/blue-build/bluebuild/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version = "dev"
	Commit  = "none"
)

const (
	exitOk    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the bluebuild CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)

	rootCmd := root.NewCmdRoot(f)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cmdutil.SilentError) {
			return exitError
		}
		var flagErr *cmdutil.FlagError
		if errors.As(err, &flagErr) {
			return exitUsage
		}
		// Cobra already printed "Error: ..."
		return exitError
	}

	return exitOk
}
