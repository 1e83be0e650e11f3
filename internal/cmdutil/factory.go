package cmdutil

import (
	"github.com/blue-build/bluebuild/internal/config"
	"github.com/blue-build/bluebuild/internal/drivers"
	"github.com/blue-build/bluebuild/internal/iostreams"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist (the contract), while internal/cmd/factory
// wires the real implementations.
//
// Closure fields are set by the factory constructor and use lazy
// initialization internally. Commands extract only the fields they
// need into per-command Options structs.
type Factory struct {
	// Configuration from flags (set before command execution)
	WorkDir    string
	ConfigPath string
	Debug      bool

	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// Dependency providers (closures wired by factory constructor)
	ConfigLoader func() *config.Loader
	Config       func() (*config.Config, error)

	// Resolver builds a driver resolver for the given (already merged)
	// options. Tests replace this to inject fake probes.
	Resolver func(drivers.Options) *drivers.Resolver
}
