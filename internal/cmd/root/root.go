package root

import (
	"github.com/spf13/cobra"

	configcmd "github.com/blue-build/bluebuild/internal/cmd/config"
	driverscmd "github.com/blue-build/bluebuild/internal/cmd/drivers"
	versioncmd "github.com/blue-build/bluebuild/internal/cmd/version"
	"github.com/blue-build/bluebuild/internal/cmdutil"
	internalconfig "github.com/blue-build/bluebuild/internal/config"
	"github.com/blue-build/bluebuild/internal/logger"
)

// NewCmdRoot creates the root command for the bluebuild CLI.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bluebuild",
		Short: "Build custom OCI images from declarative recipes",
		Long: `Bluebuild builds, signs, and publishes custom OCI images.

It picks the best installed tooling for each job: skopeo, docker, or
podman for inspection; docker, podman, or buildah for builds; cosign for
signing. Run "bluebuild drivers" to see what it would use on this host.`,
		SilenceUsage: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(f.Version, f.Commit),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", f.Debug).
				Msg("bluebuild starting")

			return nil
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&f.ConfigPath, "config", "", "Path to bluebuild.yaml (defaults to ./bluebuild.yaml)")

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(f.Version, f.Commit))

	cmd.AddCommand(driverscmd.NewCmdDrivers(f))
	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f))

	return cmd
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(f *cmdutil.Factory) {
	cfg, err := f.Config()
	if err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load config")
		return
	}

	logsDir, err := internalconfig.LogsDir()
	if err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	logCfg := &logger.LoggingConfig{
		FileEnabled: cfg.Logging.FileEnabled,
		MaxSizeMB:   cfg.Logging.MaxSizeMB,
		MaxAgeDays:  cfg.Logging.MaxAgeDays,
		MaxBackups:  cfg.Logging.MaxBackups,
	}
	if err := logger.InitWithFile(f.Debug, logsDir, logCfg); err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable")
	}
}
