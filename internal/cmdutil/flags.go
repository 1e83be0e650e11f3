package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/blue-build/bluebuild/internal/config"
	"github.com/blue-build/bluebuild/internal/drivers"
)

// AddDriverFlags registers the per-category driver override flags on cmd,
// bound to opts. A flag left unset means automatic detection for that
// category.
func AddDriverFlags(cmd *cobra.Command, opts *drivers.Options) {
	flags := cmd.Flags()
	flags.Var(&opts.Inspect, "inspect-driver", "Driver for inspecting images (skopeo, docker, podman)")
	flags.Var(&opts.Build, "build-driver", "Driver for building images (docker, podman, buildah)")
	flags.Var(&opts.Signing, "signing-driver", "Driver for signing images (cosign, sigstore)")
	flags.Var(&opts.Run, "run-driver", "Driver for running containers (docker, podman)")
	flags.Var(&opts.CI, "ci-driver", "CI context override (local, gitlab, github)")
}

// AddPlatformFlag registers the target platform flag on cmd, bound to p.
func AddPlatformFlag(cmd *cobra.Command, p *drivers.Platform) {
	cmd.Flags().Var(p, "platform", "Target platform (native, linux/amd64, linux/arm64)")
}

// ApplyConfigOverrides fills categories opts leaves on automatic detection
// with any overrides pinned in the config file. Flag values always win
// over file values. Invalid file tokens are reported with their config key.
func ApplyConfigOverrides(opts *drivers.Options, cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	if opts.Inspect == "" && cfg.Drivers.Inspect != "" {
		if err := opts.Inspect.Set(cfg.Drivers.Inspect); err != nil {
			return FlagErrorf("invalid drivers.inspect %q: %v", cfg.Drivers.Inspect, err)
		}
	}
	if opts.Build == "" && cfg.Drivers.Build != "" {
		if err := opts.Build.Set(cfg.Drivers.Build); err != nil {
			return FlagErrorf("invalid drivers.build %q: %v", cfg.Drivers.Build, err)
		}
	}
	if opts.Signing == "" && cfg.Drivers.Signing != "" {
		if err := opts.Signing.Set(cfg.Drivers.Signing); err != nil {
			return FlagErrorf("invalid drivers.signing %q: %v", cfg.Drivers.Signing, err)
		}
	}
	if opts.Run == "" && cfg.Drivers.Run != "" {
		if err := opts.Run.Set(cfg.Drivers.Run); err != nil {
			return FlagErrorf("invalid drivers.run %q: %v", cfg.Drivers.Run, err)
		}
	}
	if opts.CI == "" && cfg.Drivers.CI != "" {
		if err := opts.CI.Set(cfg.Drivers.CI); err != nil {
			return FlagErrorf("invalid drivers.ci %q: %v", cfg.Drivers.CI, err)
		}
	}
	if cfg.Signing.Sigstore {
		opts.Sigstore = true
	}
	return nil
}
