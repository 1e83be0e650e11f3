package factory

import (
	"os"
	"sync"

	"github.com/blue-build/bluebuild/internal/cmdutil"
	"github.com/blue-build/bluebuild/internal/config"
	"github.com/blue-build/bluebuild/internal/drivers"
	"github.com/blue-build/bluebuild/internal/iostreams"
)

// New creates a fully-wired Factory with lazy-initialized dependency
// closures. Called exactly once at the CLI entry point. Tests construct
// a &cmdutil.Factory{} directly instead of importing this package.
func New(version, commit string) *cmdutil.Factory {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		WorkDir:   workDir,
		IOStreams: iostreams.System(),
	}

	// --- Lazy dependency closures ---

	var (
		configOnce   sync.Once
		configLoader *config.Loader
		configData   *config.Config
		configErr    error
	)
	f.ConfigLoader = func() *config.Loader {
		configOnce.Do(func() {
			var opts []config.LoaderOption
			if f.ConfigPath != "" {
				opts = append(opts, config.WithConfigPath(f.ConfigPath))
			}
			configLoader = config.NewLoader(f.WorkDir, opts...)
		})
		return configLoader
	}
	f.Config = func() (*config.Config, error) {
		if configData != nil || configErr != nil {
			return configData, configErr
		}
		configData, configErr = f.ConfigLoader().Load()
		return configData, configErr
	}

	f.Resolver = func(opts drivers.Options) *drivers.Resolver {
		return drivers.NewResolver(opts)
	}

	return f
}
