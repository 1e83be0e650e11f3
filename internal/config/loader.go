package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Loader handles loading and parsing of bluebuild configuration.
type Loader struct {
	workDir string
	path    string
	viper   *viper.Viper
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigPath makes the loader read an explicit file instead of
// looking for bluebuild.yaml in the working directory. A missing file at
// an explicit path is an error; a missing default file is not.
func WithConfigPath(path string) LoaderOption {
	return func(l *Loader) { l.path = path }
}

// NewLoader creates a configuration loader for the given working directory.
func NewLoader(workDir string, opts ...LoaderOption) *Loader {
	l := &Loader{
		workDir: workDir,
		viper:   viper.New(),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load reads and parses the configuration file. When no file exists at
// the default location, the defaults apply and no error is returned.
func (l *Loader) Load() (*Config, error) {
	configPath := l.path
	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(l.workDir, ConfigFileName)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if explicit {
			return nil, &ConfigNotFoundError{Path: configPath}
		}
		return DefaultConfig(), nil
	}

	l.viper.SetConfigFile(configPath)
	l.viper.SetConfigType("yaml")

	if err := l.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := l.viper.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
