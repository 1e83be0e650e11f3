// Package config loads and writes bluebuild.yaml, the per-project
// configuration for the bluebuild CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "bluebuild.yaml"
)

// Config is the parsed bluebuild.yaml.
type Config struct {
	Drivers DriversConfig `mapstructure:"drivers" yaml:"drivers,omitempty"`
	Signing SigningConfig `mapstructure:"signing" yaml:"signing,omitempty"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging,omitempty"`
}

// DriversConfig pins driver choices per category. Empty means automatic
// detection. Values use the same tokens as the CLI flags.
type DriversConfig struct {
	Inspect string `mapstructure:"inspect" yaml:"inspect,omitempty"`
	Build   string `mapstructure:"build" yaml:"build,omitempty"`
	Signing string `mapstructure:"signing" yaml:"signing,omitempty"`
	Run     string `mapstructure:"run" yaml:"run,omitempty"`
	CI      string `mapstructure:"ci" yaml:"ci,omitempty"`
}

// SigningConfig toggles optional signing capabilities.
type SigningConfig struct {
	// Sigstore enables the in-process sigstore signer as a signing
	// candidate when no cosign binary is installed.
	Sigstore bool `mapstructure:"sigstore" yaml:"sigstore,omitempty"`
}

// LoggingConfig controls file logging.
type LoggingConfig struct {
	FileEnabled *bool `mapstructure:"file_enabled" yaml:"file_enabled,omitempty"`
	MaxSizeMB   int   `mapstructure:"max_size_mb" yaml:"max_size_mb,omitempty"`
	MaxAgeDays  int   `mapstructure:"max_age_days" yaml:"max_age_days,omitempty"`
	MaxBackups  int   `mapstructure:"max_backups" yaml:"max_backups,omitempty"`
}

// DefaultConfig returns the configuration used when no bluebuild.yaml
// exists: automatic detection everywhere, sigstore off.
func DefaultConfig() *Config {
	return &Config{}
}

// ConfigNotFoundError reports a missing configuration file at an
// explicitly requested path.
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

// LogsDir returns the directory for bluebuild log files.
func LogsDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "bluebuild", "logs"), nil
}
