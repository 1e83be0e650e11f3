package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blue-build/bluebuild/internal/cmdutil"
	"github.com/blue-build/bluebuild/internal/config"
	"github.com/blue-build/bluebuild/internal/iostreams"
)

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	ios, out, _ := iostreams.Test()
	f := &cmdutil.Factory{WorkDir: dir, IOStreams: ios}

	cmd := NewCmdConfig(f)
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	path := filepath.Join(dir, config.ConfigFileName)
	assert.Contains(t, out.String(), path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("drivers: {}\n"), 0644))

	ios, _, _ := iostreams.Test()
	f := &cmdutil.Factory{WorkDir: dir, IOStreams: ios}

	cmd := NewCmdConfig(f)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"init"})
	assert.Error(t, cmd.Execute())
}

func TestConfigView(t *testing.T) {
	ios, out, _ := iostreams.Test()
	f := &cmdutil.Factory{
		IOStreams: ios,
		Config: func() (*config.Config, error) {
			return &config.Config{
				Drivers: config.DriversConfig{Build: "podman"},
				Signing: config.SigningConfig{Sigstore: true},
			}, nil
		},
	}

	cmd := NewCmdConfig(f)
	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "build: podman")
	assert.Contains(t, out.String(), "sigstore: true")
}
