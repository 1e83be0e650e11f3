package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blue-build/bluebuild/internal/config"
	"github.com/blue-build/bluebuild/internal/drivers"
)

func TestAddDriverFlagsParse(t *testing.T) {
	var opts drivers.Options
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	AddDriverFlags(cmd, &opts)

	cmd.SetArgs([]string{"--build-driver=podman", "--ci-driver=github"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, drivers.BuildDriverPodman, opts.Build)
	assert.Equal(t, drivers.CIDriverGithub, opts.CI)
	assert.Empty(t, opts.Inspect)
}

func TestAddDriverFlagsRejectsUnknownToken(t *testing.T) {
	var opts drivers.Options
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	AddDriverFlags(cmd, &opts)

	cmd.SetArgs([]string{"--build-driver=img"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestApplyConfigOverrides(t *testing.T) {
	tests := []struct {
		name    string
		opts    drivers.Options
		cfg     *config.Config
		want    drivers.Options
		wantErr string
	}{
		{
			name: "config fills unset categories",
			cfg: &config.Config{
				Drivers: config.DriversConfig{Build: "buildah", Run: "podman"},
			},
			want: drivers.Options{Build: drivers.BuildDriverBuildah, Run: drivers.RunDriverPodman},
		},
		{
			name: "flags win over config",
			opts: drivers.Options{Build: drivers.BuildDriverDocker},
			cfg: &config.Config{
				Drivers: config.DriversConfig{Build: "buildah"},
			},
			want: drivers.Options{Build: drivers.BuildDriverDocker},
		},
		{
			name: "sigstore capability comes from config",
			cfg: &config.Config{
				Signing: config.SigningConfig{Sigstore: true},
			},
			want: drivers.Options{Sigstore: true},
		},
		{
			name: "nil config is a no-op",
			opts: drivers.Options{CI: drivers.CIDriverLocal},
			cfg:  nil,
			want: drivers.Options{CI: drivers.CIDriverLocal},
		},
		{
			name: "invalid config token reports the key",
			cfg: &config.Config{
				Drivers: config.DriversConfig{Inspect: "crane"},
			},
			wantErr: "drivers.inspect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := ApplyConfigOverrides(&opts, tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, opts)
		})
	}
}
