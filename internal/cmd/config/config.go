// Package config implements the "bluebuild config" command group.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/blue-build/bluebuild/internal/cmdutil"
	"github.com/blue-build/bluebuild/internal/config"
)

// NewCmdConfig creates the "config" command group.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bluebuild configuration",
	}

	cmd.AddCommand(newCmdConfigInit(f))
	cmd.AddCommand(newCmdConfigView(f))

	return cmd
}

func newCmdConfigInit(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default bluebuild.yaml in the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := f.ConfigPath
			if path == "" {
				path = filepath.Join(f.WorkDir, config.ConfigFileName)
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(f.IOStreams.Out, "Created %s\n", path)
			return nil
		},
	}
}

func newCmdConfigView(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprint(f.IOStreams.Out, string(data))
			return nil
		},
	}
}
