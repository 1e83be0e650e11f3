// Package drivers implements "bluebuild drivers", which reports the
// backend tools bluebuild would use on this host.
package drivers

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blue-build/bluebuild/internal/cmdutil"
	"github.com/blue-build/bluebuild/internal/config"
	intdrivers "github.com/blue-build/bluebuild/internal/drivers"
	"github.com/blue-build/bluebuild/internal/iostreams"
)

// Options holds the dependencies and flag values for the drivers command.
type Options struct {
	IO       *iostreams.IOStreams
	Config   func() (*config.Config, error)
	Resolver func(intdrivers.Options) *intdrivers.Resolver

	Driver   intdrivers.Options
	Platform intdrivers.Platform
	JSON     bool
}

// report is the JSON shape of the resolved driver set.
type report struct {
	Inspect  intdrivers.InspectDriver `json:"inspect"`
	Build    intdrivers.BuildDriver   `json:"build"`
	Signing  intdrivers.SigningDriver `json:"signing"`
	Run      intdrivers.RunDriver     `json:"run"`
	CI       intdrivers.CIDriver      `json:"ci"`
	Platform string                `json:"platform"`
	Arch     string                `json:"arch"`
}

// NewCmdDrivers creates the "drivers" subcommand.
func NewCmdDrivers(f *cmdutil.Factory) *cobra.Command {
	opts := &Options{
		IO:       f.IOStreams,
		Config:   f.Config,
		Resolver: f.Resolver,
	}

	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "Show which backend tools bluebuild will use",
		Long: `Show which backend tools bluebuild will use on this host.

Each category (inspect, build, signing, run, ci) is resolved by probing
the host for supported tools, in a fixed priority order. Explicit flags
and bluebuild.yaml entries override detection.

Exits non-zero when no usable tool exists for a required category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return driversRun(cmd, opts)
		},
	}

	cmdutil.AddDriverFlags(cmd, &opts.Driver)
	cmdutil.AddPlatformFlag(cmd, &opts.Platform)
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

func driversRun(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	if err := cmdutil.ApplyConfigOverrides(&opts.Driver, cfg); err != nil {
		return err
	}

	r := opts.Resolver(opts.Driver)

	inspect, err := r.Inspect(ctx)
	if err != nil {
		return err
	}
	build, err := r.Build(ctx)
	if err != nil {
		return err
	}
	run, err := r.Run(ctx)
	if err != nil {
		return err
	}
	signing := r.Signing()
	ci := r.CI()

	rep := report{
		Inspect:  inspect,
		Build:    build,
		Signing:  signing,
		Run:      run,
		CI:       ci,
		Platform: opts.Platform.String(),
		Arch:     opts.Platform.Arch(),
	}

	if opts.JSON {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal driver report: %w", err)
		}
		fmt.Fprintln(opts.IO.Out, string(data))
		return nil
	}

	w := tabwriter.NewWriter(opts.IO.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "inspect:\t%s\n", rep.Inspect)
	fmt.Fprintf(w, "build:\t%s\n", rep.Build)
	fmt.Fprintf(w, "signing:\t%s\n", rep.Signing)
	fmt.Fprintf(w, "run:\t%s\n", rep.Run)
	fmt.Fprintf(w, "ci:\t%s\n", rep.CI)
	fmt.Fprintf(w, "platform:\t%s\n", rep.Platform)
	return w.Flush()
}
