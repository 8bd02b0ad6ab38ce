package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snap-seed-sync/internal/app"
)

type checkOptions struct {
	Release      string
	AllSupported bool
	MinSeries    string
	Repository   string
	Arch         string
	DryRun       bool
	Seeds        []string
	Commit       bool
	Report       string
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Sync model assertions with the snaps seeded for a release",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Release, "release", "", "Release codename (defaults to the development release)")
	cmd.Flags().BoolVar(&opts.AllSupported, "all-supported", false, "Check every supported release")
	cmd.Flags().StringVar(&opts.MinSeries, "min-series", app.DefaultMinSeries, "Oldest release checked by --all-supported")
	cmd.Flags().StringVar(&opts.Repository, "repository", app.DefaultRepository, "Directory holding the model assertions")
	cmd.Flags().StringVar(&opts.Arch, "arch", app.DefaultArch, "Model architecture")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report changes without writing them")
	cmd.Flags().StringSliceVar(&opts.Seeds, "seed", app.DefaultSeeds, "Seeds to read snaps from")
	cmd.Flags().BoolVar(&opts.Commit, "commit", false, "Commit updated model assertions")
	cmd.Flags().StringVar(&opts.Report, "report", "", "Write a YAML sync report to this path")
	_ = viper.BindPFlag("release", cmd.Flags().Lookup("release"))
	_ = viper.BindPFlag("repository", cmd.Flags().Lookup("repository"))
	_ = viper.BindPFlag("arch", cmd.Flags().Lookup("arch"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("seeds", cmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("commit", cmd.Flags().Lookup("commit"))
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	req := app.CheckRequest{
		Release:       resolveString(cmd, opts.Release, "release", "release"),
		Repository:    resolveString(cmd, opts.Repository, "repository", "repository"),
		Arch:          resolveString(cmd, opts.Arch, "arch", "arch"),
		DryRun:        resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
		Seeds:         resolveStrings(cmd, opts.Seeds, "seeds", "seed"),
		ImplicitSnaps: implicitSnapsConfig(),
		Commit:        resolveBool(cmd, opts.Commit, "commit", "commit"),
		ReportPath:    resolveString(cmd, opts.Report, "report", "report"),
	}
	if opts.AllSupported {
		results, err := service.CheckSupportedSnapSeeds(ctx, req, app.SeriesRequest{
			MinSeries: resolveString(cmd, opts.MinSeries, "min_series", "min-series"),
		})
		for _, result := range results {
			printCheckResult(cmd.OutOrStdout(), result, req.DryRun)
		}
		return err
	}
	result, err := service.CheckSnapSeeds(ctx, req)
	if err != nil {
		return err
	}
	printCheckResult(cmd.OutOrStdout(), result, req.DryRun)
	return nil
}
