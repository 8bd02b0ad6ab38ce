package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snap-seed-sync/internal/app"
)

type seriesOptions struct {
	MinSeries string
}

func newSeriesCommand() *cobra.Command {
	opts := seriesOptions{}
	cmd := &cobra.Command{
		Use:   "series",
		Short: "List the supported releases that have classic models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeries(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.MinSeries, "min-series", app.DefaultMinSeries, "Oldest release to list")
	_ = viper.BindPFlag("min_series", cmd.Flags().Lookup("min-series"))
	return cmd
}

func runSeries(ctx context.Context, cmd *cobra.Command, opts seriesOptions) error {
	service := newAppService()
	result, err := service.SupportedModelSeries(ctx, app.SeriesRequest{
		MinSeries: resolveString(cmd, opts.MinSeries, "min_series", "min-series"),
	})
	if err != nil {
		return err
	}
	for _, release := range result.Releases {
		fmt.Fprintln(cmd.OutOrStdout(), release)
	}
	return nil
}
