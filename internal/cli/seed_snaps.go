package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"snap-seed-sync/internal/app"
)

type seedSnapsOptions struct {
	Release string
	Seeds   []string
}

func newSeedSnapsCommand() *cobra.Command {
	opts := seedSnapsOptions{}
	cmd := &cobra.Command{
		Use:   "seed-snaps",
		Short: "Print the snaps seeded for a release",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeedSnaps(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Release, "release", "", "Release codename (defaults to the development release)")
	cmd.Flags().StringSliceVar(&opts.Seeds, "seed", app.DefaultSeeds, "Seeds to read snaps from")
	return cmd
}

func runSeedSnaps(ctx context.Context, cmd *cobra.Command, opts seedSnapsOptions) error {
	service := newAppService()
	result, err := service.SeedSnaps(ctx, app.SeedSnapsRequest{
		Release:       resolveString(cmd, opts.Release, "release", "release"),
		Seeds:         resolveStrings(cmd, opts.Seeds, "seeds", "seed"),
		ImplicitSnaps: implicitSnapsConfig(),
	})
	if err != nil {
		return err
	}
	for _, snap := range result.Snaps {
		fmt.Fprintln(cmd.OutOrStdout(), snap.SeedFormat())
	}
	return nil
}
