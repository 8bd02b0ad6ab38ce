package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"snap-seed-sync/internal/app"
	"snap-seed-sync/internal/types"
)

func printCheckResult(w io.Writer, result app.CheckResult, dryRun bool) {
	header := fmt.Sprintf("%s (%s)", result.Release, result.Arch)
	if !result.Changed {
		fmt.Fprintf(w, "%s %s: in sync\n", color.GreenString("[OK]"), header)
		return
	}
	state := "updated"
	if dryRun {
		state = "out of sync (dry run)"
	}
	fmt.Fprintf(w, "%s %s: %s\n", color.YellowString("[SYNC]"), header, state)
	printSnaps(w, color.RedString("-"), result.Removed)
	printSnaps(w, color.GreenString("+"), result.Added)
	for _, name := range result.Excluded {
		fmt.Fprintf(w, "  %s %s (excluded)\n", color.CyanString("="), name)
	}
	for _, name := range result.Unknown {
		fmt.Fprintf(w, "  %s %s (not in store)\n", color.YellowString("?"), name)
	}
	for _, path := range result.Written {
		fmt.Fprintf(w, "  wrote %s\n", path)
	}
	if result.Commit != "" {
		fmt.Fprintf(w, "  commit %s\n", result.Commit)
	}
}

func printSnaps(w io.Writer, marker string, snaps []types.SnapIdentity) {
	for _, snap := range snaps {
		fmt.Fprintf(w, "  %s %s\n", marker, snap.String())
	}
}
