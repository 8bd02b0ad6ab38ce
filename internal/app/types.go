package app

import "snap-seed-sync/internal/types"

const (
	DefaultArch       = "amd64"
	DefaultRepository = "."
	DefaultMinSeries  = "mantic"
)

// DefaultSeeds are the seeds whose snaps end up in classic images.
var DefaultSeeds = []string{"minimal", "desktop-minimal"}

// DefaultImplicitSnaps lists, per release, snaps shipped in every image
// without being named in a seed.
var DefaultImplicitSnaps = map[string][]string{
	"oracular": {"snapd", "bare", "core22", "core24"},
	"noble":    {"snapd", "bare", "core22"},
	"mantic":   {"snapd", "bare", "core22"},
}

type CheckRequest struct {
	Release       string
	Repository    string
	Arch          string
	DryRun        bool
	Seeds         []string
	ImplicitSnaps map[string][]string
	Commit        bool
	ReportPath    string
}

type CheckResult struct {
	Release  string
	Arch     string
	Series   string
	Changed  bool
	Added    []types.SnapIdentity
	Removed  []types.SnapIdentity
	Excluded []string
	Unknown  []string
	Written  []string
	Commit   string
}

type SeriesRequest struct {
	MinSeries string
}

type SeriesResult struct {
	Releases []string
}

type SeedSnapsRequest struct {
	Release       string
	Seeds         []string
	ImplicitSnaps map[string][]string
}

type SeedSnapsResult struct {
	Release string
	Series  string
	Snaps   []types.SnapIdentity
}
