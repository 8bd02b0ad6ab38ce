package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"snap-seed-sync/internal/types"
)

const seedSnapMarker = "* snap:"

// ExtractSnaps adds every snap declared in the seed lines to snaps and
// returns how many declarations were parsed.
func ExtractSnaps(ctx context.Context, series string, lines []string, snaps SnapSet) int {
	assert.NotEmpty(ctx, series, "series version must be resolved before parsing seeds")
	parsed := 0
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if !strings.HasPrefix(stripped, seedSnapMarker) {
			continue
		}
		snap, ok := ParseSeedLine(ctx, series, stripped[len(seedSnapMarker):])
		if !ok {
			continue
		}
		snaps.Add(snap)
		parsed++
	}
	log.Ctx(ctx).Debug().Int("snaps", parsed).Msg("seed snaps extracted")
	return parsed
}

// AddImplicitSnaps adds snaps that ship in every image of a release without
// being listed in any seed.
func AddImplicitSnaps(series string, names []string, snaps SnapSet) {
	for _, name := range names {
		snaps.Add(NewSnapIdentity(series, types.SnapSpec{Name: name}))
	}
}
