package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"snap-seed-sync/internal/types"
)

const modelAssertionPattern = "ubuntu-classic-%s-%s%s.json"

// ModelAssertionName returns the model file name for a series version such
// as "24.04" or "24.04 LTS".
func ModelAssertionName(seriesVersion string, arch string, variant types.ModelVariant) string {
	series := seriesVersion
	if fields := strings.Fields(seriesVersion); len(fields) > 0 {
		series = fields[0]
	}
	series = strings.ReplaceAll(series, ".", "")
	suffix := ""
	if variant == types.ModelVariantDangerous {
		suffix = "-dangerous"
	}
	return fmt.Sprintf(modelAssertionPattern, series, arch, suffix)
}

// SnapsFromModel converts the model's snap entries into identities.
func SnapsFromModel(ctx context.Context, series string, model *types.ModelAssertion) SnapSet {
	snaps := SnapSet{}
	if model == nil {
		return snaps
	}
	for _, entry := range model.Snaps {
		spec := types.SnapSpec{Name: entry.Name}
		parts := strings.Split(entry.DefaultChannel, "/")
		switch len(parts) {
		case 1:
			spec.Channel = parts[0]
		case 2:
			spec.Track, spec.Channel = parts[0], parts[1]
			spec.BranchSet = true
		case 3:
			spec.Track, spec.Channel, spec.Branch = parts[0], parts[1], parts[2]
			spec.BranchSet = true
		default:
			log.Ctx(ctx).Warn().
				Str("snap", entry.Name).
				Str("default_channel", entry.DefaultChannel).
				Msg("unexpected default-channel in model, using defaults")
		}
		snaps.Add(NewSnapIdentity(series, spec))
	}
	return snaps
}
