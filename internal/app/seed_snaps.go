package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"snap-seed-sync/internal/core"
)

// SeedSnaps lists every snap the seeds of a release put into an image.
func (s Service) SeedSnaps(ctx context.Context, req SeedSnapsRequest) (SeedSnapsResult, error) {
	session := newReleaseSession(s.Releases)
	release, err := s.resolveRelease(ctx, req.Release)
	if err != nil {
		return SeedSnapsResult{}, err
	}
	ctx = log.Ctx(ctx).With().Str("release", release).Logger().WithContext(ctx)
	snaps, series, err := s.seededSnaps(ctx, session, release, req.Seeds, req.ImplicitSnaps)
	if err != nil {
		return SeedSnapsResult{}, err
	}
	return SeedSnapsResult{Release: release, Series: series, Snaps: snaps.Sorted()}, nil
}

func (s Service) seededSnaps(ctx context.Context, session *releaseSession, release string, seeds []string, implicit map[string][]string) (core.SnapSet, string, error) {
	series, err := session.SeriesVersion(ctx, release)
	if err != nil {
		return nil, "", err
	}
	if len(seeds) == 0 {
		seeds = DefaultSeeds
	}
	if implicit == nil {
		implicit = DefaultImplicitSnaps
	}
	snaps := core.NewSnapSet()
	for _, seed := range seeds {
		lines, err := s.Seeds.FetchSeed(ctx, release, seed)
		if err != nil {
			return nil, "", err
		}
		parsed := core.ExtractSnaps(ctx, series, lines, snaps)
		log.Ctx(ctx).Debug().Str("seed", seed).Int("snaps", parsed).Msg("seed processed")
	}
	names, ok := implicit[release]
	if !ok {
		return nil, "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no implicitly seeded snaps configured for release " + release + ", set implicit_snaps." + release)
	}
	core.AddImplicitSnaps(series, names, snaps)
	return snaps, series, nil
}

func (s Service) resolveRelease(ctx context.Context, release string) (string, error) {
	release = strings.TrimSpace(release)
	if release != "" {
		return release, nil
	}
	if s.Releases == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("release is required")
	}
	devel, err := s.Releases.DevelRelease(ctx)
	if err != nil {
		return "", err
	}
	log.Ctx(ctx).Debug().Str("release", devel).Msg("defaulting to the development release")
	return devel, nil
}
