package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"snap-seed-sync/internal/core"
	"snap-seed-sync/internal/ports"
	"snap-seed-sync/internal/types"
)

// releaseSession memoises release lookups for the duration of one run.
type releaseSession struct {
	releases   ports.ReleaseInfoPort
	series     map[string]string
	modelNames map[string]string
}

func newReleaseSession(releases ports.ReleaseInfoPort) *releaseSession {
	return &releaseSession{
		releases:   releases,
		series:     map[string]string{},
		modelNames: map[string]string{},
	}
}

func (s *releaseSession) SeriesVersion(ctx context.Context, release string) (string, error) {
	if version, ok := s.series[release]; ok {
		return version, nil
	}
	if s.releases == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("release information is not configured")
	}
	version, err := s.releases.SeriesVersion(ctx, release)
	if err != nil {
		return "", err
	}
	s.series[release] = version
	return version, nil
}

func (s *releaseSession) ModelName(ctx context.Context, release string, arch string, variant types.ModelVariant) (string, error) {
	key := strings.Join([]string{release, arch, string(variant)}, "/")
	if name, ok := s.modelNames[key]; ok {
		return name, nil
	}
	version, err := s.SeriesVersion(ctx, release)
	if err != nil {
		return "", err
	}
	name := core.ModelAssertionName(version, arch, variant)
	s.modelNames[key] = name
	return name, nil
}
