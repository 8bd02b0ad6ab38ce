package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// SupportedModelSeries returns the supported releases from MinSeries onward,
// in release order.
func (s Service) SupportedModelSeries(ctx context.Context, req SeriesRequest) (SeriesResult, error) {
	minSeries := strings.TrimSpace(req.MinSeries)
	if minSeries == "" {
		minSeries = DefaultMinSeries
	}
	all, err := s.Releases.AllReleases(ctx)
	if err != nil {
		return SeriesResult{}, err
	}
	supportedList, err := s.Releases.SupportedReleases(ctx)
	if err != nil {
		return SeriesResult{}, err
	}
	supported := make(map[string]struct{}, len(supportedList))
	for _, release := range supportedList {
		supported[release] = struct{}{}
	}

	start := -1
	for i, release := range all {
		if release == minSeries {
			start = i
			break
		}
	}
	if start < 0 {
		return SeriesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("unknown release " + minSeries)
	}

	releases := []string{}
	for _, release := range all[start:] {
		if _, ok := supported[release]; ok {
			releases = append(releases, release)
		}
	}
	log.Ctx(ctx).Debug().Strs("releases", releases).Msg("supported model series")
	return SeriesResult{Releases: releases}, nil
}
