package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"snap-seed-sync/internal/core"
	"snap-seed-sync/internal/shared"
	"snap-seed-sync/internal/types"
)

// CheckSnapSeeds brings the model assertions of one release in line with its
// seeds.
func (s Service) CheckSnapSeeds(ctx context.Context, req CheckRequest) (CheckResult, error) {
	return s.checkRelease(ctx, newReleaseSession(s.Releases), req)
}

// CheckSupportedSnapSeeds runs CheckSnapSeeds for every supported model
// series. A failing release does not stop the others.
func (s Service) CheckSupportedSnapSeeds(ctx context.Context, req CheckRequest, series SeriesRequest) ([]CheckResult, error) {
	supported, err := s.SupportedModelSeries(ctx, series)
	if err != nil {
		return nil, err
	}
	session := newReleaseSession(s.Releases)
	results := make([]CheckResult, 0, len(supported.Releases))
	var failed []string
	for _, release := range supported.Releases {
		releaseReq := req
		releaseReq.Release = release
		result, err := s.checkRelease(ctx, session, releaseReq)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("release", release).Msg("snap seed check failed")
			failed = append(failed, release)
			continue
		}
		results = append(results, result)
	}
	if len(failed) > 0 {
		return results, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("snap seed check failed for " + strings.Join(failed, ", "))
	}
	return results, nil
}

func (s Service) checkRelease(ctx context.Context, session *releaseSession, req CheckRequest) (CheckResult, error) {
	release, err := s.resolveRelease(ctx, req.Release)
	if err != nil {
		return CheckResult{}, err
	}
	arch := strings.TrimSpace(req.Arch)
	if arch == "" {
		arch = DefaultArch
	}
	repository := strings.TrimSpace(req.Repository)
	if repository == "" {
		repository = DefaultRepository
	}
	ctx = log.Ctx(ctx).With().Str("release", release).Str("arch", arch).Logger().WithContext(ctx)
	log.Ctx(ctx).Info().Msgf("Checking updates for %s", release)

	result := CheckResult{Release: release, Arch: arch}
	model, dangerous, err := s.loadModels(ctx, session, release, repository, arch)
	if err != nil {
		return CheckResult{}, err
	}
	if model == nil && dangerous == nil {
		log.Ctx(ctx).Info().Msg("no model assertions for release, skipping")
		return result, nil
	}

	seeded, series, err := s.seededSnaps(ctx, session, release, req.Seeds, req.ImplicitSnaps)
	if err != nil {
		return CheckResult{}, err
	}
	result.Series = series

	reference := model
	if reference == nil {
		reference = dangerous
	}
	modeled := core.SnapsFromModel(ctx, series, reference)

	plan, err := core.NewReconciler(s.Policy).Plan(ctx, core.DiffSnaps(seeded, modeled))
	if err != nil {
		return CheckResult{}, err
	}
	result.Added = plan.Added
	result.Removed = plan.Removed
	result.Excluded = plan.Excluded

	if len(plan.Removed) > 0 {
		log.Ctx(ctx).Info().Msgf("Removed snaps: %s", joinSnaps(plan.Removed))
		core.RemoveSnaps(model, plan.Removed)
		core.RemoveSnaps(dangerous, plan.Removed)
	}
	unknown := plan.Unknown
	if len(plan.Added) > 0 {
		log.Ctx(ctx).Info().Msgf("Added snaps: %s", joinSnaps(plan.Added))
		for _, target := range []*types.ModelAssertion{model, dangerous} {
			_, skipped := core.AddSnaps(ctx, target, plan.Added, plan.Verdicts)
			unknown = append(unknown, skipped...)
		}
	}
	if len(unknown) > 0 {
		result.Unknown = shared.SortedUnique(unknown)
	}
	result.Changed = !plan.Empty()

	if result.Changed && !req.DryRun {
		log.Ctx(ctx).Info().Msg("Saving updated model assertion(s)")
		for _, target := range []*types.ModelAssertion{model, dangerous} {
			path, err := s.saveModel(ctx, session, target, release, repository, arch)
			if err != nil {
				return CheckResult{}, err
			}
			if path != "" {
				result.Written = append(result.Written, path)
			}
		}
		if req.Commit && len(result.Written) > 0 {
			hash, err := s.Commits.Commit(ctx, repository, result.Written, commitMessage(release, arch))
			if err != nil {
				return CheckResult{}, err
			}
			result.Commit = hash
		}
	}

	if strings.TrimSpace(req.ReportPath) != "" {
		if err := s.Reports.WriteReport(req.ReportPath, syncReport(result, req.DryRun)); err != nil {
			return CheckResult{}, err
		}
	}
	return result, nil
}

func commitMessage(release string, arch string) string {
	return fmt.Sprintf("Sync snaps with seeds for %s (%s)", release, arch)
}

func joinSnaps(snaps []types.SnapIdentity) string {
	parts := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		parts = append(parts, snap.String())
	}
	return strings.Join(parts, ", ")
}

func syncReport(result CheckResult, dryRun bool) types.SyncReport {
	return types.SyncReport{
		Release:  result.Release,
		Arch:     result.Arch,
		Series:   result.Series,
		Added:    seedFormats(result.Added),
		Removed:  seedFormats(result.Removed),
		Excluded: result.Excluded,
		Unknown:  result.Unknown,
		Changed:  result.Changed,
		DryRun:   dryRun,
		Written:  result.Written,
		Commit:   result.Commit,
	}
}

func seedFormats(snaps []types.SnapIdentity) []string {
	if len(snaps) == 0 {
		return nil
	}
	out := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, snap.SeedFormat())
	}
	return out
}
