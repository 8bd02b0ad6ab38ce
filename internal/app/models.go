package app

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"snap-seed-sync/internal/types"
)

// loadModels returns the standard and the dangerous model of a release.
// Either may be nil when its file does not exist.
func (s Service) loadModels(ctx context.Context, session *releaseSession, release string, repository string, arch string) (*types.ModelAssertion, *types.ModelAssertion, error) {
	var loaded [2]*types.ModelAssertion
	for i, variant := range []types.ModelVariant{types.ModelVariantStandard, types.ModelVariantDangerous} {
		name, err := session.ModelName(ctx, release, arch, variant)
		if err != nil {
			return nil, nil, err
		}
		model, err := s.Models.LoadModel(filepath.Join(repository, name))
		if err != nil {
			return nil, nil, err
		}
		if model == nil {
			log.Ctx(ctx).Info().Str("model", name).Msg("model assertion not found")
			continue
		}
		if model.Variant() != variant {
			log.Ctx(ctx).Warn().
				Str("model", name).
				Str("grade", model.Grade).
				Msg("model grade does not match its file name")
		}
		loaded[i] = model
	}
	return loaded[0], loaded[1], nil
}

// saveModel writes model under the name of its own variant and returns the
// path. Nil models are skipped.
func (s Service) saveModel(ctx context.Context, session *releaseSession, model *types.ModelAssertion, release string, repository string, arch string) (string, error) {
	if model == nil {
		return "", nil
	}
	name, err := session.ModelName(ctx, release, arch, model.Variant())
	if err != nil {
		return "", err
	}
	path := filepath.Join(repository, name)
	if err := s.Models.SaveModel(path, model); err != nil {
		return "", err
	}
	log.Ctx(ctx).Info().Str("model", path).Msg("model assertion saved")
	return path, nil
}
