package policies

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/snapcore/snapd/snap"

	"snap-seed-sync/internal/ports"
	"snap-seed-sync/internal/types"
)

// Gadget and kernel snaps are tied to the image build and are never synced
// from the seeds.
var excludedSnapTypes = map[snap.Type]struct{}{
	snap.TypeGadget: {},
	snap.TypeKernel: {},
}

type ExclusionPolicy struct {
	Store ports.SnapStorePort
}

func NewExclusionPolicy(store ports.SnapStorePort) ExclusionPolicy {
	return ExclusionPolicy{Store: store}
}

var _ ports.ExclusionPolicyPort = ExclusionPolicy{}

// Inspect looks the snap up once and returns the verdict with the store
// metadata so callers can reuse it.
func (p ExclusionPolicy) Inspect(ctx context.Context, name string) (types.SnapVerdict, error) {
	info, err := p.lookup(ctx, name)
	if err != nil {
		return types.SnapVerdict{}, err
	}
	return types.SnapVerdict{Name: name, Excluded: excludedType(info), Info: info}, nil
}

// IsExcluded reports whether the snap must be left alone. Info is fetched
// when nil; snaps unknown to the store are not excluded.
func (p ExclusionPolicy) IsExcluded(ctx context.Context, name string, info *types.SnapInfo) (bool, error) {
	if info == nil {
		var err error
		info, err = p.lookup(ctx, name)
		if err != nil {
			return false, err
		}
	}
	return excludedType(info), nil
}

func excludedType(info *types.SnapInfo) bool {
	if info == nil {
		return false
	}
	_, excluded := excludedSnapTypes[info.Type]
	return excluded
}

func (p ExclusionPolicy) lookup(ctx context.Context, name string) (*types.SnapInfo, error) {
	if p.Store == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("snap store is not configured")
	}
	info, err := p.Store.SnapInfo(ctx, name)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to look up snap " + name).
			WithCause(err)
	}
	if info == nil {
		log.Ctx(ctx).Debug().Str("snap", name).Msg("snap not found in store")
	}
	return info, nil
}
