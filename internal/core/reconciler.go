package core

import (
	"context"
	"slices"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/snapcore/snapd/snap"

	"snap-seed-sync/internal/ports"
	"snap-seed-sync/internal/types"
)

// DangerousChannel overrides the seeded channel for snaps added to a
// dangerous model.
const DangerousChannel = "latest/edge"

// DiffSnaps compares full identities: a snap whose channel moved shows up in
// both lists.
func DiffSnaps(seeded SnapSet, modeled SnapSet) types.SnapDiff {
	return types.SnapDiff{
		Added:   seeded.Difference(modeled).Sorted(),
		Removed: modeled.Difference(seeded).Sorted(),
	}
}

type Reconciler struct {
	Policy ports.ExclusionPolicyPort
}

func NewReconciler(policy ports.ExclusionPolicyPort) Reconciler {
	return Reconciler{Policy: policy}
}

// Plan drops excluded snaps from both sides of the diff. Each distinct name
// is looked up once. Added snaps the store does not know are moved to
// Unknown, and a modeled entry with the same name is kept so a channel move
// never loses the snap.
func (r Reconciler) Plan(ctx context.Context, diff types.SnapDiff) (types.SyncPlan, error) {
	plan := types.SyncPlan{Verdicts: map[string]types.SnapVerdict{}}
	excluded := NewSnapSet()

	keep := func(identities []types.SnapIdentity) ([]types.SnapIdentity, error) {
		var out []types.SnapIdentity
		for _, identity := range identities {
			verdict, ok := plan.Verdicts[identity.Name]
			if !ok {
				var err error
				verdict, err = r.Policy.Inspect(ctx, identity.Name)
				if err != nil {
					return nil, errbuilder.New().
						WithCode(errbuilder.CodeInternal).
						WithMsg("failed to inspect snap " + identity.Name).
						WithCause(err)
				}
				plan.Verdicts[identity.Name] = verdict
			}
			if verdict.Excluded {
				excluded.Add(identity)
				log.Ctx(ctx).Debug().Str("snap", identity.Name).Msg("snap excluded from sync")
				continue
			}
			out = append(out, identity)
		}
		return out, nil
	}

	added, err := keep(diff.Added)
	if err != nil {
		return types.SyncPlan{}, err
	}
	unknown := NewSnapSet()
	for _, identity := range added {
		if plan.Verdicts[identity.Name].Info == nil {
			log.Ctx(ctx).Warn().Str("snap", identity.Name).Msg("seeded snap is unknown to the store, not adding it")
			unknown.Add(identity)
			continue
		}
		plan.Added = append(plan.Added, identity)
	}
	unknownNames := unknown.Names()

	removed, err := keep(diff.Removed)
	if err != nil {
		return types.SyncPlan{}, err
	}
	for _, identity := range removed {
		if slices.Contains(unknownNames, identity.Name) {
			log.Ctx(ctx).Warn().Str("snap", identity.Name).Msg("keeping modeled entry, its new channel cannot be resolved")
			continue
		}
		plan.Removed = append(plan.Removed, identity)
	}

	plan.Excluded = excluded.Names()
	plan.Unknown = unknownNames
	return plan, nil
}

// RemoveSnaps deletes every entry whose name matches a removed identity and
// returns how many entries were dropped.
func RemoveSnaps(model *types.ModelAssertion, removed []types.SnapIdentity) int {
	if model == nil || len(removed) == 0 {
		return 0
	}
	names := make(map[string]struct{}, len(removed))
	for _, identity := range removed {
		names[identity.Name] = struct{}{}
	}
	kept := model.Snaps[:0]
	dropped := 0
	for _, entry := range model.Snaps {
		if _, ok := names[entry.Name]; ok {
			dropped++
			continue
		}
		kept = append(kept, entry)
	}
	model.Snaps = kept
	return dropped
}

// AddSnaps appends an app entry for every added identity. Identities the
// store does not know are skipped and returned by name.
func AddSnaps(ctx context.Context, model *types.ModelAssertion, added []types.SnapIdentity, verdicts map[string]types.SnapVerdict) (int, []string) {
	if model == nil {
		return 0, nil
	}
	dangerous := model.Variant() == types.ModelVariantDangerous
	appended := 0
	var unknown []string
	for _, identity := range added {
		verdict := verdicts[identity.Name]
		if verdict.Excluded {
			continue
		}
		if verdict.Info == nil {
			log.Ctx(ctx).Warn().Str("snap", identity.Name).Msg("seeded snap is unknown to the store, not adding it")
			unknown = append(unknown, identity.Name)
			continue
		}
		entry := types.ModelSnap{
			Name:           identity.Name,
			Type:           string(snap.TypeApp),
			DefaultChannel: identity.DefaultChannel(),
			ID:             verdict.Info.SnapID,
		}
		if dangerous {
			entry.DefaultChannel = DangerousChannel
		}
		model.Snaps = append(model.Snaps, entry)
		appended++
	}
	return appended, unknown
}
