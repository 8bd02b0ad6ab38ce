package ports

import (
	"context"

	"snap-seed-sync/internal/types"
)

// ExclusionPolicyPort decides which snaps are left alone by the sync.
type ExclusionPolicyPort interface {
	// Inspect looks the snap up once and returns the decision together
	// with the store metadata it was based on.
	Inspect(ctx context.Context, name string) (types.SnapVerdict, error)

	// IsExcluded decides from info, fetching it first when info is nil.
	IsExcluded(ctx context.Context, name string, info *types.SnapInfo) (bool, error)
}
