package ports

import (
	"context"

	"snap-seed-sync/internal/types"
)

// SnapStorePort looks up snap metadata. An unknown snap is (nil, nil).
type SnapStorePort interface {
	SnapInfo(ctx context.Context, name string) (*types.SnapInfo, error)
}
