package ports

import "snap-seed-sync/internal/types"

// ModelStorePort reads and writes model assertion files. LoadModel returns
// (nil, nil) when the file does not exist.
type ModelStorePort interface {
	LoadModel(path string) (*types.ModelAssertion, error)
	SaveModel(path string, model *types.ModelAssertion) error
}
