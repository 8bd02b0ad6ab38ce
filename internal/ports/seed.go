package ports

import "context"

// SeedSourcePort fetches raw seed manifests. A seed that cannot be fetched
// yields no lines and no error.
type SeedSourcePort interface {
	FetchSeed(ctx context.Context, release string, seed string) ([]string, error)
}
