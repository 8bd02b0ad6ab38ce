package ports

import "context"

// ReleaseInfoPort answers questions about Ubuntu releases.
type ReleaseInfoPort interface {
	AllReleases(ctx context.Context) ([]string, error)
	SupportedReleases(ctx context.Context) ([]string, error)
	SeriesVersion(ctx context.Context, release string) (string, error)
	DevelRelease(ctx context.Context) (string, error)
}
