package ports

import "context"

// CommitPort records written files in the version control repository that
// holds them and returns the new revision.
type CommitPort interface {
	Commit(ctx context.Context, repoDir string, paths []string, message string) (string, error)
}
