package adapters

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog/log"

	"snap-seed-sync/internal/ports"
)

const (
	DefaultCommitAuthorName  = "snap-seed-sync"
	DefaultCommitAuthorEmail = "snap-seed-sync@localhost"
)

// GitCommitAdapter commits updated model files in the repository that
// contains them.
type GitCommitAdapter struct {
	AuthorName  string
	AuthorEmail string
}

func NewGitCommitAdapter(name string, email string) GitCommitAdapter {
	if strings.TrimSpace(name) == "" {
		name = DefaultCommitAuthorName
	}
	if strings.TrimSpace(email) == "" {
		email = DefaultCommitAuthorEmail
	}
	return GitCommitAdapter{AuthorName: name, AuthorEmail: email}
}

// Commit stages paths and commits them. It returns an empty hash when the
// paths carry no change.
func (a GitCommitAdapter) Commit(ctx context.Context, repoDir string, paths []string, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	repo, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no git repository at " + repoDir).
			WithCause(err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("git repository has no worktree").
			WithCause(err)
	}
	root := worktree.Filesystem.Root()
	for _, path := range paths {
		rel, err := worktreePath(root, path)
		if err != nil {
			return "", err
		}
		if _, err := worktree.Add(rel); err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to stage " + rel).
				WithCause(err)
		}
	}
	status, err := worktree.Status()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read git status").
			WithCause(err)
	}
	staged := false
	for _, fileStatus := range status {
		if fileStatus.Staging != git.Unmodified && fileStatus.Staging != git.Untracked {
			staged = true
			break
		}
	}
	if !staged {
		log.Info().Str("repository", root).Msg("nothing to commit")
		return "", nil
	}
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  a.AuthorName,
			Email: a.AuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to commit model assertions").
			WithCause(err)
	}
	log.Info().Str("commit", hash.String()).Msg("model assertions committed")
	return hash.String(), nil
}

func worktreePath(root string, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid path " + path).
			WithCause(err)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(path + " is outside the git repository " + root)
	}
	return filepath.ToSlash(rel), nil
}

var _ ports.CommitPort = GitCommitAdapter{}
