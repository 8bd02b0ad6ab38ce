package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/snapcore/snapd/snap"
	"github.com/stretchr/testify/require"

	"snap-seed-sync/internal/adapters"
	"snap-seed-sync/internal/policies"
	"snap-seed-sync/internal/types"
)

type fakeSeeds struct {
	seeds   map[string][]string
	fetches int
}

func (f *fakeSeeds) FetchSeed(ctx context.Context, release string, seed string) ([]string, error) {
	f.fetches++
	return f.seeds[release+"/"+seed], nil
}

type fakeStore struct {
	infos map[string]*types.SnapInfo
}

func (f fakeStore) SnapInfo(ctx context.Context, name string) (*types.SnapInfo, error) {
	return f.infos[name], nil
}

type fakeReleases struct {
	all       []string
	supported []string
	devel     string
	series    map[string]string
	lookups   int
}

func (f *fakeReleases) AllReleases(ctx context.Context) ([]string, error) {
	return f.all, nil
}

func (f *fakeReleases) SupportedReleases(ctx context.Context) ([]string, error) {
	return f.supported, nil
}

func (f *fakeReleases) DevelRelease(ctx context.Context) (string, error) {
	return f.devel, nil
}

func (f *fakeReleases) SeriesVersion(ctx context.Context, release string) (string, error) {
	f.lookups++
	version, ok := f.series[release]
	if !ok {
		return "", errors.New("unknown release " + release)
	}
	return version, nil
}

type fakeCommits struct {
	repoDir string
	paths   []string
	message string
}

func (f *fakeCommits) Commit(ctx context.Context, repoDir string, paths []string, message string) (string, error) {
	f.repoDir = repoDir
	f.paths = paths
	f.message = message
	return "0123456789abcdef", nil
}

type testEnv struct {
	service  Service
	seeds    *fakeSeeds
	releases *fakeReleases
	commits  *fakeCommits
	repo     string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	seeds := &fakeSeeds{seeds: map[string][]string{
		"noble/minimal": {
			"= Minimal =",
			" * snap:snapd",
		},
		"noble/desktop-minimal": {
			" * snap:firefox",
			" * snap:subiquity",
		},
	}}
	store := fakeStore{infos: map[string]*types.SnapInfo{
		"pc":        {Name: "pc", SnapID: "pc-id", Type: snap.TypeGadget},
		"pc-kernel": {Name: "pc-kernel", SnapID: "pc-kernel-id", Type: snap.TypeKernel},
		"subiquity": {Name: "subiquity", SnapID: "subiquity-id", Type: snap.TypeApp},
		"firefox":   {Name: "firefox", SnapID: "firefox-id", Type: snap.TypeApp},
	}}
	releases := &fakeReleases{
		all:       []string{"lunar", "mantic", "noble", "oracular", "plucky"},
		supported: []string{"jammy", "noble", "oracular", "plucky"},
		devel:     "noble",
		series:    map[string]string{"noble": "24.04", "oracular": "24.10", "plucky": "25.04"},
	}
	commits := &fakeCommits{}
	service := Service{
		Seeds:    seeds,
		Models:   adapters.NewModelFileAdapter(),
		Store:    store,
		Policy:   policies.NewExclusionPolicy(store),
		Releases: releases,
		Reports:  adapters.NewReportFileAdapter(),
		Commits:  commits,
	}
	return testEnv{service: service, seeds: seeds, releases: releases, commits: commits, repo: t.TempDir()}
}

func (e testEnv) copyModel(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	path := filepath.Join(e.repo, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// passAllPolicy never excludes anything.
type passAllPolicy struct {
	store fakeStore
}

func (p passAllPolicy) Inspect(ctx context.Context, name string) (types.SnapVerdict, error) {
	info, err := p.store.SnapInfo(ctx, name)
	return types.SnapVerdict{Name: name, Info: info}, err
}

func (p passAllPolicy) IsExcluded(ctx context.Context, name string, info *types.SnapInfo) (bool, error) {
	return false, nil
}
