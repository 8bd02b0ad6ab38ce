package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSeedSnaps(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.service.SeedSnaps(t.Context(), SeedSnapsRequest{Release: "noble"})
	require.NoError(t, err)
	require.Equal(t, "24.04", result.Series)
	want := []string{
		"bare=latest/stable",
		"core22=latest/stable",
		"firefox=latest/stable/ubuntu-24.04",
		"snapd=latest/stable",
		"subiquity=latest/stable/ubuntu-24.04",
	}
	if diff := cmp.Diff(want, seedFormats(result.Snaps)); diff != "" {
		t.Fatalf("unexpected snaps (-want +got):\n%s", diff)
	}
	require.Equal(t, 2, env.seeds.fetches)
}

func TestSeedSnapsCustomSeedsAndImplicitTable(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.service.SeedSnaps(t.Context(), SeedSnapsRequest{
		Release:       "noble",
		Seeds:         []string{"minimal"},
		ImplicitSnaps: map[string][]string{"noble": {"core24"}},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"core24=latest/stable", "snapd=latest/stable"}, seedFormats(result.Snaps))
}

func TestSeedSnapsReleaseWithoutImplicitSnaps(t *testing.T) {
	env := newTestEnv(t)
	env.seeds.seeds["plucky/minimal"] = []string{" * snap:snapd"}

	_, err := env.service.SeedSnaps(t.Context(), SeedSnapsRequest{Release: "plucky"})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	require.Contains(t, err.Error(), "plucky")

	result, err := env.service.SeedSnaps(t.Context(), SeedSnapsRequest{
		Release:       "plucky",
		ImplicitSnaps: map[string][]string{"plucky": {}},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"snapd=latest/stable"}, seedFormats(result.Snaps))
}
