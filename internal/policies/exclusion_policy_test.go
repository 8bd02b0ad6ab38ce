package policies

import (
	"context"
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/snapcore/snapd/snap"
	"github.com/stretchr/testify/require"

	"snap-seed-sync/internal/types"
)

type fakeStore struct {
	infos   map[string]*types.SnapInfo
	err     error
	lookups int
}

func (s *fakeStore) SnapInfo(ctx context.Context, name string) (*types.SnapInfo, error) {
	s.lookups++
	if s.err != nil {
		return nil, s.err
	}
	return s.infos[name], nil
}

func TestExclusionPolicyInspect(t *testing.T) {
	store := &fakeStore{infos: map[string]*types.SnapInfo{
		"pc":        {Name: "pc", SnapID: "pc-id", Type: snap.TypeGadget},
		"pc-kernel": {Name: "pc-kernel", SnapID: "kernel-id", Type: snap.TypeKernel},
		"firefox":   {Name: "firefox", SnapID: "firefox-id", Type: snap.TypeApp},
		"core24":    {Name: "core24", SnapID: "core24-id", Type: snap.TypeBase},
	}}
	policy := NewExclusionPolicy(store)

	tests := []struct {
		name         string
		snap         string
		wantExcluded bool
		wantInfo     bool
	}{
		{name: "gadget", snap: "pc", wantExcluded: true, wantInfo: true},
		{name: "kernel", snap: "pc-kernel", wantExcluded: true, wantInfo: true},
		{name: "app", snap: "firefox", wantInfo: true},
		{name: "base", snap: "core24", wantInfo: true},
		{name: "unknown", snap: "ghost"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			before := store.lookups
			verdict, err := policy.Inspect(t.Context(), tt.snap)
			require.NoError(t, err)
			require.Equal(t, tt.wantExcluded, verdict.Excluded)
			require.Equal(t, tt.wantInfo, verdict.Info != nil)
			if diff := cmp.Diff(tt.snap, verdict.Name); diff != "" {
				t.Fatalf("unexpected verdict name (-want +got):\n%s", diff)
			}
			require.Equal(t, 1, store.lookups-before)
		})
	}
}

func TestExclusionPolicyIsExcludedReusesInfo(t *testing.T) {
	store := &fakeStore{}
	policy := NewExclusionPolicy(store)

	excluded, err := policy.IsExcluded(t.Context(), "pc", &types.SnapInfo{Name: "pc", Type: snap.TypeGadget})
	require.NoError(t, err)
	require.True(t, excluded)
	require.Zero(t, store.lookups)
}

func TestExclusionPolicyStoreError(t *testing.T) {
	policy := NewExclusionPolicy(&fakeStore{err: errors.New("connection refused")})

	_, err := policy.Inspect(t.Context(), "firefox")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}

func TestExclusionPolicyWithoutStore(t *testing.T) {
	_, err := ExclusionPolicy{}.IsExcluded(t.Context(), "firefox", nil)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}
