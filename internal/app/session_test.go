package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"snap-seed-sync/internal/types"
)

func TestReleaseSessionMemoisesLookups(t *testing.T) {
	releases := &fakeReleases{series: map[string]string{"noble": "24.04 LTS"}}
	session := newReleaseSession(releases)

	for i := 0; i < 3; i++ {
		name, err := session.ModelName(t.Context(), "noble", "arm64", types.ModelVariantDangerous)
		require.NoError(t, err)
		require.Equal(t, "ubuntu-classic-2404-arm64-dangerous.json", name)
	}
	version, err := session.SeriesVersion(t.Context(), "noble")
	require.NoError(t, err)
	require.Equal(t, "24.04 LTS", version)
	require.Equal(t, 1, releases.lookups)

	_, err = session.SeriesVersion(t.Context(), "warty")
	require.Error(t, err)
}
