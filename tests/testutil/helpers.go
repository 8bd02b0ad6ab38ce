// Package testutil provides shared test helpers used across integration
// and e2e tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// FakeDistroInfo writes a distro-info stand-in knowing mantic, noble and
// oracular and returns its path.
func FakeDistroInfo(t *testing.T) string {
	t.Helper()
	script := `#!/bin/sh
case "$1" in
--all) printf 'lunar\nmantic\nnoble\noracular\n' ;;
--supported) printf 'noble\noracular\n' ;;
--devel) echo oracular ;;
--series)
	case "$2" in
	mantic) echo "23.10" ;;
	noble) echo "24.04 LTS" ;;
	oracular) echo "24.10" ;;
	*) echo "unknown distribution series" >&2; exit 1 ;;
	esac
	;;
esac
`
	path := filepath.Join(t.TempDir(), "distro-info")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// SeedServer serves seeds keyed by "<release>/<seed>" under
// /ubuntu.<release>/<seed>. The returned template fits the seed URL setting.
func SeedServer(t *testing.T, seeds map[string]string) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, "/"), "ubuntu.")
		content, ok := seeds[key]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(content))
	}))
	t.Cleanup(server.Close)
	return server.URL + "/ubuntu.%s/%s"
}

// StoreSnap is what the fake store knows about one snap.
type StoreSnap struct {
	ID   string
	Type string
}

// StoreServer mimics the snap store info endpoint.
func StoreServer(t *testing.T, snaps map[string]StoreSnap) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/v2/snaps/info/")
		w.Header().Set("Content-Type", "application/json")
		snap, ok := snaps[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error-list": []map[string]string{{"code": "resource-not-found", "message": "No snap named " + name}},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name":        name,
			"snap-id":     snap.ID,
			"channel-map": []map[string]any{{"type": snap.Type, "channel": map[string]string{"name": "stable"}}},
		})
	}))
	t.Cleanup(server.Close)
	return server.URL
}

// CopyFile copies src into dir and returns the new path.
func CopyFile(t *testing.T, src string, dir string) string {
	t.Helper()
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	path := filepath.Join(dir, filepath.Base(src))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
