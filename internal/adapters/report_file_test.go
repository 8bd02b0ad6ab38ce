package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"snap-seed-sync/internal/types"
)

func TestReportFileAdapterWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "noble.yaml")
	report := types.SyncReport{
		Release:  "noble",
		Arch:     "amd64",
		Series:   "24.04",
		Added:    []string{"subiquity=latest/stable/ubuntu-24.04"},
		Excluded: []string{"pc", "pc-kernel"},
		Changed:  true,
		DryRun:   true,
	}

	require.NoError(t, NewReportFileAdapter().WriteReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "dry_run: true\n")

	var got types.SyncReport
	require.NoError(t, yaml.Unmarshal(data, &got))
	if diff := cmp.Diff(report, got); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
}
