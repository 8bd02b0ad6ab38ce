package adapters

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"snap-seed-sync/internal/types"
)

func TestModelFileAdapterRoundTrip(t *testing.T) {
	source := filepath.Join("testdata", "ubuntu-classic-2404-amd64.json")
	original, err := os.ReadFile(source)
	require.NoError(t, err)

	adapter := NewModelFileAdapter()
	model, err := adapter.LoadModel(source)
	require.NoError(t, err)
	require.NotNil(t, model)
	require.Len(t, model.Snaps, 4)
	require.Equal(t, types.ModelVariantStandard, model.Variant())

	target := filepath.Join(t.TempDir(), "out", "model.json")
	require.NoError(t, adapter.SaveModel(target, model))

	saved, err := os.ReadFile(target)
	require.NoError(t, err)
	if diff := cmp.Diff(string(original), string(saved)); diff != "" {
		t.Fatalf("unexpected saved model (-want +got):\n%s", diff)
	}
}

func TestModelFileAdapterSaveAppendsEntry(t *testing.T) {
	adapter := NewModelFileAdapter()
	model, err := adapter.LoadModel(filepath.Join("testdata", "ubuntu-classic-2404-amd64.json"))
	require.NoError(t, err)
	model.Snaps = append(model.Snaps, types.ModelSnap{
		Name:           "subiquity",
		Type:           "app",
		DefaultChannel: "latest/stable/ubuntu-24.04",
		ID:             "ba2aj8guta0zSRlT3QM5aJ1tiIsC5Fhd",
	})

	target := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, adapter.SaveModel(target, model))
	saved, err := os.ReadFile(target)
	require.NoError(t, err)

	text := string(saved)
	require.True(t, strings.HasSuffix(text, "}\n"))
	require.Contains(t, text, "        {\n            \"name\": \"subiquity\",\n            \"type\": \"app\",")
	require.Contains(t, text, "\"presence\": \"optional\"")
}

func TestModelFileAdapterMissingFile(t *testing.T) {
	model, err := NewModelFileAdapter().LoadModel(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.Nil(t, model)
}

func TestModelFileAdapterSaveNil(t *testing.T) {
	target := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, NewModelFileAdapter().SaveModel(target, nil))
	_, err := os.Stat(target)
	require.True(t, os.IsNotExist(err))
}

func TestModelFileAdapterRejectsInvalidModels(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: `{"grade": "signed", "snaps": [`},
		{name: "missing grade", content: `{"snaps": []}`},
		{name: "missing snaps", content: `{"grade": "signed"}`},
		{name: "snap without channel", content: `{"grade": "signed", "snaps": [{"name": "firefox"}]}`},
		{name: "grade not a string", content: `{"grade": 1, "snaps": []}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "model.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := NewModelFileAdapter().LoadModel(path)
			require.Error(t, err)
			if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
				t.Fatalf("unexpected code (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModelFileAdapterReadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	osReadFile = func(string) ([]byte, error) { return nil, errors.New("permission denied") }
	t.Cleanup(func() { osReadFile = os.ReadFile })

	_, err := NewModelFileAdapter().LoadModel(path)
	require.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}
