package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputLines(t *testing.T) {
	require.Nil(t, OutputLines([]byte("  \n")))
	require.Equal(t, []string{"mantic", "noble"}, OutputLines([]byte("mantic\nnoble\n")))
}

func TestSortedUnique(t *testing.T) {
	require.Equal(t, []string{"minimal", "ship"}, SortedUnique([]string{"ship", " minimal", "", "ship"}))
	require.Equal(t, []string{}, SortedUnique(nil))
}

func TestCommandError(t *testing.T) {
	err := CommandError([]byte("distro-info: unknown series\n"), errors.New("exit status 1"))
	require.EqualError(t, err, "distro-info: unknown series: exit status 1")
}

func TestHTTPStatusError(t *testing.T) {
	require.EqualError(t, HTTPStatusError(404, "http://x"), "status=404 url=http://x")
	require.EqualError(t, HTTPStatusErrorWithBody(500, "http://x", "boom\n"), "status=500 url=http://x response=boom")
}
