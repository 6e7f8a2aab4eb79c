package seed

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	root := filepath.Join(t.TempDir(), "www")
	require.NoError(t, Populate(root))

	for _, name := range []string{
		"index.html", "styles.css", "about.html", "api/data.json", "images/logo.txt",
	} {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(name)))
		require.NoError(t, err, name)
		assert.True(t, info.Mode().IsRegular(), name)
		assert.NotZero(t, info.Size(), name)
	}
}

func TestPopulateDataJSON(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Populate(root))

	raw, err := os.ReadFile(filepath.Join(root, "api", "data.json"))
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, jsoniter.Unmarshal(raw, &data))
	assert.Equal(t, "hearth", data["server"])
	assert.ElementsMatch(t, []any{"GET", "HEAD"}, data["methods"])
}

func TestPopulateIdempotent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Populate(root))
	require.NoError(t, Populate(root))

	raw, err := os.ReadFile(filepath.Join(root, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "hearth")
}
