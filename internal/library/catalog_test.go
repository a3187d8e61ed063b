package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartJSON = `{
	"title": "Test Song", "artist": "Somebody",
	"notes": [
		{"ms": 0, "x": 0.5, "y": 0.5},
		{"ms": 1200, "x": 0.3, "y": 0.7}
	]
}`

func TestScanAndList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.json"), []byte(chartJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover.txt"), []byte("not a chart"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"notes": []}`), 0644))

	c, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Scan(dir))
	entries, err := c.List()
	require.NoError(t, err)
	require.Len(t, entries, 1, "non-charts and malformed charts are skipped")

	e := entries[0]
	assert.Equal(t, "Test Song", e.Title)
	assert.Equal(t, "Somebody", e.Artist)
	assert.Equal(t, 2, e.Notes)
	assert.Equal(t, 1200.0, e.LastMs)
	assert.Equal(t, filepath.Join(dir, "test.json"), e.Path)

	// Rescanning the same content is idempotent.
	require.NoError(t, c.Scan(dir))
	entries, err = c.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
