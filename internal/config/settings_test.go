package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileYieldsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Zero(t, s.OffsetMs)
}

func TestLoadSettingsRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("offset_ms: [not a number"), 0644))
	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, SaveSettings(path, &UserSettings{OffsetMs: -12.5}))
	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, -12.5, s.OffsetMs)
}
