package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestEnv(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	return tmpDir
}

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	setupTestEnv(t)

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "light", s.Appearance.Theme)
}

func TestSettings_RoundTrip(t *testing.T) {
	setupTestEnv(t)

	s := DefaultSettings()
	s.Appearance.Theme = "dark"
	require.NoError(t, SaveSettings(s))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Appearance.Theme)
}

func TestLoadSettings_CorruptFileFallsBackToDefaults(t *testing.T) {
	setupTestEnv(t)

	require.NoError(t, os.MkdirAll(GetFolioDir(), 0o755))
	require.NoError(t, os.WriteFile(GetSettingsPath(), []byte("{not json"), 0o644))

	s, err := LoadSettings()
	assert.Error(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "light", s.Appearance.Theme)
}

func TestSaveSettings_LeavesNoTempFile(t *testing.T) {
	setupTestEnv(t)

	require.NoError(t, SaveSettings(DefaultSettings()))

	_, err := os.Stat(GetSettingsPath() + ".tmp")
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(GetFolioDir(), "settings.json"))
	assert.NoError(t, err)
}
