package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all user-configurable application settings.
// The only thing folio remembers between visits is how it should look.
type Settings struct {
	Appearance AppearanceSettings `json:"appearance"`
}

// AppearanceSettings contains the persisted presentation preference.
type AppearanceSettings struct {
	// Theme is the persisted theme name ("light" or "dark").
	// Unknown values are treated as unset by the theme layer.
	Theme string `json:"theme"`
}

// DefaultSettings returns a new Settings instance with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Appearance: AppearanceSettings{
			Theme: "light",
		},
	}
}

// GetSettingsPath returns the path to the settings JSON file.
func GetSettingsPath() string {
	return filepath.Join(GetFolioDir(), "settings.json")
}

// LoadSettings loads settings from disk. Returns defaults if the file doesn't
// exist. When the file exists but can't be read or parsed, defaults are
// returned together with the error so the caller can log and move on; a broken
// preference file must never block startup.
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), err
	}

	settings := DefaultSettings() // Start with defaults to fill any missing fields
	if err := json.Unmarshal(data, settings); err != nil {
		return DefaultSettings(), err
	}

	return settings, nil
}

// SaveSettings saves settings to disk atomically.
func SaveSettings(s *Settings) error {
	path := GetSettingsPath()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	// Atomic write: write to temp file, then rename
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}
