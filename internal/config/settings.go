package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
)

// AppVersion is the application version recorded in the settings file.
const AppVersion = "3.06"

// FileName is the name of the persisted settings file.
const FileName = "settings_jmo.json"

// appDirName is the per-user application data directory name.
const appDirName = "jellyfin_music_organizer"

// Settings holds all configuration options.
//
// The JSON layout matches the settings file of the desktop application, so
// an existing settings_jmo.json keeps working.
type Settings struct {
	// MusicFolderPath is the source tree scanned for audio files.
	MusicFolderPath string `json:"music_folder_path"`

	// DestinationFolderPath is the root of the organized library.
	DestinationFolderPath string `json:"destination_folder_path"`

	// MuteSound silences completion notification sounds in front ends
	// that support them.
	MuteSound bool `json:"mute_sound"`

	// RemoveIllegalChars strips characters that are invalid in directory
	// names from artist/album segments before building destination paths.
	RemoveIllegalChars bool `json:"remove_illegal_chars"`

	// Version is the application version that last wrote the file.
	Version string `json:"version"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		RemoveIllegalChars: true,
		Version:            AppVersion,
	}
}

// Load reads settings from a JSON file. A missing file is not an error and
// yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the per-user location of the settings file:
// %APPDATA% on Windows, Application Support on macOS, and a dotdir in the
// home directory elsewhere.
func DefaultPath() (string, error) {
	dir, err := appDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

func appDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appDirName), nil
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+appDirName), nil
}
