// Package config provides configuration management for music-organizer.
//
// Settings are persisted as JSON in settings_jmo.json, using the same keys
// as the original desktop application (music_folder_path,
// destination_folder_path, mute_sound, remove_illegal_chars, version).
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// remove_illegal_chars defaults to true
//
// # Loading and Saving
//
//	path, _ := config.DefaultPath() // per-user app data directory
//	settings, err := config.Load(path)
//	// a missing file yields defaults, not an error
//
//	settings.DestinationFolderPath = "/music/library"
//	err = settings.Save(path)
package config
