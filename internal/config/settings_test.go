package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if !s.RemoveIllegalChars {
		t.Error("RemoveIllegalChars should default to true")
	}
	if s.MuteSound {
		t.Error("MuteSound should default to false")
	}
	if s.Version != AppVersion {
		t.Errorf("Version = %q, want %q", s.Version, AppVersion)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load() error = %v for a missing file", err)
	}
	if !s.RemoveIllegalChars {
		t.Error("missing file should yield defaults")
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	s := DefaultSettings()
	s.MusicFolderPath = "/incoming"
	s.DestinationFolderPath = "/library"
	s.RemoveIllegalChars = false
	s.MuteSound = true

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *s {
		t.Errorf("roundtrip mismatch:\n got  %+v\n want %+v", loaded, s)
	}
}
