package ioutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		removeIllegal bool
		want          string
	}{
		{"plain", "The Beatles", true, "The Beatles"},
		{"colons and quotes", `My/Band: "Best"`, true, "MyBand Best"},
		{"wildcards", "What? The* Album", true, "What The Album"},
		{"angle brackets and pipes", "<Artist>|Name", true, "ArtistName"},
		{"backslash", `AC\DC`, true, "ACDC"},
		{"single quotes", "Don't Stop", true, "Dont Stop"},
		{"ellipsis", "And Justice For All...", true, "And Justice For All"},
		{"ellipsis made by removal", "a.:..b", true, "ab"},
		{"surrounding whitespace", "  Abbey Road  ", true, "Abbey Road"},
		{"disabled keeps slashes", "AC/DC", false, "AC/DC"},
		{"disabled trims", "  AC/DC  ", false, "AC/DC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeName(tt.input, tt.removeIllegal)
			if got != tt.want {
				t.Errorf("SanitizeName(%q, %v) = %q, want %q", tt.input, tt.removeIllegal, got, tt.want)
			}
		})
	}
}

func TestSanitizeName_Idempotent(t *testing.T) {
	inputs := []string{
		`My/Band: "Best"`,
		"......",
		".....",
		"a.:..b",
		"  spaced out  ",
		"?:*<>|\\/\"'",
		"normal name",
	}

	for _, in := range inputs {
		once := SanitizeName(in, true)
		twice := SanitizeName(once, true)
		if once != twice {
			t.Errorf("SanitizeName not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "dst.mp3")

	content := []byte("fake audio payload")
	if err := os.WriteFile(src, content, 0644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(src, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Errorf("destination content = %q, want %q", got, content)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(mtime) {
		t.Errorf("destination mtime = %v, want %v", info.ModTime(), mtime)
	}
}

func TestCopyFile_DestinationExists(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "dst.mp3")

	if err := os.WriteFile(src, []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err == nil {
		t.Fatal("CopyFile() succeeded over an existing destination")
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "old" {
		t.Errorf("existing destination was modified: %q", got)
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "nope.mp3"), filepath.Join(dir, "dst.mp3"))
	if err == nil {
		t.Fatal("CopyFile() succeeded with a missing source")
	}
}

func TestCopyFile_TimePreservationFails(t *testing.T) {
	orig := chtimes
	chtimes = func(string, time.Time, time.Time) error {
		return errors.New("utimes not supported")
	}
	t.Cleanup(func() { chtimes = orig })

	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "dst.mp3")
	if err := os.WriteFile(src, []byte("audio data"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err == nil {
		t.Fatal("CopyFile() succeeded despite a time preservation failure")
	}

	// The fully copied file must not linger, or a re-run would see a
	// collision instead of retrying the move.
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Errorf("destination left behind after failed copy: %v", err)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "Artist", "Album")

	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir() second call error = %v", err)
	}

	info, err := os.Stat(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", nested)
	}
}
