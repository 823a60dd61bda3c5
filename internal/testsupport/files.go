// Package testsupport provides fixture helpers shared by the package tests.
package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

// WriteTrack creates an ID3v2-tagged audio file at path with the given
// artist and album. Missing parent directories are created. The payload
// after the tag is a short dummy byte run, which is enough for tag readers
// that only inspect the metadata header.
func WriteTrack(t testing.TB, path, artist, album string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, dummyPayload(), 0o644); err != nil {
		t.Fatalf("create %s: %v", path, err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("open tags for %s: %v", path, err)
	}
	defer tag.Close()

	if artist != "" {
		tag.SetArtist(artist)
	}
	if album != "" {
		tag.SetAlbum(album)
	}
	if err := tag.Save(); err != nil {
		t.Fatalf("save tags for %s: %v", path, err)
	}
}

func dummyPayload() []byte {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = 0x42
	}
	return buf
}

// WriteFLACTrack creates a minimal FLAC file at path carrying a Vorbis
// comment block with the given artist and album, followed by a short dummy
// audio frame run.
func WriteFLACTrack(t testing.TB, path, artist, album string) {
	t.Helper()

	body := vorbisCommentBody([]string{"ARTIST=" + artist, "ALBUM=" + album})
	writeFLACBytes(t, path, body, true)
}

// WriteCorruptFLAC creates a FLAC file at path whose metadata framing is
// intact but whose Vorbis comment content is malformed and whose stream
// ends before any audio frame.
func WriteCorruptFLAC(t testing.TB, path string) {
	t.Helper()

	// Vendor length far past the end of the block.
	body := []byte{0xFF, 0xFF, 0xFF, 0xFF, 'j', 'u', 'n', 'k'}
	writeFLACBytes(t, path, body, false)
}

// vorbisCommentBody encodes a Vorbis comment block body: little-endian
// length-prefixed vendor string and "KEY=value" entries.
func vorbisCommentBody(comments []string) []byte {
	var b bytes.Buffer
	vendor := "reference libFLAC 1.3.2"
	binary.Write(&b, binary.LittleEndian, uint32(len(vendor)))
	b.WriteString(vendor)
	binary.Write(&b, binary.LittleEndian, uint32(len(comments)))
	for _, c := range comments {
		binary.Write(&b, binary.LittleEndian, uint32(len(c)))
		b.WriteString(c)
	}
	return b.Bytes()
}

// writeFLACBytes assembles the container: magic, an empty STREAMINFO
// block, a last-marked Vorbis comment block with the given body, and
// optionally a dummy frame run after the metadata.
func writeFLACBytes(t testing.TB, path string, commentBody []byte, withFrames bool) {
	t.Helper()

	var b bytes.Buffer
	b.WriteString("fLaC")

	// STREAMINFO: type 0, fixed 34-byte body.
	b.Write([]byte{0x00, 0x00, 0x00, 0x22})
	b.Write(make([]byte, 34))

	// Vorbis comment: type 4, last-block flag set.
	n := len(commentBody)
	b.Write([]byte{0x84, byte(n >> 16), byte(n >> 8), byte(n)})
	b.Write(commentBody)

	if withFrames {
		frame := make([]byte, 64)
		frame[0], frame[1] = 0xFF, 0xF8
		b.Write(frame)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
}
