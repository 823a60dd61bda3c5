package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
	"github.com/handiism/music-organizer/internal/model"
)

// Extractor reads embedded metadata from audio containers into a flat
// TagMap, format-agnostically.
//
// The primary reader sniffs the container from its content and handles
// ID3v1/v2, MP4 atoms, Vorbis comments and FLAC. When it cannot parse a
// file, scheme-specific fallbacks take over based on the extension: a raw
// ID3v2 frame scan for containers that commonly embed ID3 tags, and a
// Vorbis-comment block scan for FLAC. A file no reader understands surfaces
// a per-file error; the caller decides what that means for the run.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ReadTags opens the container at path and returns its tag mapping.
//
// Keys keep their container-specific spelling ("TPE1", "ARTIST", "©art");
// values may be plain strings, string slices, or wrapper values carrying a
// text payload. An empty map means the container parsed but carries no
// recognized tags.
func (e *Extractor) ReadTags(path string) (model.TagMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	m, readErr := tag.ReadFrom(f)
	if readErr == nil {
		raw := m.Raw()
		tags := make(model.TagMap, len(raw))
		for k, v := range raw {
			tags[k] = v
		}
		return tags, nil
	}

	switch filepath.Ext(path) {
	case ".flac":
		return readVorbisComments(path)
	case ".mp3", ".mp2", ".aif", ".aiff", ".wav", ".ape", ".mpc":
		return readID3Frames(path)
	}
	return nil, fmt.Errorf("read tags: %w", readErr)
}

// readID3Frames scans raw ID3v2 frames, taking the first frame of each ID.
func readID3Frames(path string) (model.TagMap, error) {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("parse ID3 tags: %w", err)
	}
	defer id3.Close()

	if !id3.HasFrames() {
		return nil, fmt.Errorf("no ID3 tags found in %s", filepath.Base(path))
	}

	tags := make(model.TagMap)
	for id, frames := range id3.AllFrames() {
		if len(frames) == 0 {
			continue
		}
		switch fr := frames[0].(type) {
		case id3v2.TextFrame:
			tags[id] = fr.Text
		case id3v2.CommentFrame:
			tags[id] = fr.Text
		}
	}
	return tags, nil
}

// readVorbisComments scans the FLAC metadata blocks for a Vorbis comment
// block. The first value of a repeated field wins.
//
// The container parser can panic on a stream whose metadata framing is
// intact but whose audio frames are missing; such a panic is converted to
// a per-file error.
func readVorbisComments(path string) (tags model.TagMap, err error) {
	defer func() {
		if r := recover(); r != nil {
			tags, err = nil, fmt.Errorf("parse FLAC container: %v", r)
		}
	}()

	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse FLAC container: %w", err)
	}

	for _, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, fmt.Errorf("parse vorbis comments: %w", err)
		}
		tags := make(model.TagMap, len(cmt.Comments))
		for _, comment := range cmt.Comments {
			key, value, ok := strings.Cut(comment, "=")
			if !ok {
				continue
			}
			if _, dup := tags[key]; !dup {
				tags[key] = value
			}
		}
		return tags, nil
	}
	return nil, fmt.Errorf("no vorbis comment block in %s", filepath.Base(path))
}
