package audio

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/handiism/music-organizer/internal/model"
)

// ErrIdentityMissing reports that a file's tags carry no usable artist or
// album value. The message is surfaced verbatim in error reports.
var ErrIdentityMissing = errors.New("Artist or album data not found")

// Alias sets mapping lower-cased tag keys to a semantic role. Spellings
// vary by container: "©art" (MP4 atom), "artist"/"author" (Vorbis, ASF),
// "tpe1"/"talb" (ID3v2 frames).
var (
	artistAliases = map[string]struct{}{
		"©art":   {},
		"artist": {},
		"author": {},
		"tpe1":   {},
	}
	albumAliases = map[string]struct{}{
		"©alb":  {},
		"album": {},
		"talb":  {},
	}
)

// Resolve derives the artist/album identity from a tag mapping.
//
// Every key is lower-cased and tested against the fixed alias sets; the
// first matching key (in sorted key order, for determinism) wins per role
// and later matches do not overwrite it. Values are normalized to plain
// text via coerceText before use.
//
// When either role stays unresolved the returned Identity still carries
// whatever was found, alongside ErrIdentityMissing.
func Resolve(tags model.TagMap) (model.Identity, error) {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var ident model.Identity
	for _, key := range keys {
		lower := strings.ToLower(key)
		if _, ok := artistAliases[lower]; ok && ident.Artist == "" {
			if text, ok := coerceText(tags[key]); ok {
				ident.Artist = text
			}
		} else if _, ok := albumAliases[lower]; ok && ident.Album == "" {
			if text, ok := coerceText(tags[key]); ok {
				ident.Album = text
			}
		}
	}

	if ident.Artist == "" || ident.Album == "" {
		return ident, ErrIdentityMissing
	}
	return ident, nil
}

// coerceText normalizes a tag value to plain text. Multi-value tags
// contribute their first element; wrapper values qualify by exposing a
// text payload through fmt.Stringer. Values with no text payload are
// treated as absent.
func coerceText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case []string:
		if len(t) > 0 && t[0] != "" {
			return t[0], true
		}
		return "", false
	case fmt.Stringer:
		s := t.String()
		return s, s != ""
	}
	return "", false
}
