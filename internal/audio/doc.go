// Package audio extracts embedded metadata from audio containers and
// resolves it into an artist/album identity.
//
// # Extraction
//
// Extractor reads a file's tags into a flat model.TagMap regardless of the
// container format:
//
//	ex := audio.NewExtractor()
//	tags, err := ex.ReadTags("/music/incoming/song.flac")
//
// The primary reader identifies the container by content; extension-based
// fallbacks cover ID3 frames embedded in other containers and raw FLAC
// Vorbis-comment blocks.
//
// # Resolution
//
// Resolve maps container-specific tag keys onto the artist and album roles
// through fixed alias sets and normalizes the values to plain text:
//
//	ident, err := audio.Resolve(tags)
//	if errors.Is(err, audio.ErrIdentityMissing) {
//	    // file cannot be organized; ident may hold a partial result
//	}
package audio
