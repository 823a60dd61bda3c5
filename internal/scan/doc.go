// Package scan discovers candidate audio files under a source tree.
//
// Discovery is extension-based against a fixed allow-list covering the
// containers the tag extractor understands (ID3, MP4 atoms, Vorbis
// comments, and friends):
//
//	files, err := scan.Find("/home/user/Music")
//	if err != nil {
//	    // the source root itself was unreadable
//	}
//	fmt.Printf("found %d songs\n", len(files))
//
// The returned order is the lexical walk order, which is stable for an
// unchanged tree — the run loop relies on this for progress indexing.
package scan
