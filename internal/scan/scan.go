package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Extensions is the fixed allow-list of audio file extensions the organizer
// recognizes. Matching is case-sensitive on the dotted suffix.
var Extensions = []string{
	".aif", ".aiff", ".ape", ".flac",
	".m4a", ".m4b", ".m4r",
	".mp2", ".mp3", ".mp4", ".mpc",
	".ogg", ".opus", ".wav", ".wma",
}

var extensionSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Extensions))
	for _, ext := range Extensions {
		set[ext] = struct{}{}
	}
	return set
}()

// SourceFile is one discovered candidate audio file. Immutable once
// enumerated.
type SourceFile struct {
	// Path is the full path of the file under the source root.
	Path string

	// Ext is the dotted extension, one of Extensions.
	Ext string
}

// Name returns the base file name.
func (f SourceFile) Name() string {
	return filepath.Base(f.Path)
}

// Find walks root recursively and returns every regular file whose
// extension is in the allow-list. The walk is lexical, so the order is
// stable across runs over an unchanged tree.
//
// An unreadable root (or a failure while descending) aborts the discovery
// with an error; per-file problems are the run loop's concern, not Find's.
func Find(root string) ([]SourceFile, error) {
	var files []SourceFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if _, ok := extensionSet[ext]; ok {
			files = append(files, SourceFile{Path: path, Ext: ext})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}
