package model

import (
	"os"
	"path/filepath"
)

// Plan is the computed placement for one source file: the artist/album
// directory under the destination root and the full target path inside it.
//
// The artist and album segments are expected to be sanitized before the
// plan is built; the file name is always used verbatim.
//
// Example:
//
//	plan := model.NewPlan("/music", "The Beatles", "Abbey Road", "01 Come Together.mp3")
//	// plan.Dir    = "/music/The Beatles/Abbey Road"
//	// plan.Target = "/music/The Beatles/Abbey Road/01 Come Together.mp3"
type Plan struct {
	// Dir is the destination directory destination_root/artist/album.
	Dir string

	// Target is the full destination path of the file inside Dir.
	Target string
}

// NewPlan computes the placement for a file with the given sanitized
// artist/album segments under destRoot.
func NewPlan(destRoot, artist, album, fileName string) Plan {
	dir := filepath.Join(destRoot, artist, album)
	return Plan{
		Dir:    dir,
		Target: filepath.Join(dir, fileName),
	}
}

// TargetExists reports whether a file already occupies the target path.
func (p Plan) TargetExists() bool {
	_, err := os.Stat(p.Target)
	return err == nil
}
