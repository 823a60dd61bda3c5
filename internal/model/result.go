package model

// TagMap is a flat mapping from raw tag key to tag value as read from an
// audio container. Keys keep their container-specific spelling and casing
// ("TPE1", "ARTIST", "©art", ...); values are plain strings, string slices,
// or format-specific wrapper values carrying a text payload.
type TagMap map[string]any

// Identity is the artist/album pair resolved from a TagMap.
//
// Either field may be empty when resolution failed partway; callers decide
// whether a partial identity is usable.
type Identity struct {
	Artist string
	Album  string
}

// ErrorFile records a file that could not be organized.
//
// ArtistFound and AlbumFound carry whatever partial identity was resolved
// before the failure (empty strings if tag extraction never completed), and
// Tags holds the full metadata mapping gathered from the container.
type ErrorFile struct {
	FileName    string
	ArtistFound string
	AlbumFound  string
	Tags        TagMap
	Err         string
}

// SkipFile records a file whose target already existed in the destination
// tree. The source file is left untouched.
type SkipFile struct {
	// FileName is the base name of the source file.
	FileName string

	// NewLocation is the artist/album directory the file would have been
	// copied into.
	NewLocation string

	// SourcePath is the full path of the untouched source file.
	SourcePath string

	// Err is the human-readable skip reason.
	Err string
}

// RunResult accumulates the deviations of one organization run. Successful
// moves add no record; only errors and collisions are kept, in the order
// they were encountered.
type RunResult struct {
	ErrorFiles       []ErrorFile
	ReplaceSkipFiles []SkipFile
}

// AddError appends an error record.
func (r *RunResult) AddError(f ErrorFile) {
	r.ErrorFiles = append(r.ErrorFiles, f)
}

// AddSkip appends a collision record.
func (r *RunResult) AddSkip(f SkipFile) {
	r.ReplaceSkipFiles = append(r.ReplaceSkipFiles, f)
}

// HasIssues reports whether the run recorded any errors or collisions.
func (r *RunResult) HasIssues() bool {
	return len(r.ErrorFiles) > 0 || len(r.ReplaceSkipFiles) > 0
}
