// Package ioutils provides the file system primitives used when placing
// music files into the destination tree.
//
// # Name Sanitization
//
// SanitizeName cleans artist/album values before they become directory
// names. Removal of illegal characters is controlled by the caller so the
// behavior can follow the remove_illegal_chars setting:
//
//	ioutils.SanitizeName(`My/Band: "Best"`, true) // "MyBand Best"
//	ioutils.SanitizeName("AC/DC", false)          // "AC/DC" (trim only)
//
// # File Operations
//
//	// Create the artist/album directory chain
//	err := ioutils.EnsureDir("/music/Artist/Album")
//
//	// Copy with metadata preservation and size verification
//	err := ioutils.CopyFile(src, dst)
//
// CopyFile never overwrites: an existing destination is an error, and the
// engine treats it as a collision before ever calling CopyFile.
package ioutils
