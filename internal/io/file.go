package ioutils

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// illegalChars are the characters stripped from artist/album path segments
// when sanitization is enabled. Forward and backward slashes are included so
// a tag value can never introduce extra path levels.
const illegalChars = `:*?<>|/\"'`

// chtimes is swapped in tests to simulate time-preservation failures.
var chtimes = os.Chtimes

// SanitizeName cleans a directory-name segment derived from tag data.
//
// When removeIllegal is true the characters : * ? < > | / \ " ' and any
// literal "..." substrings are removed before trimming surrounding
// whitespace; when false the segment is only trimmed. The function is
// idempotent either way.
//
// Example:
//
//	SanitizeName(`My/Band: "Best"`, true) // Returns "MyBand Best"
//	SanitizeName("  Plain Name  ", false) // Returns "Plain Name"
func SanitizeName(name string, removeIllegal bool) string {
	if removeIllegal {
		name = strings.Map(func(r rune) rune {
			if strings.ContainsRune(illegalChars, r) {
				return -1
			}
			return r
		}, name)
		name = strings.ReplaceAll(name, "...", "")
	}
	return strings.TrimSpace(name)
}

// CopyFile copies src to dst, preserving file mode and modification time.
//
// The operation fails if src is missing or unreadable, if dst already
// exists, if fewer bytes than the source size reach the destination, or if
// the destination cannot be verified afterwards. On a short copy, a failed
// copy, or a failure to preserve the file times, the destination file is
// removed so a re-run sees no half-finished target.
//
// Example:
//
//	err := ioutils.CopyFile("/src/song.mp3", "/music/Artist/Album/song.mp3")
func CopyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("source file not available: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot read source file: %w", err)
	}
	defer in.Close()

	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("destination file already exists: %s", dst)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}

	written, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("copy file contents: %w", err)
	}
	if written != srcInfo.Size() {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
	}

	if err := chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("preserve file times: %w", err)
	}

	if _, err := os.Stat(dst); err != nil {
		return fmt.Errorf("file copy failed: %w", err)
	}
	return nil
}

// EnsureDir creates a directory and all parent directories if they don't
// exist. Directories are created with mode 0755; an existing directory is
// not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
