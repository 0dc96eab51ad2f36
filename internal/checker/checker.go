// Package checker verifies that a list of files contains no empty (zero-byte)
// files, e.g. files staged for a commit.
package checker

import (
	"fmt"
	"os"
)

// EmptyFileError reports the first zero-byte file found by Check.
type EmptyFileError struct {
	Path string
}

func (e *EmptyFileError) Error() string {
	return fmt.Sprintf("empty file %s; remove before committing.", e.Path)
}

// Check stats each path in order and returns an *EmptyFileError for the first
// file whose size is exactly zero bytes; paths after it are not examined.
// Paths are used exactly as supplied, with no globbing or normalisation.
// A path that cannot be accessed returns the underlying OS error rather than
// being treated as empty.
func Check(paths []string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("cannot access file: %w", err)
		}
		if info.Size() == 0 {
			return &EmptyFileError{Path: path}
		}
	}
	return nil
}
