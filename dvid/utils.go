package dvid

import (
	"fmt"
	"path/filepath"
)

// ConvertToAbsolute returns the absolute version of path, treating a relative path as
// relative to baseDir rather than the working directory.
func ConvertToAbsolute(path, baseDir string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("cannot convert empty path to absolute path")
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Abs(filepath.Join(baseDir, path))
}
