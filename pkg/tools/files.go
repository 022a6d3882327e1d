package tools

import (
	"os"
	"path/filepath"
)

func ResolvePath(path string) string {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return realPath
}

// Exists reports whether the given path exists on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates the given directory and any missing parents.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
