// Where: internal/infra/fileops/file_ops.go
// What: Filesystem helpers for the benchmark project directory.
// Why: Keep destructive directory handling in one audited place.
package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var errUnsafeRemovePath = errors.New("refusing to remove path")

// RemoveDir deletes path and everything below it. A missing path is not an error.
func RemoveDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	clean := filepath.Clean(path)
	if clean == "." || clean == string(os.PathSeparator) || clean == ".." {
		return fmt.Errorf("%w: %s", errUnsafeRemovePath, path)
	}
	if err := os.RemoveAll(clean); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", clean, err)
	}
	return nil
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
