package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vybdev/modfind/config"
)

// NotInProjectError is returned when no ancestor of a path holds a .modfind
// directory.
type NotInProjectError struct {
	Path string
}

func (e NotInProjectError) Error() string {
	return fmt.Sprintf("given path %s is not within a modfind project", e.Path)
}

// FindRoot ascends from path and returns the absolute path of the first
// directory that contains a .modfind directory.
func FindRoot(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", path, err)
	}

	curr := absPath
	for {
		fi, err := os.Stat(filepath.Join(curr, config.Dir))
		if err == nil && fi.IsDir() {
			return curr, nil
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			return "", NotInProjectError{Path: path}
		}
		curr = parent
	}
}

// Rel returns target relative to root using forward slashes. Targets outside
// root are returned unchanged.
func Rel(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}
