package lister

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vybdev/modfind/logging"
)

// Lister returns the bare names of the entries found directly inside a
// directory, in listing order. Files and subdirectories are not
// distinguished. List fails when the directory does not exist or cannot be
// read.
type Lister interface {
	List(ctx context.Context, dir string) ([]string, error)
}

// ListerFunc adapts an ordinary function to the Lister interface.
type ListerFunc func(ctx context.Context, dir string) ([]string, error)

// List calls f(ctx, dir).
func (f ListerFunc) List(ctx context.Context, dir string) ([]string, error) {
	return f(ctx, dir)
}

// FSLister lists directories of an fs.FS. Directory paths are slash
// separated and relative to the root of FS.
type FSLister struct {
	FS fs.FS
}

// NewFSLister returns a Lister backed by fsys.
func NewFSLister(fsys fs.FS) *FSLister {
	return &FSLister{FS: fsys}
}

func (l *FSLister) List(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(l.FS, fsPath(dir))
	if err != nil {
		return nil, err
	}
	return names(entries), nil
}

// fsPath turns a slash path into a valid fs.FS path ("." for the root).
func fsPath(dir string) string {
	clean := path.Clean(dir)
	clean = strings.TrimPrefix(clean, "/")
	if clean == "" {
		return "."
	}
	return clean
}

// OSLister lists directories of the host filesystem. Relative paths are
// resolved against the process working directory.
type OSLister struct{}

func (OSLister) List(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logging.Log.WithFields(logrus.Fields{"dir": dir}).Debug("listing directory")
	entries, err := os.ReadDir(filepath.FromSlash(dir))
	if err != nil {
		return nil, err
	}
	return names(entries), nil
}

func names(entries []fs.DirEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}
