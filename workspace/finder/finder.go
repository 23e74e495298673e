// Package finder locates module files, either by walking up from an
// existing file or by resolving a module name against the project layout.
//
// All paths are slash separated. The finder holds no state between calls;
// every lookup reads the directories it needs through its Lister.
package finder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/vybdev/modfind/workspace/convention"
	"github.com/vybdev/modfind/workspace/lister"
)

// PathSolver maps a module name to the directory holding its files.
type PathSolver interface {
	Resolve(name string) (string, error)
}

// NotFoundError is returned when no module file exists in the searched scope.
type NotFoundError struct {
	// Scope is the origin file for upward searches, or the module name for
	// name-based lookups.
	Scope string
	// Dir is the last directory that was searched, if any.
	Dir string
}

func (e *NotFoundError) Error() string {
	if e.Dir == "" {
		return fmt.Sprintf("no module file found for %s", e.Scope)
	}
	return fmt.Sprintf("no module file found for %s (searched up to %s)", e.Scope, e.Dir)
}

// IsNotFound reports whether err is, or wraps, a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Option configures a Finder.
type Option func(*Finder)

// WithConvention overrides the module file naming convention.
func WithConvention(c convention.Convention) Option {
	return func(f *Finder) {
		f.conv = c
	}
}

// Finder locates module files.
type Finder struct {
	lister lister.Lister
	solver PathSolver
	conv   convention.Convention
}

// New returns a Finder reading directories through l and resolving module
// names through s.
func New(l lister.Lister, s PathSolver, opts ...Option) *Finder {
	f := &Finder{
		lister: l,
		solver: s,
		conv:   convention.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FindFrom returns the module file closest to origin. The search starts in
// the directory containing origin and moves to the parent directory until a
// module file is found or the filesystem root has been searched. A relative
// origin cannot climb above its leading ".." elements.
//
// Within a directory the first module file in listing order wins. Listing
// errors are returned unmodified.
func (f *Finder) FindFrom(ctx context.Context, origin string) (string, error) {
	if origin == "" {
		return "", &NotFoundError{Scope: origin}
	}

	dir := path.Dir(origin)
	for {
		entries, err := f.lister.List(ctx, dir)
		if err != nil {
			return "", err
		}
		if name, ok := f.conv.First(entries); ok {
			return path.Join(dir, name), nil
		}

		// path.Dir("..") is ".", which is not an ancestor of "..".
		parent := path.Dir(dir)
		if parent == dir || path.Base(dir) == ".." {
			return "", &NotFoundError{Scope: origin, Dir: dir}
		}
		dir = parent
	}
}

// Find returns the module file of the named module. Only the directory the
// solver resolves the name to is searched; its subdirectories are not.
//
// Solver and listing errors are returned unmodified, so a missing module
// directory surfaces as the lister's error rather than a NotFoundError.
func (f *Finder) Find(ctx context.Context, name string) (string, error) {
	dir, err := f.solver.Resolve(name)
	if err != nil {
		return "", err
	}

	entries, err := f.lister.List(ctx, dir)
	if err != nil {
		return "", err
	}
	file, ok := f.conv.First(entries)
	if !ok {
		return "", &NotFoundError{Scope: name, Dir: dir}
	}
	return path.Join(dir, file), nil
}

// modulesSolver is implemented by solvers that know the root module name
// and where nested modules are collected.
type modulesSolver interface {
	PathSolver
	RootModule() string
	ModulesDir() string
}

// Modules returns the names of the known modules: the root module first,
// then the entries of the nested-modules directory in listing order. Hidden
// entries and entries with a file extension (index.ts, .gitkeep) are not
// module directories and are skipped. A missing nested-modules directory
// yields the root module only.
func (f *Finder) Modules(ctx context.Context) ([]string, error) {
	ms, ok := f.solver.(modulesSolver)
	if !ok {
		return nil, fmt.Errorf("solver %T does not expose a modules directory", f.solver)
	}

	names := []string{ms.RootModule()}
	entries, err := f.lister.List(ctx, ms.ModulesDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return names, nil
		}
		return nil, err
	}
	for _, e := range entries {
		if strings.HasPrefix(e, ".") || path.Ext(e) != "" {
			continue
		}
		names = append(names, e)
	}
	return names, nil
}
