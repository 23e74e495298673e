package solver

import (
	"fmt"
	"path"
	"strings"
)

// Layout describes where modules live inside a project.
//
//   - AppRoot is the directory of the root module (e.g. "src/app").
//   - ModulesDir is the collection, under AppRoot, that holds one
//     subdirectory per nested module (e.g. "modules").
//   - RootModule is the name that designates the root module (e.g. "app").
type Layout struct {
	AppRoot    string
	ModulesDir string
	RootModule string
}

// DefaultLayout returns the conventional src/app layout.
func DefaultLayout() Layout {
	return Layout{
		AppRoot:    "src/app",
		ModulesDir: "modules",
		RootModule: "app",
	}
}

// withDefaults fills every empty field of l from DefaultLayout.
func (l Layout) withDefaults() Layout {
	d := DefaultLayout()
	if l.AppRoot == "" {
		l.AppRoot = d.AppRoot
	}
	if l.ModulesDir == "" {
		l.ModulesDir = d.ModulesDir
	}
	if l.RootModule == "" {
		l.RootModule = d.RootModule
	}
	return l
}

// InvalidNameError is returned by Resolve when a module name cannot denote a
// directory under the modules collection.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid module name %q: %s", e.Name, e.Reason)
}

// Solver maps module names to the directory holding their files.
type Solver struct {
	layout Layout
}

// New returns a Solver for the given layout. Empty layout fields take their
// default value.
func New(layout Layout) *Solver {
	return &Solver{layout: layout.withDefaults()}
}

// Default returns a Solver for DefaultLayout.
func Default() *Solver {
	return New(DefaultLayout())
}

// RootModule returns the name that designates the root module.
func (s *Solver) RootModule() string {
	return s.layout.RootModule
}

// ModulesDir returns the directory holding the nested modules.
func (s *Solver) ModulesDir() string {
	return path.Join(s.layout.AppRoot, s.layout.ModulesDir)
}

// Resolve returns the base directory of the named module. The root module
// resolves to AppRoot; any other module to AppRoot/ModulesDir/<name>.
func (s *Solver) Resolve(name string) (string, error) {
	if err := validate(name); err != nil {
		return "", err
	}
	if name == s.layout.RootModule {
		return s.layout.AppRoot, nil
	}
	return path.Join(s.ModulesDir(), name), nil
}

func validate(name string) error {
	switch {
	case name == "":
		return &InvalidNameError{Name: name, Reason: "name is empty"}
	case strings.TrimSpace(name) != name:
		return &InvalidNameError{Name: name, Reason: "name has leading or trailing whitespace"}
	case name == "." || name == "..":
		return &InvalidNameError{Name: name, Reason: "name is a relative path element"}
	case strings.ContainsAny(name, `/\`):
		return &InvalidNameError{Name: name, Reason: "name contains a path separator"}
	}
	return nil
}
