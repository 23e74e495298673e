package convention

import "strings"

// defaultExtension is the source-file extension used when none is configured.
const defaultExtension = "ts"

// Convention describes how a module file is recognised among its siblings.
// A module file is named <stem>.module.<Extension>.
type Convention struct {
	Extension string
}

// Default returns the TypeScript convention (".module.ts").
func Default() Convention {
	return Convention{Extension: defaultExtension}
}

// Suffix returns the file name suffix that marks a module file.
func (c Convention) Suffix() string {
	ext := strings.TrimPrefix(c.Extension, ".")
	if ext == "" {
		ext = defaultExtension
	}
	return ".module." + ext
}

// IsModuleFile reports whether the given entry name is a module file.
func (c Convention) IsModuleFile(name string) bool {
	suffix := c.Suffix()
	return len(name) > len(suffix) && strings.HasSuffix(name, suffix)
}

// FileName returns the conventional module file name for the given module.
func (c Convention) FileName(moduleName string) string {
	return moduleName + c.Suffix()
}

// Stem returns the module name encoded in a module file name, or "" when
// name is not a module file.
func (c Convention) Stem(name string) string {
	if !c.IsModuleFile(name) {
		return ""
	}
	return strings.TrimSuffix(name, c.Suffix())
}

// First returns the first entry, in the given order, that is a module file.
func (c Convention) First(entries []string) (string, bool) {
	for _, e := range entries {
		if c.IsModuleFile(e) {
			return e, true
		}
	}
	return "", false
}
