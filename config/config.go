package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/vybdev/modfind/workspace/convention"
	"github.com/vybdev/modfind/workspace/solver"
	"gopkg.in/yaml.v3"
)

// Dir is the directory, under the project root, that holds modfind files.
// Its presence marks the project root.
const Dir = ".modfind"

// Config captures project-level settings stored in .modfind/config.yaml.
//
// Example YAML:
//
//	language: ts
//	layout:
//	  appRoot: src/app
//	  modulesDir: modules
//	  rootModule: app
//	output:
//	  format: "{{path}}"
//	logging:
//	  level: info
//
// Empty fields take their default value.
type Config struct {
	Language     string `yaml:"language"`
	ModuleLayout Layout `yaml:"layout"`
	Output       Output `yaml:"output"`
	Logging      `yaml:"logging"`
}

// Layout mirrors solver.Layout in YAML form.
type Layout struct {
	AppRoot    string `yaml:"appRoot"`
	ModulesDir string `yaml:"modulesDir"`
	RootModule string `yaml:"rootModule"`
}

// Output captures how results are printed.
type Output struct {
	// Format is a mustache template rendered for every result.
	Format string `yaml:"format"`
}

// Logging captures logging-specific settings.
type Logging struct {
	Level string `yaml:"level"`
}

const (
	defaultLanguage = "ts"
	defaultFormat   = "{{path}}"
	defaultLevel    = "info"
)

// Default returns a Config populated with hard-coded defaults. It is used
// whenever .modfind/config.yaml is missing.
func Default() *Config {
	l := solver.DefaultLayout()
	return &Config{
		Language: defaultLanguage,
		ModuleLayout: Layout{
			AppRoot:    l.AppRoot,
			ModulesDir: l.ModulesDir,
			RootModule: l.RootModule,
		},
		Output:  Output{Format: defaultFormat},
		Logging: Logging{Level: defaultLevel},
	}
}

// Load reads .modfind/config.yaml located under projectRoot. When the file
// does not exist the function returns Default() with a nil error. Any other
// I/O or unmarshalling error is propagated.
func Load(projectRoot string) (*Config, error) {
	if projectRoot == "" {
		return nil, fmt.Errorf("projectRoot must not be empty")
	}
	return LoadFS(os.DirFS(projectRoot))
}

// LoadFS performs the same operation as Load but works directly on an fs.FS.
func LoadFS(fsys fs.FS) (*Config, error) {
	const relPath = Dir + "/config.yaml"

	data, err := fs.ReadFile(fsys, relPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", relPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", relPath, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Language == "" {
		c.Language = d.Language
	}
	if c.ModuleLayout.AppRoot == "" {
		c.ModuleLayout.AppRoot = d.ModuleLayout.AppRoot
	}
	if c.ModuleLayout.ModulesDir == "" {
		c.ModuleLayout.ModulesDir = d.ModuleLayout.ModulesDir
	}
	if c.ModuleLayout.RootModule == "" {
		c.ModuleLayout.RootModule = d.ModuleLayout.RootModule
	}
	if c.Output.Format == "" {
		c.Output.Format = d.Output.Format
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
}

// Layout returns the module layout described by c.
func (c *Config) Layout() solver.Layout {
	return solver.Layout{
		AppRoot:    c.ModuleLayout.AppRoot,
		ModulesDir: c.ModuleLayout.ModulesDir,
		RootModule: c.ModuleLayout.RootModule,
	}
}

// Convention returns the module file naming convention described by c.
func (c *Config) Convention() convention.Convention {
	return convention.Convention{Extension: c.Language}
}
