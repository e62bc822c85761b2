// Package project locates and loads borshgen.toml, the per-project
// description of which schema worlds to generate.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigName is the project file the CLI looks for.
const ConfigName = "borshgen.toml"

// World selects one schema file and the name its output is written
// under. Schema paths are relative to the project root.
type World struct {
	Name   string `toml:"name"`
	Schema string `toml:"schema"`
}

// Config is the decoded project file.
type Config struct {
	OutDir string  `toml:"out_dir"`
	Worlds []World `toml:"worlds"`
}

// Load reads and decodes the project file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: read %s: %w", path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("project: parse %s: %w", path, err)
	}
	for i, w := range cfg.Worlds {
		if w.Name == "" {
			return nil, fmt.Errorf("project: %s: worlds[%d] has no name", path, i)
		}
		if w.Schema == "" {
			return nil, fmt.Errorf("project: %s: world %q has no schema file", path, w.Name)
		}
	}
	return &cfg, nil
}

// FindRoot walks up from startDir to the first directory containing
// the project file.
func FindRoot(startDir string) (string, error) {
	current := startDir
	for {
		if _, err := os.Stat(filepath.Join(current, ConfigName)); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", fmt.Errorf("project: no %s found from %s upwards", ConfigName, startDir)
}
