package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dotcube/internal/params"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/dotcube.yaml"

// Prefs holds viewer preferences (debug overlays, grid, UI assets) and the parameters the
// lattice starts with. "cmd save" writes the current state back.
type Prefs struct {
	ShowFPS      bool                    `yaml:"show_fps"`
	ShowMemAlloc bool                    `yaml:"show_memalloc"`
	GridVisible  bool                    `yaml:"grid_visible"`
	Font         string                  `yaml:"font,omitempty"`
	Stylesheet   string                  `yaml:"stylesheet,omitempty"`
	Params       params.RenderParameters `yaml:"params"`
}

// Default returns default preferences (overlays off, grid off, default parameters).
func Default() Prefs {
	return Prefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  false,
		Params:       params.Default(),
	}
}

// Load reads preferences from path. A missing file yields Default() and no error.
// Fields absent from the file keep their defaults. On a parse error Load returns Default() and
// the error. Parameters are clamped to their slider bounds.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("engineconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: parse %s: %w", path, err)
	}
	p.Params = p.Params.Clamp()
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	return nil
}
