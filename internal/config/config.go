// Package config loads editor configuration from TOML or YAML files with
// environment overrides, and can watch the file for live reload.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files with an unsupported
// extension.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Config holds all editor settings.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Scroll ScrollConfig `toml:"scroll" yaml:"scroll"`
	Theme  string       `toml:"theme" yaml:"theme"`
}

// EditorConfig holds text rendering settings.
type EditorConfig struct {
	// FontSize is the font size in pixels.
	FontSize float64 `toml:"font_size" yaml:"font_size"`

	// LineHeight is the line height as a multiple of the font size.
	LineHeight float64 `toml:"line_height" yaml:"line_height"`
}

// ScrollConfig holds wheel handling settings.
type ScrollConfig struct {
	// SpeedFactor multiplies wheel deltas while the speed modifier is
	// held.
	SpeedFactor float64 `toml:"speed_factor" yaml:"speed_factor"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			FontSize:   17,
			LineHeight: 1.3,
		},
		Scroll: ScrollConfig{
			SpeedFactor: 4,
		},
		Theme: "gruvbox-dark",
	}
}

// Load reads the config file at path, applies environment overrides and
// validates the result. A missing file is not an error; defaults are
// used. An empty path searches the standard location.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = defaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Fall through to env overrides.
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := unmarshal(path, data, cfg); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

func unmarshal(path string, data []byte, cfg *Config) error {
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return nil
}

// defaultPath returns the first config file present in the standard
// location, or "" when none exists.
func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		p := filepath.Join(dir, "verso", name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyEnv overrides settings from VERSO_* environment variables.
func (c *Config) applyEnv() {
	if v, ok := envFloat("VERSO_FONT_SIZE"); ok {
		c.Editor.FontSize = v
	}
	if v, ok := envFloat("VERSO_LINE_HEIGHT"); ok {
		c.Editor.LineHeight = v
	}
	if v, ok := envFloat("VERSO_SCROLL_SPEED"); ok {
		c.Scroll.SpeedFactor = v
	}
	if v := os.Getenv("VERSO_THEME"); v != "" {
		c.Theme = v
	}
}

func envFloat(name string) (float64, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// normalize replaces out-of-range values with defaults.
func (c *Config) normalize() {
	def := Default()
	if c.Editor.FontSize <= 0 {
		c.Editor.FontSize = def.Editor.FontSize
	}
	if c.Editor.LineHeight <= 0 {
		c.Editor.LineHeight = def.Editor.LineHeight
	}
	if c.Scroll.SpeedFactor <= 0 {
		c.Scroll.SpeedFactor = def.Scroll.SpeedFactor
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
}
