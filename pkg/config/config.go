// Package config loads the optional user configuration file.
//
// The file lives at $XDG_CONFIG_HOME/arcplot/config.toml (falling back to
// ~/.config/arcplot/config.toml) and can set the default palette and output
// formats as well as define additional palettes:
//
//	palette = "plasma"
//	formats = ["svg", "png"]
//
//	[palettes]
//	lab = ["#1b9e77", "#d95f02", "#7570b3"]
//
// A missing file is not an error; a malformed one is.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcplot/arcplot/pkg/errors"
	"github.com/arcplot/arcplot/pkg/render"
)

const appName = "arcplot"

// Config holds user-level defaults and palette definitions.
type Config struct {
	Palette  string              `toml:"palette"`
	Formats  []string            `toml:"formats"`
	Palettes map[string][]string `toml:"palettes"`
}

// Load reads and applies the config file at path. Custom palettes are
// registered with the render package as a side effect, so flag parsing can
// validate against them.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	for name, stops := range cfg.Palettes {
		if err := render.RegisterPalette(name, stops); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
		}
	}
	if cfg.Palette != "" {
		if _, err := render.LookupPalette(cfg.Palette); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
		}
	}
	return cfg, nil
}

// LoadDefault loads the config from the standard location, if present.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, nil // no home directory, run with defaults
	}
	return Load(path)
}

// DefaultPath returns the config file location using the XDG convention.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
