package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/utils"
)

// Config is the on-disk configuration. Command-line flags take precedence
// over every field.
type Config struct {
	Store        string `yaml:"store"`
	Backend      string `yaml:"backend"`
	Timezone     string `yaml:"timezone,omitempty"`
	DefaultTheme string `yaml:"default_theme,omitempty"`
	Debug        bool   `yaml:"debug,omitempty"`
}

// Flags carries the values given on the command line. Empty strings mean
// "not set".
type Flags struct {
	Store    string
	Backend  string
	Timezone string
	Debug    bool
}

var backends = []string{
	constants.BackendAuto,
	constants.BackendSQLite,
	constants.BackendDiskv,
	constants.BackendJSON,
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store:        constants.DefaultStorePath,
		Backend:      constants.BackendAuto,
		DefaultTheme: constants.DefaultTheme,
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	p, err := Expand(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", p, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", p, err)
	}
	return cfg, nil
}

// Write stores cfg at path, creating the parent directory.
func Write(path string, cfg Config) error {
	p, err := Expand(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(p, data, 0600)
}

// Merge applies the set flags over cfg.
func (c Config) Merge(f Flags) Config {
	if f.Store != "" {
		c.Store = f.Store
	}
	if f.Backend != "" {
		c.Backend = f.Backend
	}
	if f.Timezone != "" {
		c.Timezone = f.Timezone
	}
	if f.Debug {
		c.Debug = true
	}
	return c
}

// Validate checks the enumerated fields and the timezone name.
func (c Config) Validate() error {
	if c.Store == "" {
		return fmt.Errorf("store path must not be empty")
	}
	if !slices.Contains(backends, c.Backend) {
		return fmt.Errorf("unknown backend %q (want one of %v)", c.Backend, backends)
	}
	if c.DefaultTheme != "" && !slices.Contains(constants.Themes, c.DefaultTheme) {
		return fmt.Errorf("unknown theme %q (want one of %v)", c.DefaultTheme, constants.Themes)
	}
	if err := utils.ValidateTimezone(c.Timezone); err != nil {
		return err
	}
	return nil
}

// StorePath returns the store path with a leading ~ expanded.
func (c Config) StorePath() (string, error) {
	return Expand(c.Store)
}

// Dir returns the directory holding logs and backups: the directory that
// contains the store.
func (c Config) Dir() (string, error) {
	p, err := c.StorePath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}

// Expand resolves a leading ~ to the user's home directory.
func Expand(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand path %q: %w", path, err)
	}
	return p, nil
}
