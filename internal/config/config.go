// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format.
type Format int

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota

	// FormatYAML is chosen for .yaml and .yml files.
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the complete application configuration.
type Config struct {
	Display DisplayConfig `toml:"display" yaml:"display"`
	Random  RandomConfig  `toml:"random" yaml:"random"`
	Solver  SolverConfig  `toml:"solver" yaml:"solver"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Session SessionConfig `toml:"session" yaml:"session"`
}

// DisplayConfig controls how matrices and scalars are printed.
type DisplayConfig struct {
	Precision int `toml:"precision" yaml:"precision"`
}

// RandomConfig controls the random matrix source.
// Each element is a uniform integer in [Min, Max] plus a uniform fraction in [0, 1).
type RandomConfig struct {
	Min  int    `toml:"min" yaml:"min"`
	Max  int    `toml:"max" yaml:"max"`
	Seed uint64 `toml:"seed" yaml:"seed"` // 0 → time-based
}

// SolverConfig holds Cramer's rule settings.
type SolverConfig struct {
	Workers int `toml:"workers" yaml:"workers"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// SessionConfig holds interactive session settings.
type SessionConfig struct {
	TUI bool `toml:"tui" yaml:"tui"`
}

// Defaults.
const (
	DefaultPrecision = 3
	DefaultRandomMin = -20
	DefaultRandomMax = 20
	DefaultWorkers   = 1
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Precision: DefaultPrecision},
		Random:  RandomConfig{Min: DefaultRandomMin, Max: DefaultRandomMax},
		Solver:  SolverConfig{Workers: DefaultWorkers},
		Log:     LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Load reads path on top of Default() and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := decode(content, DetectFormat(path), cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes content in the given format on top of Default() and validates it.
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()
	if err := decode(content, format, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", format, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// DetectFormat determines the configuration format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// decode overlays content onto cfg; absent keys keep their current values.
func decode(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(content, cfg)
	default:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}

		return nil
	}
}
