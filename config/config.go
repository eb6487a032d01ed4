// Package config loads the demo programs' configuration from TOML or YAML
// files. A missing file is not an error; callers always start from
// Default and overlay whatever the file provides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the demo configuration tree.
type Config struct {
	Readline ReadlineConfig `toml:"readline" yaml:"readline"`
	History  HistoryConfig  `toml:"history" yaml:"history"`
	Labels   LabelsConfig   `toml:"labels" yaml:"labels"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// ReadlineConfig configures the line editor.
type ReadlineConfig struct {
	// Multiline enables soft-wrapped multiline editing.
	Multiline bool `toml:"multiline" yaml:"multiline"`
	// CompletionLimit caps completion enumeration; zero keeps the
	// widget default.
	CompletionLimit int `toml:"completion_limit" yaml:"completion_limit"`
	// CompletionScript is an optional Lua completion script path.
	CompletionScript string `toml:"completion_script" yaml:"completion_script"`
}

// HistoryConfig configures history persistence.
type HistoryConfig struct {
	// File is the history file path; empty disables persistence.
	File string `toml:"file" yaml:"file"`
	// Limit caps the number of retained entries; zero keeps the store
	// default.
	Limit int `toml:"limit" yaml:"limit"`
	// Watch reloads the history when another process rewrites the file.
	Watch bool `toml:"watch" yaml:"watch"`
}

// LabelsConfig maps key names (tcell notation, for example "Ctrl+L") to
// input labels announced ahead of the raw key.
type LabelsConfig map[string]string

// LogConfig configures diagnostics.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Labels: LabelsConfig{
			"Ctrl+L": "clear",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the file at path over the defaults. The format follows the
// extension: .toml, .yaml, or .yml. A missing file returns the defaults
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config: unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		return Default(), fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
