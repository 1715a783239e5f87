// Package config loads Orion's CLI configuration from a YAML file,
// grounded in the pack's YAML convention (gopkg.in/yaml.v3) rather than the
// teacher's hard-coded banner/prompt string literals in main.go — the
// ambient stack still needs a config layer even though the distilled spec
// never mentions one (SPEC_FULL.md §2).
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL's cosmetic settings. Only the repl subcommand
// loads it.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Banner      string `yaml:"banner"`
	Version     string `yaml:"version"`
	HistoryFile string `yaml:"history_file"`
	NoColor     bool   `yaml:"no_color"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Prompt:      "orion >>> ",
		Banner:      "Orion",
		Version:     "v0.1.0",
		HistoryFile: ".orion_history",
		NoColor:     false,
	}
}

// Load reads a YAML config file at path, falling back to Default() values
// for any field the file leaves unset. A missing file is not an error —
// the CLI works out of the box with Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
