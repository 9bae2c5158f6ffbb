package config

import (
	"bytes"
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/assetview/pkg/verbose"
)

//go:embed default.yml
var defaultConfigYAML string

//go:embed template.yml
var templateConfigYAML string

// builtinDefaults mirrors default.yml and is only used when the embedded
// file cannot be decoded.
func builtinDefaults() *Config {
	return &Config{
		Data:       DefaultDataFile,
		Format:     "table",
		Layout:     "standard",
		DebounceMS: int(DefaultDebounce.Milliseconds()),
	}
}

// loadDefaultConfig decodes the embedded defaults into a fresh Config.
//
// Unknown keys in default.yml are rejected so a typo cannot silently drop a
// default. On any decode failure the built-in values are returned instead.
//
// Returns:
//   - *Config: a new default configuration owned by the caller
func loadDefaultConfig() *Config {
	dec := yaml.NewDecoder(bytes.NewReader([]byte(defaultConfigYAML)))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		verbose.Printf("Embedded defaults unreadable, using built-in values: %v\n", err)
		return builtinDefaults()
	}
	return &cfg
}

// GetDefaultConfig returns the embedded default configuration YAML, as
// printed by `assetview config --show-defaults`.
func GetDefaultConfig() string {
	return defaultConfigYAML
}

// GetTemplateConfig returns the starter file written by
// `assetview config --init`.
func GetTemplateConfig() string {
	return templateConfigYAML
}
