package config

import (
	"time"

	"github.com/ajxudir/assetview/pkg/utils"
)

// Config is the root configuration structure.
type Config struct {
	Extends    []string `yaml:"extends,omitempty"`
	WorkingDir string   `yaml:"working_dir,omitempty"`

	// Data is the asset data file, relative to WorkingDir unless absolute.
	Data string `yaml:"data,omitempty"`

	// DataFormat forces the data decoder ("json" or "yaml"). Empty detects
	// the format from the file extension.
	DataFormat string `yaml:"data_format,omitempty"`

	// Format is the default output format for listings.
	Format string `yaml:"format,omitempty"`

	// Layout is the default listing layout.
	Layout string `yaml:"layout,omitempty"`

	// Collapsed lists folders that start collapsed.
	Collapsed []string `yaml:"collapsed,omitempty"`

	// Columns selects the row columns by key or header. Empty keeps the
	// default column configuration.
	Columns []string `yaml:"columns,omitempty"`

	// HideEmpty drops row columns that hold no value on any shown item.
	HideEmpty bool `yaml:"hide_empty,omitempty"`

	// DebounceMS is the quiet period in milliseconds before watch re-renders.
	DebounceMS int `yaml:"debounce_ms,omitempty"`

	Security *SecurityCfg `yaml:"security,omitempty"`

	// isRootConfig is set to true only for the root config file (not imported configs).
	// Security settings can only be enabled from the root config.
	isRootConfig bool `yaml:"-"`
}

// SecurityCfg holds security-related configuration options.
// These settings can ONLY be enabled from the root config file, not from imported configs.
type SecurityCfg struct {
	// AllowPathTraversal permits the use of ".." in extends paths.
	// Default: false (paths with ".." are rejected).
	AllowPathTraversal bool `yaml:"allow_path_traversal,omitempty"`

	// AllowAbsolutePaths permits absolute paths in extends.
	// Default: false (only relative paths are allowed).
	AllowAbsolutePaths bool `yaml:"allow_absolute_paths,omitempty"`

	// MaxConfigFileSize overrides the default 10MB limit for config files (in bytes).
	MaxConfigFileSize int64 `yaml:"max_config_file_size,omitempty"`

	// MaxDataFileSize overrides the default 10MB limit for asset data files (in bytes).
	MaxDataFileSize int64 `yaml:"max_data_file_size,omitempty"`
}

// DefaultMaxConfigFileSize is the default maximum config file size (10MB).
const DefaultMaxConfigFileSize = 10 * 1024 * 1024

// DefaultMaxDataFileSize is the default maximum asset data file size (10MB).
const DefaultMaxDataFileSize = 10 * 1024 * 1024

// DefaultDebounce is the quiet period watch waits for after a change.
const DefaultDebounce = 200 * time.Millisecond

// DefaultDataFile is the data file used when no config names one.
const DefaultDataFile = "assets.json"

// IsRootConfig returns true if this is the root configuration (not an imported config).
//
// Returns:
//   - bool: true if this is the root config, false otherwise
func (c *Config) IsRootConfig() bool {
	return c.isRootConfig
}

// SetRootConfig marks this config as the root config.
//
// Parameters:
//   - isRoot: true to mark as root config, false otherwise
func (c *Config) SetRootConfig(isRoot bool) {
	c.isRootConfig = isRoot
}

// GetMaxConfigFileSize returns the configured max config file size or the default.
//
// Returns:
//   - int64: maximum allowed config file size in bytes
func (c *Config) GetMaxConfigFileSize() int64 {
	if c.Security != nil && c.Security.MaxConfigFileSize > 0 {
		return c.Security.MaxConfigFileSize
	}
	return DefaultMaxConfigFileSize
}

// GetMaxDataFileSize returns the configured max data file size or the default.
//
// Returns:
//   - int64: maximum allowed data file size in bytes
func (c *Config) GetMaxDataFileSize() int64 {
	if c.Security != nil && c.Security.MaxDataFileSize > 0 {
		return c.Security.MaxDataFileSize
	}
	return DefaultMaxDataFileSize
}

// GetDebounce returns the watch debounce period.
//
// Returns:
//   - time.Duration: DebounceMS as a duration, or DefaultDebounce when unset
func (c *Config) GetDebounce() time.Duration {
	if c.DebounceMS > 0 {
		return time.Duration(c.DebounceMS) * time.Millisecond
	}
	return DefaultDebounce
}

// DataPath returns the data file path resolved against WorkingDir.
//
// Returns:
//   - string: Absolute or working-dir-relative data file path
//
// Example:
//
//	cfg := &config.Config{WorkingDir: "/srv/catalogue", Data: "assets.yml"}
//	cfg.DataPath() // "/srv/catalogue/assets.yml"
func (c *Config) DataPath() string {
	data := c.Data
	if data == "" {
		data = DefaultDataFile
	}
	return utils.ResolvePath(c.WorkingDir, data)
}

// AllowsPathTraversal returns true if path traversal is allowed in extends.
//
// Returns:
//   - bool: true if path traversal is allowed, false otherwise
func (c *Config) AllowsPathTraversal() bool {
	return c.Security != nil && c.Security.AllowPathTraversal
}

// AllowsAbsolutePaths returns true if absolute paths are allowed in extends.
//
// Returns:
//   - bool: true if absolute paths are allowed, false otherwise
func (c *Config) AllowsAbsolutePaths() bool {
	return c.Security != nil && c.Security.AllowAbsolutePaths
}
