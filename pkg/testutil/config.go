package testutil

import (
	"github.com/ajxudir/assetview/pkg/config"
)

// ConfigBuilder provides a fluent API for building test configurations.
//
// Use this builder to construct Config objects for testing purposes
// without needing to set all fields manually.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfig creates a new ConfigBuilder with default values.
//
// Initializes a builder with working directory ".", the default data file,
// table output and the standard layout.
//
// Returns:
//   - *ConfigBuilder: New builder instance ready for method chaining
func NewConfig() *ConfigBuilder {
	cfg := config.Config{
		WorkingDir: ".",
		Data:       config.DefaultDataFile,
		Format:     "table",
		Layout:     "standard",
	}
	cfg.SetRootConfig(true)
	return &ConfigBuilder{cfg: cfg}
}

// WithWorkingDir sets the working directory for the configuration.
//
// Parameters:
//   - dir: Path to the working directory
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithWorkingDir(dir string) *ConfigBuilder {
	b.cfg.WorkingDir = dir
	return b
}

// WithData sets the data file.
//
// Parameters:
//   - path: Data file path, relative to the working directory unless absolute
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithData(path string) *ConfigBuilder {
	b.cfg.Data = path
	return b
}

// WithLayout sets the listing layout.
//
// Parameters:
//   - layout: Layout name (e.g., "grid")
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithLayout(layout string) *ConfigBuilder {
	b.cfg.Layout = layout
	return b
}

// WithCollapsed sets the folders that start collapsed.
//
// Parameters:
//   - folders: Raw folder values
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithCollapsed(folders ...string) *ConfigBuilder {
	b.cfg.Collapsed = folders
	return b
}

// WithColumns sets the row columns.
//
// Parameters:
//   - columns: Column keys or headers
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithColumns(columns ...string) *ConfigBuilder {
	b.cfg.Columns = columns
	return b
}

// WithMaxDataFileSize sets the data file size limit.
//
// Parameters:
//   - size: Limit in bytes
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithMaxDataFileSize(size int64) *ConfigBuilder {
	if b.cfg.Security == nil {
		b.cfg.Security = &config.SecurityCfg{}
	}
	b.cfg.Security.MaxDataFileSize = size
	return b
}

// Build returns the built configuration.
//
// Returns a pointer to a copy of the constructed Config, so the builder can
// be reused after calling Build.
//
// Returns:
//   - *config.Config: Pointer to the built configuration
func (b *ConfigBuilder) Build() *config.Config {
	cfg := b.cfg
	return &cfg
}
