package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetDefaultConfig tests the behavior of GetDefaultConfig.
//
// It verifies:
//   - Default config YAML names the data file and layout
func TestGetDefaultConfig(t *testing.T) {
	yml := GetDefaultConfig()
	assert.Contains(t, yml, "data: assets.json")
	assert.Contains(t, yml, "layout: standard")
}

// TestGetTemplateConfig tests the behavior of GetTemplateConfig.
//
// It verifies:
//   - Template extends the defaults
//   - Template passes strict validation
func TestGetTemplateConfig(t *testing.T) {
	yml := GetTemplateConfig()
	assert.Contains(t, yml, "extends: [default]")

	result := ValidateConfigFile([]byte(yml))
	assert.False(t, result.HasErrors(), result.ErrorMessages())
}

// TestLoadDefaultConfig tests the behavior of loadDefaultConfig.
//
// It verifies:
//   - Embedded defaults decode into the expected values
//   - The defaults pass validation
//   - Invalid or misspelled embedded YAML falls back to the built-in values
func TestLoadDefaultConfig(t *testing.T) {
	cfg := loadDefaultConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "assets.json", cfg.Data)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, "standard", cfg.Layout)
	assert.Equal(t, 200, cfg.DebounceMS)
	require.NotNil(t, cfg.Security)
	assert.Equal(t, int64(DefaultMaxDataFileSize), cfg.Security.MaxDataFileSize)
	assert.False(t, cfg.Validate().HasErrors())

	for name, yml := range map[string]string{
		"invalid yaml": "invalid: [",
		"unknown key":  "data: other.json\nlayuot: grid\n",
	} {
		t.Run(name, func(t *testing.T) {
			original := defaultConfigYAML
			defaultConfigYAML = yml
			defer func() { defaultConfigYAML = original }()

			cfg := loadDefaultConfig()
			assert.Equal(t, builtinDefaults(), cfg)
			assert.Equal(t, DefaultDataFile, cfg.Data)
			assert.Nil(t, cfg.Security)
		})
	}

	t.Run("fresh copy", func(t *testing.T) {
		a, b := loadDefaultConfig(), loadDefaultConfig()
		a.Collapsed = append(a.Collapsed, "Archive")
		assert.Empty(t, b.Collapsed)
	})
}
