package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadConfig tests the behavior of LoadConfig with various scenarios.
//
// It verifies:
//   - Built-in defaults are used when no config file exists
//   - A local .assetview.yml is found in the working directory
//   - An explicit config path is layered on the defaults
//   - A missing explicit config path is an error
//   - Invalid values are rejected
func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfg, err := LoadConfig("", tmpDir)
		require.NoError(t, err)
		assert.Equal(t, tmpDir, cfg.WorkingDir)
		assert.Equal(t, "assets.json", cfg.Data)
		assert.Equal(t, "standard", cfg.Layout)
		assert.True(t, cfg.IsRootConfig())
		assert.Equal(t, filepath.Join(tmpDir, "assets.json"), cfg.DataPath())
	})

	t.Run("local config", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, FileName, "data: catalogue.yml\nlayout: grid\ncollapsed: [Archive]\n")

		cfg, err := LoadConfig("", tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "catalogue.yml", cfg.Data)
		assert.Equal(t, "grid", cfg.Layout)
		assert.Equal(t, []string{"Archive"}, cfg.Collapsed)
		// Unset fields keep their defaults.
		assert.Equal(t, "table", cfg.Format)
		assert.Equal(t, 200, cfg.DebounceMS)
	})

	t.Run("explicit path resolves data next to the file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := writeConfig(t, tmpDir, "conf/view.yml", "data: ../data/assets.yml\n")

		cfg, err := LoadConfig(path, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "data", "assets.yml"), cfg.DataPath())
	})

	t.Run("missing explicit path", func(t *testing.T) {
		cfg, err := LoadConfig("/nonexistent/config.yml", t.TempDir())
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to load config")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, FileName, "layout: [\n")
		_, err := LoadConfig("", tmpDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Configuration validation failed")
		assert.Contains(t, err.Error(), "YAML syntax error")
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("invalid layout", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, FileName, "layout: mosaic\n")
		_, err := LoadConfig("", tmpDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown layout 'mosaic'")
	})
}

// TestLoadConfigExtends tests the extends chain.
//
// It verifies:
//   - Extended files merge under the extending file
//   - "default" refers to the embedded defaults
//   - Missing extends, cycles, traversal and absolute paths are rejected
//   - Security settings from imported files are ignored
func TestLoadConfigExtends(t *testing.T) {
	t.Run("chain", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, "shared.yml", "layout: badges\ncolumns: [name, folder]\n")
		writeConfig(t, tmpDir, FileName, "extends: [default, shared.yml]\ncolumns: [name]\n")

		cfg, err := LoadConfig("", tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "badges", cfg.Layout)
		assert.Equal(t, []string{"name"}, cfg.Columns)
		assert.Nil(t, cfg.Extends)
	})

	t.Run("missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, FileName, "extends: ['missing.yml']\n")
		cfg, err := LoadConfig("", tmpDir)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("cycle", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, "a.yml", "extends: [b.yml]\n")
		writeConfig(t, tmpDir, "b.yml", "extends: [a.yml]\n")
		_, err := LoadConfig(filepath.Join(tmpDir, "a.yml"), tmpDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cyclic extends")
	})

	t.Run("path traversal", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, "base.yml", "layout: grid\n")
		writeConfig(t, tmpDir, "sub/"+FileName, "extends: ['../base.yml']\n")

		_, err := LoadConfig("", filepath.Join(tmpDir, "sub"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "path traversal not allowed")

		writeConfig(t, tmpDir, "sub/"+FileName,
			"extends: ['../base.yml']\nsecurity:\n  allow_path_traversal: true\n")
		cfg, err := LoadConfig("", filepath.Join(tmpDir, "sub"))
		require.NoError(t, err)
		assert.Equal(t, "grid", cfg.Layout)
	})

	t.Run("absolute path", func(t *testing.T) {
		tmpDir := t.TempDir()
		base := writeConfig(t, tmpDir, "base.yml", "layout: grid\n")
		writeConfig(t, tmpDir, FileName, "extends: ['"+filepath.ToSlash(base)+"']\n")

		_, err := LoadConfig("", tmpDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "absolute paths not allowed")
	})

	t.Run("imported security ignored", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, "shared.yml", "security:\n  max_data_file_size: 1\n")
		writeConfig(t, tmpDir, FileName, "extends: [shared.yml]\n")

		cfg, err := LoadConfig("", tmpDir)
		require.NoError(t, err)
		assert.Equal(t, int64(DefaultMaxDataFileSize), cfg.GetMaxDataFileSize())
	})
}

// TestLoadConfigFileWithLimit tests the size limit check.
func TestLoadConfigFileWithLimit(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "big.yml", "data: "+strings.Repeat("x", 64)+"\n")

	_, err := loadConfigFileWithLimit(path, 16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file too large")
	assert.Contains(t, err.Error(), "max_config_file_size")

	cfg, err := loadConfigFileWithLimit(path, 1024)
	require.NoError(t, err)
	assert.Len(t, cfg.Data, 64)
}

// TestLoadConfigFileRejectsInvalid tests that extended files are validated
// before they are merged.
//
// It verifies:
//   - Valid files load
//   - Unknown fields are reported with a suggestion
//   - Missing files return the stat error
func TestLoadConfigFileRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	valid := writeConfig(t, tmpDir, "valid.yml", "data: assets.yml\nformat: json\n")
	cfg, err := loadConfigFileWithLimit(valid, DefaultMaxConfigFileSize)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)

	typo := writeConfig(t, tmpDir, "typo.yml", "collapse: [Archive]\n")
	_, err = loadConfigFileWithLimit(typo, DefaultMaxConfigFileSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field 'collapse'")
	assert.Contains(t, err.Error(), "did you mean 'collapsed'?")

	_, err = loadConfigFileWithLimit(filepath.Join(tmpDir, "missing.yml"), DefaultMaxConfigFileSize)
	assert.True(t, os.IsNotExist(err))
}
