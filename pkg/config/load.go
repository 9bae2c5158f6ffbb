// Package config handles configuration loading, validation, and merging for assetview.
// It supports YAML-based configuration files with inheritance (extends) on top of
// the embedded defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajxudir/assetview/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".assetview.yml"

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that specific config file.
// Otherwise, it looks for .assetview.yml in the working directory.
// Either file is layered on top of the built-in defaults, so fields it
// leaves unset keep their default values. Supports further inheritance via
// the extends mechanism.
//
// Parameters:
//   - configPath: path to the config file, or empty to search workDir
//   - workDir: working directory the data path is resolved against
//
// Returns:
//   - *Config: the loaded and merged configuration
//   - error: any error encountered during loading or validation
func LoadConfig(configPath, workDir string) (*Config, error) {
	cfg := loadDefaultConfig()
	var extended []string

	path := configPath
	if path == "" {
		localConfig := filepath.Join(workDir, FileName)
		if _, err := os.Stat(localConfig); err == nil {
			verbose.Infof("Found local config: %s", localConfig)
			path = localConfig
		}
	} else {
		verbose.Infof("Loading config from: %s", configPath)
	}

	if path != "" {
		loaded, err := loadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		loaded.SetRootConfig(true)
		extended = loaded.Extends

		loaded, err = processExtendsSecure(loaded, filepath.Dir(path), loaded)
		if err != nil {
			return nil, fmt.Errorf("failed to process extends: %w", err)
		}
		cfg = mergeConfigs(cfg, loaded)
		verbose.ConfigLoaded(path, extended)

		// A config file's data path is relative to the file unless the
		// caller pins a working directory.
		if workDir == "" {
			workDir = filepath.Dir(path)
		}
	} else {
		verbose.Info("Using built-in default configuration")
	}
	cfg.SetRootConfig(true)

	if workDir != "" {
		cfg.WorkingDir = workDir
	} else if cfg.WorkingDir == "" {
		cfg.WorkingDir = "."
	}

	if result := cfg.Validate(); result.HasErrors() {
		return nil, result.err()
	}

	return cfg, nil
}

// loadConfigFileWithLimit loads a config file with a configurable size limit.
//
// Parameters:
//   - path: path to the config file
//   - maxSize: maximum allowed file size in bytes
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if file is too large, not found, or has invalid YAML
func loadConfigFileWithLimit(path string, maxSize int64) (*Config, error) {
	data, err := readLimited(path, maxSize)
	if err != nil {
		return nil, err
	}
	if result := ValidateConfigFile(data); result.HasErrors() {
		return nil, result.err()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// readLimited reads a file after checking its size against maxSize.
func readLimited(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)\n\n"+
			"💡 To increase this limit, add to your root config:\n"+
			"   security:\n"+
			"     max_config_file_size: %d  # or larger value in bytes",
			info.Size(), maxSize, info.Size()*2)
	}
	return os.ReadFile(path)
}

// loadConfigFile loads a config file with the default size limit.
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if file cannot be loaded or parsed
func loadConfigFile(path string) (*Config, error) {
	return loadConfigFileWithLimit(path, DefaultMaxConfigFileSize)
}

// processExtendsSecure processes extends with security policy enforcement from root config.
//
// Parameters:
//   - cfg: the configuration to process
//   - baseDir: base directory for resolving relative paths
//   - rootCfg: the root configuration containing security settings
//
// Returns:
//   - *Config: the merged configuration after processing extends
//   - error: error if security policies are violated or extends chain is invalid
func processExtendsSecure(cfg *Config, baseDir string, rootCfg *Config) (*Config, error) {
	return processExtendsWithStack(cfg, baseDir, make(map[string]bool), rootCfg)
}

// validateExtendPath checks if an extend path is allowed based on security settings.
//
// Path traversal (..) and absolute paths are blocked unless the root config
// enables them.
//
// Parameters:
//   - extend: the extend path to validate
//   - rootCfg: the root configuration containing security settings
//
// Returns:
//   - error: error if path violates security policy, nil if allowed
func validateExtendPath(extend string, rootCfg *Config) error {
	if strings.Contains(extend, "..") && !rootCfg.AllowsPathTraversal() {
		return fmt.Errorf("path traversal not allowed in extends: '%s' - "+
			"to allow, add security.allow_path_traversal: true to your root config",
			extend)
	}

	if filepath.IsAbs(extend) && !rootCfg.AllowsAbsolutePaths() {
		return fmt.Errorf("absolute paths not allowed in extends: '%s' - "+
			"to allow, add security.allow_absolute_paths: true to your root config",
			extend)
	}

	return nil
}

// processExtendsWithStack processes extends with cycle detection and security enforcement.
//
// The extends chain is merged in order, then cfg itself is merged on top.
// The name "default" refers to the embedded defaults.
//
// Parameters:
//   - cfg: the configuration to process
//   - baseDir: base directory for resolving relative paths
//   - stack: configs on the current extends path, for cycle detection
//   - rootCfg: the root configuration containing security settings
//
// Returns:
//   - *Config: the merged configuration after processing all extends
//   - error: error if cycle detected, security policy violated, or file cannot be loaded
func processExtendsWithStack(cfg *Config, baseDir string, stack map[string]bool, rootCfg *Config) (*Config, error) {
	if len(cfg.Extends) == 0 {
		return cfg, nil
	}

	base := &Config{}
	maxFileSize := rootCfg.GetMaxConfigFileSize()

	for _, extend := range cfg.Extends {
		var (
			extendCfg *Config
			extendKey string
		)

		if extend == "default" {
			extendKey = "__default__"
			if stack[extendKey] {
				return nil, fmt.Errorf("cyclic extends detected at %s", extend)
			}
			stack[extendKey] = true
			extendCfg = loadDefaultConfig()
		} else {
			if err := validateExtendPath(extend, rootCfg); err != nil {
				return nil, err
			}

			extendPath := extend
			if !filepath.IsAbs(extendPath) {
				extendPath = filepath.Join(baseDir, extend)
			}

			absPath, err := filepath.Abs(extendPath)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve extend path '%s': %w", extend, err)
			}
			if _, err := os.Stat(absPath); err != nil {
				return nil, fmt.Errorf("failed to resolve extend '%s': %w", extend, err)
			}

			extendKey = absPath
			if stack[extendKey] {
				return nil, fmt.Errorf("cyclic extends detected at %s", extendPath)
			}
			stack[extendKey] = true

			loaded, err := loadConfigFileWithLimit(extendPath, maxFileSize)
			if err != nil {
				return nil, fmt.Errorf("failed to load extend '%s': %w", extend, err)
			}

			// Imported configs never relax the root's security policy.
			if !loaded.IsRootConfig() {
				loaded.Security = nil
			}

			loaded, err = processExtendsWithStack(loaded, filepath.Dir(extendPath), stack, rootCfg)
			if err != nil {
				return nil, err
			}
			extendCfg = loaded
		}

		base = mergeConfigs(base, extendCfg)
		verbose.Printf("Extended from %q\n", extend)
		delete(stack, extendKey)
	}

	result := mergeConfigs(base, cfg)
	result.Extends = nil
	return result, nil
}
