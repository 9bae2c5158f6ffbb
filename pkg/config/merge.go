package config

import "github.com/ajxudir/assetview/pkg/verbose"

// mergeConfigs merges two configurations with custom taking precedence.
//
// Scalar fields in custom override base when set. List fields replace the
// base list when custom sets them (an explicit empty list clears it).
// Security settings merge field by field.
//
// Parameters:
//   - base: the base configuration
//   - custom: the custom configuration that overrides base
//
// Returns:
//   - *Config: the merged configuration
func mergeConfigs(base, custom *Config) *Config {
	if custom == nil {
		return base
	}

	merged := *base
	merged.Extends = custom.Extends
	merged.WorkingDir = mergeString(base.WorkingDir, custom.WorkingDir)
	merged.Data = mergeString(base.Data, custom.Data)
	merged.DataFormat = mergeString(base.DataFormat, custom.DataFormat)
	merged.Format = mergeString(base.Format, custom.Format)
	merged.Layout = mergeString(base.Layout, custom.Layout)
	merged.Collapsed = mergeStringLists(base.Collapsed, custom.Collapsed)
	merged.Columns = mergeStringLists(base.Columns, custom.Columns)
	merged.HideEmpty = base.HideEmpty || custom.HideEmpty
	if custom.DebounceMS != 0 {
		merged.DebounceMS = custom.DebounceMS
	}
	merged.Security = mergeSecurity(base.Security, custom.Security)

	if custom.Data != "" && custom.Data != base.Data {
		verbose.Printf("Config merge: data file %q overrides %q\n", custom.Data, base.Data)
	}

	return &merged
}

// mergeString returns override when it is set, otherwise base.
func mergeString(base, override string) string {
	if override != "" {
		return override
	}
	return base
}

// mergeStringLists overwrites base list with override.
//
// When extending configs, list fields are completely overwritten by the extending
// config to allow full customization. If override is nil, base is returned unchanged.
// If override is an empty slice, it clears the list.
//
// Parameters:
//   - base: the base string list
//   - override: the override string list (replaces base when not nil)
//
// Returns:
//   - []string: override if not nil, otherwise base
func mergeStringLists(base, override []string) []string {
	if override == nil {
		return base
	}
	return override
}

// mergeSecurity merges security settings field by field.
//
// Parameters:
//   - base: the base security settings (may be nil)
//   - override: the override security settings (may be nil)
//
// Returns:
//   - *SecurityCfg: the merged settings, or nil when both are nil
func mergeSecurity(base, override *SecurityCfg) *SecurityCfg {
	if override == nil {
		return base
	}
	if base == nil {
		cp := *override
		return &cp
	}

	merged := *base
	merged.AllowPathTraversal = base.AllowPathTraversal || override.AllowPathTraversal
	merged.AllowAbsolutePaths = base.AllowAbsolutePaths || override.AllowAbsolutePaths
	if override.MaxConfigFileSize > 0 {
		merged.MaxConfigFileSize = override.MaxConfigFileSize
	}
	if override.MaxDataFileSize > 0 {
		merged.MaxDataFileSize = override.MaxDataFileSize
	}
	return &merged
}
