// Package utils holds small string, path and terminal-width helpers shared
// by the filtering, display and command packages.
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// FilterAll is the flag value that disables a list filter.
const FilterAll = "all"

// TrimAndSplit splits a string by separator and trims whitespace from each part.
//
// It performs the following operations:
//   - Step 1: Returns empty slice if input is empty or FilterAll
//   - Step 2: Splits the string by the separator
//   - Step 3: Trims whitespace from each part
//   - Step 4: Filters out empty strings after trimming
//
// Parameters:
//   - s: The string to split and trim
//   - sep: The separator to split on
//
// Returns:
//   - []string: Slice of trimmed non-empty strings; empty slice if input is "" or "all"
func TrimAndSplit(s string, sep string) []string {
	if s == "" || s == FilterAll {
		return []string{}
	}

	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// SplitAll splits every value with TrimAndSplit and concatenates the parts.
// Repeated flags such as --expand a1 --expand a2,a3 use it.
//
// Parameters:
//   - values: Raw values
//   - sep: The separator to split on
//
// Returns:
//   - []string: All non-empty parts in order
func SplitAll(values []string, sep string) []string {
	var out []string
	for _, v := range values {
		out = append(out, TrimAndSplit(v, sep)...)
	}
	return out
}

// Contains checks if a string slice contains an item.
//
// Performs case-sensitive exact match comparison.
//
// Parameters:
//   - slice: The slice of strings to search
//   - item: The string to search for
//
// Returns:
//   - bool: true if item is found in slice, false otherwise
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// ContainsIgnoreCase checks if a string slice contains an item (case-insensitive).
//
// Parameters:
//   - slice: The slice of strings to search
//   - item: The string to search for (case-insensitive)
//
// Returns:
//   - bool: true if item is found in slice (case-insensitive), false otherwise
func ContainsIgnoreCase(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}

// ResolvePath resolves path against baseDir unless it is absolute. A leading
// "~/" expands to the user's home directory.
//
// Parameters:
//   - baseDir: Directory relative paths are resolved against
//   - path: Path from a flag or config file
//
// Returns:
//   - string: Cleaned resolved path, or "" when path is empty
//
// Example:
//
//	utils.ResolvePath("/work/project", "data/assets.json") // "/work/project/data/assets.json"
func ResolvePath(baseDir, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if filepath.IsAbs(path) || baseDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
