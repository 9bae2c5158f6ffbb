package filtering

import (
	"errors"
	"fmt"

	"github.com/ajxudir/assetview/pkg/assets"
	"github.com/ajxudir/assetview/pkg/utils"
	"github.com/ajxudir/assetview/pkg/verbose"
)

// ErrInvalidPattern reports a malformed folder glob.
var ErrInvalidPattern = errors.New("invalid folder pattern")

func invalidPattern(pattern string) error {
	return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
}

// FolderPatterns holds include and exclude matchers for folder filtering.
type FolderPatterns struct {
	Include []Matcher
	Exclude []Matcher
}

// ParseFolderPatterns parses a comma-separated filter string into include and
// exclude folder matchers. Patterns starting with ! are exclusions. Matching
// is case-insensitive; patterns containing glob characters use doublestar
// syntax.
//
// Parameters:
//   - filter: Comma-separated patterns (e.g., "clients/*,!clients/archive")
//
// Returns:
//   - FolderPatterns: Parsed include and exclude matchers
//   - error: ErrInvalidPattern (wrapped) for a malformed glob
//
// Example:
//
//	patterns, _ := filtering.ParseFolderPatterns("clients/**,Vendors,!*/archive")
//	// 2 include matchers, 1 exclude matcher
func ParseFolderPatterns(filter string) (FolderPatterns, error) {
	var patterns FolderPatterns
	for _, p := range utils.TrimAndSplit(filter, ",") {
		m, err := ParseMatcher(p)
		if err != nil {
			return FolderPatterns{}, err
		}
		if not, ok := m.(*NotMatcher); ok {
			patterns.Exclude = append(patterns.Exclude, not.Matcher)
		} else {
			patterns.Include = append(patterns.Include, m)
		}
	}
	return patterns, nil
}

// Matches checks if a folder satisfies the patterns. If include patterns
// exist, the folder must match at least one. A folder matching any exclude
// pattern is rejected.
//
// Parameters:
//   - folder: Folder value of an asset
//
// Returns:
//   - bool: true if the folder passes the filter
func (p FolderPatterns) Matches(folder string) bool {
	for _, m := range p.Exclude {
		if m.Match(folder) {
			return false
		}
	}
	if len(p.Include) == 0 {
		return true
	}
	return NewAnyMatcher(p.Include...).Match(folder)
}

// IsEmpty returns true when no patterns were given.
//
// Returns:
//   - bool: true if there are no include or exclude patterns
func (p FolderPatterns) IsEmpty() bool {
	return len(p.Include) == 0 && len(p.Exclude) == 0
}

// FilterByFolder keeps assets whose folder passes the folder patterns.
//
// Parameters:
//   - records: Assets to filter
//   - filter: Comma-separated folder patterns; empty keeps everything
//
// Returns:
//   - []assets.Asset: Stable subset of records
//   - error: ErrInvalidPattern (wrapped) for a malformed glob
func FilterByFolder(records []assets.Asset, filter string) ([]assets.Asset, error) {
	patterns, err := ParseFolderPatterns(filter)
	if err != nil {
		return nil, err
	}
	if patterns.IsEmpty() {
		return append([]assets.Asset(nil), records...), nil
	}

	out := make([]assets.Asset, 0, len(records))
	for _, a := range records {
		if patterns.Matches(a.Folder) {
			out = append(out, a)
			continue
		}
		verbose.AssetFiltered(a.ID, fmt.Sprintf("folder %q does not match %q", a.Folder, filter))
	}
	return out, nil
}

// FilterByTag keeps assets that carry at least one of the given tags.
// Tag comparison ignores case.
//
// Parameters:
//   - records: Assets to filter
//   - filter: Comma-separated tag list; empty keeps everything
//
// Returns:
//   - []assets.Asset: Stable subset of records
func FilterByTag(records []assets.Asset, filter string) []assets.Asset {
	wanted := utils.TrimAndSplit(filter, ",")
	if len(wanted) == 0 {
		return append([]assets.Asset(nil), records...)
	}

	out := make([]assets.Asset, 0, len(records))
	for _, a := range records {
		if hasAnyTag(a.Tags, wanted) {
			out = append(out, a)
			continue
		}
		verbose.AssetFiltered(a.ID, fmt.Sprintf("no tag in %q", filter))
	}
	return out
}

func hasAnyTag(tags, wanted []string) bool {
	for _, tag := range tags {
		if utils.ContainsIgnoreCase(wanted, tag) {
			return true
		}
	}
	return false
}
