package filtering

import (
	"github.com/ajxudir/assetview/pkg/assets"
)

// FilterOptions contains all filter criteria for asset filtering.
//
// Fields:
//   - Query: Token search query (see Filter)
//   - Folder: Folder patterns (comma-separated, supports globs and ! exclusions)
//   - Tag: Tag names (comma-separated, case-insensitive, any-of)
type FilterOptions struct {
	// Query is the token search query.
	Query string

	// Folder filters by folder patterns.
	Folder string

	// Tag filters by tag name.
	Tag string
}

// IsEmpty returns true if all filter options are unset.
//
// A query made only of single-character words counts as unset because it
// filters nothing.
//
// Returns:
//   - bool: true if no filters are set (all assets would match)
func (o FilterOptions) IsEmpty() bool {
	return !o.HasQuery() && o.Folder == "" && o.Tag == ""
}

// HasQuery returns true if the query yields at least one token.
//
// Returns:
//   - bool: true if the query would filter anything
func (o FilterOptions) HasQuery() bool {
	return len(Tokenize(o.Query)) > 0
}

// Validate checks the folder patterns.
//
// Returns:
//   - error: ErrInvalidPattern (wrapped) for a malformed glob
func (o FilterOptions) Validate() error {
	_, err := ParseFolderPatterns(o.Folder)
	return err
}

// FromFlags creates FilterOptions from CLI flag values.
//
// Parameters:
//   - query: Search query flag value
//   - folder: Folder filter flag value
//   - tag: Tag filter flag value
//
// Returns:
//   - FilterOptions: Populated filter options
func FromFlags(query, folder, tag string) FilterOptions {
	return FilterOptions{Query: query, Folder: folder, Tag: tag}
}

// WithQuery returns a copy with the search query set.
//
// Parameters:
//   - query: Search query
//
// Returns:
//   - FilterOptions: New FilterOptions with updated Query field
func (o FilterOptions) WithQuery(query string) FilterOptions {
	o.Query = query
	return o
}

// Apply runs the token filter followed by the folder and tag filters.
//
// Every stage keeps the relative order of its input, so the result is a
// stable subset of records.
//
// Parameters:
//   - records: Assets to filter
//   - opts: Filter criteria
//
// Returns:
//   - []assets.Asset: Assets that pass every criterion
//   - error: ErrInvalidPattern (wrapped) for a malformed folder glob
//
// Example:
//
//	opts := filtering.FromFlags("invoice", "clients/**", "")
//	matched, err := filtering.Apply(all, opts)
func Apply(records []assets.Asset, opts FilterOptions) ([]assets.Asset, error) {
	result := Filter(records, opts.Query)

	result, err := FilterByFolder(result, opts.Folder)
	if err != nil {
		return nil, err
	}

	return FilterByTag(result, opts.Tag), nil
}
