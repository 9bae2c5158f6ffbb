package filtering

import (
	"github.com/ajxudir/assetview/pkg/assets"
)

// AssetFilter defines the interface for filtering assets.
//
// This interface enables testing code that depends on asset filtering
// by allowing mock implementations to be substituted.
//
// Example:
//
//	type mockFilter struct {
//	    result []assets.Asset
//	}
//	func (m *mockFilter) Filter(records []assets.Asset) ([]assets.Asset, error) {
//	    return m.result, nil
//	}
type AssetFilter interface {
	// Filter applies filtering logic to a slice of assets.
	//
	// Parameters:
	//   - records: Assets to filter
	//
	// Returns:
	//   - []assets.Asset: Filtered assets
	//   - error: When the filter criteria are invalid
	Filter(records []assets.Asset) ([]assets.Asset, error)
}

// OptionsFilter is an adapter that implements AssetFilter using FilterOptions.
//
// Example:
//
//	opts := filtering.FromFlags("invoice", "clients/*", "")
//	filter := &filtering.OptionsFilter{Options: opts}
//	result, err := filter.Filter(records)
type OptionsFilter struct {
	Options FilterOptions
}

// Filter applies the options-based filtering to assets.
//
// Parameters:
//   - records: Assets to filter
//
// Returns:
//   - []assets.Asset: Filtered assets
//   - error: When a folder pattern is invalid
func (f *OptionsFilter) Filter(records []assets.Asset) ([]assets.Asset, error) {
	return Apply(records, f.Options)
}

// Verify that OptionsFilter implements the AssetFilter interface.
var _ AssetFilter = (*OptionsFilter)(nil)
