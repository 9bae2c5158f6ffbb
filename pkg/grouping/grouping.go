// Package grouping orders assets by folder and name and identifies the folder
// groups of a sorted sequence.
package grouping

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajxudir/assetview/pkg/assets"
)

// Group is a maximal run of adjacent sorted assets sharing the same folder.
//
// Fields:
//   - Folder: Raw folder value of the run
//   - Start: Index of the first asset of the run in the sorted sequence
//   - Assets: The assets of the run
type Group struct {
	Folder string         `json:"folder" yaml:"folder" xml:"folder"`
	Start  int            `json:"start" yaml:"start" xml:"start"`
	Assets []assets.Asset `json:"assets" yaml:"assets" xml:"assets>asset"`
}

// CompareStrings is a three-way ordinal comparison.
//
// Parameters:
//   - a: Left operand
//   - b: Right operand
//
// Returns:
//   - int: 1 if a > b, -1 if a < b, 0 otherwise
func CompareStrings(a, b string) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Compare orders two assets by lower-cased folder and then lower-cased name.
//
// Parameters:
//   - a: Left asset
//   - b: Right asset
//
// Returns:
//   - int: Negative, zero or positive like CompareStrings
func Compare(a, b assets.Asset) int {
	return compareWith(cases.Lower(language.Und), a, b)
}

func compareWith(lower cases.Caser, a, b assets.Asset) int {
	if c := CompareStrings(lower.String(a.Folder), lower.String(b.Folder)); c != 0 {
		return c
	}
	return CompareStrings(lower.String(a.Name), lower.String(b.Name))
}

// GroupAndSort returns a sorted copy of records ordered by Compare.
//
// The sort is stable, so assets with equal folder and name keep their input
// order. records is never modified and sorting an already sorted sequence
// returns it unchanged.
//
// Parameters:
//   - records: Assets to order
//
// Returns:
//   - []assets.Asset: New slice in folder/name order
//
// Example:
//
//	sorted := grouping.GroupAndSort(filtered)
//	for i, a := range sorted {
//	    if grouping.IsGroupStart(sorted, i) {
//	        fmt.Println(a.Folder)
//	    }
//	}
func GroupAndSort(records []assets.Asset) []assets.Asset {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []assets.Asset{}
	}

	lower := cases.Lower(language.Und)
	slices.SortStableFunc(sorted, func(a, b assets.Asset) int {
		return compareWith(lower, a, b)
	})
	return sorted
}

// IsGroupStart reports whether the asset at index begins a new folder group.
//
// Index 0 always starts a group. Any later index starts a group when its raw
// folder differs from the previous asset's folder. This comparison is
// case-sensitive, so "Vendors" and "vendors" sort together but form two
// groups. An index outside the sequence is never a group start.
//
// Parameters:
//   - sorted: Output of GroupAndSort
//   - index: Position to test
//
// Returns:
//   - bool: true if a group header belongs before sorted[index]
func IsGroupStart(sorted []assets.Asset, index int) bool {
	if index < 0 || index >= len(sorted) {
		return false
	}
	if index == 0 {
		return true
	}
	return sorted[index].Folder != sorted[index-1].Folder
}

// Groups splits a sorted sequence into its folder groups.
//
// Parameters:
//   - sorted: Output of GroupAndSort
//
// Returns:
//   - []Group: Groups in sequence order; empty for an empty sequence
func Groups(sorted []assets.Asset) []Group {
	groups := make([]Group, 0)
	for i, a := range sorted {
		if IsGroupStart(sorted, i) {
			groups = append(groups, Group{Folder: a.Folder, Start: i})
		}
		last := &groups[len(groups)-1]
		last.Assets = append(last.Assets, a)
	}
	return groups
}

// Folders returns the folder of every group, in order.
//
// Parameters:
//   - sorted: Output of GroupAndSort
//
// Returns:
//   - []string: One folder per group
func Folders(sorted []assets.Asset) []string {
	folders := make([]string, 0)
	for i, a := range sorted {
		if IsGroupStart(sorted, i) {
			folders = append(folders, a.Folder)
		}
	}
	return folders
}

// Len returns the number of assets in the group.
//
// Returns:
//   - int: Asset count
func (g Group) Len() int {
	return len(g.Assets)
}
