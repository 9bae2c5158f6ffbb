package view

import (
	"github.com/ajxudir/assetview/pkg/assets"
	"github.com/ajxudir/assetview/pkg/filtering"
	"github.com/ajxudir/assetview/pkg/grouping"
)

// RowKind distinguishes folder header rows from asset rows.
type RowKind int

const (
	// RowHeader opens a folder group.
	RowHeader RowKind = iota
	// RowItem shows one asset.
	RowItem
)

// String returns the row kind name.
//
// Returns:
//   - string: "header" or "item"
func (k RowKind) String() string {
	if k == RowHeader {
		return "header"
	}
	return "item"
}

// Row is one line of a derived listing.
//
// Fields:
//   - Kind: RowHeader or RowItem
//   - Folder: Raw folder of the group the row belongs to
//   - Asset: The asset (item rows only)
//   - Expanded: Whether the asset's detail block is shown (item rows only)
//   - Collapsed: Whether the group's items are hidden (header rows only)
//   - Count: Number of matching assets in the group (header rows only)
type Row struct {
	Kind      RowKind
	Folder    string
	Asset     assets.Asset
	Expanded  bool
	Collapsed bool
	Count     int
}

// Derive computes the rows to display for a state.
//
// It performs the following operations:
//   - Step 1: Filters records by the state's search term
//   - Step 2: Sorts the result by folder and name
//   - Step 3: Emits a header row at every group start and an item row for
//     every asset whose folder is not collapsed
//
// Headers of collapsed folders are still emitted so the folder can be opened
// again. records is never modified.
//
// Parameters:
//   - records: Snapshot to display
//   - s: Browsing state
//
// Returns:
//   - []Row: Rows in display order
func Derive(records []assets.Asset, s State) []Row {
	return rowsFor(Matches(records, s), s)
}

// Matches returns the records the state's search term keeps, sorted by
// folder and name. Collapse and detail flags do not affect the result.
//
// Parameters:
//   - records: Snapshot to search
//   - s: Browsing state (only Term is used)
//
// Returns:
//   - []assets.Asset: Matching records in display order
func Matches(records []assets.Asset, s State) []assets.Asset {
	return grouping.GroupAndSort(filtering.Filter(records, s.Term))
}

// rowsFor builds rows for an already filtered and sorted sequence.
func rowsFor(sorted []assets.Asset, s State) []Row {
	rows := make([]Row, 0, len(sorted))
	for _, g := range grouping.Groups(sorted) {
		collapsed := s.IsCollapsed(g.Folder)
		rows = append(rows, Row{
			Kind:      RowHeader,
			Folder:    g.Folder,
			Collapsed: collapsed,
			Count:     g.Len(),
		})
		if collapsed {
			continue
		}
		for _, a := range g.Assets {
			rows = append(rows, Row{
				Kind:     RowItem,
				Folder:   g.Folder,
				Asset:    a,
				Expanded: s.IsExpanded(a.ID),
			})
		}
	}
	return rows
}

// ItemCount returns the number of item rows.
//
// Parameters:
//   - rows: Derived rows
//
// Returns:
//   - int: Count of RowItem rows
func ItemCount(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Kind == RowItem {
			n++
		}
	}
	return n
}
