package display

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ajxudir/assetview/pkg/assets"
)

// Column is one field of the listing.
//
// Fields:
//   - Header: Label shown in the header row and the detail block
//   - Key: Source key of the asset field (see assets.Asset.Field)
//   - Unit: Flex weight on item rows; 0 means detail-only
type Column struct {
	Header string
	Key    string
	Unit   int
}

// Visible reports whether the column is shown on item rows.
//
// Returns:
//   - bool: true when Unit is positive
func (c Column) Visible() bool {
	return c.Unit > 0
}

// DefaultColumns is the listing's column configuration: four row columns
// followed by the detail-only columns.
var DefaultColumns = []Column{
	{Header: "Name", Key: assets.KeyName, Unit: 6},
	{Header: "Tags", Key: assets.KeyTags, Unit: 3},
	{Header: "Type", Key: assets.KeyType, Unit: 1},
	{Header: "Date Added", Key: assets.KeyDateAdded, Unit: 1},

	{Header: "Folder", Key: assets.KeyFolder},
	{Header: "Added By", Key: assets.KeyAddedBy},
	{Header: "Assigned Salespersons", Key: assets.KeyAssignedTo},
	{Header: "Keywords", Key: assets.KeyKeywords},
	{Header: "Notes", Key: assets.KeyNotes},
}

// Visible returns the columns shown on item rows, in order.
//
// Parameters:
//   - cols: Column configuration
//
// Returns:
//   - []Column: Columns with a positive Unit
func Visible(cols []Column) []Column {
	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// Detail returns the detail-only columns, in order.
//
// Parameters:
//   - cols: Column configuration
//
// Returns:
//   - []Column: Columns with Unit 0
func Detail(cols []Column) []Column {
	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if !c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// ParseColumns selects the row columns by key or header.
//
// The selected columns become the row columns in the given order. They keep
// their default unit, or get unit 1 when they were detail-only. Every other
// default column moves to the detail block. An empty selection returns a copy
// of DefaultColumns.
//
// Parameters:
//   - names: Column keys or headers (case-insensitive, e.g. "name", "Date Added")
//
// Returns:
//   - []Column: The resulting configuration
//   - error: When a name matches no column or repeats
//
// Example:
//
//	cols, _ := display.ParseColumns([]string{"name", "folder"})
//	// Name(6), Folder(1) on rows; Tags, Type, Date Added, ... in details
func ParseColumns(names []string) ([]Column, error) {
	if len(names) == 0 {
		return slices.Clone(DefaultColumns), nil
	}

	selected := make([]Column, 0, len(names))
	used := make(map[string]bool, len(names))
	for _, name := range names {
		col, ok := lookupColumn(name)
		if !ok {
			return nil, fmt.Errorf("unknown column %q (valid: %s)", name, strings.Join(ColumnKeys(), ", "))
		}
		if used[col.Key] {
			return nil, fmt.Errorf("column %q listed more than once", name)
		}
		used[col.Key] = true
		if col.Unit == 0 {
			col.Unit = 1
		}
		selected = append(selected, col)
	}

	for _, col := range DefaultColumns {
		if !used[col.Key] {
			col.Unit = 0
			selected = append(selected, col)
		}
	}
	return selected, nil
}

// ColumnKeys returns the keys of DefaultColumns.
//
// Returns:
//   - []string: Keys in configuration order
func ColumnKeys() []string {
	keys := make([]string, 0, len(DefaultColumns))
	for _, c := range DefaultColumns {
		keys = append(keys, c.Key)
	}
	return keys
}

func lookupColumn(name string) (Column, bool) {
	name = strings.TrimSpace(name)
	for _, c := range DefaultColumns {
		if strings.EqualFold(c.Key, name) || strings.EqualFold(c.Header, name) {
			return c, true
		}
	}
	return Column{}, false
}
