// Package output provides utilities for formatting command output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/assetview/pkg/utils"
)

// Ellipsis marks a cell value that was cut to fit its column.
const Ellipsis = "…"

// Column represents a single table column.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in terminal cells
//   - Unit: Flex weight used by Fit; 0 keeps the content width
type Column struct {
	Header string
	Width  int
	Unit   int
}

// Table is a text table with Unicode-aware column widths.
//
// Columns grow to fit their content through UpdateWidths. Fit can then
// share a fixed total width between flex columns in proportion to their
// units, and FormatRow cuts values that no longer fit.
type Table struct {
	columns   []Column
	separator string
	truncate  bool
}

// NewTable creates a new table with a two-space column separator.
//
// Returns:
//   - *Table: A new table instance ready for column configuration
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// WithSeparator sets a custom column separator and returns the table.
//
// Parameters:
//   - sep: The string to use between columns (e.g., " | ")
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// AddColumn adds a column sized to its header and returns the table.
//
// Parameters:
//   - header: The text to display in the column header
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	return t.AddFlexColumn(header, 0)
}

// AddFlexColumn adds a column with a flex weight and returns the table.
//
// Parameters:
//   - header: The text to display in the column header
//   - unit: Share of the spare width given to this column by Fit
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddFlexColumn(header string, unit int) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		Unit:   unit,
	})
	return t
}

// UpdateWidths widens columns to fit a row of values and returns the table.
//
// Parameters:
//   - values: One value per column; extra values are ignored
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i < len(t.columns) {
			t.columns[i].Width = max(t.columns[i].Width, utils.DisplayWidth(val))
		}
	}
	return t
}

// Fit distributes a total line width between the columns.
//
// Fixed columns (unit 0) keep their width. The remaining width, after
// separators, is split between flex columns in proportion to their units,
// like CSS "flex: unit 0 0%". Each flex column gets at least its header
// width. Once fitted, FormatRow truncates values that overflow.
//
// Parameters:
//   - total: Available width in terminal cells; values <= 0 leave widths unchanged
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) Fit(total int) *Table {
	if total <= 0 {
		return t
	}

	fixed := 0
	units := 0
	for _, col := range t.columns {
		if col.Unit > 0 {
			units += col.Unit
		} else {
			fixed += col.Width
		}
	}
	if units == 0 {
		return t
	}

	spare := total - fixed - utils.DisplayWidth(t.separator)*(len(t.columns)-1)
	for i := range t.columns {
		col := &t.columns[i]
		if col.Unit == 0 {
			continue
		}
		col.Width = max(spare*col.Unit/units, utils.DisplayWidth(col.Header))
	}
	t.truncate = true
	return t
}

// HeaderRow returns the formatted header row string.
//
// Returns:
//   - string: Headers padded to their column widths
func (t *Table) HeaderRow() string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
	}
	return t.FormatRow(headers...)
}

// SeparatorRow returns a row of dashes matching the column widths.
func (t *Table) SeparatorRow() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = strings.Repeat("-", col.Width)
	}
	return strings.Join(parts, t.separator)
}

// FormatRow formats a data row, padding every value to its column width.
// Missing values are treated as empty strings. After Fit, values wider than
// their column are cut and end with Ellipsis.
//
// Parameters:
//   - values: One value per column
//
// Returns:
//   - string: Formatted row
func (t *Table) FormatRow(values ...string) string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		if t.truncate {
			val = utils.Truncate(val, col.Width, Ellipsis)
		}
		parts[i] = utils.ToWidth(val, col.Width)
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// Width returns the total width of a formatted row.
//
// Returns:
//   - int: Sum of column widths plus separators
func (t *Table) Width() int {
	width := 0
	for _, col := range t.columns {
		width += col.Width
	}
	if n := len(t.columns); n > 1 {
		width += utils.DisplayWidth(t.separator) * (n - 1)
	}
	return width
}

// HasValues reports whether any value is non-blank. Commands use it to hide
// columns that would be empty for every row.
//
// Parameters:
//   - values: Column values across all rows
//
// Returns:
//   - bool: true if at least one value has non-space content
func HasValues(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Fprint writes the header and separator rows to w.
//
// Parameters:
//   - w: Destination writer
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
}

// String returns a debug description of the table columns.
//
// Returns:
//   - string: e.g. "Table{columns: [NAME:20/6, TYPE:4]}"
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("Table{columns: [")
	for i, col := range t.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s:%d", col.Header, col.Width))
		if col.Unit > 0 {
			sb.WriteString(fmt.Sprintf("/%d", col.Unit))
		}
	}
	sb.WriteString("]}")
	return sb.String()
}
