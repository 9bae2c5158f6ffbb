package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/assetview/pkg/assets"
	"github.com/ajxudir/assetview/pkg/constants"
	"github.com/ajxudir/assetview/pkg/output"
	"github.com/ajxudir/assetview/pkg/utils"
	"github.com/ajxudir/assetview/pkg/view"
)

// markerWidth is the width of the folder/detail marker prefix ("▾ ").
const markerWidth = 2

// gridSeparator separates cells in the grid layout.
const gridSeparator = " | "

// Renderer prints derived rows in a layout.
//
// Fields:
//   - Columns: Column configuration
//   - Layout: Presentation strategy
//   - Width: Terminal width; 0 keeps natural column widths
//   - HideEmpty: Drop row columns that are blank on every item row
type Renderer struct {
	Columns   []Column
	Layout    view.Layout
	Width     int
	HideEmpty bool
}

// NewRenderer creates a renderer for the standard layout.
//
// Parameters:
//   - cols: Column configuration (nil uses DefaultColumns)
//
// Returns:
//   - *Renderer: Renderer with natural widths
func NewRenderer(cols []Column) *Renderer {
	if cols == nil {
		cols = DefaultColumns
	}
	return &Renderer{Columns: cols, Layout: view.LayoutStandard}
}

// WithLayout sets the layout and returns the renderer.
//
// Parameters:
//   - layout: Presentation strategy
//
// Returns:
//   - *Renderer: The renderer for method chaining
func (r *Renderer) WithLayout(layout view.Layout) *Renderer {
	r.Layout = layout
	return r
}

// WithWidth sets the terminal width and returns the renderer.
//
// Parameters:
//   - width: Available width in terminal cells; 0 disables fitting
//
// Returns:
//   - *Renderer: The renderer for method chaining
func (r *Renderer) WithWidth(width int) *Renderer {
	r.Width = width
	return r
}

// WithHideEmpty sets whether blank row columns are dropped.
//
// Parameters:
//   - hide: true to drop columns without any value
//
// Returns:
//   - *Renderer: The renderer for method chaining
func (r *Renderer) WithHideEmpty(hide bool) *Renderer {
	r.HideEmpty = hide
	return r
}

// Render writes rows to w.
//
// Every layout prints a header line per folder group ("▾ Folder (n)", or
// "▸" when collapsed) followed by the group's item rows. Expanded items add a
// detail block. The layouts differ in how an item row looks:
//   - standard: aligned flex columns under a header row
//   - grid: like standard with visible cell borders
//   - details: the first column only; expanded items list every column
//   - badges: the first column followed by the other row values as badges
//
// Parameters:
//   - w: Destination writer
//   - rows: Rows from view.Derive
func (r *Renderer) Render(w io.Writer, rows []view.Row) {
	visible := Visible(r.Columns)
	if r.HideEmpty {
		visible = nonEmptyColumns(visible, rows)
	}

	switch r.Layout {
	case view.LayoutDetails:
		r.renderCompact(w, rows, visible, r.Columns, func(view.Row) string { return "" })
	case view.LayoutBadges:
		r.renderCompact(w, rows, visible, Detail(r.Columns), func(row view.Row) string {
			return rowBadges(row, visible)
		})
	case view.LayoutGrid:
		r.renderTable(w, rows, visible, gridSeparator, true)
	default:
		r.renderTable(w, rows, visible, "  ", false)
	}
}

func (r *Renderer) renderTable(w io.Writer, rows []view.Row, visible []Column, sep string, borders bool) {
	table := output.NewTable().WithSeparator(sep)
	for _, col := range visible {
		table.AddFlexColumn(strings.ToUpper(col.Header), col.Unit)
	}
	for _, row := range rows {
		if row.Kind == view.RowItem {
			table.UpdateWidths(rowValues(row, visible)...)
		}
	}
	if r.Width > 0 {
		table.Fit(r.Width - markerWidth)
	}

	indent := strings.Repeat(" ", markerWidth)
	if len(visible) > 0 {
		_, _ = fmt.Fprintln(w, indent+table.HeaderRow())
		_, _ = fmt.Fprintln(w, indent+table.SeparatorRow())
	}

	for _, row := range rows {
		if row.Kind == view.RowHeader {
			_, _ = fmt.Fprintln(w, FolderHeader(row))
			if borders && !row.Collapsed && len(visible) > 0 {
				_, _ = fmt.Fprintln(w, indent+table.SeparatorRow())
			}
			continue
		}
		line := detailMarker(row) + " " + table.FormatRow(rowValues(row, visible)...)
		_, _ = fmt.Fprintln(w, strings.TrimRight(line, " "))
		if row.Expanded {
			writeDetailBlock(w, row, Detail(r.Columns))
		}
	}
}

func (r *Renderer) renderCompact(w io.Writer, rows []view.Row, visible, detail []Column, extra func(view.Row) string) {
	var first Column
	if len(visible) > 0 {
		first = visible[0]
	}
	titleWidth := 0
	if r.Width > 0 {
		titleWidth = r.Width - markerWidth
	}

	for _, row := range rows {
		if row.Kind == view.RowHeader {
			_, _ = fmt.Fprintln(w, FolderHeader(row))
			continue
		}

		title := CellValue(row.Asset, first)
		line := title
		if suffix := extra(row); suffix != "" {
			line = title + "  " + suffix
		}
		if titleWidth > 0 {
			line = truncate(line, titleWidth)
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(detailMarker(row)+" "+line, " "))
		if row.Expanded {
			writeDetailBlock(w, row, detail)
		}
	}
}

// FolderHeader formats a folder header row.
//
// Parameters:
//   - row: A RowHeader row
//
// Returns:
//   - string: e.g. "▾ Clients/Acme (2)" or "▸ Vendors (1)"
func FolderHeader(row view.Row) string {
	icon := constants.IconFolderOpen
	if row.Collapsed {
		icon = constants.IconFolderClosed
	}
	return fmt.Sprintf("%s %s (%d)", icon, FolderLabel(row.Folder), row.Count)
}

// DetailLines formats the detail block of an asset, one "Header: value" line
// per column. Blank values show constants.PlaceholderEmpty.
//
// Parameters:
//   - row: A RowItem row
//   - cols: Columns to list
//
// Returns:
//   - []string: Lines without indentation
func DetailLines(row view.Row, cols []Column) []string {
	lines := make([]string, 0, len(cols))
	for _, col := range cols {
		value := CellValue(row.Asset, col)
		if strings.TrimSpace(value) == "" {
			value = constants.PlaceholderEmpty
		}
		lines = append(lines, col.Header+": "+value)
	}
	return lines
}

func writeDetailBlock(w io.Writer, row view.Row, cols []Column) {
	indent := strings.Repeat(" ", markerWidth*2)
	for _, line := range DetailLines(row, cols) {
		_, _ = fmt.Fprintln(w, indent+line)
	}
}

func detailMarker(row view.Row) string {
	if row.Expanded {
		return constants.IconDetailOpen
	}
	return constants.IconDetailClosed
}

func rowValues(row view.Row, cols []Column) []string {
	values := make([]string, 0, len(cols))
	for _, col := range cols {
		values = append(values, CellValue(row.Asset, col))
	}
	return values
}

func rowBadges(row view.Row, visible []Column) string {
	if len(visible) < 2 {
		return ""
	}
	var parts []string
	for _, col := range visible[1:] {
		if col.Key == assets.KeyTags {
			if b := Badges(row.Asset.Tags, constants.BadgeWidth); b != "" {
				parts = append(parts, b)
			}
			continue
		}
		if b := Badges([]string{row.Asset.Field(col.Key)}, constants.BadgeWidth); b != "" {
			parts = append(parts, b)
		}
	}
	return strings.Join(parts, " ")
}

func nonEmptyColumns(cols []Column, rows []view.Row) []Column {
	out := make([]Column, 0, len(cols))
	for i, col := range cols {
		values := make([]string, 0, len(rows))
		for _, row := range rows {
			if row.Kind == view.RowItem {
				values = append(values, CellValue(row.Asset, col))
			}
		}
		if i == 0 || output.HasValues(values) {
			out = append(out, col)
		}
	}
	return out
}

func truncate(s string, width int) string {
	return utils.Truncate(s, width, output.Ellipsis)
}
