// Package display renders derived asset listings for the terminal.
//
// Columns:
//
// DefaultColumns holds the column configuration of the listing. Columns with
// a positive Unit are shown on every item row and share the terminal width in
// proportion to their unit; unit 0 columns appear only in an item's detail
// block:
//
//	cols, err := display.ParseColumns([]string{"name", "tags"})
//
// Rendering:
//
// Render prints the rows produced by view.Derive in one of the layouts of
// view.Options:
//
//	rows := view.Derive(all, state)
//	display.NewRenderer(display.DefaultColumns).
//	    WithLayout(state.SelectedLayout()).
//	    WithWidth(120).
//	    Render(os.Stdout, rows)
//
// Messages:
//
//	display.PrintWarnings(os.Stderr, warnings)
//	display.PrintNoAssetsMessage(os.Stdout, "invoice")
//
// For structured output, use the pkg/output package directly.
package display
