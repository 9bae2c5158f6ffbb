package view

import (
	"fmt"
	"strings"
)

// Layout names a presentation strategy for a listing.
type Layout string

const (
	// LayoutStandard renders one flex-style row per asset.
	LayoutStandard Layout = "standard"
	// LayoutGrid renders assets as aligned grid cells with a header row.
	LayoutGrid Layout = "grid"
	// LayoutDetails renders the first column of each asset behind a +/−
	// marker. Only expanded assets list every column below their row.
	LayoutDetails Layout = "details"
	// LayoutBadges renders tags and type as badges.
	LayoutBadges Layout = "badges"
)

// Option is one selectable layout.
//
// Fields:
//   - Layout: Layout identifier
//   - Text: Human-readable label
type Option struct {
	Layout Layout
	Text   string
}

// Options lists the selectable layouts in menu order. Index 0 is the default.
var Options = []Option{
	{Layout: LayoutStandard, Text: "Option 1 (the standard)"},
	{Layout: LayoutGrid, Text: "Option 2 (grid)"},
	{Layout: LayoutDetails, Text: "Option 3 (collapsible details)"},
	{Layout: LayoutBadges, Text: "Option 4 (badges)"},
}

// LayoutNames returns the layout identifiers in menu order.
//
// Returns:
//   - []string: Layout names (e.g., "standard", "grid")
func LayoutNames() []string {
	names := make([]string, 0, len(Options))
	for _, o := range Options {
		names = append(names, string(o.Layout))
	}
	return names
}

// OptionIndex finds the option index for a layout name. Matching ignores
// case; an empty name selects the default option.
//
// Parameters:
//   - name: Layout name
//
// Returns:
//   - int: Index into Options
//   - error: When name is not a known layout
func OptionIndex(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, nil
	}
	for i, o := range Options {
		if strings.EqualFold(string(o.Layout), name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown layout %q (valid: %s)", name, strings.Join(LayoutNames(), ", "))
}

// SelectedLayout returns the layout of the state's selected option.
//
// Returns:
//   - Layout: Selected layout, or LayoutStandard when the index is out of range
func (s State) SelectedLayout() Layout {
	if s.Option < 0 || s.Option >= len(Options) {
		return LayoutStandard
	}
	return Options[s.Option].Layout
}
