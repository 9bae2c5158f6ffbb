// Package view holds the explicit browsing state of an asset listing and
// derives the rows a renderer draws from it.
//
// State values are never modified in place. Every transition returns a new
// State, so callers keep the previous value and re-derive rows on change:
//
//	st := view.New().WithTerm("invoice").ToggleFolder("Archive")
//	rows := view.Derive(all, st)
package view

import (
	"maps"
	"slices"
)

// State is the browsing state of one listing session.
//
// Fields:
//   - Term: Current search query
//   - Collapsed: Folders whose items are hidden, keyed by raw folder value
//   - Expanded: Assets whose detail block is shown, keyed by asset ID
//   - Option: Index of the selected layout option
type State struct {
	Term      string          `json:"term" yaml:"term"`
	Collapsed map[string]bool `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Expanded  map[string]bool `json:"expanded,omitempty" yaml:"expanded,omitempty"`
	Option    int             `json:"option" yaml:"option"`
}

// New returns the initial state: no search term, every folder open, no
// details shown and the first layout option selected.
//
// Returns:
//   - State: Empty state
func New() State {
	return State{
		Collapsed: map[string]bool{},
		Expanded:  map[string]bool{},
	}
}

// clone copies the state's maps so a transition can edit them.
func (s State) clone() State {
	s.Collapsed = cloneSet(s.Collapsed)
	s.Expanded = cloneSet(s.Expanded)
	return s
}

func cloneSet(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		if v {
			out[k] = true
		}
	}
	return out
}

// WithTerm returns a copy of the state with a new search term.
//
// Parameters:
//   - term: Search query
//
// Returns:
//   - State: Updated state
func (s State) WithTerm(term string) State {
	next := s.clone()
	next.Term = term
	return next
}

// ToggleFolder flips the collapse flag of one folder.
//
// Parameters:
//   - folder: Raw folder value
//
// Returns:
//   - State: Updated state
func (s State) ToggleFolder(folder string) State {
	next := s.clone()
	if next.Collapsed[folder] {
		delete(next.Collapsed, folder)
	} else {
		next.Collapsed[folder] = true
	}
	return next
}

// SetCollapsed returns a copy of the state with the given folders collapsed
// and all others open.
//
// Parameters:
//   - folders: Raw folder values to collapse
//
// Returns:
//   - State: Updated state
func (s State) SetCollapsed(folders ...string) State {
	next := s.clone()
	next.Collapsed = make(map[string]bool, len(folders))
	for _, f := range folders {
		next.Collapsed[f] = true
	}
	return next
}

// ToggleAll collapses or opens every listed folder in one transition.
//
// If any listed folder is open, all of them are collapsed. If all of them are
// already collapsed, all of them are opened. Folders not in the list keep
// their flag.
//
// Parameters:
//   - folders: Folders currently shown (see grouping.Folders)
//
// Returns:
//   - State: Updated state
func (s State) ToggleAll(folders []string) State {
	next := s.clone()
	anyOpen := slices.ContainsFunc(folders, func(f string) bool {
		return !s.Collapsed[f]
	})
	for _, f := range folders {
		if anyOpen {
			next.Collapsed[f] = true
		} else {
			delete(next.Collapsed, f)
		}
	}
	return next
}

// ToggleDetail flips whether an asset's detail block is shown.
//
// Parameters:
//   - id: Asset identifier
//
// Returns:
//   - State: Updated state
func (s State) ToggleDetail(id string) State {
	next := s.clone()
	if next.Expanded[id] {
		delete(next.Expanded, id)
	} else {
		next.Expanded[id] = true
	}
	return next
}

// SelectOption selects a layout option by index, clamped to [0, n).
//
// Parameters:
//   - i: Requested option index
//   - n: Number of available options; n <= 0 selects 0
//
// Returns:
//   - State: Updated state
func (s State) SelectOption(i, n int) State {
	next := s.clone()
	switch {
	case n <= 0 || i < 0:
		next.Option = 0
	case i >= n:
		next.Option = n - 1
	default:
		next.Option = i
	}
	return next
}

// IsCollapsed reports whether a folder's items are hidden.
//
// Parameters:
//   - folder: Raw folder value
//
// Returns:
//   - bool: true if the folder is collapsed
func (s State) IsCollapsed(folder string) bool {
	return s.Collapsed[folder]
}

// IsExpanded reports whether an asset's detail block is shown.
//
// Parameters:
//   - id: Asset identifier
//
// Returns:
//   - bool: true if the detail block is shown
func (s State) IsExpanded(id string) bool {
	return s.Expanded[id]
}

// CollapsedFolders returns the collapsed folders in sorted order.
//
// Returns:
//   - []string: Sorted folder values
func (s State) CollapsedFolders() []string {
	return slices.Sorted(maps.Keys(cloneSet(s.Collapsed)))
}
