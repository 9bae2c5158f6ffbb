package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal cells s occupies.
//
// Wide runes such as CJK ideographs and most emoji count as two cells,
// combining marks and control characters as zero.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth right-pads val with spaces to width cells. Values that are already
// as wide or wider are returned unchanged.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width; <= 0 disables padding
//
// Returns:
//   - string: The padded string
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// Truncate cuts val to at most width cells, ending it with tail when
// anything was removed. Wide runes are never split.
//
// Parameters:
//   - val: The string to shorten
//   - width: Maximum display width; <= 0 returns val unchanged
//   - tail: Marker appended to a shortened value (e.g. "…")
//
// Returns:
//   - string: val, or its prefix followed by tail
//
// Example:
//
//	utils.Truncate("Paper supplier price list", 10, "…") // "Paper sup…"
func Truncate(val string, width int, tail string) string {
	if width <= 0 || DisplayWidth(val) <= width {
		return val
	}
	return runewidth.Truncate(val, width, tail)
}
