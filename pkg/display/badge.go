package display

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ajxudir/assetview/pkg/assets"
	"github.com/ajxudir/assetview/pkg/constants"
	"github.com/ajxudir/assetview/pkg/output"
)

// Badge renders text as a bracketed label no wider than width cells.
//
// Text that does not fit is cut and ends with output.Ellipsis. A width too
// small to hold the brackets and one cell leaves the text uncut.
//
// Parameters:
//   - text: Label text
//   - width: Maximum badge width in terminal cells, brackets included
//
// Returns:
//   - string: The badge (e.g., "[urgent]")
//
// Example:
//
//	display.Badge("finance", constants.BadgeWidth) // "[finance]"
//	display.Badge("quarterly-report", 10)          // "[quarter…]"
func Badge(text string, width int) string {
	if width > 2 {
		text = runewidth.Truncate(text, width-2, output.Ellipsis)
	}
	return "[" + text + "]"
}

// Badges renders every non-blank value as a badge, separated by spaces.
//
// Parameters:
//   - values: Label texts
//   - width: Maximum width of each badge
//
// Returns:
//   - string: Space-separated badges, or "" when values is empty
func Badges(values []string, width int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		parts = append(parts, Badge(v, width))
	}
	return strings.Join(parts, " ")
}

// CellValue returns the text of a column for an asset. Tags render as badges;
// every other field is its string value.
//
// Parameters:
//   - a: Asset to read
//   - col: Column to render
//
// Returns:
//   - string: Cell text
func CellValue(a assets.Asset, col Column) string {
	if col.Key == assets.KeyTags {
		return Badges(a.Tags, constants.BadgeWidth)
	}
	return a.Field(col.Key)
}

// FolderLabel returns the display name of a folder group.
//
// Parameters:
//   - folder: Raw folder value
//
// Returns:
//   - string: The folder, or constants.PlaceholderNoFolder when blank
func FolderLabel(folder string) string {
	if strings.TrimSpace(folder) == "" {
		return constants.PlaceholderNoFolder
	}
	return folder
}
