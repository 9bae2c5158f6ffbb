// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for display markers.
package constants

// Placeholder values for display when data is not available.
const (
	// PlaceholderEmpty is shown for a blank field in detail blocks.
	PlaceholderEmpty = "-"

	// PlaceholderNoFolder labels the group of assets whose folder is empty.
	PlaceholderNoFolder = "(no folder)"
)

// Folder and detail markers used by the tree-style listing.
const (
	// IconFolderOpen marks a folder whose items are shown.
	IconFolderOpen = "▾"

	// IconFolderClosed marks a collapsed folder.
	IconFolderClosed = "▸"

	// IconDetailOpen marks an item whose detail block is shown.
	IconDetailOpen = "−"

	// IconDetailClosed marks an item whose detail block is hidden.
	IconDetailClosed = "+"
)

// Icon constants for messages.
const (
	// IconCheckmark indicates a passed check (checkmark).
	IconCheckmark = "✓"

	// IconCross indicates a failed check (cross).
	IconCross = "✗"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconCheckmarkBox indicates successful validation (checkmark in box).
	IconCheckmarkBox = "✅"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"

	// IconReload marks a watch-mode refresh.
	IconReload = "🔄"
)

// Validation status constants for file validation.
const (
	// ValidationValid indicates a valid file.
	ValidationValid = "🟢 valid"

	// ValidationInvalid indicates an invalid file.
	ValidationInvalid = "❌ invalid"
)

// Badge widths in terminal cells, including the brackets.
const (
	// BadgeWidth is the default width of a tag badge.
	BadgeWidth = 28

	// BadgeWidthToggle is the width of the "Details" toggle badge.
	BadgeWidthToggle = 22
)
