package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/assetview/pkg/constants"
)

// PrintWarnings prints warning messages to the writer.
//
// Formats each warning on its own line with a warning icon prefix.
// Does nothing if warnings slice is empty.
// Prints a blank line before the warnings for separation.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - warnings: Slice of warning messages
//
// Example output:
//
//	<blank line>
//	⚠️ Asset at index 3 has no id
//	⚠️ Data file changed while loading
func PrintWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconWarn, warning)
	}
}

// PrintNoAssetsMessage prints a "no assets found" message.
//
// Parameters:
//   - w: Writer to output to
//   - context: Context string describing what filters were used (optional)
//
// Example output:
//
//	No assets found
//	No assets found matching "invoice"
func PrintNoAssetsMessage(w io.Writer, context string) {
	if context != "" {
		_, _ = fmt.Fprintf(w, "No assets found %s\n", context)
	} else {
		_, _ = fmt.Fprintln(w, "No assets found")
	}
}

// PrintNoAssetsMessageWithFilters prints a message when no assets are found with filter details.
//
// Parameters:
//   - w: Writer to output to
//   - query: Search query value
//   - folder: Folder filter value
//   - tag: Tag filter value
//
// Example output:
//
//	No assets found (query: invoice) (folder: clients/*)
func PrintNoAssetsMessageWithFilters(w io.Writer, query, folder, tag string) {
	_, _ = fmt.Fprint(w, "No assets found")
	if strings.TrimSpace(query) != "" {
		_, _ = fmt.Fprintf(w, " (query: %s)", query)
	}
	if folder != "" {
		_, _ = fmt.Fprintf(w, " (folder: %s)", folder)
	}
	if tag != "" {
		_, _ = fmt.Fprintf(w, " (tag: %s)", tag)
	}
	_, _ = fmt.Fprintln(w)
}

// Summary holds listing summary data.
//
// Fields:
//   - Shown: Assets that matched the filters
//   - Total: Assets in the loaded snapshot
//   - Folders: Folder groups among the matches
//   - Collapsed: Collapsed folder groups
//   - Hidden: Matched assets inside collapsed groups
type Summary struct {
	Shown     int
	Total     int
	Folders   int
	Collapsed int
	Hidden    int
}

// PrintSummary prints a listing summary.
//
// Parameters:
//   - w: Writer to output to
//   - summary: Summary data to display
//
// Example output:
//
//	Showing 4 of 6 assets in 3 folders (1 collapsed, 2 hidden)
func PrintSummary(w io.Writer, summary Summary) {
	_, _ = fmt.Fprintf(w, "Showing %d of %d %s in %d %s",
		summary.Shown, summary.Total, plural(summary.Total, "asset", "assets"),
		summary.Folders, plural(summary.Folders, "folder", "folders"))
	switch {
	case summary.Collapsed > 0 && summary.Hidden > 0:
		_, _ = fmt.Fprintf(w, " (%d collapsed, %d hidden)", summary.Collapsed, summary.Hidden)
	case summary.Collapsed > 0:
		_, _ = fmt.Fprintf(w, " (%d collapsed)", summary.Collapsed)
	}
	_, _ = fmt.Fprintln(w)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
