package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ajxudir/assetview/pkg/assets"
	"github.com/ajxudir/assetview/pkg/display"
	"github.com/ajxudir/assetview/pkg/errors"
	"github.com/ajxudir/assetview/pkg/filtering"
	"github.com/ajxudir/assetview/pkg/grouping"
	"github.com/ajxudir/assetview/pkg/output"
	"github.com/ajxudir/assetview/pkg/utils"
	"github.com/ajxudir/assetview/pkg/verbose"
	"github.com/ajxudir/assetview/pkg/view"
	"github.com/ajxudir/assetview/pkg/warnings"
	"github.com/spf13/cobra"
)

// listOptions holds the flags shared by list, search and watch.
type listOptions struct {
	query       string
	folder      string
	tag         string
	collapse    []string
	collapseAll bool
	toggleAll   bool
	expand      []string
	layout      string
	output      string
	config      string
	data        string
	width       int
	hideEmpty   bool
	columns     []string
	failEmpty   bool
	summary     bool
}

var (
	listOpts   = &listOptions{}
	searchOpts = &listOptions{}
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List assets grouped by folder",
	Long: `List the assets of the catalogue grouped by folder and sorted by name.

Folders can be collapsed with --collapse or --collapse-all, and the detail
block of single assets opened with --expand. --toggle-all flips every folder
the way the folder toolbar does: it collapses all of them when any is open
and opens all of them otherwise.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(os.Stdout, listOpts)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search assets by words in any field",
	Long: `Search the catalogue for assets containing every word of the query.

Matching is case-insensitive and looks at the name, folder, type, tags,
date, people, keywords and notes of each asset.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		searchOpts.query = strings.Join(args, " ")
		return runList(os.Stdout, searchOpts)
	},
}

func init() {
	addListFlags(listCmd, listOpts)
	listCmd.Flags().StringVarP(&listOpts.query, "query", "q", "", "Search query (words must all match)")

	addListFlags(searchCmd, searchOpts)
}

// addListFlags registers the listing flags on cmd.
//
// Parameters:
//   - cmd: Command to register the flags on
//   - opts: Destination for the parsed values
func addListFlags(cmd *cobra.Command, opts *listOptions) {
	flags := cmd.Flags()
	flags.StringVar(&opts.folder, "folder", "", "Filter by folder patterns (comma-separated globs, !negation)")
	flags.StringVar(&opts.tag, "tag", "", "Filter by tag (comma-separated, any-of)")
	flags.StringSliceVar(&opts.collapse, "collapse", nil, "Collapse folders (comma-separated)")
	flags.BoolVar(&opts.collapseAll, "collapse-all", false, "Collapse every folder")
	flags.BoolVar(&opts.toggleAll, "toggle-all", false, "Collapse every folder, or open them all when all are collapsed")
	flags.StringSliceVar(&opts.expand, "expand", nil, "Show the details of assets by ID (comma-separated)")
	flags.StringVar(&opts.layout, "layout", "", "Layout: "+strings.Join(view.LayoutNames(), ", ")+" (default from config)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output format: table, json, csv, xml, yaml (default from config)")
	flags.StringVarP(&opts.config, "config", "c", "", "Config file path")
	flags.StringVarP(&opts.data, "data", "f", "", "Asset data file (overrides config)")
	flags.IntVar(&opts.width, "width", 0, "Table width in columns (default $COLUMNS or 100)")
	flags.BoolVar(&opts.hideEmpty, "hide-empty", false, "Hide row columns without values")
	flags.StringSliceVar(&opts.columns, "columns", nil, "Row columns by key or header (comma-separated)")
	flags.BoolVar(&opts.failEmpty, "fail-empty", false, "Exit with code 1 when no asset matches")
	flags.BoolVar(&opts.summary, "summary", true, "Print the summary line under the table")
}

// listing is one filtered, sorted and state-annotated view of a snapshot.
type listing struct {
	total   int
	matched []assets.Asset
	rows    []view.Row
	folders []string
	state   view.State
	columns []display.Column
	format  output.Format

	hideEmpty bool
}

// collapsedCount returns how many shown folders are collapsed.
func (l *listing) collapsedCount() int {
	n := 0
	for _, f := range l.folders {
		if l.state.IsCollapsed(f) {
			n++
		}
	}
	return n
}

// hiddenCount returns how many matched assets sit in collapsed folders.
func (l *listing) hiddenCount() int {
	return len(l.matched) - view.ItemCount(l.rows)
}

// filterOptions builds the filter criteria of the --query, --folder and
// --tag flags and checks the folder patterns before any data is read.
//
// Parameters:
//   - opts: Parsed flags
//
// Returns:
//   - filtering.FilterOptions: Criteria with "all" mapped to no filter
//   - error: ExitError with ExitConfigError for a malformed folder pattern
func filterOptions(opts *listOptions) (filtering.FilterOptions, error) {
	filterOpts := filtering.FromFlags(opts.query, flagFilter(opts.folder), flagFilter(opts.tag))
	if err := filterOpts.Validate(); err != nil {
		return filterOpts, errors.NewExitError(errors.ExitConfigError,
			errors.NewFlagValidationError("folder", err.Error(), nil))
	}
	if strings.TrimSpace(filterOpts.Query) != "" && !filterOpts.HasQuery() {
		warnings.Warnf("query %q has no word of two or more characters and matches every asset", filterOpts.Query)
	}
	if !filterOpts.IsEmpty() {
		verbose.Infof("Filtering by query %q, folder %q, tag %q", filterOpts.Query, filterOpts.Folder, filterOpts.Tag)
	}
	return filterOpts, nil
}

// runList executes list and search.
//
// It performs the following operations:
//   - Step 1: Validates the output format and filter flags
//   - Step 2: Loads the config and the data file
//   - Step 3: Filters the assets and derives the rows of the browsing state
//   - Step 4: Renders a table or a structured document
//
// Parameters:
//   - w: Destination writer
//   - opts: Parsed flags
//
// Returns:
//   - error: ExitError with ExitConfigError for flag, config and data errors,
//     ExitNoMatches when --fail-empty is set and nothing matched
func runList(w io.Writer, opts *listOptions) error {
	if err := output.ValidateFormat(opts.output); err != nil {
		return errors.NewExitError(errors.ExitConfigError,
			errors.NewFlagValidationError("output", err.Error(), []string{"table", "json", "csv", "xml", "yaml"}))
	}

	var (
		l   *listing
		err error
	)
	warns := warnings.Collect(func() {
		var filterOpts filtering.FilterOptions
		if filterOpts, err = filterOptions(opts); err != nil {
			return
		}
		var snap *snapshot
		if snap, err = loadSnapshot(opts.config, opts.data); err != nil {
			return
		}
		l, err = buildListing(snap, opts, filterOpts)
	})
	if err != nil {
		return err
	}

	if err := writeListing(w, l, opts, warns); err != nil {
		return err
	}

	if opts.failEmpty && len(l.matched) == 0 {
		verbose.Infof("Exit code %d: no assets matched", errors.ExitNoMatches)
		return errors.NewExitErrorf(errors.ExitNoMatches, "no assets matched")
	}
	return nil
}

// buildListing applies the flags and config to a snapshot.
//
// The folder and tag criteria narrow the snapshot first. The search query
// becomes the term of the browsing state, and view.Derive turns the narrowed
// assets and the state into rows.
//
// Parameters:
//   - snap: Loaded catalogue
//   - opts: Parsed flags
//   - filterOpts: Validated criteria from filterOptions
//
// Returns:
//   - *listing: Filtered and sorted listing with its browsing state
//   - error: ExitError with ExitConfigError for invalid layouts or columns
func buildListing(snap *snapshot, opts *listOptions, filterOpts filtering.FilterOptions) (*listing, error) {
	var filter filtering.AssetFilter = &filtering.OptionsFilter{Options: filterOpts.WithQuery("")}
	scoped, err := filter.Filter(snap.records)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, err)
	}

	state := view.New().WithTerm(filterOpts.Query)
	matched := view.Matches(scoped, state)
	folders := grouping.Folders(matched)
	verbose.Infof("Filters kept %d of %d assets", len(matched), len(snap.records))

	format := output.ParseFormat(snap.cfg.Format)
	if opts.output != "" {
		format = output.ParseFormat(opts.output)
	}

	state, err = buildState(state, snap, opts, folders)
	if err != nil {
		return nil, err
	}

	names := snap.cfg.Columns
	if len(opts.columns) > 0 {
		names = utils.SplitAll(opts.columns, ",")
	}
	columns, err := display.ParseColumns(names)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError,
			errors.NewFlagValidationError("columns", err.Error(), display.ColumnKeys()))
	}

	return &listing{
		total:   len(snap.records),
		matched: matched,
		rows:    view.Derive(scoped, state),
		folders: folders,
		state:   state,
		columns: columns,
		format:  format,

		hideEmpty: opts.hideEmpty || snap.cfg.HideEmpty,
	}, nil
}

// buildState applies the config and the flags to the browsing state.
//
// Configured collapsed folders come first, --collapse adds to them,
// --collapse-all collapses every shown folder and --toggle-all flips all of
// them at once. Unknown --expand IDs are reported as warnings.
func buildState(state view.State, snap *snapshot, opts *listOptions, folders []string) (view.State, error) {
	state = state.SetCollapsed(snap.cfg.Collapsed...)
	for _, f := range opts.collapse {
		if !state.IsCollapsed(f) {
			state = state.ToggleFolder(f)
		}
	}
	if opts.collapseAll {
		state = state.SetCollapsed(append(state.CollapsedFolders(), folders...)...)
	}
	if opts.toggleAll {
		state = state.ToggleAll(folders)
	}
	if collapsed := state.CollapsedFolders(); len(collapsed) > 0 {
		verbose.Infof("Collapsed folders: %s", strings.Join(collapsed, ", "))
	}

	for _, id := range opts.expand {
		if _, ok := snap.records.Find(id); !ok {
			warnings.Warnf("--expand: no asset with id %q in %s\n", id, snap.source())
		}
		if !state.IsExpanded(id) {
			state = state.ToggleDetail(id)
		}
	}

	layout := snap.cfg.Layout
	if opts.layout != "" {
		layout = opts.layout
	}
	if layout != "" {
		idx, err := view.OptionIndex(layout)
		if err != nil {
			return state, errors.NewExitError(errors.ExitConfigError,
				errors.NewFlagValidationError("layout", err.Error(), view.LayoutNames()))
		}
		state = state.SelectOption(idx, len(view.Options))
	}
	return state, nil
}

// writeListing writes a listing as a table or a structured document.
//
// Structured output lists every matched asset, including those in collapsed
// folders.
//
// Parameters:
//   - w: Destination writer
//   - l: Listing to write
//   - opts: Parsed flags
//   - warns: Warnings collected while building the listing
//
// Returns:
//   - error: When writing the structured document fails
func writeListing(w io.Writer, l *listing, opts *listOptions, warns []string) error {
	if output.IsStructuredFormat(l.format) {
		result := &output.ListResult{
			Summary: output.ListSummary{
				TotalAssets: l.total,
				Matched:     len(l.matched),
				Folders:     len(l.folders),
				Query:       opts.query,
				Folder:      flagFilter(opts.folder),
				Tag:         flagFilter(opts.tag),
			},
			Assets:   output.NewListAssets(l.matched),
			Warnings: warns,
		}
		if err := output.WriteListResult(w, l.format, result); err != nil {
			return fmt.Errorf("failed to write %s output: %w", l.format, err)
		}
		return nil
	}

	renderListing(w, l, opts)
	display.PrintWarnings(w, warns)
	return nil
}

// renderListing writes the table form of a listing.
//
// Parameters:
//   - w: Destination writer
//   - l: Listing to render
//   - opts: Parsed flags
func renderListing(w io.Writer, l *listing, opts *listOptions) {
	if len(l.matched) == 0 {
		display.PrintNoAssetsMessageWithFilters(w, opts.query, flagFilter(opts.folder), flagFilter(opts.tag))
		return
	}

	display.NewRenderer(l.columns).
		WithLayout(l.state.SelectedLayout()).
		WithWidth(renderWidth(opts.width)).
		WithHideEmpty(l.hideEmpty).
		Render(w, l.rows)

	if opts.summary {
		_, _ = fmt.Fprintln(w)
		display.PrintSummary(w, display.Summary{
			Shown:     len(l.matched),
			Total:     l.total,
			Folders:   len(l.folders),
			Collapsed: l.collapsedCount(),
			Hidden:    l.hiddenCount(),
		})
	}
}
