package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ajxudir/assetview/pkg/assets"
	"github.com/ajxudir/assetview/pkg/display"
	"github.com/ajxudir/assetview/pkg/errors"
	"github.com/ajxudir/assetview/pkg/filtering"
	"github.com/ajxudir/assetview/pkg/grouping"
	"github.com/ajxudir/assetview/pkg/output"
	"github.com/ajxudir/assetview/pkg/warnings"
	"github.com/spf13/cobra"
)

var foldersOpts = &listOptions{}

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List folder groups and their asset counts",
	Long:  `List every folder group of the catalogue in display order with the number of assets it holds.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFolders(os.Stdout, foldersOpts)
	},
}

func init() {
	flags := foldersCmd.Flags()
	flags.StringVarP(&foldersOpts.query, "query", "q", "", "Count only assets matching the search query")
	flags.StringVar(&foldersOpts.folder, "folder", "", "Filter by folder patterns (comma-separated globs, !negation)")
	flags.StringVar(&foldersOpts.tag, "tag", "", "Filter by tag (comma-separated, any-of)")
	flags.StringVarP(&foldersOpts.output, "output", "o", "", "Output format: table, json, csv, xml, yaml (default from config)")
	flags.StringVarP(&foldersOpts.config, "config", "c", "", "Config file path")
	flags.StringVarP(&foldersOpts.data, "data", "f", "", "Asset data file (overrides config)")
}

// runFolders executes the folders command.
//
// Parameters:
//   - w: Destination writer
//   - opts: Parsed flags (query, folder, tag, output, config, data)
//
// Returns:
//   - error: ExitError with ExitConfigError for flag, config and data errors
func runFolders(w io.Writer, opts *listOptions) error {
	if err := output.ValidateFormat(opts.output); err != nil {
		return errors.NewExitError(errors.ExitConfigError,
			errors.NewFlagValidationError("output", err.Error(), []string{"table", "json", "csv", "xml", "yaml"}))
	}

	var (
		snap    *snapshot
		matched []assets.Asset
		err     error
	)
	warns := warnings.Collect(func() {
		var filterOpts filtering.FilterOptions
		if filterOpts, err = filterOptions(opts); err != nil {
			return
		}
		if snap, err = loadSnapshot(opts.config, opts.data); err != nil {
			return
		}
		var filter filtering.AssetFilter = &filtering.OptionsFilter{Options: filterOpts}
		if matched, err = filter.Filter(snap.records); err != nil {
			err = errors.NewExitError(errors.ExitConfigError, err)
		}
	})
	if err != nil {
		return err
	}

	groups := grouping.Groups(grouping.GroupAndSort(matched))
	entries := make([]output.FolderEntry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, output.FolderEntry{Name: g.Folder, Count: g.Len()})
	}

	format := output.ParseFormat(snap.cfg.Format)
	if opts.output != "" {
		format = output.ParseFormat(opts.output)
	}

	if output.IsStructuredFormat(format) {
		result := &output.FolderResult{
			Summary:  output.FolderSummary{TotalFolders: len(entries), TotalAssets: len(matched)},
			Folders:  entries,
			Warnings: warns,
		}
		if err := output.WriteFolderResult(w, format, result); err != nil {
			return fmt.Errorf("failed to write %s output: %w", format, err)
		}
		return nil
	}

	if len(entries) == 0 {
		display.PrintNoAssetsMessageWithFilters(w, opts.query, flagFilter(opts.folder), flagFilter(opts.tag))
		display.PrintWarnings(w, warns)
		return nil
	}

	printFolderTable(w, entries)
	_, _ = fmt.Fprintf(w, "\n%d folders, %d assets\n", len(entries), len(matched))
	display.PrintWarnings(w, warns)
	return nil
}

// printFolderTable writes the FOLDER/COUNT table.
func printFolderTable(w io.Writer, entries []output.FolderEntry) {
	table := output.NewTable().AddColumn("FOLDER").AddColumn("COUNT")
	for _, e := range entries {
		table.UpdateWidths(display.FolderLabel(e.Name), strconv.Itoa(e.Count))
	}

	table.Fprint(w)
	for _, e := range entries {
		_, _ = fmt.Fprintln(w, table.FormatRow(display.FolderLabel(e.Name), strconv.Itoa(e.Count)))
	}
}
