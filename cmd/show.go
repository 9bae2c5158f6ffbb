package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ajxudir/assetview/pkg/assets"
	"github.com/ajxudir/assetview/pkg/display"
	"github.com/ajxudir/assetview/pkg/errors"
	"github.com/ajxudir/assetview/pkg/output"
	"github.com/ajxudir/assetview/pkg/view"
	"github.com/spf13/cobra"
)

var (
	showRawFlag    bool
	showOutputFlag string
	showConfigFlag string
	showDataFlag   string
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show every field of one asset",
	Long: `Show the full detail block of the asset with the given identifier.

With --raw the record is printed as it appears in the data file, keeping the
source key order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(os.Stdout, args[0])
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRawFlag, "raw", false, "Print the source record (JSON unless -o yaml)")
	showCmd.Flags().StringVarP(&showOutputFlag, "output", "o", "", "Output format: table, json, csv, xml, yaml")
	showCmd.Flags().StringVarP(&showConfigFlag, "config", "c", "", "Config file path")
	showCmd.Flags().StringVarP(&showDataFlag, "data", "f", "", "Asset data file (overrides config)")
}

// runShow executes the show command.
//
// Parameters:
//   - w: Destination writer
//   - id: Asset identifier
//
// Returns:
//   - error: ExitError with ExitFailure when no asset has the identifier,
//     ExitConfigError for flag, config and data errors
func runShow(w io.Writer, id string) error {
	if err := output.ValidateFormat(showOutputFlag); err != nil {
		return errors.NewExitError(errors.ExitConfigError,
			errors.NewFlagValidationError("output", err.Error(), []string{"table", "json", "csv", "xml", "yaml"}))
	}

	snap, err := loadSnapshot(showConfigFlag, showDataFlag)
	if err != nil {
		return err
	}

	a, ok := snap.records.Find(id)
	if !ok {
		return errors.NewExitError(errors.ExitFailure, errors.NewNotFoundError("asset", id, snap.source()))
	}

	format := output.ParseFormat(showOutputFlag)
	if showRawFlag && format == output.FormatTable {
		format = output.FormatJSON
	}

	if output.IsStructuredFormat(format) {
		if err := output.WriteAsset(w, format, a, showRawFlag); err != nil {
			return fmt.Errorf("failed to write %s output: %w", format, err)
		}
		return nil
	}

	columns, err := display.ParseColumns(snap.cfg.Columns)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, errors.NewConfigValidationError("columns", err.Error()))
	}
	printAssetDetails(w, a, columns)
	return nil
}

// printAssetDetails writes the title line and the detail block of an asset,
// listing the row columns of the configuration first.
//
// Example output:
//
//	Acme invoices (a1)
//	  Name: Acme invoices
//	  Folder: Clients/Acme
//	  ...
func printAssetDetails(w io.Writer, a assets.Asset, columns []display.Column) {
	_, _ = fmt.Fprintf(w, "%s (%s)\n", a.Name, a.ID)
	row := view.Row{Kind: view.RowItem, Folder: a.Folder, Asset: a, Expanded: true}
	for _, line := range display.DetailLines(row, columns) {
		_, _ = fmt.Fprintln(w, "  "+line)
	}
}
