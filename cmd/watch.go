package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ajxudir/assetview/pkg/constants"
	"github.com/ajxudir/assetview/pkg/errors"
	"github.com/ajxudir/assetview/pkg/filtering"
	"github.com/ajxudir/assetview/pkg/output"
	"github.com/ajxudir/assetview/pkg/verbose"
	"github.com/ajxudir/assetview/pkg/warnings"
	"github.com/ajxudir/assetview/pkg/watch"
	"github.com/spf13/cobra"
)

var (
	watchOpts         = &listOptions{}
	watchDebounceFlag time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the listing whenever the data file changes",
	Long: `Render the listing, then watch the data file and render it again after
every burst of changes. Collapsed folders, expanded assets and the layout are
kept across reloads. Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, os.Stdout, watchOpts)
	},
}

func init() {
	addListFlags(watchCmd, watchOpts)
	watchCmd.Flags().StringVarP(&watchOpts.query, "query", "q", "", "Search query (words must all match)")
	watchCmd.Flags().DurationVar(&watchDebounceFlag, "debounce", 0, "Quiet period before re-rendering (default from config, 200ms)")
	_ = watchCmd.Flags().MarkHidden("fail-empty")
}

// runWatch renders the listing once and again after every debounced change
// of the data file, until ctx is cancelled.
//
// A reload that fails prints the error and keeps the previous snapshot, so
// a half-written file does not end the session.
//
// Parameters:
//   - ctx: Cancellation
//   - w: Destination writer
//   - opts: Parsed flags
//
// Returns:
//   - error: ExitError for the initial load, or a watcher failure
func runWatch(ctx context.Context, w io.Writer, opts *listOptions) error {
	if err := output.ValidateFormat(opts.output); err != nil {
		return errors.NewExitError(errors.ExitConfigError,
			errors.NewFlagValidationError("output", err.Error(), []string{"table", "json", "csv", "xml", "yaml"}))
	}

	var (
		filterOpts filtering.FilterOptions
		snap       *snapshot
		err        error
	)
	warns := warnings.Collect(func() {
		if filterOpts, err = filterOptions(opts); err != nil {
			return
		}
		snap, err = loadSnapshot(opts.config, opts.data)
	})
	if err != nil {
		return err
	}
	if err := renderWatch(w, snap, opts, filterOpts, warns); err != nil {
		return err
	}

	debounce := watchDebounceFlag
	if debounce <= 0 {
		debounce = snap.cfg.GetDebounce()
	}

	watcher, err := watch.New(snap.path, debounce)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	_, _ = fmt.Fprintf(w, "\nWatching %s (Ctrl+C to stop)\n", snap.path)
	return watcher.Run(ctx, func(ev watch.Event) {
		if ev.Removed() {
			_, _ = fmt.Fprintf(w, "\n%s %s was removed; waiting for it to come back\n", constants.IconWarn, snap.source())
			return
		}

		_, _ = fmt.Fprintf(w, "\n%s %s changed, reloading\n\n", constants.IconReload, snap.source())
		var reloadErr error
		warns := warnings.Collect(func() {
			reloadErr = snap.reload()
		})
		if reloadErr == nil {
			reloadErr = renderWatch(w, snap, opts, filterOpts, warns)
		}
		if reloadErr != nil {
			errors.PrintErrorWithHints(w, []error{reloadErr}, verbose.IsEnabled())
		}
	})
}

// renderWatch writes one rendering of the snapshot.
func renderWatch(w io.Writer, snap *snapshot, opts *listOptions, filterOpts filtering.FilterOptions, warns []string) error {
	var (
		l   *listing
		err error
	)
	warns = append(warns, warnings.Collect(func() {
		l, err = buildListing(snap, opts, filterOpts)
	})...)
	if err != nil {
		return err
	}
	return writeListing(w, l, opts, warns)
}
