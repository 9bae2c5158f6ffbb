// Package watch reloads an asset data file when it changes on disk.
//
// The watcher observes the file's directory rather than the file itself, so
// editors that save by writing a temporary file and renaming it over the
// original are still seen. Bursts of events are coalesced: the handler runs
// once after the file has been quiet for the debounce period.
//
//	w, err := watch.New("assets.json", 200*time.Millisecond)
//	if err != nil {
//	    return err
//	}
//	err = w.Run(ctx, func(ev watch.Event) {
//	    reload(ev.Path)
//	})
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ajxudir/assetview/pkg/verbose"
)

// DefaultDebounce is the quiet period used when New gets a non-positive one.
const DefaultDebounce = 200 * time.Millisecond

// ErrWatcherClosed reports that fsnotify closed its channels before the
// context was cancelled.
var ErrWatcherClosed = errors.New("file watcher closed")

// Event describes one debounced change.
//
// Fields:
//   - Path: The watched file
//   - Op: The last operation seen in the burst (e.g. "WRITE", "REMOVE")
//   - Count: Number of raw events coalesced into this one
type Event struct {
	Path  string
	Op    string
	Count int
}

// Removed reports whether the burst ended with the file gone.
//
// Returns:
//   - bool: true for REMOVE and RENAME operations
func (e Event) Removed() bool {
	return e.Op == fsnotify.Remove.String() || e.Op == fsnotify.Rename.String()
}

// Watcher watches a single file.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// New creates a watcher for path.
//
// Parameters:
//   - path: File to watch; its directory must exist
//   - debounce: Quiet period before the handler runs; <= 0 uses DefaultDebounce
//
// Returns:
//   - *Watcher: The watcher, ready for Run
//   - error: When the directory cannot be watched
func New(path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	verbose.Infof("Watching %s (debounce %s)", abs, debounce)
	return &Watcher{path: abs, debounce: debounce, fsw: fsw}, nil
}

// Path returns the absolute path of the watched file.
//
// Returns:
//   - string: Watched file path
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers debounced change events to fn until ctx is cancelled.
//
// fn runs on the Run goroutine, so a slow handler delays the next event
// rather than overlapping it. Run closes the underlying watcher before it
// returns and must not be called twice.
//
// Parameters:
//   - ctx: Cancellation; Run returns nil once ctx is done
//   - fn: Change handler
//
// Returns:
//   - error: ErrWatcherClosed if fsnotify shut down on its own
func (w *Watcher) Run(ctx context.Context, fn func(Event)) error {
	defer func() { _ = w.fsw.Close() }()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var pending Event
	for {
		select {
		case <-ctx.Done():
			verbose.Info("Watcher stopped")
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return ErrWatcherClosed
			}
			if !w.relevant(ev) {
				continue
			}
			verbose.FileEvent(ev.Op.String(), ev.Name)
			pending = Event{Path: w.path, Op: ev.Op.String(), Count: pending.Count + 1}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			verbose.Printf("Watcher error: %v\n", err)

		case <-timer.C:
			if pending.Count == 0 {
				continue
			}
			ev := pending
			pending = Event{}
			fn(ev)
		}
	}
}

// relevant keeps content-changing events on the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
