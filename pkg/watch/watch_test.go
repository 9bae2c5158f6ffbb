package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// startWatcher runs a watcher on path and forwards its events to a channel.
// The returned stop function cancels the watcher and waits for Run to return.
func startWatcher(t *testing.T, path string, debounce time.Duration) (<-chan Event, func() error) {
	t.Helper()

	w, err := New(path, debounce)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan Event, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(ev Event) { events <- ev })
	}()

	return events, func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop")
			return nil
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcherCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assets.json")
	writeFile(t, path, "[]")

	events, stop := startWatcher(t, path, 50*time.Millisecond)

	for _, content := range []string{`[{"id":"1"}]`, `[{"id":"2"}]`, `[{"id":"3"}]`} {
		writeFile(t, path, content)
	}

	select {
	case ev := <-events:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, ev.Path)
		assert.GreaterOrEqual(t, ev.Count, 1)
		assert.False(t, ev.Removed())
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	select {
	case ev := <-events:
		t.Fatalf("unexpected second event: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}

	assert.NoError(t, stop())
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assets.json")
	writeFile(t, path, "[]")

	events, stop := startWatcher(t, path, 20*time.Millisecond)
	writeFile(t, filepath.Join(dir, "other.json"), "{}")

	select {
	case ev := <-events:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}

	assert.NoError(t, stop())
}

func TestWatcherReportsRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assets.yml")
	writeFile(t, path, "[]")

	events, stop := startWatcher(t, path, 20*time.Millisecond)
	require.NoError(t, os.Remove(path))

	select {
	case ev := <-events:
		assert.True(t, ev.Removed())
	case <-time.After(5 * time.Second):
		t.Fatal("no removal event")
	}

	assert.NoError(t, stop())
}

func TestWatcherStopsWithoutEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.json")
	_, stop := startWatcher(t, path, 0)
	assert.NoError(t, stop())
}

func TestNew(t *testing.T) {
	t.Run("default debounce", func(t *testing.T) {
		w, err := New(filepath.Join(t.TempDir(), "assets.json"), 0)
		require.NoError(t, err)
		defer func() { _ = w.fsw.Close() }()

		assert.Equal(t, DefaultDebounce, w.debounce)
		assert.True(t, filepath.IsAbs(w.Path()))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing", "assets.json"), time.Millisecond)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to watch")
	})
}

func TestEventRemoved(t *testing.T) {
	assert.True(t, Event{Op: "REMOVE"}.Removed())
	assert.True(t, Event{Op: "RENAME"}.Removed())
	assert.False(t, Event{Op: "WRITE"}.Removed())
	assert.False(t, Event{Op: "CREATE"}.Removed())
}
