// Package warnings routes non-fatal messages (records without an id, files
// that changed during a reload) to a swappable writer so commands can print
// them to stderr or fold them into structured output.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning to the configured warning writer.
//
// A trailing newline is added when the message does not end with one, so
// every call produces exactly one or more whole lines.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()

	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = io.WriteString(w, msg)
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}

// lineBuffer collects whole non-blank lines written to it.
type lineBuffer struct {
	mu    sync.Mutex
	lines []string
}

func (b *lineBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, line := range strings.Split(string(p), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			b.lines = append(b.lines, trimmed)
		}
	}
	return len(p), nil
}

// Collect runs fn with warnings redirected into a slice and returns them.
//
// Structured output formats use this so warnings land in the document's
// "warnings" field instead of on stderr.
//
// Parameters:
//   - fn: Function whose warnings should be captured
//
// Returns:
//   - []string: Warning lines in emission order; nil when none were raised
//
// Example:
//
//	msgs := warnings.Collect(func() {
//	    collection, err = assets.Load(path, format, maxSize)
//	})
func Collect(fn func()) []string {
	buf := &lineBuffer{}
	restore := SetWarningWriter(buf)
	defer restore()

	fn()

	buf.mu.Lock()
	defer buf.mu.Unlock()
	return buf.lines
}
