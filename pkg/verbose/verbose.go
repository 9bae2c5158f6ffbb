// Package verbose writes --verbose debug output for assetview commands.
//
// Every line starts with "[DEBUG] ". Nothing is written until Enable is
// called, so call sites never need to check IsEnabled before logging unless
// building the message is expensive.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ajxudir/assetview/pkg/utils"
)

const prefix = "[DEBUG] "

// continuation indents follow-up lines under the prefix.
const continuation = "        "

// maxPathWidth bounds paths printed in watcher events.
const maxPathWidth = 100

var (
	enabled atomic.Bool

	mu     sync.Mutex
	writer io.Writer = os.Stderr
)

// Enable turns debug output on.
func Enable() {
	enabled.Store(true)
}

// Disable turns debug output off.
func Disable() {
	enabled.Store(false)
}

// IsEnabled reports whether debug output is on.
//
// Returns:
//   - bool: true after Enable, false after Disable or by default
func IsEnabled() bool {
	return enabled.Load()
}

// SetWriter redirects debug output. A nil writer is ignored.
//
// Parameters:
//   - w: Destination for debug lines (os.Stderr by default)
func SetWriter(w io.Writer) {
	if w == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	writer = w
}

// emit writes the first line with the debug prefix and any further lines
// indented beneath it. Trailing newlines in the input are dropped so callers
// may or may not end their format strings with one.
func emit(first string, more ...string) {
	if !enabled.Load() {
		return
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(strings.TrimRight(first, "\n"))
	sb.WriteByte('\n')
	for _, line := range more {
		sb.WriteString(continuation)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	mu.Lock()
	defer mu.Unlock()
	_, _ = io.WriteString(writer, sb.String())
}

// Printf writes a formatted debug line.
//
// Parameters:
//   - format: fmt format string; a trailing newline is optional
//   - args: Values for format
func Printf(format string, args ...any) {
	if enabled.Load() {
		emit(fmt.Sprintf(format, args...))
	}
}

// Info writes msg as a debug line.
func Info(msg string) {
	emit(msg)
}

// Infof is Printf for messages that report a decision, such as an exit code
// or a filter result.
func Infof(format string, args ...any) {
	Printf(format, args...)
}

// HelpRef points the user at the built-in help for a topic.
//
// Fields:
//   - Topic: Human readable topic name
//   - Command: assetview invocation that explains the topic
//   - Hint: One line summary of the rules
type HelpRef struct {
	Topic   string
	Command string
	Hint    string
}

var helpRefs = map[string]HelpRef{
	"config": {
		Topic:   "Configuration",
		Command: "assetview config --show-defaults",
		Hint:    "Keys live in .assetview.yml; extends layers files over the defaults",
	},
	"data": {
		Topic:   "Data files",
		Command: "assetview help list",
		Hint:    "Assets are a JSON or YAML list, or an object with an 'assets' key",
	},
	"search": {
		Topic:   "Search",
		Command: "assetview help search",
		Hint:    "Every token of two or more characters must appear in the asset text",
	},
	"folders": {
		Topic:   "Folder filters",
		Command: "assetview help folders",
		Hint:    "Use glob patterns such as 'Clients/**' and prefix with '!' to exclude",
	},
	"layouts": {
		Topic:   "Layouts",
		Command: "assetview help list",
		Hint:    "Choose standard, grid, details or badges with --layout",
	},
	"watch": {
		Topic:   "Watch mode",
		Command: "assetview help watch",
		Hint:    "The view is re-derived after the data file stops changing",
	},
}

// WithDocRef writes message followed by where to read more about topic.
// Unknown topics print just the message. Topic lookup ignores case.
//
// Parameters:
//   - topic: One of config, data, search, folders, layouts or watch
//   - message: The debug message
//
// Example output:
//
//	[DEBUG] Data file ./assets.json does not exist
//	        📖 Data files: assetview help list
//	        💡 Assets are a JSON or YAML list, or an object with an 'assets' key
func WithDocRef(topic, message string) {
	ref, ok := helpRefs[strings.ToLower(topic)]
	if !ok {
		emit(message)
		return
	}
	emit(message, "📖 "+ref.Topic+": "+ref.Command, "💡 "+ref.Hint)
}

// ConfigLoaded records which config file a command runs with.
//
// Parameters:
//   - path: The root config file
//   - extended: Files and the "default" layer merged beneath it
func ConfigLoaded(path string, extended []string) {
	if len(extended) == 0 {
		emit("Config loaded: " + path)
		return
	}
	emit("Config loaded: "+path, fmt.Sprintf("Extends: %v", extended))
}

// AssetFiltered records why a filter stage dropped an asset.
func AssetFiltered(id, reason string) {
	emit(fmt.Sprintf("Asset '%s' filtered: %s", id, reason))
}

// FileEvent records a watcher event. Long paths are shortened.
//
// Parameters:
//   - op: Event operation (e.g. "WRITE", "CREATE")
//   - path: Path the event refers to
func FileEvent(op, path string) {
	emit(fmt.Sprintf("File event %s: %s", op, utils.Truncate(path, maxPathWidth, "...")))
}
