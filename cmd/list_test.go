package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/assetview/pkg/config"
	"github.com/ajxudir/assetview/pkg/constants"
	"github.com/ajxudir/assetview/pkg/errors"
	"github.com/ajxudir/assetview/pkg/output"
	"github.com/ajxudir/assetview/pkg/testutil"
	"github.com/ajxudir/assetview/pkg/view"
)

// assertInOrder checks that every needle occurs in s, in the given order.
func assertInOrder(t *testing.T, s string, needles ...string) {
	t.Helper()
	pos := 0
	for _, n := range needles {
		i := strings.Index(s[pos:], n)
		if !assert.GreaterOrEqual(t, i, 0, "%q not found after offset %d in:\n%s", n, pos, s) {
			return
		}
		pos += i + len(n)
	}
}

// TestRunListTable tests the default table listing.
//
// It verifies:
//   - Folder headers appear in sorted order with their counts
//   - Assets are sorted by name within a folder, ignoring case
//   - The summary line counts assets and folders
func TestRunListTable(t *testing.T) {
	setupCatalogue(t)

	var buf bytes.Buffer
	require.NoError(t, runList(&buf, newListOptions()))
	out := buf.String()

	assert.Contains(t, out, "NAME")
	assertInOrder(t, out,
		constants.IconFolderOpen+" Archive (1)", "Old brochure",
		constants.IconFolderOpen+" Clients/Acme (2)", "Acme Invoice Q1", "acme logo",
		constants.IconFolderOpen+" Clients/Globex (1)", "Globex Contract",
		constants.IconFolderOpen+" Vendors (1)", "Paper supplier price list",
	)
	assert.Contains(t, out, "Showing 5 of 5 assets in 4 folders")
}

// TestRunListFilters tests the query, folder and tag filters.
func TestRunListFilters(t *testing.T) {
	tests := []struct {
		name    string
		opts    func(o *listOptions)
		want    []string
		notWant []string
		summary string
	}{
		{
			name:    "query matches every word",
			opts:    func(o *listOptions) { o.query = "acme invoice" },
			want:    []string{"Acme Invoice Q1"},
			notWant: []string{"acme logo", "Old brochure"},
			summary: "Showing 1 of 5 assets in 1 folder",
		},
		{
			name:    "query searches notes",
			opts:    func(o *listOptions) { o.query = "renewal" },
			want:    []string{"Globex Contract"},
			summary: "Showing 1 of 5 assets in 1 folder",
		},
		{
			name:    "folder glob",
			opts:    func(o *listOptions) { o.folder = "Clients/*" },
			want:    []string{"Acme Invoice Q1", "acme logo", "Globex Contract"},
			notWant: []string{"Old brochure", "Paper supplier"},
			summary: "Showing 3 of 5 assets in 2 folders",
		},
		{
			name:    "folder negation",
			opts:    func(o *listOptions) { o.folder = "!Clients/*" },
			want:    []string{"Old brochure", "Paper supplier price list"},
			notWant: []string{"Acme Invoice Q1"},
		},
		{
			name:    "tag any-of",
			opts:    func(o *listOptions) { o.tag = "legal,legacy" },
			want:    []string{"Globex Contract", "Old brochure"},
			notWant: []string{"acme logo"},
			summary: "Showing 2 of 5 assets in 2 folders",
		},
		{
			name:    "all disables a filter",
			opts:    func(o *listOptions) { o.folder = "all"; o.tag = "all" },
			want:    []string{"Old brochure", "Paper supplier price list"},
			summary: "Showing 5 of 5 assets in 4 folders",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCatalogue(t)
			opts := newListOptions()
			tt.opts(opts)

			var buf bytes.Buffer
			require.NoError(t, runList(&buf, opts))
			out := buf.String()

			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
			if tt.summary != "" {
				assert.Contains(t, out, tt.summary)
			}
		})
	}
}

// TestRunListCollapse tests collapsing folders.
//
// It verifies:
//   - --collapse hides the items of a folder but keeps its header and count
//   - Configured collapsed folders apply without flags
//   - --collapse-all collapses every shown folder
//   - --toggle-all collapses everything when a folder is open and opens
//     everything when all are collapsed
func TestRunListCollapse(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		setupCatalogue(t)
		opts := newListOptions()
		opts.collapse = []string{"Clients/Acme"}

		var buf bytes.Buffer
		require.NoError(t, runList(&buf, opts))
		out := buf.String()

		assert.Contains(t, out, constants.IconFolderClosed+" Clients/Acme (2)")
		assert.NotContains(t, out, "acme logo")
		assert.Contains(t, out, "Globex Contract")
		assert.Contains(t, out, "(1 collapsed, 2 hidden)")
	})

	t.Run("collapse is case-sensitive", func(t *testing.T) {
		setupCatalogue(t)
		opts := newListOptions()
		opts.collapse = []string{"clients/acme"}

		var buf bytes.Buffer
		require.NoError(t, runList(&buf, opts))
		assert.Contains(t, buf.String(), "acme logo")
	})

	t.Run("config", func(t *testing.T) {
		dir := setupCatalogue(t)
		writeFile(t, dir, config.FileName, "collapsed:\n  - Vendors\n  - Archive\n")

		var buf bytes.Buffer
		require.NoError(t, runList(&buf, newListOptions()))
		out := buf.String()

		assert.Contains(t, out, constants.IconFolderClosed+" Vendors (1)")
		assert.Contains(t, out, constants.IconFolderClosed+" Archive (1)")
		assert.NotContains(t, out, "Old brochure")
		assert.Contains(t, out, "(2 collapsed, 2 hidden)")
	})

	t.Run("all", func(t *testing.T) {
		setupCatalogue(t)
		opts := newListOptions()
		opts.collapseAll = true

		var buf bytes.Buffer
		require.NoError(t, runList(&buf, opts))
		out := buf.String()

		assert.NotContains(t, out, constants.IconFolderOpen)
		assert.NotContains(t, out, "Old brochure")
		assert.Contains(t, out, "(4 collapsed, 5 hidden)")
	})

	t.Run("collapse-all keeps collapsed folders collapsed", func(t *testing.T) {
		dir := setupCatalogue(t)
		writeFile(t, dir, config.FileName, "collapsed: [Archive, Clients/Acme, Clients/Globex, Vendors]\n")
		opts := newListOptions()
		opts.collapseAll = true

		var buf bytes.Buffer
		require.NoError(t, runList(&buf, opts))
		assert.Contains(t, buf.String(), "(4 collapsed, 5 hidden)")
	})

	t.Run("toggle-all with an open folder", func(t *testing.T) {
		dir := setupCatalogue(t)
		writeFile(t, dir, config.FileName, "collapsed: [Vendors]\n")
		opts := newListOptions()
		opts.toggleAll = true

		var buf bytes.Buffer
		require.NoError(t, runList(&buf, opts))
		out := buf.String()

		assert.NotContains(t, out, constants.IconFolderOpen)
		assert.Contains(t, out, "(4 collapsed, 5 hidden)")
	})

	t.Run("toggle-all with every folder collapsed", func(t *testing.T) {
		dir := setupCatalogue(t)
		writeFile(t, dir, config.FileName, "collapsed: [Archive, Clients/Acme, Clients/Globex, Vendors]\n")
		opts := newListOptions()
		opts.toggleAll = true

		var buf bytes.Buffer
		require.NoError(t, runList(&buf, opts))
		out := buf.String()

		assert.NotContains(t, out, constants.IconFolderClosed)
		assert.Contains(t, out, "Old brochure")
		assert.Contains(t, out, "Showing 5 of 5 assets in 4 folders\n")
	})
}

// TestRunListExpand tests --expand.
//
// It verifies:
//   - Expanded assets show their detail block
//   - Unknown identifiers produce a warning, not an error
func TestRunListExpand(t *testing.T) {
	setupCatalogue(t)
	opts := newListOptions()
	opts.expand = []string{"a1", "zz"}

	var buf bytes.Buffer
	require.NoError(t, runList(&buf, opts))
	out := buf.String()

	assert.Contains(t, out, "Notes: Sent to accounts")
	assert.NotContains(t, out, "Notes: Renewal due in March")
	assert.Contains(t, out, `no asset with id "zz"`)
}

// TestRunListLayouts tests that every layout renders the catalogue.
func TestRunListLayouts(t *testing.T) {
	for _, name := range view.LayoutNames() {
		t.Run(name, func(t *testing.T) {
			setupCatalogue(t)
			opts := newListOptions()
			opts.layout = name

			var buf bytes.Buffer
			require.NoError(t, runList(&buf, opts))
			assertInOrder(t, buf.String(), "Archive", "Old brochure", "Vendors", "Paper supplier price list")
		})
	}
}

// TestLayoutNamesMatchConfig tests that config validation accepts exactly
// the layouts the view package offers.
func TestLayoutNamesMatchConfig(t *testing.T) {
	assert.Equal(t, view.LayoutNames(), config.Layouts)
}

// TestRunListColumns tests column selection and empty-column hiding.
func TestRunListColumns(t *testing.T) {
	t.Run("selected columns", func(t *testing.T) {
		setupCatalogue(t)
		opts := newListOptions()
		opts.columns = []string{"name,folder"}

		var buf bytes.Buffer
		require.NoError(t, runList(&buf, opts))
		out := buf.String()

		assert.Contains(t, out, "FOLDER")
		assert.NotContains(t, out, "DATE ADDED")
	})

	t.Run("unknown column", func(t *testing.T) {
		setupCatalogue(t)
		opts := newListOptions()
		opts.columns = []string{"colour"}

		err := runList(&bytes.Buffer{}, opts)
		requireExitCode(t, err, errors.ExitConfigError)
		assert.Contains(t, err.Error(), "colour")
	})
}

// TestRunListStructured tests structured output.
//
// It verifies:
//   - JSON lists every match in display order with a summary
//   - Collapsed folders do not hide assets from structured output
func TestRunListStructured(t *testing.T) {
	setupCatalogue(t)
	opts := newListOptions()
	opts.output = "json"
	opts.collapse = []string{"Clients/Acme"}
	opts.tag = "finance,brand"

	var buf bytes.Buffer
	require.NoError(t, runList(&buf, opts))

	var result output.ListResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	ids := make([]string, 0, len(result.Assets))
	for _, a := range result.Assets {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"r1", "a1", "a2", "v1"}, ids)
	assert.Equal(t, 5, result.Summary.TotalAssets)
	assert.Equal(t, 4, result.Summary.Matched)
	assert.Equal(t, 3, result.Summary.Folders)
	assert.Equal(t, "finance,brand", result.Summary.Tag)
}

// TestRunListOutputFromConfig tests that the config's format applies when
// no --output flag is given.
func TestRunListOutputFromConfig(t *testing.T) {
	dir := setupCatalogue(t)
	writeFile(t, dir, config.FileName, "format: csv\n")

	var buf bytes.Buffer
	require.NoError(t, runList(&buf, newListOptions()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 6)
}

// TestRunListErrors tests flag validation and exit codes.
func TestRunListErrors(t *testing.T) {
	tests := []struct {
		name     string
		opts     func(o *listOptions)
		code     int
		contains string
	}{
		{"invalid output", func(o *listOptions) { o.output = "html" }, errors.ExitConfigError, "html"},
		{"invalid layout", func(o *listOptions) { o.layout = "table" }, errors.ExitConfigError, "unknown layout"},
		{"invalid folder pattern", func(o *listOptions) { o.folder = "Clients/[" }, errors.ExitConfigError, "invalid folder pattern"},
		{"fail empty", func(o *listOptions) { o.query = "zzzz"; o.failEmpty = true }, errors.ExitNoMatches, "no assets matched"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCatalogue(t)
			opts := newListOptions()
			tt.opts(opts)

			err := runList(&bytes.Buffer{}, opts)
			requireExitCode(t, err, tt.code)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

// TestRunListShortQuery tests that a query without a word of two or more
// characters lists everything and says so.
func TestRunListShortQuery(t *testing.T) {
	setupCatalogue(t)
	opts := newListOptions()
	opts.query = "a l"

	var buf bytes.Buffer
	require.NoError(t, runList(&buf, opts))
	out := buf.String()

	assert.Contains(t, out, "Showing 5 of 5 assets")
	assert.Contains(t, out, `query "a l" has no word of two or more characters`)
}

// TestRunListNoMatches tests the empty listing without --fail-empty.
func TestRunListNoMatches(t *testing.T) {
	setupCatalogue(t)
	opts := newListOptions()
	opts.query = "zzzz"
	opts.tag = "legal"

	var buf bytes.Buffer
	require.NoError(t, runList(&buf, opts))
	assert.Equal(t, "No assets found (query: zzzz) (tag: legal)\n", buf.String())
}

// TestListAndSearchCommands tests the list and search commands end to end.
//
// It verifies:
//   - Flags are parsed into the listing
//   - search joins its arguments into one query
//   - The ls alias works
func TestListAndSearchCommands(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		setupCatalogue(t)
		resetFlags(t, listCmd)

		out := testutil.CaptureStdout(t, func() {
			require.NoError(t, runCommand(t, "ls", "--folder", "Vendors", "--width", "120"))
		})
		assert.Contains(t, out, "Paper supplier price list")
		assert.NotContains(t, out, "Old brochure")
	})

	t.Run("search", func(t *testing.T) {
		setupCatalogue(t)
		resetFlags(t, searchCmd)

		out := testutil.CaptureStdout(t, func() {
			require.NoError(t, runCommand(t, "search", "ACME", "logo", "-o", "json"))
		})
		var result output.ListResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.Len(t, result.Assets, 1)
		assert.Equal(t, "a2", result.Assets[0].ID)
		assert.Equal(t, "ACME logo", result.Summary.Query)
	})

	t.Run("search needs a query", func(t *testing.T) {
		resetFlags(t, searchCmd)
		assert.Error(t, runCommand(t, "search"))
	})
}
