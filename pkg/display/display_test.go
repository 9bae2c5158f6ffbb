package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/assetview/pkg/constants"
	"github.com/ajxudir/assetview/pkg/testutil"
	"github.com/ajxudir/assetview/pkg/utils"
	"github.com/ajxudir/assetview/pkg/view"
)

func render(r *Renderer, state view.State) string {
	var buf bytes.Buffer
	r.Render(&buf, view.Derive(testutil.SampleAssets(), state))
	return buf.String()
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

// TestColumns tests the default column configuration.
func TestColumns(t *testing.T) {
	visible := Visible(DefaultColumns)
	require.Len(t, visible, 4)
	assert.Equal(t, "Name", visible[0].Header)
	assert.Equal(t, 6, visible[0].Unit)
	assert.Equal(t, "Date Added", visible[3].Header)

	detail := Detail(DefaultColumns)
	require.Len(t, detail, 5)
	assert.Equal(t, "Assigned Salespersons", detail[2].Header)
	assert.False(t, detail[0].Visible())
}

// TestParseColumns tests row column selection.
func TestParseColumns(t *testing.T) {
	t.Run("empty keeps defaults", func(t *testing.T) {
		cols, err := ParseColumns(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultColumns, cols)
		cols[0].Unit = 99
		assert.Equal(t, 6, DefaultColumns[0].Unit)
	})

	t.Run("selection by key and header", func(t *testing.T) {
		cols, err := ParseColumns([]string{"name", "Added By"})
		require.NoError(t, err)

		visible := Visible(cols)
		require.Len(t, visible, 2)
		assert.Equal(t, 6, visible[0].Unit)
		assert.Equal(t, "Added By", visible[1].Header)
		assert.Equal(t, 1, visible[1].Unit)

		assert.Len(t, Detail(cols), len(DefaultColumns)-2)
		assert.Len(t, cols, len(DefaultColumns))
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := ParseColumns([]string{"price"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"price"`)
		assert.Contains(t, err.Error(), "date_added")
	})

	t.Run("duplicate column", func(t *testing.T) {
		_, err := ParseColumns([]string{"name", "NAME"})
		assert.Error(t, err)
	})
}

// TestBadge tests badge rendering and truncation.
func TestBadge(t *testing.T) {
	assert.Equal(t, "[finance]", Badge("finance", constants.BadgeWidth))
	assert.Equal(t, "[quarter…]", Badge("quarterly-report", 10))
	assert.Equal(t, "[Details]", Badge("Details", constants.BadgeWidthToggle))
	assert.Equal(t, "[abc]", Badge("abc", 2))
	assert.LessOrEqual(t, utils.DisplayWidth(Badge(strings.Repeat("x", 50), constants.BadgeWidth)), constants.BadgeWidth)

	assert.Equal(t, "[a] [b]", Badges([]string{"a", " ", "b"}, constants.BadgeWidth))
	assert.Equal(t, "", Badges(nil, constants.BadgeWidth))
}

// TestCellValue tests field rendering for columns.
func TestCellValue(t *testing.T) {
	a := testutil.NewAsset("1").WithName("n").WithTags("x", "y").Build()
	assert.Equal(t, "[x] [y]", CellValue(a, DefaultColumns[1]))
	assert.Equal(t, "n", CellValue(a, DefaultColumns[0]))
	assert.Equal(t, constants.PlaceholderNoFolder, FolderLabel(" "))
	assert.Equal(t, "A", FolderLabel("A"))
}

// TestRenderStandard tests the standard layout.
func TestRenderStandard(t *testing.T) {
	t.Run("groups with header row", func(t *testing.T) {
		got := render(NewRenderer(nil), view.New())
		want := lines(
			"  NAME   TAGS     TYPE  DATE ADDED",
			"  -----  -------  ----  ----------",
			"▾ A (2)",
			"+ alpha  [x] [y]",
			"+ gamma",
			"▾ B (1)",
			"+ beta",
		)
		assert.Equal(t, want, got)
	})

	t.Run("collapsed folder keeps header", func(t *testing.T) {
		got := render(NewRenderer(nil), view.New().ToggleFolder("A"))
		want := lines(
			"  NAME  TAGS  TYPE  DATE ADDED",
			"  ----  ----  ----  ----------",
			"▸ A (2)",
			"▾ B (1)",
			"+ beta",
		)
		assert.Equal(t, want, got)
	})

	t.Run("expanded item shows detail block", func(t *testing.T) {
		got := render(NewRenderer(nil), view.New().ToggleDetail("2"))
		assert.Contains(t, got, lines(
			"− alpha  [x] [y]",
			"    Folder: A",
			"    Added By: -",
			"    Assigned Salespersons: -",
			"    Keywords: -",
			"    Notes: -",
			"+ gamma",
		))
	})

	t.Run("hide empty columns", func(t *testing.T) {
		got := render(NewRenderer(nil).WithHideEmpty(true), view.New())
		assert.True(t, strings.HasPrefix(got, "  NAME   TAGS\n"))
	})
}

// TestRenderFitsWidth tests truncation when a terminal width is set.
func TestRenderFitsWidth(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(nil).WithWidth(40).Render(&buf, view.Derive(testutil.CatalogueAssets(), view.New()))
	out := buf.String()

	assert.Contains(t, out, "Paper supplier p…")
	assert.NotContains(t, out, "Paper supplier price list")
}

// TestRenderGrid tests the grid layout.
func TestRenderGrid(t *testing.T) {
	got := render(NewRenderer(nil).WithLayout(view.LayoutGrid), view.New())
	assert.Contains(t, got, "  NAME  | TAGS    | TYPE | DATE ADDED\n")
	assert.Contains(t, got, "▾ A (2)\n  ----- | ------- | ---- | ----------\n")
	assert.Contains(t, got, "+ alpha | [x] [y] |")
}

// TestRenderDetails tests the collapsible details layout.
func TestRenderDetails(t *testing.T) {
	got := render(NewRenderer(nil).WithLayout(view.LayoutDetails), view.New().ToggleDetail("2"))
	want := lines(
		"▾ A (2)",
		"− alpha",
		"    Name: alpha",
		"    Tags: [x] [y]",
		"    Type: -",
		"    Date Added: -",
		"    Folder: A",
		"    Added By: -",
		"    Assigned Salespersons: -",
		"    Keywords: -",
		"    Notes: -",
		"+ gamma",
		"▾ B (1)",
		"+ beta",
	)
	assert.Equal(t, want, got)
}

// TestRenderBadges tests the badges layout.
func TestRenderBadges(t *testing.T) {
	got := render(NewRenderer(nil).WithLayout(view.LayoutBadges), view.New())
	want := lines(
		"▾ A (2)",
		"+ alpha  [x] [y]",
		"+ gamma",
		"▾ B (1)",
		"+ beta",
	)
	assert.Equal(t, want, got)

	var buf bytes.Buffer
	NewRenderer(nil).WithLayout(view.LayoutBadges).Render(&buf, view.Derive(testutil.CatalogueAssets(), view.New()))
	assert.Contains(t, buf.String(), "+ Acme Invoice Q1  [finance] [urgent] [pdf] [2024-01-15]")
}

// TestFolderHeader tests folder header formatting.
func TestFolderHeader(t *testing.T) {
	assert.Equal(t, "▾ Vendors (2)", FolderHeader(view.Row{Kind: view.RowHeader, Folder: "Vendors", Count: 2}))
	assert.Equal(t, "▸ (no folder) (1)", FolderHeader(view.Row{Kind: view.RowHeader, Collapsed: true, Count: 1}))
}

// TestRenderEmpty tests rendering without rows.
func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(nil).WithLayout(view.LayoutDetails).Render(&buf, nil)
	assert.Empty(t, buf.String())
}
