package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFormat tests format name parsing.
func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatYAML, ParseFormat("yaml"))
	assert.Equal(t, FormatYAML, ParseFormat(" yml "))
	assert.Equal(t, FormatAuto, ParseFormat(""))
	assert.Equal(t, FormatAuto, ParseFormat("toml"))
}

// TestDetectFormat tests extension-based format detection.
func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("assets.yml"))
	assert.Equal(t, FormatYAML, DetectFormat("/data/ASSETS.YAML"))
	assert.Equal(t, FormatJSON, DetectFormat("assets.json"))
	assert.Equal(t, FormatJSON, DetectFormat("assets"))
}

// TestDecodeJSON tests JSON document decoding.
func TestDecodeJSON(t *testing.T) {
	t.Run("list keeps key order", func(t *testing.T) {
		data := []byte(`[{"name":"Box","id":"1","tags":["red","blue"],"colour":"teal"}]`)
		c, err := Decode(data, FormatJSON)
		require.NoError(t, err)
		require.Len(t, c, 1)

		a := c[0]
		assert.Equal(t, "1", a.ID)
		assert.Equal(t, "Box", a.Name)
		assert.Equal(t, []string{"red", "blue"}, a.Tags)
		assert.Equal(t, "teal", a.Extra["colour"])
		assert.Equal(t, []string{"name", "id", "tags", "colour"}, a.FieldOrder())
		assert.Equal(t, "Box 1 red,blue teal", a.Text())
	})

	t.Run("wrapped in assets key", func(t *testing.T) {
		c, err := Decode([]byte(`{"assets":[{"id":"1"},{"id":"2"}]}`), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, c.IDs())
	})

	t.Run("null assets key", func(t *testing.T) {
		c, err := Decode([]byte(`{"assets":null}`), FormatJSON)
		require.NoError(t, err)
		assert.Empty(t, c)
	})

	t.Run("empty document", func(t *testing.T) {
		c, err := Decode([]byte("  \n"), FormatJSON)
		require.NoError(t, err)
		assert.NotNil(t, c)
		assert.Empty(t, c)
	})

	t.Run("scalars are stringified", func(t *testing.T) {
		c, err := Decode([]byte(`[{"id":7,"name":null,"tags":"solo","notes":true}]`), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, "7", c[0].ID)
		assert.Equal(t, "", c[0].Name)
		assert.Equal(t, []string{"solo"}, c[0].Tags)
		assert.Equal(t, "true", c[0].Notes)
	})

	t.Run("missing fields default", func(t *testing.T) {
		c, err := Decode([]byte(`[{}]`), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, DefaultFieldOrder, c[0].FieldOrder())
		assert.NotNil(t, c[0].Tags)
	})

	t.Run("object without assets key", func(t *testing.T) {
		_, err := Decode([]byte(`{"items":[]}`), FormatJSON)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("scalar document", func(t *testing.T) {
		_, err := Decode([]byte(`"nope"`), FormatJSON)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("null record", func(t *testing.T) {
		_, err := Decode([]byte(`[{"id":"1"},null]`), FormatJSON)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Decode([]byte(`[{"id":}]`), FormatJSON)
		assert.Error(t, err)
	})
}

// TestDecodeYAML tests YAML document decoding.
func TestDecodeYAML(t *testing.T) {
	t.Run("sequence keeps key order and source text", func(t *testing.T) {
		data := []byte(`
- folder: Clients
  id: 1
  date_added: 2024-01-15
  price: 1.50
  tags: [finance, urgent]
`)
		c, err := Decode(data, FormatYAML)
		require.NoError(t, err)
		require.Len(t, c, 1)

		a := c[0]
		assert.Equal(t, "1", a.ID)
		assert.Equal(t, "2024-01-15", a.DateAdded)
		assert.Equal(t, "1.50", a.Extra["price"])
		assert.Equal(t, []string{"finance", "urgent"}, a.Tags)
		assert.Equal(t, []string{"folder", "id", "date_added", "price", "tags"}, a.FieldOrder())
	})

	t.Run("wrapped in assets key", func(t *testing.T) {
		c, err := Decode([]byte("assets:\n  - id: a\n  - id: b\n"), FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, c.IDs())
	})

	t.Run("anchors and aliases", func(t *testing.T) {
		data := []byte("- &base\n  id: a\n  type: pdf\n- id: b\n  type: *t\n")
		_, err := Decode(data, FormatYAML)
		assert.Error(t, err)

		data = []byte("- id: a\n  type: &t pdf\n- id: b\n  type: *t\n")
		c, err := Decode(data, FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, "pdf", c[1].Type)
	})

	t.Run("null values", func(t *testing.T) {
		c, err := Decode([]byte("- id: a\n  name: ~\n  tags:\n"), FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, "", c[0].Name)
		assert.Empty(t, c[0].Tags)
	})

	t.Run("empty document", func(t *testing.T) {
		c, err := Decode([]byte(""), FormatYAML)
		require.NoError(t, err)
		assert.Empty(t, c)
	})

	t.Run("null assets key", func(t *testing.T) {
		c, err := Decode([]byte("assets:\n"), FormatYAML)
		require.NoError(t, err)
		assert.Empty(t, c)
	})

	t.Run("mapping without assets key", func(t *testing.T) {
		_, err := Decode([]byte("items: []\n"), FormatYAML)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("record is not a mapping", func(t *testing.T) {
		_, err := Decode([]byte("- just text\n"), FormatYAML)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("scalar document", func(t *testing.T) {
		_, err := Decode([]byte("hello\n"), FormatYAML)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Decode([]byte("- id: [unclosed\n"), FormatYAML)
		assert.Error(t, err)
	})
}

// TestDecodeAuto tests that FormatAuto decodes JSON.
func TestDecodeAuto(t *testing.T) {
	c, err := Decode([]byte(`[{"id":"1"}]`), FormatAuto)
	require.NoError(t, err)
	assert.Len(t, c, 1)
}
