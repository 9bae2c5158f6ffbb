package assets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an asset document.
type Format string

const (
	// FormatAuto selects the format from the file extension.
	FormatAuto Format = ""
	// FormatJSON decodes a JSON document.
	FormatJSON Format = "json"
	// FormatYAML decodes a YAML document.
	FormatYAML Format = "yaml"
)

// CollectionKey is the key that wraps the record list when a document's top
// level is an object rather than an array.
const CollectionKey = "assets"

// ErrInvalidDocument reports a document whose shape is not a list of records.
var ErrInvalidDocument = errors.New("invalid asset document")

// ParseFormat parses a format name. Matching is case-insensitive and accepts
// "yml" as an alias for YAML. Unknown names yield FormatAuto.
//
// Parameters:
//   - s: Format name
//
// Returns:
//   - Format: Parsed format
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// DetectFormat chooses a format from a file path's extension.
//
// Parameters:
//   - path: Data file path
//
// Returns:
//   - Format: FormatYAML for .yml/.yaml, FormatJSON otherwise
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses an asset document.
//
// The document is either a list of records or an object whose "assets" key
// holds that list. Field order of each record follows the source document.
// Missing fields default to empty values. Decode does not check identifier
// uniqueness; see Validate.
//
// Parameters:
//   - data: Raw document bytes
//   - format: FormatJSON or FormatYAML (FormatAuto is treated as JSON)
//
// Returns:
//   - Collection: Decoded records in document order
//   - error: When the document cannot be parsed or has the wrong shape
func Decode(data []byte, format Format) (Collection, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

// field is one key/value pair of a source record, in document order.
type field struct {
	key   string
	value any
}

// fromFields builds an asset from its source key/value pairs.
func fromFields(fields []field) Asset {
	var a Asset
	keys := make([]string, 0, len(fields))

	for _, f := range fields {
		keys = append(keys, f.key)
		switch f.key {
		case KeyAddedBy:
			a.AddedBy = stringify(f.value)
		case KeyAssignedTo:
			a.AssignedTo = stringify(f.value)
		case KeyDateAdded:
			a.DateAdded = stringify(f.value)
		case KeyFolder:
			a.Folder = stringify(f.value)
		case KeyID:
			a.ID = stringify(f.value)
		case KeyKeywords:
			a.Keywords = stringify(f.value)
		case KeyName:
			a.Name = stringify(f.value)
		case KeyNotes:
			a.Notes = stringify(f.value)
		case KeyTags:
			a.Tags = toTags(f.value)
		case KeyType:
			a.Type = stringify(f.value)
		default:
			if a.Extra == nil {
				a.Extra = make(map[string]string)
			}
			a.Extra[f.key] = stringify(f.value)
		}
	}

	return a.WithFieldOrder(keys).Normalize()
}

// toTags converts a decoded tag value into a tag slice. A scalar becomes a
// single tag; null becomes no tags.
func toTags(v any) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case []any:
		tags := make([]string, 0, len(val))
		for _, item := range val {
			tags = append(tags, stringify(item))
		}
		return tags
	case []string:
		return append([]string{}, val...)
	default:
		s := stringify(val)
		if s == "" {
			return []string{}
		}
		return []string{s}
	}
}

func decodeJSON(data []byte) (Collection, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Collection{}, nil
	}

	list := trimmed
	if trimmed[0] == '{' {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, err
		}
		raw, ok := wrapper[CollectionKey]
		if !ok {
			return nil, fmt.Errorf("%w: object has no %q key", ErrInvalidDocument, CollectionKey)
		}
		list = bytes.TrimSpace(raw)
		if string(list) == "null" {
			return Collection{}, nil
		}
	}

	if list[0] != '[' {
		return nil, fmt.Errorf("%w: expected a list of records", ErrInvalidDocument)
	}

	var records []*orderedmap.OrderedMap
	if err := json.Unmarshal(list, &records); err != nil {
		return nil, err
	}

	out := make(Collection, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: record %d is null", ErrInvalidDocument, i)
		}
		fields := make([]field, 0, len(rec.Keys()))
		for _, key := range rec.Keys() {
			value, _ := rec.Get(key)
			fields = append(fields, field{key: key, value: value})
		}
		out = append(out, fromFields(fields))
	}

	return out, nil
}

func decodeYAML(data []byte) (Collection, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return Collection{}, nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return Collection{}, nil
	}
	root = deref(root)

	if root.Kind == yaml.MappingNode {
		list, ok := mappingValue(root, CollectionKey)
		if !ok {
			return nil, fmt.Errorf("%w: mapping has no %q key", ErrInvalidDocument, CollectionKey)
		}
		if isNull(list) {
			return Collection{}, nil
		}
		root = list
	}

	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a list of records (line %d)", ErrInvalidDocument, root.Line)
	}

	out := make(Collection, 0, len(root.Content))
	for i, item := range root.Content {
		item = deref(item)
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: record %d is not a mapping (line %d)", ErrInvalidDocument, i, item.Line)
		}

		fields := make([]field, 0, len(item.Content)/2)
		for j := 0; j+1 < len(item.Content); j += 2 {
			value, err := nodeValue(item.Content[j+1])
			if err != nil {
				return nil, fmt.Errorf("record %d, key %q: %w", i, item.Content[j].Value, err)
			}
			fields = append(fields, field{key: item.Content[j].Value, value: value})
		}
		out = append(out, fromFields(fields))
	}

	return out, nil
}

// nodeValue converts a YAML node to the value shape stringify and toTags
// understand. Scalars keep their source text so values like "1.50" or dates
// are not reformatted.
func nodeValue(n *yaml.Node) (any, error) {
	n = deref(n)
	switch n.Kind {
	case yaml.ScalarNode:
		if isNull(n) {
			return nil, nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := nodeValue(child)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func mappingValue(n *yaml.Node, key string) (*yaml.Node, bool) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return deref(n.Content[i+1]), true
		}
	}
	return nil, false
}
