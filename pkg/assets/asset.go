// Package assets defines the asset record and loads immutable asset
// collections from JSON or YAML documents.
package assets

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Source document keys for the known asset fields.
const (
	KeyAddedBy    = "addedBy"
	KeyAssignedTo = "assignedTo"
	KeyDateAdded  = "date_added"
	KeyFolder     = "folder"
	KeyID         = "id"
	KeyKeywords   = "keywords"
	KeyName       = "name"
	KeyNotes      = "notes"
	KeyTags       = "tags"
	KeyType       = "type"
)

// DefaultFieldOrder is the field enumeration order used when a record carries
// no source key order (for example records built in code or decoded from a
// document that omitted every key).
var DefaultFieldOrder = []string{
	KeyAddedBy,
	KeyAssignedTo,
	KeyDateAdded,
	KeyFolder,
	KeyID,
	KeyKeywords,
	KeyName,
	KeyNotes,
	KeyTags,
	KeyType,
}

// TagSeparator joins tags when the tag field is rendered as a single string.
const TagSeparator = ","

// Asset is a single catalogue record.
//
// All text fields default to the empty string and Tags defaults to an empty
// slice. Assets are treated as immutable values: nothing in this module
// mutates an Asset after it has been decoded.
//
// Fields:
//   - ID: Unique identifier within a collection snapshot
//   - Name, Notes, Keywords, Type, AddedBy, AssignedTo, DateAdded: Free-text fields
//   - Folder: Grouping field
//   - Tags: Tag strings
//   - Extra: Source keys outside the known schema, rendered as strings
type Asset struct {
	ID         string   `json:"id" yaml:"id" xml:"id"`
	Name       string   `json:"name" yaml:"name" xml:"name"`
	Notes      string   `json:"notes" yaml:"notes" xml:"notes"`
	Keywords   string   `json:"keywords" yaml:"keywords" xml:"keywords"`
	Type       string   `json:"type" yaml:"type" xml:"type"`
	AddedBy    string   `json:"addedBy" yaml:"addedBy" xml:"addedBy"`
	AssignedTo string   `json:"assignedTo" yaml:"assignedTo" xml:"assignedTo"`
	DateAdded  string   `json:"date_added" yaml:"date_added" xml:"dateAdded"`
	Folder     string   `json:"folder" yaml:"folder" xml:"folder"`
	Tags       []string `json:"tags" yaml:"tags" xml:"tags>tag"`

	Extra map[string]string `json:"-" yaml:"-" xml:"-"`

	// order is the key order of the source object, when known.
	order []string
}

// Normalize returns a copy of the asset with a non-nil tag slice.
//
// Returns:
//   - Asset: The normalized copy
func (a Asset) Normalize() Asset {
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return a
}

// WithFieldOrder returns a copy of the asset that enumerates its fields in the
// given key order.
//
// Parameters:
//   - keys: Source document keys in enumeration order
//
// Returns:
//   - Asset: Copy carrying the key order
func (a Asset) WithFieldOrder(keys []string) Asset {
	a.order = slices.Clone(keys)
	return a
}

// FieldOrder returns the keys the asset's fields are enumerated in.
//
// Returns:
//   - []string: Source key order, or DefaultFieldOrder when none was recorded
func (a Asset) FieldOrder() []string {
	if len(a.order) > 0 {
		return slices.Clone(a.order)
	}
	return slices.Clone(DefaultFieldOrder)
}

// Field returns the string form of the field stored under the given source key.
//
// The tag field is rendered as its tags joined by TagSeparator. Unknown keys
// resolve through Extra and then to the empty string.
//
// Parameters:
//   - key: Source document key (e.g. "name", "date_added")
//
// Returns:
//   - string: Field value, or "" when the key is unknown
func (a Asset) Field(key string) string {
	switch key {
	case KeyAddedBy:
		return a.AddedBy
	case KeyAssignedTo:
		return a.AssignedTo
	case KeyDateAdded:
		return a.DateAdded
	case KeyFolder:
		return a.Folder
	case KeyID:
		return a.ID
	case KeyKeywords:
		return a.Keywords
	case KeyName:
		return a.Name
	case KeyNotes:
		return a.Notes
	case KeyTags:
		return strings.Join(a.Tags, TagSeparator)
	case KeyType:
		return a.Type
	}
	return a.Extra[key]
}

// Values returns the string form of every field in FieldOrder.
//
// Returns:
//   - []string: One entry per field
func (a Asset) Values() []string {
	keys := a.FieldOrder()
	values := make([]string, 0, len(keys))
	for _, key := range keys {
		values = append(values, a.Field(key))
	}
	return values
}

// Text returns all field values joined by a single space, without case folding.
//
// Returns:
//   - string: The concatenated field text
func (a Asset) Text() string {
	return strings.Join(a.Values(), " ")
}

// Ordered returns the asset as an ordered map that follows FieldOrder.
//
// This is used for raw output, where the source document's key order should
// survive a round trip.
//
// Returns:
//   - *orderedmap.OrderedMap: Keys in FieldOrder; tags stay a string slice
func (a Asset) Ordered() *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	for _, key := range a.FieldOrder() {
		if key == KeyTags {
			tags := a.Tags
			if tags == nil {
				tags = []string{}
			}
			m.Set(key, tags)
			continue
		}
		m.Set(key, a.Field(key))
	}
	return m
}

// Collection is an immutable snapshot of assets.
type Collection []Asset

// IDs returns the identifiers of the collection in order.
//
// Returns:
//   - []string: One ID per asset
func (c Collection) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, a := range c {
		ids = append(ids, a.ID)
	}
	return ids
}

// Find returns the asset with the given ID.
//
// Parameters:
//   - id: Identifier to look up
//
// Returns:
//   - Asset: The matching asset
//   - bool: true if found
func (c Collection) Find(id string) (Asset, bool) {
	for _, a := range c {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// Clone returns a shallow copy of the collection.
//
// Returns:
//   - Collection: New slice with the same assets
func (c Collection) Clone() Collection {
	return slices.Clone(c)
}

// stringify renders a decoded JSON or YAML value the way a field value is
// joined into search text: strings as-is, numbers in shortest form, arrays
// joined by TagSeparator and null as the empty string.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case json.Number:
		return val.String()
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, TagSeparator)
	case []string:
		return strings.Join(val, TagSeparator)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
