package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/assetview/pkg/assets"
)

// ListCSVHeaders are the CSV columns of a list result.
var ListCSVHeaders = []string{"ID", "FOLDER", "NAME", "TYPE", "TAGS", "DATE_ADDED", "ADDED_BY", "ASSIGNED_TO", "KEYWORDS", "NOTES"}

// WriteListResult writes list results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: FormatJSON, FormatXML, FormatYAML or FormatCSV
//   - result: List result data to write
//
// Returns:
//   - error: When format is unsupported or the write fails
func WriteListResult(w io.Writer, format Format, result *ListResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatYAML:
		return formatter.WriteYAML(result)
	case FormatCSV:
		return writeListCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeListCSV(f *Formatter, result *ListResult) error {
	rows := make([][]string, 0, len(result.Assets))
	for _, a := range result.Assets {
		rows = append(rows, []string{
			a.ID,
			a.Folder,
			a.Name,
			a.Type,
			strings.Join(a.Tags, assets.TagSeparator),
			a.DateAdded,
			a.AddedBy,
			a.AssignedTo,
			a.Keywords,
			a.Notes,
		})
	}
	return f.WriteCSV(ListCSVHeaders, rows)
}

// WriteFolderResult writes folder results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: FormatJSON, FormatXML, FormatYAML or FormatCSV
//   - result: Folder result data to write
//
// Returns:
//   - error: When format is unsupported or the write fails
func WriteFolderResult(w io.Writer, format Format, result *FolderResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatYAML:
		return formatter.WriteYAML(result)
	case FormatCSV:
		rows := make([][]string, 0, len(result.Folders))
		for _, entry := range result.Folders {
			rows = append(rows, []string{entry.Name, strconv.Itoa(entry.Count)})
		}
		return formatter.WriteCSV([]string{"FOLDER", "COUNT"}, rows)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteAsset writes a single asset in the specified format.
//
// With raw set, JSON and YAML output reproduce the asset's source keys in
// their original order instead of the normalized ListAsset shape.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: FormatJSON, FormatXML, FormatYAML or FormatCSV
//   - a: Asset to write
//   - raw: Whether to keep the source key order and names
//
// Returns:
//   - error: When format is unsupported or the write fails
func WriteAsset(w io.Writer, format Format, a assets.Asset, raw bool) error {
	formatter := NewFormatter(format, w).WithIndent("  ")

	switch format {
	case FormatJSON:
		if raw {
			return formatter.WriteJSON(a.Ordered())
		}
		return formatter.WriteJSON(NewListAsset(a))
	case FormatYAML:
		if raw {
			return formatter.WriteYAML(orderedNode(a))
		}
		return formatter.WriteYAML(NewListAsset(a))
	case FormatXML:
		return formatter.WriteXML(struct {
			XMLName struct{} `xml:"asset"`
			ListAsset
		}{ListAsset: NewListAsset(a)})
	case FormatCSV:
		single := &ListResult{Assets: []ListAsset{NewListAsset(a)}}
		return writeListCSV(formatter, single)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// orderedNode builds a YAML mapping node that follows the asset's field order.
func orderedNode(a assets.Asset) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range a.FieldOrder() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		var valueNode *yaml.Node
		if key == assets.KeyTags {
			valueNode = &yaml.Node{Kind: yaml.SequenceNode}
			for _, tag := range a.Tags {
				valueNode.Content = append(valueNode.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: tag})
			}
		} else {
			valueNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Field(key)}
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node
}
