package output

import (
	"encoding/xml"

	"github.com/ajxudir/assetview/pkg/assets"
)

// ListResult represents the output data for the list and search commands.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the listing
//   - Assets: Matching assets in folder/name order
//   - Warnings: Warning messages (omitted if empty)
type ListResult struct {
	XMLName  xml.Name    `json:"-" yaml:"-" xml:"listResult"`
	Summary  ListSummary `json:"summary" yaml:"summary" xml:"summary"`
	Assets   []ListAsset `json:"assets" yaml:"assets" xml:"assets>asset"`
	Warnings []string    `json:"warnings,omitempty" yaml:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// ListSummary holds summary statistics for list results.
//
// Fields:
//   - TotalAssets: Number of assets in the loaded snapshot
//   - Matched: Number of assets that passed the filters
//   - Folders: Number of folder groups among the matches
//   - Query: The search query (omitted if empty)
//   - Folder: The folder filter (omitted if empty)
//   - Tag: The tag filter (omitted if empty)
type ListSummary struct {
	TotalAssets int    `json:"total_assets" yaml:"total_assets" xml:"totalAssets"`
	Matched     int    `json:"matched" yaml:"matched" xml:"matched"`
	Folders     int    `json:"folders" yaml:"folders" xml:"folders"`
	Query       string `json:"query,omitempty" yaml:"query,omitempty" xml:"query,omitempty"`
	Folder      string `json:"folder,omitempty" yaml:"folder,omitempty" xml:"folder,omitempty"`
	Tag         string `json:"tag,omitempty" yaml:"tag,omitempty" xml:"tag,omitempty"`
}

// ListAsset represents one asset in structured output.
type ListAsset struct {
	ID         string   `json:"id" yaml:"id" xml:"id"`
	Folder     string   `json:"folder" yaml:"folder" xml:"folder"`
	Name       string   `json:"name" yaml:"name" xml:"name"`
	Type       string   `json:"type" yaml:"type" xml:"type"`
	Tags       []string `json:"tags" yaml:"tags" xml:"tags>tag"`
	DateAdded  string   `json:"date_added" yaml:"date_added" xml:"dateAdded"`
	AddedBy    string   `json:"added_by" yaml:"added_by" xml:"addedBy"`
	AssignedTo string   `json:"assigned_to" yaml:"assigned_to" xml:"assignedTo"`
	Keywords   string   `json:"keywords" yaml:"keywords" xml:"keywords"`
	Notes      string   `json:"notes" yaml:"notes" xml:"notes"`
}

// NewListAsset converts an asset for structured output.
//
// Parameters:
//   - a: Asset to convert
//
// Returns:
//   - ListAsset: Output entry with a non-nil tag slice
func NewListAsset(a assets.Asset) ListAsset {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return ListAsset{
		ID:         a.ID,
		Folder:     a.Folder,
		Name:       a.Name,
		Type:       a.Type,
		Tags:       tags,
		DateAdded:  a.DateAdded,
		AddedBy:    a.AddedBy,
		AssignedTo: a.AssignedTo,
		Keywords:   a.Keywords,
		Notes:      a.Notes,
	}
}

// NewListAssets converts a slice of assets for structured output.
//
// Parameters:
//   - records: Assets to convert
//
// Returns:
//   - []ListAsset: One entry per asset; never nil
func NewListAssets(records []assets.Asset) []ListAsset {
	out := make([]ListAsset, 0, len(records))
	for _, a := range records {
		out = append(out, NewListAsset(a))
	}
	return out
}

// FolderResult represents the output data for the folders command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics
//   - Folders: One entry per folder group
//   - Warnings: Warning messages (omitted if empty)
type FolderResult struct {
	XMLName  xml.Name      `json:"-" yaml:"-" xml:"folderResult"`
	Summary  FolderSummary `json:"summary" yaml:"summary" xml:"summary"`
	Folders  []FolderEntry `json:"folders" yaml:"folders" xml:"folders>folder"`
	Warnings []string      `json:"warnings,omitempty" yaml:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// FolderSummary holds summary statistics for folder results.
type FolderSummary struct {
	TotalFolders int `json:"total_folders" yaml:"total_folders" xml:"totalFolders"`
	TotalAssets  int `json:"total_assets" yaml:"total_assets" xml:"totalAssets"`
}

// FolderEntry is one folder group and its size.
type FolderEntry struct {
	Name  string `json:"name" yaml:"name" xml:"name"`
	Count int    `json:"count" yaml:"count" xml:"count"`
}
