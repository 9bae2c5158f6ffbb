package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ajxudir/assetview/pkg/assets"
)

// AssetBuilder provides a fluent API for building test assets.
//
// Use this builder to construct Asset values for testing purposes
// without needing to set all fields manually.
type AssetBuilder struct {
	asset assets.Asset
}

// NewAsset creates a new AssetBuilder with the given identifier.
//
// Parameters:
//   - id: Asset identifier
//
// Returns:
//   - *AssetBuilder: New builder instance ready for method chaining
func NewAsset(id string) *AssetBuilder {
	return &AssetBuilder{asset: assets.Asset{ID: id}}
}

// WithName sets the asset name.
//
// Parameters:
//   - name: Display name
//
// Returns:
//   - *AssetBuilder: Self for method chaining
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.asset.Name = name
	return b
}

// WithFolder sets the asset folder.
//
// Parameters:
//   - folder: Grouping folder
//
// Returns:
//   - *AssetBuilder: Self for method chaining
func (b *AssetBuilder) WithFolder(folder string) *AssetBuilder {
	b.asset.Folder = folder
	return b
}

// WithTags sets the asset tags.
//
// Parameters:
//   - tags: Tag strings
//
// Returns:
//   - *AssetBuilder: Self for method chaining
func (b *AssetBuilder) WithTags(tags ...string) *AssetBuilder {
	b.asset.Tags = tags
	return b
}

// WithType sets the asset type.
//
// Parameters:
//   - t: Asset type (e.g., "pdf", "image")
//
// Returns:
//   - *AssetBuilder: Self for method chaining
func (b *AssetBuilder) WithType(t string) *AssetBuilder {
	b.asset.Type = t
	return b
}

// WithNotes sets the free-text notes.
//
// Parameters:
//   - notes: Notes text
//
// Returns:
//   - *AssetBuilder: Self for method chaining
func (b *AssetBuilder) WithNotes(notes string) *AssetBuilder {
	b.asset.Notes = notes
	return b
}

// WithKeywords sets the keywords text.
//
// Parameters:
//   - keywords: Keywords text
//
// Returns:
//   - *AssetBuilder: Self for method chaining
func (b *AssetBuilder) WithKeywords(keywords string) *AssetBuilder {
	b.asset.Keywords = keywords
	return b
}

// WithPeople sets who added the asset and who it is assigned to.
//
// Parameters:
//   - addedBy: Author name
//   - assignedTo: Assigned salesperson names
//
// Returns:
//   - *AssetBuilder: Self for method chaining
func (b *AssetBuilder) WithPeople(addedBy, assignedTo string) *AssetBuilder {
	b.asset.AddedBy = addedBy
	b.asset.AssignedTo = assignedTo
	return b
}

// WithDateAdded sets the date the asset was added.
//
// Parameters:
//   - date: Date string as stored in the data file
//
// Returns:
//   - *AssetBuilder: Self for method chaining
func (b *AssetBuilder) WithDateAdded(date string) *AssetBuilder {
	b.asset.DateAdded = date
	return b
}

// Build returns the built asset with a non-nil tag slice.
//
// Returns:
//   - assets.Asset: The constructed asset
func (b *AssetBuilder) Build() assets.Asset {
	return b.asset.Normalize()
}

// SampleAssets returns three assets in two folders, deliberately out of
// folder order: B/beta, A/alpha (tags x,y), A/gamma.
//
// Returns:
//   - []assets.Asset: Assets with IDs "1", "2", "3"
func SampleAssets() []assets.Asset {
	return []assets.Asset{
		NewAsset("1").WithFolder("B").WithName("beta").Build(),
		NewAsset("2").WithFolder("A").WithName("alpha").WithTags("x", "y").Build(),
		NewAsset("3").WithFolder("A").WithName("gamma").Build(),
	}
}

// CatalogueAssets returns a richer fixture with every field populated.
//
// Returns:
//   - []assets.Asset: Six assets across three folders
func CatalogueAssets() []assets.Asset {
	return []assets.Asset{
		NewAsset("a1").WithFolder("Clients/Acme").WithName("Acme Invoice Q1").WithType("pdf").
			WithTags("finance", "urgent").WithPeople("Dana", "Lee").WithDateAdded("2024-01-15").
			WithKeywords("billing invoice").WithNotes("Sent to accounts").Build(),
		NewAsset("a2").WithFolder("Clients/Acme").WithName("acme logo").WithType("image").
			WithTags("brand").WithPeople("Sam", "Lee").WithDateAdded("2024-02-01").Build(),
		NewAsset("g1").WithFolder("Clients/Globex").WithName("Globex Contract").WithType("docx").
			WithTags("legal").WithPeople("Dana", "Kim").WithDateAdded("2023-11-30").
			WithNotes("Renewal due in March").Build(),
		NewAsset("v1").WithFolder("Vendors").WithName("Paper supplier price list").WithType("xlsx").
			WithTags("finance").WithPeople("Kim", "").WithDateAdded("2024-03-03").Build(),
		NewAsset("v2").WithFolder("vendors").WithName("Courier rates").WithType("pdf").
			WithPeople("Sam", "").WithDateAdded("2024-03-04").Build(),
		NewAsset("r1").WithFolder("Archive").WithName("Old brochure").WithType("pdf").
			WithTags("brand", "legacy").WithKeywords("print").Build(),
	}
}

// WriteDataFile writes content to name inside dir and returns the full path.
//
// Parameters:
//   - t: Testing instance for helper marking and failure reporting
//   - dir: Target directory (usually t.TempDir())
//   - name: File name (e.g., "assets.json")
//   - content: File content
//
// Returns:
//   - string: Path of the written file
func WriteDataFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// SampleJSON is the JSON form of SampleAssets.
const SampleJSON = `[
  {"id": "1", "folder": "B", "name": "beta", "tags": []},
  {"id": "2", "folder": "A", "name": "alpha", "tags": ["x", "y"]},
  {"id": "3", "folder": "A", "name": "gamma", "tags": []}
]`
