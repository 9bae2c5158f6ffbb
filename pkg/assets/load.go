package assets

import (
	"errors"
	"fmt"
	"os"

	"github.com/ajxudir/assetview/pkg/verbose"
	"github.com/ajxudir/assetview/pkg/warnings"
)

// DefaultMaxDataFileSize is the largest data file Load reads (10MB).
const DefaultMaxDataFileSize int64 = 10 * 1024 * 1024

var (
	// ErrDuplicateID reports two records sharing an identifier.
	ErrDuplicateID = errors.New("duplicate asset id")

	// ErrDataTooLarge reports a data file over the configured size limit.
	ErrDataTooLarge = errors.New("data file too large")
)

// Load reads, decodes and validates an asset data file.
//
// It performs the following operations:
//   - Step 1: Checks the file size against maxSize
//   - Step 2: Decodes the document in the requested (or detected) format
//   - Step 3: Validates identifier uniqueness
//
// Parameters:
//   - path: Data file path
//   - format: Document format; FormatAuto detects it from the extension
//   - maxSize: Size limit in bytes; values <= 0 use DefaultMaxDataFileSize
//
// Returns:
//   - Collection: The loaded snapshot
//   - error: When the file is unreadable, too large, malformed or has duplicate IDs
func Load(path string, format Format, maxSize int64) (Collection, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxDataFileSize
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d bytes)", ErrDataTooLarge, path, info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if format == FormatAuto {
		format = DetectFormat(path)
	}
	verbose.Infof("Loading %s assets from: %s", format, path)

	collection, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := Validate(collection); err != nil {
		return nil, fmt.Errorf("invalid data in %s: %w", path, err)
	}

	verbose.Infof("Loaded %d assets from %s", len(collection), path)
	return collection, nil
}

// Validate checks that identifiers are unique within the collection.
//
// Records with an empty identifier are allowed. Each one is listed in the
// verbose log and a single warning reports how many there are, since they
// cannot be addressed by `show` or `--expand`.
//
// Parameters:
//   - c: Collection to validate
//
// Returns:
//   - error: ErrDuplicateID (wrapped) for the first repeated identifier
func Validate(c Collection) error {
	seen := make(map[string]int, len(c))
	missing := 0
	for i, a := range c {
		if a.ID == "" {
			verbose.Printf("Asset at index %d (%q) has no id", i, a.Name)
			missing++
			continue
		}
		if first, ok := seen[a.ID]; ok {
			return fmt.Errorf("%w %q (records %d and %d)", ErrDuplicateID, a.ID, first, i)
		}
		seen[a.ID] = i
	}
	if missing > 0 {
		warnings.Warnf("%d of %d assets have no id and cannot be shown or expanded by id", missing, len(c))
	}
	return nil
}
