package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ajxudir/assetview/pkg/assets"
	"github.com/ajxudir/assetview/pkg/config"
	"github.com/ajxudir/assetview/pkg/errors"
	"github.com/ajxudir/assetview/pkg/utils"
	"github.com/ajxudir/assetview/pkg/verbose"
)

// defaultWidth is the render width when --width is unset and $COLUMNS is
// missing or invalid.
const defaultWidth = 100

var loadAssetsFunc = assets.Load

// snapshot is one loaded catalogue together with the config it came from.
type snapshot struct {
	cfg     *config.Config
	path    string
	records assets.Collection
}

// loadConfigForCommand loads and validates the configuration for a command.
//
// With an explicit config path, data paths resolve next to the config file.
// Otherwise the current directory is searched for .assetview.yml.
//
// Parameters:
//   - configPath: Value of --config, or empty
//
// Returns:
//   - *config.Config: Loaded configuration
//   - error: ExitError with ExitConfigError on failure
func loadConfigForCommand(configPath string) (*config.Config, error) {
	workDir := "."
	if configPath != "" {
		workDir = ""
	}
	return loadAndValidateConfig(configPath, workDir)
}

// resolveDataPath picks the data file: the --data flag wins over the config.
//
// Parameters:
//   - cfg: Loaded configuration
//   - dataFlag: Value of --data, relative to the current directory
//
// Returns:
//   - string: Data file path
func resolveDataPath(cfg *config.Config, dataFlag string) string {
	if dataFlag != "" {
		return utils.ResolvePath("", dataFlag)
	}
	return cfg.DataPath()
}

// loadSnapshot loads the config and the asset data file it names.
//
// Parameters:
//   - configPath: Value of --config, or empty
//   - dataFlag: Value of --data, or empty
//
// Returns:
//   - *snapshot: Loaded catalogue
//   - error: ExitError with ExitConfigError for config and data errors
func loadSnapshot(configPath, dataFlag string) (*snapshot, error) {
	cfg, err := loadConfigForCommand(configPath)
	if err != nil {
		return nil, err
	}

	snap := &snapshot{cfg: cfg, path: resolveDataPath(cfg, dataFlag)}
	if err := snap.reload(); err != nil {
		return nil, err
	}
	return snap, nil
}

// reload re-reads the snapshot's data file in place.
//
// Returns:
//   - error: ExitError with ExitConfigError when the file cannot be loaded
func (s *snapshot) reload() error {
	records, err := loadAssetsFunc(s.path, assets.ParseFormat(s.cfg.DataFormat), s.cfg.GetMaxDataFileSize())
	if err != nil {
		switch {
		case os.IsNotExist(err):
			err = fmt.Errorf("no data file at %s: %w", s.path, err)
			verbose.WithDocRef("data", fmt.Sprintf("Data file %s does not exist", s.path))
		case stderrors.Is(err, assets.ErrDuplicateID):
			err = errors.NewDataValidationError(s.source(), err.Error(),
				"Give every record in the data file a distinct \"id\"")
		case stderrors.Is(err, assets.ErrInvalidDocument):
			err = errors.NewDataValidationError(s.source(), err.Error(),
				"Use a top-level array, or an object with an \"assets\" array")
		}
		verbose.Infof("Exit code %d (data error): %v", errors.ExitConfigError, err)
		return errors.NewExitError(errors.ExitConfigError, err)
	}
	s.records = records
	if verbose.IsEnabled() {
		verbose.Printf("Loaded %d assets from %s: %s\n", len(records), s.source(), strings.Join(records.IDs(), ", "))
	}
	return nil
}

// source names the data file in messages.
func (s *snapshot) source() string {
	return filepath.Base(s.path)
}

// renderWidth returns the width tables are fitted to.
//
// Parameters:
//   - flagValue: Value of --width; 0 means auto
//
// Returns:
//   - int: flagValue when positive, else $COLUMNS, else defaultWidth
func renderWidth(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && n > 0 {
		return n
	}
	return defaultWidth
}

// flagFilter maps the "all" keyword of a filter flag to no filter.
func flagFilter(value string) string {
	if strings.EqualFold(strings.TrimSpace(value), utils.FilterAll) {
		return ""
	}
	return value
}
