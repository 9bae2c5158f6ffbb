package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajxudir/assetview/pkg/config"
	"github.com/ajxudir/assetview/pkg/constants"
	"github.com/ajxudir/assetview/pkg/errors"
	"github.com/ajxudir/assetview/pkg/verbose"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
	configStrictFlag        bool
	configPathFlag          string
)

var (
	loadConfigFunc = config.LoadConfig
	writeFileFunc  = os.WriteFile
	readFileFunc   = os.ReadFile
)

// loadAndValidateConfig loads the configuration and validates it for unknown fields.
//
// An explicit config file must exist. Without one, .assetview.yml in workDir
// is validated when present. Validation failures carry ExitConfigError.
//
// Parameters:
//   - configPath: Path to custom config file, or empty for default location
//   - workDir: Working directory to search for default config; empty
//     resolves paths next to configPath
//
// Returns:
//   - *config.Config: Loaded and validated configuration
//   - error: Validation or load error with details
func loadAndValidateConfig(configPath, workDir string) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(workDir, config.FileName)
	}

	data, err := readFileFunc(path)
	switch {
	case err == nil:
		if result := config.ValidateConfigFile(data); result.HasErrors() {
			var sb strings.Builder
			sb.WriteString(fmt.Sprintf("configuration validation failed for %s:\n", path))
			for _, e := range result.Errors {
				sb.WriteString(fmt.Sprintf("  - %s\n", e.Error()))
			}
			sb.WriteString(fmt.Sprintf("\n%s Run 'assetview config --validate' for details", constants.IconLightbulb))
			verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, path)
			return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("%s", sb.String()))
		}
	case configPath != "":
		verbose.Infof("Exit code %d (config error): cannot read %s", errors.ExitConfigError, configPath)
		return nil, errors.NewExitError(errors.ExitConfigError,
			fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	cfg, err := loadConfigFunc(configPath, workDir)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load config: %w", err))
	}

	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, validate or create configuration",
	Long: `Show, validate or create the .assetview.yml configuration file.

The configuration is layered on top of the built-in defaults and can extend
other files with the extends key.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create .assetview.yml template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
	configCmd.Flags().BoolVar(&configStrictFlag, "strict", false, "Treat validation warnings as errors")
	configCmd.Flags().StringVarP(&configPathFlag, "config", "c", "", "Config file path")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .assetview.yml template file
//   - --validate: Validates the configuration file for schema errors
//   - --show-defaults: Displays the default configuration
//   - --show-effective: Displays the effective merged configuration
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	if configInitFlag {
		return createConfigTemplate()
	}

	if configValidateFlag {
		return validateConfigFile()
	}

	if configShowDefaultsFlag {
		fmt.Println("Default configuration:")
		fmt.Println()
		fmt.Println(config.GetDefaultConfig())
		return nil
	}

	if configShowEffectiveFlag {
		cfg, err := loadConfigForCommand(configPathFlag)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		fmt.Println("Effective configuration:")
		fmt.Println()
		fmt.Print(string(out))
		fmt.Printf("\nData file: %s\n", cfg.DataPath())
		return nil
	}

	return cmd.Help()
}

// validateConfigFile validates the configuration file at the specified path.
//
// If no path is specified via --config flag, validates .assetview.yml in the
// current working directory. Reports validation errors and warnings.
//
// Returns:
//   - error: Returns ExitError with ExitConfigError code on validation failure
func validateConfigFile() error {
	configPath := configPathFlag
	if configPath == "" {
		configPath = config.FileName
	}

	data, err := readFileFunc(configPath)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError,
			fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	result := config.ValidateConfigFile(data)
	if configStrictFlag {
		result = config.ValidateConfigFileStrict(data)
	}

	if result.HasErrors() {
		fmt.Printf("%s Configuration validation failed for: %s\n\n", constants.IconCross, configPath)

		for _, e := range result.Errors {
			if verbose.IsEnabled() {
				fmt.Printf("  ERROR: %s\n", e.VerboseError())
			} else {
				fmt.Printf("  ERROR: %s\n", e.Error())
			}
		}

		if len(result.Warnings) > 0 {
			fmt.Println()
			for _, w := range result.Warnings {
				fmt.Printf("  WARNING: %s\n", w)
			}
		}
		fmt.Println()
		if !verbose.IsEnabled() {
			fmt.Printf("%s Run with --verbose for detailed schema information\n", constants.IconLightbulb)
		}
		verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, configPath)
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("configuration validation failed"))
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("%s Configuration valid with warnings: %s\n\n", constants.IconWarn, configPath)
		for _, w := range result.Warnings {
			fmt.Printf("  WARNING: %s\n", w)
		}
		fmt.Println()
	} else {
		fmt.Printf("%s Configuration valid: %s\n", constants.IconCheckmarkBox, configPath)
	}

	return nil
}

// createConfigTemplate creates a new .assetview.yml template file.
//
// The template is created in the current directory. Fails if a config
// file already exists at that location.
//
// Returns:
//   - error: Returns error if file exists or cannot be created
func createConfigTemplate() error {
	if _, err := os.Stat(config.FileName); err == nil {
		return errors.NewExitErrorf(errors.ExitFailure, "config file already exists: %s", config.FileName)
	}

	// Owner read/write only.
	if err := writeFileFunc(config.FileName, []byte(config.GetTemplateConfig()), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("Created configuration template: %s\n", config.FileName)
	return nil
}
