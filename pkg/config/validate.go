package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/ajxudir/assetview/pkg/output"
	"github.com/ajxudir/assetview/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// Layouts lists the listing layout names accepted in the layout field.
var Layouts = []string{"standard", "grid", "details", "badges"}

// DataFormats lists the values accepted in the data_format field.
var DataFormats = []string{"json", "yaml", "yml"}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field      string
	Message    string
	Expected   string // Expected type or schema hint
	ValidKeys  string // Valid keys for this context
	DocSection string // Section of the default config that documents the field
}

// Error returns the error message string.
//
// Returns:
//   - string: formatted error message with field name if available
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError returns a detailed error message with schema hints.
//
// Returns:
//   - string: detailed error message with schema information and documentation links
func (e ValidationError) VerboseError() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}
	if e.ValidKeys != "" {
		sb.WriteString(fmt.Sprintf("\n    Valid keys: %s", e.ValidKeys))
	}
	if e.DocSection != "" {
		sb.WriteString(fmt.Sprintf("\n    📖 See: assetview config --show-defaults (%s)", e.DocSection))
	}
	return sb.String()
}

// ValidationResult holds the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
}

// HasErrors returns true if there are any validation errors.
//
// Returns:
//   - bool: true if validation found errors, false otherwise
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorMessages returns all error messages as a formatted string.
//
// Returns:
//   - string: formatted error messages, or empty string if no errors
func (r *ValidationResult) ErrorMessages() string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, "  - "+e.Error())
	}
	return "Configuration validation failed:\n" + strings.Join(msgs, "\n")
}

// VerboseErrorMessages returns detailed error messages with schema hints.
//
// Returns:
//   - string: detailed formatted error messages, or empty string if no errors
func (r *ValidationResult) VerboseErrorMessages() string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, "  - "+e.VerboseError())
	}
	return "Configuration validation failed:\n" + strings.Join(msgs, "\n")
}

// err returns the errors as a single error, with schema detail when verbose
// logging is on.
func (r *ValidationResult) err() error {
	if verbose.IsEnabled() {
		return errors.New(r.VerboseErrorMessages())
	}
	return errors.New(r.ErrorMessages())
}

// Schema information for validation errors
var configSchema = map[string]schemaInfo{
	"Config": {
		fields: "extends, working_dir, data, data_format, format, layout, collapsed, columns, hide_empty, debounce_ms, security",
		doc:    "configuration",
	},
	"SecurityCfg": {
		fields: "allow_path_traversal, allow_absolute_paths, max_config_file_size, max_data_file_size",
		doc:    "security",
	},
}

type schemaInfo struct {
	fields string
	doc    string
}

// ValidateConfigFile validates a YAML configuration file for syntax errors and unknown fields.
//
// This performs strict validation using KnownFields(true) to detect typos and
// unknown configuration options, then checks the field values.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func ValidateConfigFile(data []byte) *ValidationResult {
	result := &ValidationResult{}

	verbose.Printf("Config validation: starting YAML parsing with strict field checking\n")

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		verbose.Printf("Config validation FAILED: YAML decode error: %v\n", err)
		result.Errors = append(result.Errors, decodeError(err.Error()))
		return result
	}

	verbose.Printf("Config validation: YAML parsed successfully, validating structure\n")
	validateConfigStruct(&cfg, result)

	if len(result.Errors) == 0 {
		verbose.Printf("Config validation PASSED: no errors found\n")
	} else {
		verbose.Printf("Config validation FAILED: %d errors found\n", len(result.Errors))
	}
	if len(result.Warnings) > 0 {
		verbose.Printf("Config validation: %d warnings\n", len(result.Warnings))
	}

	return result
}

// decodeError turns a strict decoder error into a ValidationError with
// schema hints and typo suggestions.
func decodeError(errMsg string) ValidationError {
	switch {
	case strings.Contains(errMsg, "field") && strings.Contains(errMsg, "not found"):
		fieldName, typeName := extractFieldAndType(errMsg)
		verr := ValidationError{
			Message: fmt.Sprintf("unknown field '%s'", fieldName),
		}
		if lineNum := extractLineNumber(errMsg); lineNum > 0 {
			verr.Message = fmt.Sprintf("unknown field '%s' (line %d)", fieldName, lineNum)
		}
		if schema, ok := configSchema[typeName]; ok {
			verr.ValidKeys = schema.fields
			verr.DocSection = schema.doc
		} else if typeName != "" {
			verr.Expected = fmt.Sprintf("valid field for %s", typeName)
		}
		if suggestion := suggestSimilarField(fieldName, typeName); suggestion != "" {
			verr.Message += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
		}
		return verr
	case strings.Contains(errMsg, "cannot unmarshal"):
		// Type mismatch errors - check before "yaml:" since these also contain "yaml:"
		return ValidationError{
			Message:  errMsg,
			Expected: extractExpectedType(errMsg),
		}
	case strings.Contains(errMsg, "yaml:"):
		return ValidationError{
			Message:    fmt.Sprintf("YAML syntax error: %s", errMsg),
			DocSection: "configuration",
		}
	default:
		return ValidationError{Message: errMsg}
	}
}

// Validate validates a loaded Config struct.
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}
	validateConfigStruct(c, result)
	return result
}

// validateConfigStruct checks the field values of a Config.
//
// Parameters:
//   - cfg: the configuration to validate
//   - result: validation result to append errors and warnings to
func validateConfigStruct(cfg *Config, result *ValidationResult) {
	if cfg.Format != "" {
		if err := output.ValidateFormat(cfg.Format); err != nil {
			verbose.Printf("Config validation ERROR: %v\n", err)
			result.Errors = append(result.Errors, ValidationError{
				Field:    "format",
				Message:  fmt.Sprintf("invalid output format '%s'", cfg.Format),
				Expected: "table, json, csv, xml, or yaml",
			})
		}
	}

	if cfg.Layout != "" && !containsFold(Layouts, cfg.Layout) {
		verbose.Printf("Config validation ERROR: invalid layout %q\n", cfg.Layout)
		result.Errors = append(result.Errors, ValidationError{
			Field:      "layout",
			Message:    fmt.Sprintf("unknown layout '%s'", cfg.Layout),
			Expected:   strings.Join(Layouts, ", "),
			DocSection: "layouts",
		})
	}

	if cfg.DataFormat != "" && !containsFold(DataFormats, cfg.DataFormat) {
		result.Errors = append(result.Errors, ValidationError{
			Field:    "data_format",
			Message:  fmt.Sprintf("unknown data format '%s'", cfg.DataFormat),
			Expected: "json or yaml",
		})
	}

	if cfg.DebounceMS < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:    "debounce_ms",
			Message:  "debounce must not be negative",
			Expected: "non-negative integer (milliseconds)",
		})
	}

	for i, folder := range cfg.Collapsed {
		if strings.TrimSpace(folder) == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("collapsed[%d]: empty folder name only matches assets with no folder", i))
		}
	}

	for i, col := range cfg.Columns {
		if strings.TrimSpace(col) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("columns[%d]", i),
				Message: "column name cannot be empty",
			})
		}
	}

	if s := cfg.Security; s != nil {
		if s.MaxConfigFileSize < 0 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "security.max_config_file_size",
				Message: "size limit must not be negative",
			})
		}
		if s.MaxDataFileSize < 0 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "security.max_data_file_size",
				Message: "size limit must not be negative",
			})
		}
	}
}

func containsFold(values []string, s string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.EqualFold(v, s)
	})
}

// yaml.v3 reports strict decoding problems as
// "line 3: field colapsed not found in type config.Config".
var (
	unknownFieldRe = regexp.MustCompile(`field (\S+) not found in type config\.(\w+)`)
	lineNumberRe   = regexp.MustCompile(`line (\d+):`)
	intoTypeRe     = regexp.MustCompile(`into (\S+)`)
)

// extractFieldAndType returns the unknown key and the config struct it was
// found under, or empty strings when errMsg has another shape.
func extractFieldAndType(errMsg string) (field, typeName string) {
	m := unknownFieldRe.FindStringSubmatch(errMsg)
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}

// extractLineNumber returns the first "line N:" in errMsg, or 0.
func extractLineNumber(errMsg string) int {
	m := lineNumberRe.FindStringSubmatch(errMsg)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// extractExpectedType returns the Go type named by "cannot unmarshal !!x
// into T", or "".
func extractExpectedType(errMsg string) string {
	if m := intoTypeRe.FindStringSubmatch(errMsg); m != nil {
		return m[1]
	}
	return ""
}

// commonTypos maps common typos to correct field names
var commonTypos = map[string]map[string]string{
	"Config": {
		"extend":      "extends",
		"working-dir": "working_dir",
		"workingDir":  "working_dir",
		"data_file":   "data",
		"file":        "data",
		"dataFormat":  "data_format",
		"output":      "format",
		"view":        "layout",
		"collapse":    "collapsed",
		"column":      "columns",
		"hideEmpty":   "hide_empty",
		"debounce":    "debounce_ms",
		"debounceMs":  "debounce_ms",
	},
	"SecurityCfg": {
		"maxDataFileSize":   "max_data_file_size",
		"max_data_size":     "max_data_file_size",
		"maxConfigFileSize": "max_config_file_size",
		"max_config_size":   "max_config_file_size",
	},
}

// suggestSimilarField returns a suggested field name if the input looks like a typo.
//
// Parameters:
//   - field: the unknown field name
//   - typeName: the type name where the field was found
//
// Returns:
//   - string: suggested correct field name, or empty string if no suggestion
func suggestSimilarField(field, typeName string) string {
	if typos, ok := commonTypos[typeName]; ok {
		if suggestion, found := typos[field]; found {
			return suggestion
		}
	}

	snakeCase := strings.ReplaceAll(field, "-", "_")
	if schema, ok := configSchema[typeName]; ok && snakeCase != field &&
		slices.Contains(strings.Split(schema.fields, ", "), snakeCase) {
		return snakeCase
	}
	return ""
}

// ValidateConfigFileStrict is like ValidateConfigFile but treats warnings as errors.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *ValidationResult: validation result with warnings converted to errors
func ValidateConfigFileStrict(data []byte) *ValidationResult {
	result := ValidateConfigFile(data)
	for _, w := range result.Warnings {
		result.Errors = append(result.Errors, ValidationError{Message: w})
	}
	result.Warnings = nil
	return result
}
