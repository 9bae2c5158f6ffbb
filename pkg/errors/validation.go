package errors

import (
	"errors"
	"strings"
)

// ValidationCategory says which input a ValidationError is about.
type ValidationCategory string

const (
	// ValidationCategoryConfig is a problem in .assetview.yml or a file it extends.
	ValidationCategoryConfig ValidationCategory = "config"

	// ValidationCategoryData is a problem in the asset data file.
	ValidationCategoryData ValidationCategory = "data"

	// ValidationCategoryFlag is an unusable command-line flag value.
	ValidationCategoryFlag ValidationCategory = "flag"
)

// ValidationError describes one bad input value and how to fix it.
//
// Field holds a config key, a data file name or a flag name depending on
// Category. Expected, ValidKeys, Help and Hint are optional and only shown
// by VerboseError.
//
// Example:
//
//	errors.NewFlagValidationError("layout", `unknown layout "cards"`, view.LayoutNames())
type ValidationError struct {
	Category  ValidationCategory
	Field     string
	Message   string
	Expected  string
	ValidKeys []string
	// Help is an assetview command that explains the field.
	Help string
	Hint string
}

// Error returns "field: message". Flag names gain a "--" prefix unless
// they already start with a dash.
func (e *ValidationError) Error() string {
	field := e.Field
	if e.Category == ValidationCategoryFlag && field != "" && !strings.HasPrefix(field, "-") {
		field = "--" + field
	}
	if field == "" {
		return e.Message
	}
	return field + ": " + e.Message
}

// VerboseError returns Error followed by one indented line per optional
// detail that is set.
//
// Example output:
//
//	--layout: unknown layout "cards"
//	    Valid keys: standard, grid, details, badges
func (e *ValidationError) VerboseError() string {
	lines := []string{e.Error()}
	if e.Expected != "" {
		lines = append(lines, "Expected: "+e.Expected)
	}
	if len(e.ValidKeys) > 0 {
		lines = append(lines, "Valid keys: "+strings.Join(e.ValidKeys, ", "))
	}
	if e.Help != "" {
		lines = append(lines, "📖 Run: "+e.Help)
	}
	if e.Hint != "" {
		lines = append(lines, "Hint: "+e.Hint)
	}
	return strings.Join(lines, "\n    ")
}

// IsValidationError returns the first ValidationError in err's chain.
//
// Returns:
//   - *ValidationError: The error found, or nil
//   - bool: true if one was found
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewConfigValidationError reports a bad configuration key.
//
// Example:
//
//	errors.NewConfigValidationError("debounce_ms", "must not be negative")
func NewConfigValidationError(field, message string) *ValidationError {
	return &ValidationError{Category: ValidationCategoryConfig, Field: field, Message: message}
}

// NewDataValidationError reports a problem with the asset data file.
//
// Parameters:
//   - source: Data file name shown before the message
//   - message: What is wrong
//   - hint: How to fix it
//
// Returns:
//   - *ValidationError: Error in the data category
func NewDataValidationError(source, message, hint string) *ValidationError {
	return &ValidationError{Category: ValidationCategoryData, Field: source, Message: message, Hint: hint}
}

// NewFlagValidationError reports a flag value the command cannot use.
//
// Parameters:
//   - flag: Flag name without dashes (e.g. "layout")
//   - message: What is wrong with the value
//   - validKeys: Accepted values when the flag takes a fixed set
//
// Returns:
//   - *ValidationError: Error in the flag category
func NewFlagValidationError(flag, message string, validKeys []string) *ValidationError {
	return &ValidationError{
		Category:  ValidationCategoryFlag,
		Field:     flag,
		Message:   message,
		ValidKeys: validKeys,
	}
}
