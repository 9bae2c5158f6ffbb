package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "failed to parse",
		Hint:       "Check file syntax",
		Resolution: "Validate JSON/YAML syntax using a linter or online validator",
	},
	{
		Pattern:    "invalid asset document",
		Hint:       "Data file must hold a list of records",
		Resolution: "Use a top-level array, or an object with an \"assets\" array",
	},
	{
		Pattern:    "duplicate asset id",
		Hint:       "Asset identifiers must be unique",
		Resolution: "Give every record in the data file a distinct \"id\"",
	},
	{
		Pattern:    "data file too large",
		Hint:       "Data file exceeds the size limit",
		Resolution: "Raise security.max_data_file_size in .assetview.yml",
	},
	{
		Pattern:    "invalid folder pattern",
		Hint:       "Folder filter is not a valid glob",
		Resolution: "Check brackets and braces in --folder (e.g., 'clients/**,!clients/archive')",
	},
	{
		Pattern:    "unknown layout",
		Hint:       "Layout name not recognized",
		Resolution: "Use one of: standard, grid, details, badges",
	},
	{
		Pattern:    "unknown column",
		Hint:       "Column name not recognized",
		Resolution: "Run 'assetview config --show-defaults' to list the column keys",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Run 'assetview config --validate' to check config, or 'assetview config --init' to create one",
	},
	{
		Pattern:    "no data file",
		Hint:       "No asset data file configured",
		Resolution: "Pass --data <file> or set \"data\" in .assetview.yml",
	},
	{
		Pattern:    "no such file or directory",
		Hint:       "File or directory not found",
		Resolution: "Verify the path exists and you have read permissions",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check file permissions or run with appropriate privileges",
	},
	{
		Pattern:    "too many open files",
		Hint:       "File watcher limit reached",
		Resolution: "Raise the inotify watch limit (fs.inotify.max_user_watches) or close other watchers",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
//
// Example:
//
//	hint := errors.GetHint(err)
//	if hint != "" {
//	    fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
//	}
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
//
// Example:
//
//	enhanced := errors.EnhanceErrorWithHint(err)
//	fmt.Fprintf(os.Stderr, "Error: %s\n", enhanced)
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	for _, hint := range CommonErrorHints {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(hint.Pattern)) {
			return errStr + "\n  \U0001F4A1 " + hint.Hint + ": " + hint.Resolution
		}
	}

	return errStr
}
