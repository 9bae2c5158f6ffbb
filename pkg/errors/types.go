package errors

import (
	"errors"
	"fmt"
)

// Process exit codes. Scripts can tell "nothing matched" apart from real
// failures, and bad input apart from runtime errors.
const (
	// ExitSuccess means the command completed.
	ExitSuccess = 0

	// ExitNoMatches means the filters kept no assets and --fail-empty was set.
	ExitNoMatches = 1

	// ExitFailure covers runtime failures such as an unknown asset id, a file
	// that already exists or a watcher that could not start.
	ExitFailure = 2

	// ExitConfigError means the config, the data file or a flag value was
	// unusable and nothing was rendered.
	ExitConfigError = 3
)

// ExitError ends a command with Code. Message, when set, replaces the
// wrapped error's text.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error returns Message, else the wrapped error's text, else "exit code N".
func (e *ExitError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("exit code %d", e.Code)
	}
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err so the command exits with code.
//
// Example:
//
//	return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load config: %w", err))
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf builds an ExitError from a formatted message.
//
// Example:
//
//	return errors.NewExitErrorf(errors.ExitNoMatches, "no assets matched")
func NewExitErrorf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode maps err to a process exit code: ExitSuccess for nil, the
// code of the first ExitError in the chain, or ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if exitErr, ok := IsExitError(err); ok {
		return exitErr.Code
	}
	return ExitFailure
}

// IsExitError returns the first ExitError in err's chain.
//
// Returns:
//   - *ExitError: The error found, or nil
//   - bool: true if one was found
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// NotFoundError reports an identifier missing from the loaded catalogue.
//
// Fields:
//   - Kind: What was looked up, such as "asset"
//   - ID: The identifier given by the user
//   - Source: Data file name, when known
type NotFoundError struct {
	Kind   string
	ID     string
	Source string
}

// Error returns e.g. `asset "a9" not found in assets.json`.
func (e *NotFoundError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "item"
	}
	msg := fmt.Sprintf("%s %q not found", kind, e.ID)
	if e.Source != "" {
		msg += " in " + e.Source
	}
	return msg
}

// NewNotFoundError creates a NotFoundError.
//
// Parameters:
//   - kind: What was looked up (e.g. "asset")
//   - id: The missing identifier
//   - source: Data file name, or ""
//
// Returns:
//   - *NotFoundError: The error
func NewNotFoundError(kind, id, source string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id, Source: source}
}

// IsNotFoundError returns the first NotFoundError in err's chain.
func IsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}
