package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExitCodes tests the exit code constants.
func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitNoMatches)
	assert.Equal(t, 2, ExitFailure)
	assert.Equal(t, 3, ExitConfigError)
}

// TestExitError tests the ExitError struct and its methods.
//
// It verifies that:
//   - Error() returns the Message field when set
//   - Error() returns wrapped error message when Err is set
//   - Error() returns "exit code N" when neither is set
//   - Unwrap() returns the wrapped error
func TestExitError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := &ExitError{Code: ExitFailure, Message: "test message"}
		assert.Equal(t, "test message", err.Error())
	})

	t.Run("with wrapped error", func(t *testing.T) {
		innerErr := stderrors.New("inner error")
		err := &ExitError{Code: ExitConfigError, Err: innerErr}
		assert.Equal(t, "inner error", err.Error())
		assert.Equal(t, innerErr, err.Unwrap())
	})

	t.Run("with neither", func(t *testing.T) {
		err := &ExitError{Code: ExitNoMatches}
		assert.Equal(t, "exit code 1", err.Error())
	})
}

// TestNewExitError tests the ExitError constructors.
func TestNewExitError(t *testing.T) {
	innerErr := stderrors.New("test error")
	err := NewExitError(ExitConfigError, innerErr)
	assert.Equal(t, ExitConfigError, err.Code)
	assert.Equal(t, innerErr, err.Err)

	errf := NewExitErrorf(ExitFailure, "failed: %s", "reason")
	assert.Equal(t, ExitFailure, errf.Code)
	assert.Equal(t, "failed: reason", errf.Message)
}

// TestGetExitCode tests the GetExitCode function.
func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitConfigError, GetExitCode(NewExitError(ExitConfigError, stderrors.New("x"))))

	wrapped := fmt.Errorf("outer: %w", NewExitError(ExitNoMatches, nil))
	assert.Equal(t, ExitNoMatches, GetExitCode(wrapped))

	assert.Equal(t, ExitFailure, GetExitCode(stderrors.New("plain")))
}

// TestIsExitError tests ExitError detection.
func TestIsExitError(t *testing.T) {
	exitErr, ok := IsExitError(stderrors.Join(stderrors.New("a"), NewExitError(ExitFailure, nil)))
	require.True(t, ok)
	assert.Equal(t, ExitFailure, exitErr.Code)

	_, ok = IsExitError(stderrors.New("plain"))
	assert.False(t, ok)
}

// TestNotFoundError tests the NotFoundError type.
func TestNotFoundError(t *testing.T) {
	assert.Equal(t, `asset "a9" not found in assets.json`, NewNotFoundError("asset", "a9", "assets.json").Error())
	assert.Equal(t, `asset "a9" not found`, NewNotFoundError("asset", "a9", "").Error())
	assert.Equal(t, `item "x" not found`, (&NotFoundError{ID: "x"}).Error())

	nf, ok := IsNotFoundError(fmt.Errorf("show: %w", NewNotFoundError("asset", "a9", "")))
	require.True(t, ok)
	assert.Equal(t, "a9", nf.ID)

	_, ok = IsNotFoundError(stderrors.New("plain"))
	assert.False(t, ok)
}

// TestValidationError tests ValidationError formatting.
func TestValidationError(t *testing.T) {
	t.Run("config field", func(t *testing.T) {
		err := NewConfigValidationError("debounce_ms", "must not be negative")
		assert.Equal(t, "debounce_ms: must not be negative", err.Error())
		assert.Equal(t, ValidationCategoryConfig, err.Category)
	})

	t.Run("message only", func(t *testing.T) {
		err := &ValidationError{Category: ValidationCategoryConfig, Message: "bad"}
		assert.Equal(t, "bad", err.Error())
	})

	t.Run("data", func(t *testing.T) {
		err := NewDataValidationError("assets.json", "duplicate id", "use unique ids")
		assert.Equal(t, "assets.json: duplicate id", err.Error())
		assert.Contains(t, err.VerboseError(), "Hint: use unique ids")
	})

	t.Run("flag adds dashes", func(t *testing.T) {
		err := NewFlagValidationError("layout", `unknown layout "table"`, []string{"standard", "grid"})
		assert.Equal(t, `--layout: unknown layout "table"`, err.Error())
		assert.Contains(t, err.VerboseError(), "Valid keys: standard, grid")

		dashed := NewFlagValidationError("-o", "bad", nil)
		assert.Equal(t, "-o: bad", dashed.Error())
	})

	t.Run("verbose details", func(t *testing.T) {
		err := &ValidationError{
			Category: ValidationCategoryConfig,
			Field:    "layout",
			Message:  "unknown",
			Expected: "a layout name",
			Help:     "assetview help list",
			Hint:     "pick one",
		}
		assert.Equal(t, "layout: unknown"+
			"\n    Expected: a layout name"+
			"\n    📖 Run: assetview help list"+
			"\n    Hint: pick one", err.VerboseError())
	})

	t.Run("detection", func(t *testing.T) {
		ve, ok := IsValidationError(fmt.Errorf("wrap: %w", NewConfigValidationError("f", "m")))
		require.True(t, ok)
		assert.Equal(t, "f", ve.Field)

		_, ok = IsValidationError(stderrors.New("plain"))
		assert.False(t, ok)
	})
}

// TestHints tests hint lookup.
func TestHints(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"parse", stderrors.New("failed to parse assets.json: bad"), "Check file syntax"},
		{"duplicate", stderrors.New(`duplicate asset id "a1"`), "unique"},
		{"too large", stderrors.New("data file too large: x"), "max_data_file_size"},
		{"pattern", stderrors.New(`invalid folder pattern: "["`), "--folder"},
		{"layout", stderrors.New(`unknown layout "x"`), "standard, grid, details, badges"},
		{"case insensitive", stderrors.New("Permission Denied"), "Insufficient permissions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GetHint(tt.err), tt.want)
			assert.Contains(t, EnhanceErrorWithHint(tt.err), tt.want)
		})
	}

	assert.Equal(t, "", GetHint(nil))
	assert.Equal(t, "", GetHint(stderrors.New("nothing known")))
	assert.Equal(t, "", EnhanceErrorWithHint(nil))
	assert.Equal(t, "nothing known", EnhanceErrorWithHint(stderrors.New("nothing known")))
}

// TestPrintErrorWithHints tests error printing by type.
func TestPrintErrorWithHints(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		PrintErrorWithHints(&buf, nil, false)
		assert.Empty(t, buf.String())
	})

	t.Run("mixed errors", func(t *testing.T) {
		var buf bytes.Buffer
		PrintErrorWithHints(&buf, []error{
			NewFlagValidationError("layout", "unknown layout", []string{"grid"}),
			NewNotFoundError("asset", "z", ""),
			stderrors.New("failed to parse x"),
			nil,
		}, false)

		out := buf.String()
		assert.Contains(t, out, "Validation Error: --layout: unknown layout\n")
		assert.NotContains(t, out, "Valid keys")
		assert.Contains(t, out, "Not Found: asset \"z\" not found\n")
		assert.Contains(t, out, "Error: failed to parse x\n")
		assert.Contains(t, out, "Check file syntax")
	})

	t.Run("verbose validation", func(t *testing.T) {
		var buf bytes.Buffer
		PrintErrorWithHints(&buf, []error{NewFlagValidationError("layout", "unknown layout", []string{"grid"})}, true)
		assert.Contains(t, buf.String(), "Valid keys: grid")
	})
}
