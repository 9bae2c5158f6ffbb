package errors

import (
	"fmt"
	"io"
)

// PrintErrorWithHints writes each error on its own line, labelled by type.
//
// Validation errors print as "Validation Error: ..." and show their expected
// values and help only when verbose is set. Not-found errors print as
// "Not Found: ...". Any other error prints as "Error: ..." followed by a 💡
// hint when its message matches CommonErrorHints. Nil entries are skipped.
//
// Parameters:
//   - w: Destination, usually os.Stderr
//   - errs: Errors to print
//   - verbose: Include validation details
//
// Example output:
//
//	Error: failed to parse assets.json: unexpected end of JSON input
//	  💡 Check file syntax: Validate JSON/YAML syntax using a linter or online validator
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		_, _ = fmt.Fprintln(w, describe(err, verbose))
	}
}

// describe renders one error with its label.
func describe(err error, verbose bool) string {
	if ve, ok := IsValidationError(err); ok {
		if verbose {
			return "Validation Error: " + ve.VerboseError()
		}
		return "Validation Error: " + ve.Error()
	}
	if nf, ok := IsNotFoundError(err); ok {
		return "Not Found: " + nf.Error()
	}
	return "Error: " + EnhanceErrorWithHint(err)
}
