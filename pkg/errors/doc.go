// Package errors holds the error types assetview commands return and the
// code that prints them.
//
// Commands wrap failures in an ExitError carrying the process exit code:
//
//	return errors.NewExitError(errors.ExitConfigError, err)
//
// Inside the wrapped chain a ValidationError describes a bad config file,
// data file or flag, and a NotFoundError an asset identifier missing from the
// loaded collection. Both carry enough context for PrintErrorWithHints to add
// a "💡" line telling the user what to try next.
//
// Exit codes:
//
//	0  ExitSuccess      listing or command completed
//	1  ExitNoMatches    nothing matched and --fail-empty was given
//	2  ExitFailure      unknown asset, existing file, watcher failure
//	3  ExitConfigError  unreadable config or data, invalid flag value
package errors
