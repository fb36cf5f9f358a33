package attrread

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	result, err := processor.Run(ctx, fs, path, opts)
//	if errors.Is(err, attrread.ErrParse) {
//	    // Handle a malformed attribute literal
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was used incorrectly.
	ErrUsage = errors.New("usage error")

	// ErrInputNotFound indicates the input file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInvalidInput indicates the input file could not be read as a table.
	ErrInvalidInput = errors.New("invalid input")

	// ErrColumnNotFound indicates the attribute column is absent from the table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrParse indicates an attribute string is not a valid mapping literal.
	ErrParse = errors.New("attribute parse failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInputNotFound), errors.Is(err, ErrInvalidInput):
		return ExitInputError
	case errors.Is(err, ErrColumnNotFound):
		return ExitColumnMissing
	case errors.Is(err, ErrParse):
		return ExitParseError
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown command") ||
		strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.HasPrefix(errStr, "accepts ") {
		return ExitUsageError
	}

	return ExitGeneralError
}
