package attrread

import "strings"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // All rows processed
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (too many args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration
	ExitInputError    = 11 // Input file missing or unreadable
	ExitColumnMissing = 12 // Attribute column not present
	ExitParseError    = 13 // Attribute string is not a mapping literal
)

const (
	// DefaultInputPath is the file read when no path is given.
	DefaultInputPath = "data/business.csv"

	// DefaultColumn is the column holding the attribute strings.
	DefaultColumn = "attributes"

	// MissingValue is how a skipped cell is echoed in diagnostics.
	MissingValue = "nan"
)

// Separator is printed between a missing-value notice and the value itself.
var Separator = strings.Repeat("**", 20)
