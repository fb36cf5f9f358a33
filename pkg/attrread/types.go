package attrread

import "github.com/google/uuid"

// Attributes is a parsed attribute mapping.
// Values are string, int64, float64, bool, nil, []any or nested map[string]any.
type Attributes = map[string]any

// DiagnosticKind classifies why a row produced no record.
type DiagnosticKind string

const (
	// DiagnosticMissing marks a row whose attribute cell is NaN-like.
	DiagnosticMissing DiagnosticKind = "missing"

	// DiagnosticParseFailed marks a row whose attribute string did not parse.
	// Only produced when keep-going mode is enabled.
	DiagnosticParseFailed DiagnosticKind = "parse_failed"
)

// Record is one successfully parsed row.
type Record struct {
	// Line is the 1-based data row number (the header row is not counted).
	Line int `json:"line" yaml:"line"`

	// ID is derived from the input digest and Line, so reruns over
	// identical input produce identical IDs.
	ID uuid.UUID `json:"id" yaml:"id"`

	// Raw is the cell exactly as read from the file.
	Raw string `json:"raw" yaml:"raw"`

	Attributes Attributes `json:"attributes" yaml:"attributes"`
}

// Diagnostic describes a row that was skipped or failed.
type Diagnostic struct {
	Line    int            `json:"line" yaml:"line"`
	Kind    DiagnosticKind `json:"kind" yaml:"kind"`
	Raw     string         `json:"raw" yaml:"raw"`
	Message string         `json:"message,omitempty" yaml:"message,omitempty"`
}

// Result is the outcome of processing one input file.
type Result struct {
	Source string `json:"source" yaml:"source"`

	// Digest is the hex SHA-256 of the input file bytes.
	Digest string `json:"digest" yaml:"digest"`

	// ColumnName is the name of the attribute column.
	ColumnName string `json:"column_name" yaml:"column_name"`

	// Column holds every raw attribute cell in file order.
	Column []string `json:"-" yaml:"-"`

	// Missing holds, per row, whether the cell was classified as missing.
	Missing []bool `json:"-" yaml:"-"`

	Records []Record     `json:"records" yaml:"records"`
	Skipped []Diagnostic `json:"skipped" yaml:"skipped"`
	Failed  []Diagnostic `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// RowCount returns the number of data rows seen so far.
func (r *Result) RowCount() int {
	return len(r.Column)
}
