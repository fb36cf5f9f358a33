// Package cell decides whether a raw attribute cell counts as missing.
package cell

import (
	"strconv"
	"strings"
)

// Kind is the classification of a raw cell.
type Kind int

const (
	// Unparseable cells are not numbers. They are still processed as present.
	Unparseable Kind = iota
	// Number cells hold a finite or infinite float.
	Number
	// Missing cells hold a NaN representation or a configured marker.
	Missing
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Missing:
		return "missing"
	default:
		return "unparseable"
	}
}

// PandasMarkers are the strings pandas.read_csv treats as NaN by default.
// They are only honoured when passed to Classify explicitly.
var PandasMarkers = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// Classify reports whether raw is a number, a missing value or neither.
// Surrounding whitespace is ignored. "nan" in any case and with an optional
// sign is Missing, as is any exact match in markers.
func Classify(raw string, markers ...string) Kind {
	trimmed := strings.TrimSpace(raw)

	for _, m := range markers {
		if trimmed == m {
			return Missing
		}
	}

	if isNaN(trimmed) {
		return Missing
	}

	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number
	} else if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		// overflow still parses as ±Inf
		return Number
	}

	return Unparseable
}

// IsMissing is shorthand for Classify(raw, markers...) == Missing.
func IsMissing(raw string, markers ...string) bool {
	return Classify(raw, markers...) == Missing
}

func isNaN(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return strings.EqualFold(s, "nan")
}
