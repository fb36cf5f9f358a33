// Package processor walks the attribute column of a table and turns every
// present cell into a parsed mapping.
//
// For each row, in order:
//  1. a NaN-like cell (see package cell) is recorded as skipped;
//  2. any other cell has its double quotes removed and is parsed as a
//     mapping literal (see package literal).
//
// A malformed literal stops the run with a *ParseError unless
// Options.KeepGoing is set. Either way the Result built so far is returned,
// so callers can still report what was processed before the failure.
//
// Nothing is printed here; rendering belongs to package report.
package processor
