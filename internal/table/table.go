// Package table loads delimited or spreadsheet files into an ordered,
// in-memory table of raw string cells.
package table

import (
	"fmt"
	"strings"

	"github.com/vvka-141/attrread/pkg/attrread"
)

// Table is an ordered sequence of rows sharing one header.
// Cells are kept exactly as read; no type conversion or NaN rewriting.
type Table struct {
	// Source is the path the table was loaded from.
	Source string

	// Digest is the normalized checksum of the source bytes.
	Digest string

	// RawDigest is the checksum of the source bytes as read.
	RawDigest string

	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns every cell of the named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q not in %s (columns: %s)",
			attrread.ErrColumnNotFound, name, t.Source, strings.Join(t.Header, ", "))
	}

	col := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			col[i] = row[idx]
		}
	}
	return col, nil
}
