package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// parseCSV loads delimited text through a dataframe. Type detection and NaN
// substitution are disabled so every cell comes back verbatim.
func parseCSV(data []byte, delimiter rune) (*Table, error) {
	if delimiter == 0 {
		delimiter = ','
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	// a dataframe needs at least one data row; a lone header is an empty table
	if header, ok := headerOnly(data, delimiter); ok {
		return &Table{Header: header}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
		dataframe.WithDelimiter(delimiter),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", df.Err)
	}

	records := df.Records()
	return &Table{
		Header: records[0],
		Rows:   records[1:],
	}, nil
}

// headerOnly reports whether data holds exactly one record and returns it.
func headerOnly(data []byte, delimiter rune) ([]string, bool) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delimiter

	header, err := r.Read()
	if err != nil {
		return nil, false
	}
	if _, err := r.Read(); err != io.EOF {
		return nil, false
	}
	return header, true
}
