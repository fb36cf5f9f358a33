package table

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// parseXLSX reads one worksheet. The first row is the header; shorter rows
// are padded with empty cells. A row with a value beyond the last header
// cell is rejected, as the CSV reader rejects ragged records.
func parseXLSX(data []byte, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := rows[0]
	body := make([][]string, 0, len(rows)-1)
	for i, r := range rows[1:] {
		// GetRows trims trailing empty cells, so a longer row holds data
		if len(r) > len(header) {
			return nil, fmt.Errorf("sheet %q row %d has %d cells, header has %d", sheet, i+2, len(r), len(header))
		}
		row := make([]string, len(header))
		copy(row, r)
		body = append(body, row)
	}

	return &Table{Header: header, Rows: body}, nil
}
