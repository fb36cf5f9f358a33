package table

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/attrread/internal/checksum"
	"github.com/vvka-141/attrread/internal/files/filesystem"
	"github.com/vvka-141/attrread/pkg/attrread"
)

// Options control how a file is turned into a Table.
type Options struct {
	// Delimiter separates CSV fields. Zero means ','.
	Delimiter rune

	// Sheet selects the worksheet of a spreadsheet. Empty means the first.
	Sheet string
}

// Format identifies the reader used for a file.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat picks the reader from the file extension.
// Anything that is not an Excel workbook is read as delimited text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

var calculator checksum.Calculator = checksum.New()

// Load reads path through fsys and parses it into a Table.
func Load(fsys filesystem.FileSystemProvider, path string, opts Options) (*Table, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", attrread.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to stat %s: %w", attrread.ErrInvalidInput, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", attrread.ErrInvalidInput, path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", attrread.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to read %s: %w", attrread.ErrInvalidInput, path, err)
	}

	var tbl *Table
	switch DetectFormat(path) {
	case FormatXLSX:
		tbl, err = parseXLSX(data, opts.Sheet)
	default:
		tbl, err = parseCSV(data, opts.Delimiter)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", attrread.ErrInvalidInput, path, err)
	}

	tbl.Source = path
	tbl.Digest = calculator.CalculateNormalized(data)
	tbl.RawDigest = calculator.CalculateRaw(data)
	return tbl, nil
}
