package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/attrread/internal/cell"
	"github.com/vvka-141/attrread/internal/files/filesystem"
	"github.com/vvka-141/attrread/internal/literal"
	"github.com/vvka-141/attrread/internal/logging"
	"github.com/vvka-141/attrread/internal/table"
	"github.com/vvka-141/attrread/pkg/attrread"
)

// Options control a processing run.
type Options struct {
	// Column names the attribute column. Empty means attrread.DefaultColumn.
	Column string

	// MissingMarkers are extra cell values treated as missing.
	MissingMarkers []string

	// KeepGoing records parse failures instead of stopping at the first one.
	KeepGoing bool

	Logger attrread.Logger
}

// ParseError reports an attribute string that is not a mapping literal.
// It matches attrread.ErrParse and unwraps to the *literal.SyntaxError.
type ParseError struct {
	Line int
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %v", e.Line, attrread.ErrParse, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{attrread.ErrParse, e.Err}
}

// CleanAttributeString removes every double-quote character.
func CleanAttributeString(raw string) string {
	return strings.ReplaceAll(raw, `"`, "")
}

// Run loads path and processes it.
func Run(ctx context.Context, fsys filesystem.FileSystemProvider, path string, loadOpts table.Options, opts Options) (*attrread.Result, error) {
	logger := loggerOrNull(opts.Logger)

	tbl, err := table.Load(fsys, path, loadOpts)
	if err != nil {
		return nil, err
	}
	logger.Verbose("Loaded %d rows and %d columns from %s (sha256 %s)", tbl.Len(), len(tbl.Header), path, tbl.RawDigest)

	return Process(ctx, tbl, opts)
}

// Process walks the attribute column of tbl.
//
// The returned Result is non-nil whenever the column exists, even when an
// error is returned.
func Process(ctx context.Context, tbl *table.Table, opts Options) (*attrread.Result, error) {
	logger := loggerOrNull(opts.Logger)

	name := opts.Column
	if name == "" {
		name = attrread.DefaultColumn
	}

	column, err := tbl.Column(name)
	if err != nil {
		return nil, err
	}

	res := &attrread.Result{
		Source:     tbl.Source,
		Digest:     tbl.Digest,
		ColumnName: name,
		Column:     column,
		Missing:    make([]bool, len(column)),
		Records:    []attrread.Record{},
		Skipped:    []attrread.Diagnostic{},
	}
	for i, raw := range column {
		res.Missing[i] = cell.IsMissing(raw, opts.MissingMarkers...)
	}

	for i, raw := range column {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		line := i + 1
		if res.Missing[i] {
			logger.Verbose("line %d: missing attributes, skipped", line)
			res.Skipped = append(res.Skipped, attrread.Diagnostic{
				Line: line,
				Kind: attrread.DiagnosticMissing,
				Raw:  raw,
			})
			continue
		}

		attrs, err := literal.ParseMapping(CleanAttributeString(raw))
		if err != nil {
			perr := &ParseError{Line: line, Raw: raw, Err: err}
			if !opts.KeepGoing {
				return res, perr
			}
			res.Failed = append(res.Failed, attrread.Diagnostic{
				Line:    line,
				Kind:    attrread.DiagnosticParseFailed,
				Raw:     raw,
				Message: err.Error(),
			})
			continue
		}

		res.Records = append(res.Records, attrread.Record{
			Line:       line,
			ID:         RecordID(tbl.Digest, line),
			Raw:        raw,
			Attributes: attrs,
		})
	}

	logger.Verbose("Parsed %d of %d rows, skipped %d, failed %d",
		len(res.Records), res.RowCount(), len(res.Skipped), len(res.Failed))

	if len(res.Failed) > 0 {
		return res, fmt.Errorf("%w: %d of %d rows are not mapping literals",
			attrread.ErrParse, len(res.Failed), res.RowCount())
	}
	return res, nil
}

func loggerOrNull(l attrread.Logger) attrread.Logger {
	if l == nil {
		return logging.NewNullLogger()
	}
	return l
}
