package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/attrread/pkg/attrread"
)

// TextRenderer prints the attribute column followed by one notice per
// missing row:
//
//	line 2 has nan index
//	****************************************
//	nan
//
// A nil Styles prints plain text.
type TextRenderer struct {
	Styles *Styles
}

func (r *TextRenderer) Render(w io.Writer, res *attrread.Result) error {
	bw := bufio.NewWriter(w)

	writeColumn(bw, res)

	for _, d := range res.Skipped {
		notice := fmt.Sprintf("line %d has nan index", d.Line)
		separator := attrread.Separator
		if r.Styles != nil {
			notice = r.Styles.Notice.Render(notice)
			separator = r.Styles.Separator.Render(separator)
		}
		fmt.Fprintln(bw, notice)
		fmt.Fprintln(bw, separator)
		fmt.Fprintln(bw, attrread.MissingValue)
	}

	return bw.Flush()
}

// writeColumn prints the column the way a pandas Series is shown: a
// left-aligned row index, right-aligned values with NaN for missing cells
// and a footer naming the column.
func writeColumn(w io.Writer, res *attrread.Result) {
	if len(res.Column) == 0 {
		fmt.Fprintf(w, "Series([], Name: %s, dtype: object)\n", res.ColumnName)
		return
	}

	values := make([]string, len(res.Column))
	valueWidth := 0
	for i, raw := range res.Column {
		v := raw
		if i < len(res.Missing) && res.Missing[i] {
			v = "NaN"
		}
		values[i] = v
		if width := lipgloss.Width(v); width > valueWidth {
			valueWidth = width
		}
	}

	indexWidth := len(strconv.Itoa(len(values) - 1))
	for i, v := range values {
		pad := valueWidth - lipgloss.Width(v)
		fmt.Fprintf(w, "%-*d    %s%s\n", indexWidth, i, strings.Repeat(" ", pad), v)
	}
	fmt.Fprintf(w, "Name: %s, dtype: object\n", res.ColumnName)
}
