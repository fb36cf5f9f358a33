package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/attrread/internal/processor"
	"github.com/vvka-141/attrread/pkg/attrread"
)

func twoRowResult() *attrread.Result {
	return &attrread.Result{
		Source:     "data/business.csv",
		Digest:     "abc",
		ColumnName: "attributes",
		Column:     []string{"{'a': 1}", "nan"},
		Missing:    []bool{false, true},
		Records: []attrread.Record{{
			Line:       1,
			ID:         processor.RecordID("abc", 1),
			Raw:        "{'a': 1}",
			Attributes: map[string]any{"a": int64(1)},
		}},
		Skipped: []attrread.Diagnostic{{Line: 2, Kind: attrread.DiagnosticMissing, Raw: "nan"}},
	}
}

func TestTextRenderer_TwoRowScenario(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&buf, twoRowResult()))

	want := "0    {'a': 1}\n" +
		"1         NaN\n" +
		"Name: attributes, dtype: object\n" +
		"line 2 has nan index\n" +
		"****************************************\n" +
		"nan\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRenderer_IndexWidth(t *testing.T) {
	res := &attrread.Result{ColumnName: "attributes"}
	for i := 0; i < 11; i++ {
		res.Column = append(res.Column, "{}")
		res.Missing = append(res.Missing, false)
	}

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&buf, res))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "0     {}", lines[0])
	assert.Equal(t, "10    {}", lines[10])
}

func TestTextRenderer_EmptyColumn(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&buf, &attrread.Result{ColumnName: "attributes"}))
	assert.Equal(t, "Series([], Name: attributes, dtype: object)\n", buf.String())
}

func TestTextRenderer_Styled(t *testing.T) {
	var buf bytes.Buffer
	r := &TextRenderer{Styles: DefaultStyles()}
	require.NoError(t, r.Render(&buf, twoRowResult()))

	// styling decorates the notice but never changes its text
	out := buf.String()
	assert.Contains(t, out, "line 2 has nan index")
	assert.Contains(t, out, attrread.Separator)
	assert.True(t, strings.HasSuffix(out, "nan\n"))
}

func TestTextRenderer_Idempotent(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&a, twoRowResult()))
	require.NoError(t, (&TextRenderer{}).Render(&b, twoRowResult()))
	assert.Equal(t, a.String(), b.String())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&buf, twoRowResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "data/business.csv", decoded["source"])
	assert.Equal(t, "attributes", decoded["column_name"])
	assert.NotContains(t, decoded, "failed")

	records := decoded["records"].([]any)
	require.Len(t, records, 1)
	rec := records[0].(map[string]any)
	assert.Equal(t, float64(1), rec["line"])
	assert.Equal(t, map[string]any{"a": float64(1)}, rec["attributes"])
	assert.Equal(t, processor.RecordID("abc", 1).String(), rec["id"])

	skipped := decoded["skipped"].([]any)
	require.Len(t, skipped, 1)
	assert.Equal(t, "missing", skipped[0].(map[string]any)["kind"])
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAMLRenderer{}.Render(&buf, twoRowResult()))

	var decoded struct {
		Source  string `yaml:"source"`
		Records []struct {
			Line       int            `yaml:"line"`
			ID         string         `yaml:"id"`
			Attributes map[string]any `yaml:"attributes"`
		} `yaml:"records"`
		Skipped []struct {
			Line int    `yaml:"line"`
			Kind string `yaml:"kind"`
		} `yaml:"skipped"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "data/business.csv", decoded.Source)
	require.Len(t, decoded.Records, 1)
	assert.Equal(t, processor.RecordID("abc", 1).String(), decoded.Records[0].ID)
	assert.Equal(t, map[string]any{"a": 1}, decoded.Records[0].Attributes)
	require.Len(t, decoded.Skipped, 1)
	assert.Equal(t, "missing", decoded.Skipped[0].Kind)
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "JSON", " yaml "} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, attrread.ErrInvalidConfig))
}

func TestNew(t *testing.T) {
	r, err := New(FormatText, true)
	require.NoError(t, err)
	require.IsType(t, &TextRenderer{}, r)
	assert.NotNil(t, r.(*TextRenderer).Styles)

	r, err = New(FormatJSON, true)
	require.NoError(t, err)
	assert.IsType(t, JSONRenderer{}, r)

	_, err = New(Format("xml"), false)
	assert.True(t, errors.Is(err, attrread.ErrInvalidConfig))
}
