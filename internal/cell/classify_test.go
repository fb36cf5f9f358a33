package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Kind
	}{
		{name: "lowercase nan", raw: "nan", want: Missing},
		{name: "pandas NaN", raw: "NaN", want: Missing},
		{name: "upper NAN", raw: "NAN", want: Missing},
		{name: "negative nan", raw: "-nan", want: Missing},
		{name: "positive nan", raw: "+NaN", want: Missing},
		{name: "padded nan", raw: "  nan\t", want: Missing},
		{name: "integer", raw: "42", want: Number},
		{name: "float", raw: "-1.5e3", want: Number},
		{name: "infinity", raw: "inf", want: Number},
		{name: "overflow", raw: "1e999", want: Number},
		{name: "empty string", raw: "", want: Unparseable},
		{name: "whitespace only", raw: "   ", want: Unparseable},
		{name: "mapping literal", raw: "{'a': 1}", want: Unparseable},
		{name: "nan prefix only", raw: "nana", want: Unparseable},
		{name: "NA without markers", raw: "NA", want: Unparseable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw))
		})
	}
}

func TestClassify_Markers(t *testing.T) {
	assert.Equal(t, Missing, Classify("NA", "NA"))
	assert.Equal(t, Missing, Classify(" null ", "null"))
	assert.Equal(t, Unparseable, Classify("NULL", "null"), "markers are case-sensitive")
	assert.Equal(t, Number, Classify("1", "NA"))
}

func TestClassify_PandasMarkersTreatEmptyAsMissing(t *testing.T) {
	assert.Equal(t, Unparseable, Classify(""))
	assert.Equal(t, Missing, Classify("", PandasMarkers...))
	assert.Equal(t, Missing, Classify("N/A", PandasMarkers...))
	assert.Equal(t, Missing, Classify("None", PandasMarkers...))
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing("nan"))
	assert.False(t, IsMissing("{'a': 1}"))
	assert.False(t, IsMissing("3.14"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "number", Number.String())
	assert.Equal(t, "missing", Missing.String())
	assert.Equal(t, "unparseable", Unparseable.String())
}
