package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/attrread/pkg/attrread"
)

// JSONRenderer writes the Result as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, res *attrread.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// YAMLRenderer writes the Result as a YAML document.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, res *attrread.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}
