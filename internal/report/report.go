// Package report renders a processing Result.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/attrread/pkg/attrread"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// Renderer writes a Result to w.
type Renderer interface {
	Render(w io.Writer, res *attrread.Result) error
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown output format %q (want text, json or yaml)", attrread.ErrInvalidConfig, s)
}

// New returns the renderer for format. styled only affects text output.
func New(format Format, styled bool) (Renderer, error) {
	switch format {
	case FormatText, "":
		r := &TextRenderer{}
		if styled {
			r.Styles = DefaultStyles()
		}
		return r, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", attrread.ErrInvalidConfig, format)
	}
}
