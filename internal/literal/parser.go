package literal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxDepth bounds container nesting.
const maxDepth = 200

// Parse parses s as a single literal value.
func Parse(s string) (any, error) {
	p := &parser{src: s}

	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("empty literal")
	}

	v, err := p.value(0)
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q after value", p.rest())
	}
	return v, nil
}

// ParseMapping parses s and requires the result to be a mapping.
func ParseMapping(s string) (map[string]any, error) {
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, &SyntaxError{
			Offset: 0,
			Msg:    fmt.Sprintf("expected a mapping, found %s", typeName(v)),
			err:    ErrNotMapping,
		}
	}
	return m, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

// rest returns a short preview of the unread input for error messages.
func (p *parser) rest() string {
	r := p.src[p.pos:]
	if len(r) > 20 {
		r = r[:20] + "..."
	}
	return r
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) value(depth int) (any, error) {
	if depth > maxDepth {
		return nil, p.errorf("nesting deeper than %d levels", maxDepth)
	}

	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("unexpected end of input")
	}

	c := p.src[p.pos]
	switch {
	case c == '{':
		return p.braces(depth + 1)
	case c == '[':
		return p.list(depth + 1)
	case c == '(':
		return p.parens(depth + 1)
	case c == '\'' || c == '"':
		return p.stringLit()
	case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	}

	if p.stringAhead() {
		return p.stringLit()
	}

	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	if isIdentStart(r) {
		return p.word(), nil
	}
	return nil, p.errorf("unexpected character %q", r)
}

// braces parses a mapping or a set. The first element decides which.
func (p *parser) braces(depth int) (any, error) {
	p.pos++
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return map[string]any{}, nil
	}

	start := p.pos
	first, err := p.value(depth)
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.peek() != ':' {
		return p.sequence([]any{first}, '}', depth)
	}

	m := make(map[string]any)
	key := first
	keyPos := start
	for {
		k, err := keyString(key)
		if err != nil {
			return nil, &SyntaxError{Offset: keyPos, Msg: err.Error()}
		}

		p.pos++ // ':'
		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		m[k] = v

		p.skipSpace()
		switch p.peek() {
		case '}':
			p.pos++
			return m, nil
		case ',':
			p.pos++
		case 0:
			return nil, p.errorf("unexpected end of input, expected '}'")
		default:
			return nil, p.errorf("expected ',' or '}', found %q", p.peek())
		}

		p.skipSpace()
		if p.peek() == '}' {
			p.pos++
			return m, nil
		}

		keyPos = p.pos
		key, err = p.value(depth)
		if err != nil {
			return nil, err
		}

		p.skipSpace()
		if p.peek() != ':' {
			if p.eof() {
				return nil, p.errorf("unexpected end of input, expected ':'")
			}
			return nil, p.errorf("expected ':' after mapping key, found %q", p.peek())
		}
	}
}

func (p *parser) list(depth int) (any, error) {
	p.pos++
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		return []any{}, nil
	}

	first, err := p.value(depth)
	if err != nil {
		return nil, err
	}
	return p.sequence([]any{first}, ']', depth)
}

// parens parses a tuple, or a single parenthesized value when there is no comma.
func (p *parser) parens(depth int) (any, error) {
	p.pos++
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return []any{}, nil
	}

	first, err := p.value(depth)
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return first, nil
	}
	return p.sequence([]any{first}, ')', depth)
}

// sequence parses the remainder of a comma separated sequence after its
// first element, up to and including the closing byte.
func (p *parser) sequence(items []any, closer byte, depth int) ([]any, error) {
	for {
		p.skipSpace()
		switch p.peek() {
		case closer:
			p.pos++
			return items, nil
		case ',':
			p.pos++
			p.skipSpace()
			if p.peek() == closer {
				p.pos++
				return items, nil
			}
			v, err := p.value(depth)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		case 0:
			return nil, p.errorf("unexpected end of input, expected %q", closer)
		default:
			return nil, p.errorf("expected ',' or %q, found %q", closer, p.peek())
		}
	}
}

// word reads a bare identifier. True, False and None are keywords.
func (p *parser) word() any {
	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !isIdentPart(r) {
			break
		}
		p.pos += size
	}

	switch w := p.src[start:p.pos]; w {
	case "True":
		return true
	case "False":
		return false
	case "None":
		return nil
	default:
		return w
	}
}

func (p *parser) number() (any, error) {
	start := p.pos
	if c := p.peek(); c == '+' || c == '-' {
		p.pos++
	}

	body := p.pos
	if p.peek() == '0' && p.pos+1 < len(p.src) && strings.ContainsRune("xXoObB", rune(p.src[p.pos+1])) {
		p.pos += 2
		for !p.eof() && (isHexDigit(p.src[p.pos]) || p.src[p.pos] == '_') {
			p.pos++
		}
		text := p.src[start:p.pos]
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, numberError(start, text, err)
		}
		return n, nil
	}

	isFloat := false
	p.digits()
	if p.peek() == '.' {
		isFloat = true
		p.pos++
		p.digits()
	}
	if p.pos == body || (p.pos == body+1 && p.src[body] == '.') {
		p.pos = start
		return nil, p.errorf("invalid number")
	}
	if c := p.peek(); c == 'e' || c == 'E' {
		isFloat = true
		p.pos++
		if c := p.peek(); c == '+' || c == '-' {
			p.pos++
		}
		expStart := p.pos
		p.digits()
		if p.pos == expStart {
			return nil, p.errorf("missing exponent digits")
		}
	}
	if c := p.peek(); c == 'j' || c == 'J' {
		return nil, p.errorf("complex numbers are not supported")
	}

	text := p.src[start:p.pos]
	clean := strings.ReplaceAll(text, "_", "")
	if isFloat {
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return nil, numberError(start, text, err)
		}
		return f, nil
	}

	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return nil, numberError(start, text, err)
	}
	return n, nil
}

func (p *parser) digits() {
	for !p.eof() && ((p.src[p.pos] >= '0' && p.src[p.pos] <= '9') || p.src[p.pos] == '_') {
		p.pos++
	}
}

func numberError(offset int, text string, err error) *SyntaxError {
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return &SyntaxError{Offset: offset, Msg: fmt.Sprintf("number %s out of range", text)}
	}
	return &SyntaxError{Offset: offset, Msg: fmt.Sprintf("invalid number %q", text)}
}

func keyString(v any) (string, error) {
	switch k := v.(type) {
	case string:
		return k, nil
	case int64:
		return strconv.FormatInt(k, 10), nil
	case float64:
		return formatFloat(k), nil
	case bool:
		if k {
			return "True", nil
		}
		return "False", nil
	case nil:
		return "None", nil
	default:
		return "", fmt.Errorf("%s cannot be a mapping key", typeName(v))
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func typeName(v any) string {
	switch v.(type) {
	case map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case nil:
		return "None"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
