package literal

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const stringPrefixes = "uUbBrR"

// stringAhead reports whether a prefixed string such as u'x' starts at pos.
func (p *parser) stringAhead() bool {
	i, n := p.pos, 0
	for i < len(p.src) && n < 2 && strings.IndexByte(stringPrefixes, p.src[i]) >= 0 {
		i++
		n++
	}
	return n > 0 && i < len(p.src) && (p.src[i] == '\'' || p.src[i] == '"')
}

// stringLit parses one or more adjacent string literals and joins them.
func (p *parser) stringLit() (any, error) {
	var b strings.Builder
	for {
		if err := p.quoted(&b); err != nil {
			return nil, err
		}

		save := p.pos
		p.skipSpace()
		if c := p.peek(); c == '\'' || c == '"' || p.stringAhead() {
			continue
		}
		p.pos = save
		return b.String(), nil
	}
}

func (p *parser) quoted(b *strings.Builder) error {
	raw := false
	for c := p.src[p.pos]; c != '\'' && c != '"'; c = p.src[p.pos] {
		if c == 'r' || c == 'R' {
			raw = true
		}
		p.pos++
	}

	start := p.pos
	delim := p.src[p.pos : p.pos+1]
	if triple := strings.Repeat(delim, 3); strings.HasPrefix(p.src[p.pos:], triple) {
		delim = triple
	}
	p.pos += len(delim)

	for {
		if p.eof() {
			return &SyntaxError{Offset: start, Msg: "unterminated string"}
		}
		if strings.HasPrefix(p.src[p.pos:], delim) {
			p.pos += len(delim)
			return nil
		}

		switch c := p.src[p.pos]; {
		case c == '\n' && len(delim) == 1:
			return &SyntaxError{Offset: start, Msg: "unterminated string"}
		case c == '\\':
			if p.pos+1 >= len(p.src) {
				return &SyntaxError{Offset: start, Msg: "unterminated string"}
			}
			if raw {
				b.WriteString(p.src[p.pos : p.pos+2])
				p.pos += 2
				continue
			}
			if err := p.escape(b); err != nil {
				return err
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
}

// escape decodes the backslash sequence at pos. Unknown sequences are kept
// verbatim, backslash included.
func (p *parser) escape(b *strings.Builder) error {
	next := p.src[p.pos+1]
	p.pos += 2

	switch next {
	case '\n':
	case '\\', '\'', '"':
		b.WriteByte(next)
	case 'a':
		b.WriteByte('\a')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'v':
		b.WriteByte('\v')
	case '0', '1', '2', '3', '4', '5', '6', '7':
		v := rune(next - '0')
		for i := 0; i < 2 && !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '7'; i++ {
			v = v*8 + rune(p.src[p.pos]-'0')
			p.pos++
		}
		b.WriteRune(v)
	case 'x':
		return p.hexEscape(b, 2)
	case 'u':
		return p.hexEscape(b, 4)
	case 'U':
		return p.hexEscape(b, 8)
	default:
		b.WriteByte('\\')
		b.WriteByte(next)
	}
	return nil
}

func (p *parser) hexEscape(b *strings.Builder, n int) error {
	offset := p.pos - 2
	if p.pos+n > len(p.src) {
		return &SyntaxError{Offset: offset, Msg: "truncated escape sequence"}
	}

	v, err := strconv.ParseUint(p.src[p.pos:p.pos+n], 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return &SyntaxError{Offset: offset, Msg: "invalid escape sequence " + p.src[offset:p.pos+n]}
	}

	b.WriteRune(rune(v))
	p.pos += n
	return nil
}
