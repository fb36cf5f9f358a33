// Package literal parses restricted data literals of the kind found in
// exported business attribute columns, for example
//
//	{'BusinessAcceptsCreditCards': 'True', 'WiFi': u'free', 'Ambience': {'romantic': False}}
//
// Supported values:
//   - mappings {k: v, ...}, lists [...], tuples (...) and sets {...}
//   - single or double quoted strings with optional u/b/r prefixes,
//     triple quotes and backslash escapes; adjacent strings concatenate
//   - integers (decimal, 0x, 0o, 0b, with '_' separators) and floats
//   - True, False and None
//   - bare identifiers, which are read as strings so that {a: 1} parses
//     like {'a': 1}
//
// Nothing is evaluated. Any other input yields a *SyntaxError carrying the
// byte offset of the problem.
//
// Parsed values are string, int64, float64, bool, nil, []any and
// map[string]any. Mapping keys that are numbers, booleans or None are
// converted to their literal spelling.
package literal
