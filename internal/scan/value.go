// Package scan holds the two parsing layers of the library: the value codec,
// which decodes and re-encodes the text after a key/value separator, and the
// line classifier, which turns raw input lines into records.
package scan

import (
	"strings"
	"unicode"

	"github.com/bncastle/Pixini/internal/record"
)

// Value is the decoded payload of a value region.
//
// Exactly one of Scalar and Array is populated: Array is nil for scalar
// values. Comment carries any trailing inline comment including its leading
// ';' (empty means none), and Quote records the quote character wrapping the
// original text (0 when unquoted).
type Value struct {
	Scalar  string
	Array   []string
	Quote   byte
	Comment string
}

// ParseValue decodes the text following a key/value separator. It is total:
// every input yields a usable Value and malformed quoting degrades to the
// unquoted reading instead of failing.
//
// A value is considered quoted when the text contains at least two double
// quotes, or failing that, at least two single quotes; a lone quote character
// never counts. Quoted payloads keep everything between the first quote and
// its closer, with the quotes stripped and the quote character recorded, and
// are always scalar no matter how many commas they embed. Unquoted values end
// at the first ';' not preceded by a backslash, and split into an array when
// they contain commas separating two or more non-empty tokens.
func ParseValue(s string) Value {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if q := quoteChar(s); q != 0 {
		return parseQuoted(s, q)
	}
	return parseUnquoted(s)
}

func quoteChar(s string) byte {
	if strings.Count(s, `"`) >= 2 {
		return '"'
	}
	if strings.Count(s, "'") >= 2 {
		return '\''
	}
	return 0
}

func parseQuoted(s string, q byte) Value {
	v := Value{Quote: q}
	open := strings.IndexByte(s, q)
	rest := s[open+1:]
	end := strings.IndexByte(rest, q)
	v.Scalar = rest[:end]
	tail := strings.TrimLeftFunc(rest[end+1:], unicode.IsSpace)
	if strings.HasPrefix(tail, ";") {
		v.Comment = tail
	}
	return v
}

func parseUnquoted(s string) Value {
	var v Value
	raw := s
	for i := 0; i < len(s); i++ {
		if s[i] == ';' && (i == 0 || s[i-1] != '\\') {
			v.Comment = s[i:]
			raw = s[:i]
			break
		}
	}
	raw = strings.TrimRightFunc(raw, unicode.IsSpace)
	if !strings.Contains(raw, ",") {
		v.Scalar = raw
		return v
	}

	// Split on every comma, trim each token, and drop the empties. A single
	// surviving token collapses back to a scalar: single-element arrays do
	// not exist on this path.
	tokens := make([]string, 0, strings.Count(raw, ",")+1)
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	switch len(tokens) {
	case 0:
		v.Scalar = raw
	case 1:
		v.Scalar = tokens[0]
	default:
		v.Array = tokens
	}
	return v
}

// FormatValue renders a record's payload back to text: the scalar, or the
// array elements joined with ", ", wrapped in the recorded quote character
// when one is set.
func FormatValue(r record.Record) string {
	text := r.Value
	if r.IsArray() {
		text = strings.Join(r.Array, ", ")
	}
	if r.Quote != 0 {
		return string(r.Quote) + text + string(r.Quote)
	}
	return text
}
