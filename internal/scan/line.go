package scan

import (
	"context"
	"strings"
	"unicode"

	"zombiezen.com/go/log"

	"github.com/bncastle/Pixini/internal/record"
)

// Classifier turns raw input lines into records. It tracks the current
// section across calls, so lines must be fed strictly in file order.
type Classifier struct {
	sep     byte
	section string
	line    int
}

// NewClassifier returns a classifier for lines whose key/value separator is
// sep. The section context starts at the default section.
func NewClassifier(sep byte) *Classifier {
	return &Classifier{sep: sep, section: record.DefaultSection}
}

// Next classifies one line. Lines that carry nothing (blank, malformed,
// or otherwise unrecognized) come back as a None record for the caller
// to skip; classification never fails.
func (c *Classifier) Next(line string) record.Record {
	c.line++
	line = strings.TrimSpace(line)
	rec := record.Record{Section: c.section}
	if line == "" {
		return rec
	}

	if line[0] == ';' {
		rec.Kind = record.Comment
		rec.Comment = line
		return rec
	}

	if line[0] == '[' {
		if end := strings.IndexByte(line, ']'); end >= 0 {
			name := strings.TrimSpace(line[1:end])
			rec.Kind = record.Section
			rec.Section = name
			if i := strings.IndexByte(line[end:], ';'); i >= 0 {
				rec.Comment = line[end+i:]
			}
			c.section = name
			return rec
		}
		// No closing bracket: fall through to the key/value check.
	}

	sep := strings.IndexByte(line, c.sep)
	if sep < 0 {
		return rec
	}

	key := line[:sep]
	if i := strings.IndexFunc(key, unicode.IsSpace); i >= 0 {
		trunc := key[:i]
		log.Warnf(context.Background(), "pixini: line %d: key %q truncated to %q at whitespace", c.line, key, trunc)
		key = trunc
	}
	v := ParseValue(line[sep+1:])
	rec.Kind = record.KeyValue
	rec.Key = key
	rec.Value = v.Scalar
	rec.Array = v.Array
	rec.Quote = v.Quote
	rec.Comment = v.Comment
	return rec
}
