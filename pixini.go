package pixini

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/bncastle/Pixini/internal/record"
)

// DefaultSection is the name under which keys appearing before any
// section header are stored. An empty section argument anywhere in the
// API addresses this section.
const DefaultSection = record.DefaultSection

// Pixini is an in-memory INI document. It preserves comments, section
// order, quoting and comma-separated arrays across a full
// read-modify-write cycle: parsing a file and serializing it again
// reproduces the original sections, keys, values and comments in
// order.
//
// A Pixini is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type Pixini struct {
	opts     options
	sections map[string][]record.Record
	order    []string // folded section names, file order, deduplicated
}

// New returns an empty document.
func New(opts ...Option) (*Pixini, error) {
	o := defaultOptions()
	if err := o.apply(opts); err != nil {
		return nil, err
	}
	return &Pixini{
		opts:     o,
		sections: make(map[string][]record.Record),
	}, nil
}

// Parse parses data as INI text.
func Parse(data []byte, opts ...Option) (*Pixini, error) {
	return Load(bytes.NewReader(data), opts...)
}

// ParseString parses s as INI text.
func ParseString(s string, opts ...Option) (*Pixini, error) {
	return Load(strings.NewReader(s), opts...)
}

// Load reads INI text from r. The input may start with a UTF-8 or
// UTF-16 byte order mark; Windows editors emit them routinely, and
// both are decoded transparently.
func Load(r io.Reader, opts ...Option) (*Pixini, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, err
	}
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if err := p.parse(transform.NewReader(r, dec)); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFile reads the INI file at path.
func LoadFile(path string, opts ...Option) (*Pixini, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pixini: %w", err)
	}
	defer f.Close()
	return Load(f, opts...)
}
