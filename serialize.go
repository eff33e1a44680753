package pixini

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bncastle/Pixini/internal/record"
	"github.com/bncastle/Pixini/internal/scan"
)

// Lines returns the serialized document as individual lines without
// line terminators. Sections appear in file order; blank lines between
// records follow the document's options.
func (p *Pixini) Lines() []string {
	var lines []string
	prev := record.None
	for _, name := range p.order {
		recs, ok := p.sections[name]
		if !ok {
			panic(fmt.Sprintf("pixini: section %q is on the ordering list but has no records", name))
		}
		for _, r := range recs {
			if p.blankBefore(prev, r.Kind) {
				lines = append(lines, "")
			}
			lines = append(lines, p.formatRecord(r))
			prev = r.Kind
		}
	}
	return lines
}

// blankBefore reports whether a blank line separates a record of kind
// cur from the previously emitted record of kind prev.
func (p *Pixini) blankBefore(prev, cur record.Kind) bool {
	if prev == record.None {
		return false
	}
	switch cur {
	case record.Section:
		return p.opts.blankBeforeSection && prev == record.KeyValue
	case record.Comment:
		return p.opts.blankBeforeComment && prev == record.KeyValue
	case record.KeyValue:
		return p.opts.blankBetweenKeys && (prev == record.KeyValue || prev == record.Section)
	}
	return false
}

func (p *Pixini) formatRecord(r record.Record) string {
	switch r.Kind {
	case record.Comment:
		return r.Comment
	case record.Section:
		s := "[" + r.Section + "]"
		if r.Comment != "" {
			s += " " + r.Comment
		}
		return s
	case record.KeyValue:
		s := r.Key + string(p.opts.outSep) + scan.FormatValue(r)
		if r.Comment != "" {
			s += " " + r.Comment
		}
		return s
	}
	return ""
}

// String returns the document as INI text with a trailing newline.
// An empty document yields the empty string.
func (p *Pixini) String() string {
	lines := p.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteTo writes the serialized document to w. It implements
// io.WriterTo.
func (p *Pixini) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range p.Lines() {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("pixini: writing output: %w", err)
		}
	}
	return total, nil
}

// SaveFile writes the document to path, creating or truncating the
// file.
func (p *Pixini) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pixini: %w", err)
	}
	if _, err := p.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pixini: %w", err)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p *Pixini) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It replaces the
// document's contents and keeps its options; a zero-valued Pixini gets
// the default options.
func (p *Pixini) UnmarshalText(text []byte) error {
	if p.opts.inSep == 0 {
		p.opts = defaultOptions()
	}
	p.sections = make(map[string][]record.Record)
	p.order = nil
	return p.parse(bytes.NewReader(text))
}
