package pixini

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/bncastle/Pixini/internal/record"
	"github.com/bncastle/Pixini/internal/scan"
)

const (
	// scannerInitialBufferSize is the initial buffer size for the line scanner.
	scannerInitialBufferSize = 64 * 1024 // 64KB

	// scannerMaxLineSize is the longest input line the scanner accepts.
	scannerMaxLineSize = 1024 * 1024 // 1MB
)

// parse consumes r line by line and appends the classified records.
func (p *Pixini) parse(r io.Reader) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 0, scannerInitialBufferSize)
	sc.Buffer(buf, scannerMaxLineSize)

	cl := scan.NewClassifier(p.opts.inSep)
	for sc.Scan() {
		p.append(cl.Next(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("pixini: reading input: %w", err)
	}
	p.normalizeDefaultHeader()
	return nil
}

// append stores one classified record. Unrecognized lines are dropped
// and a duplicate header for a section that already has one is not
// re-added. The first record of a section, whatever its kind, puts the
// section on the ordering list.
func (p *Pixini) append(rec record.Record) {
	if rec.Kind == record.None {
		return
	}
	name := fold(rec.Section)
	recs, seen := p.sections[name]
	if !seen {
		p.order = append(p.order, name)
	}
	if rec.Kind == record.Section && hasHeader(recs) {
		return
	}
	p.sections[name] = append(recs, rec)
}

func hasHeader(recs []record.Record) bool {
	return slices.ContainsFunc(recs, func(r record.Record) bool {
		return r.Kind == record.Section
	})
}

// normalizeDefaultHeader fixes the record order of files that open
// with comments or keys before an explicit [default] header: the
// header record lands mid-sequence during parsing and is moved back to
// just after the leading comment block, before the first key/value.
func (p *Pixini) normalizeDefaultHeader() {
	recs := p.sections[record.DefaultSection]
	if len(recs) == 0 || recs[0].Kind == record.Section {
		return
	}
	i := slices.IndexFunc(recs, func(r record.Record) bool { return r.Kind == record.Section })
	if i < 0 {
		return
	}
	hdr := recs[i]
	recs = slices.Delete(recs, i, i+1)
	j := 0
	for j < len(recs) && recs[j].Kind == record.Comment {
		j++
	}
	p.sections[record.DefaultSection] = slices.Insert(recs, j, hdr)
}

// fold normalizes a section name for storage and lookup. An empty name
// addresses the default section.
func fold(section string) string {
	if section == "" {
		return record.DefaultSection
	}
	return strings.ToLower(section)
}
