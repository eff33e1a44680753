package pixini

import (
	"slices"
	"strconv"

	"github.com/bncastle/Pixini/internal/record"
	"github.com/bncastle/Pixini/internal/scan"
)

// Set stores value under key in section. The value text runs through
// the same codec as parsed input on every write: comma-separated
// tokens become an array, quoting is recognized, an inline ;comment is
// split off. Whether the key previously held a scalar or an array does
// not matter; the new text alone decides the stored shape.
//
// An existing key (case-insensitive) is replaced in place, keeping its
// position, its comment and its original casing. A new key is appended
// to its section; a missing section is created at the end of the
// document.
func (p *Pixini) Set(key, section, value string) {
	v := scan.ParseValue(value)
	p.put(section, record.Record{
		Kind:    record.KeyValue,
		Key:     key,
		Value:   v.Scalar,
		Array:   v.Array,
		Quote:   v.Quote,
		Comment: v.Comment,
	})
}

// SetInt stores v under key as decimal integer text.
func (p *Pixini) SetInt(key, section string, v int) {
	p.Set(key, section, strconv.Itoa(v))
}

// SetFloat stores v under key as decimal float text.
func (p *Pixini) SetFloat(key, section string, v float64) {
	p.Set(key, section, strconv.FormatFloat(v, 'g', -1, 64))
}

// SetBool stores v under key as "true" or "false".
func (p *Pixini) SetBool(key, section string, v bool) {
	p.Set(key, section, strconv.FormatBool(v))
}

// SetArray stores values under key as an array, even when values holds
// a single element. This bypasses the codec's single-token collapse
// and is the only way to store a one-element array. The quote marker
// is cleared.
func (p *Pixini) SetArray(key, section string, values []string) {
	arr := make([]string, len(values))
	copy(arr, values)
	p.put(section, record.Record{
		Kind:  record.KeyValue,
		Key:   key,
		Array: arr,
	})
}

// SetIntArray stores values under key as an array of decimal integers.
func (p *Pixini) SetIntArray(key, section string, values []int) {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.Itoa(v)
	}
	p.SetArray(key, section, strs)
}

// SetFloatArray stores values under key as an array of decimal floats.
func (p *Pixini) SetFloatArray(key, section string, values []float64) {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	p.SetArray(key, section, strs)
}

// SetBoolArray stores values under key as an array of booleans.
func (p *Pixini) SetBoolArray(key, section string, values []bool) {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatBool(v)
	}
	p.SetArray(key, section, strs)
}

// put replaces the record matching rec.Key in place, or appends it,
// creating the section with a fresh header when needed.
func (p *Pixini) put(section string, rec record.Record) {
	display := section
	if display == "" {
		display = record.DefaultSection
	}
	name, i := p.find(rec.Key, section)
	if i >= 0 {
		old := p.sections[name][i]
		rec.Key = old.Key
		rec.Section = old.Section
		rec.Comment = old.Comment
		p.sections[name][i] = rec
		return
	}
	rec.Section = display
	recs, seen := p.sections[name]
	if !seen {
		p.order = append(p.order, name)
		recs = []record.Record{{Kind: record.Section, Section: display}}
	}
	p.sections[name] = append(recs, rec)
}

// Delete removes the first key/value record matching key
// (case-insensitive) from section. A section left with no key/value
// records is dropped entirely, header and comments included. It
// reports whether a record was removed.
func (p *Pixini) Delete(key, section string) bool {
	name, i := p.find(key, section)
	if i < 0 {
		return false
	}
	recs := slices.Delete(p.sections[name], i, i+1)
	if !slices.ContainsFunc(recs, func(r record.Record) bool { return r.Kind == record.KeyValue }) {
		delete(p.sections, name)
		p.order = slices.DeleteFunc(p.order, func(s string) bool { return s == name })
		return true
	}
	p.sections[name] = recs
	return true
}
