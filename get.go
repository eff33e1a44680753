package pixini

import (
	"slices"
	"strconv"
	"strings"

	"github.com/bncastle/Pixini/internal/record"
)

// find returns the folded section name and the index of the first
// key/value record matching key (case-insensitive), or -1.
func (p *Pixini) find(key, section string) (string, int) {
	name := fold(section)
	for i, r := range p.sections[name] {
		if r.Kind == record.KeyValue && strings.EqualFold(r.Key, key) {
			return name, i
		}
	}
	return name, -1
}

// Get returns the scalar value stored under key in section. The bool
// reports whether the key was found holding a scalar; a key holding an
// array reports false, as does an absent key.
func (p *Pixini) Get(key, section string) (string, bool) {
	name, i := p.find(key, section)
	if i < 0 {
		return "", false
	}
	r := p.sections[name][i]
	if r.IsArray() {
		return "", false
	}
	return r.Value, true
}

// GetString returns the scalar value under key, or def when absent.
func (p *Pixini) GetString(key, section, def string) string {
	if v, ok := p.Get(key, section); ok {
		return v
	}
	return def
}

// GetInt returns the value under key parsed as a decimal integer.
// An absent key and an unparsable value both yield def; the two cases
// are indistinguishable to the caller.
func (p *Pixini) GetInt(key, section string, def int) int {
	v, ok := p.Get(key, section)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// GetFloat returns the value under key parsed as a decimal float, or
// def when the key is absent or its value does not parse.
func (p *Pixini) GetFloat(key, section string, def float64) float64 {
	v, ok := p.Get(key, section)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// GetBool returns the value under key parsed as a boolean, or def
// when the key is absent or its value is neither "true" nor "false"
// (case-insensitive).
func (p *Pixini) GetBool(key, section string, def bool) bool {
	v, ok := p.Get(key, section)
	if !ok {
		return def
	}
	b, err := parseBool(v)
	if err != nil {
		return def
	}
	return b
}

func parseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return false, strconv.ErrSyntax
}

// GetArray returns a copy of the array stored under key. An absent key
// and a key holding a scalar both report false.
func (p *Pixini) GetArray(key, section string) ([]string, bool) {
	name, i := p.find(key, section)
	if i < 0 {
		return nil, false
	}
	r := p.sections[name][i]
	if !r.IsArray() {
		return nil, false
	}
	return slices.Clone(r.Array), true
}

// GetIntArray returns the array under key with every element parsed as
// a decimal integer. It returns ErrNotFound when the key is absent or
// holds a scalar, and a *ConvError naming the first offending element
// when one fails to parse.
func (p *Pixini) GetIntArray(key, section string) ([]int, error) {
	vals, ok := p.GetArray(key, section)
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &ConvError{Key: key, Section: fold(section), Index: i, Value: v, Target: "int", Err: err}
		}
		out[i] = n
	}
	return out, nil
}

// GetFloatArray returns the array under key with every element parsed
// as a decimal float. Errors as in GetIntArray.
func (p *Pixini) GetFloatArray(key, section string) ([]float64, error) {
	vals, ok := p.GetArray(key, section)
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, &ConvError{Key: key, Section: fold(section), Index: i, Value: v, Target: "float64", Err: err}
		}
		out[i] = f
	}
	return out, nil
}

// GetBoolArray returns the array under key with every element parsed
// as a boolean. Errors as in GetIntArray.
func (p *Pixini) GetBoolArray(key, section string) ([]bool, error) {
	vals, ok := p.GetArray(key, section)
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]bool, len(vals))
	for i, v := range vals {
		b, err := parseBool(v)
		if err != nil {
			return nil, &ConvError{Key: key, Section: fold(section), Index: i, Value: v, Target: "bool", Err: err}
		}
		out[i] = b
	}
	return out, nil
}

// SectionNames returns the section names in file order, cased as
// written in their headers. A default section without an explicit
// header reports as DefaultSection.
func (p *Pixini) SectionNames() []string {
	out := make([]string, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.displayName(name))
	}
	return out
}

func (p *Pixini) displayName(folded string) string {
	for _, r := range p.sections[folded] {
		if r.Kind == record.Section {
			return r.Section
		}
	}
	return folded
}

// Keys returns the keys of section in file order, cased as written.
func (p *Pixini) Keys(section string) []string {
	var out []string
	for _, r := range p.sections[fold(section)] {
		if r.Kind == record.KeyValue {
			out = append(out, r.Key)
		}
	}
	return out
}

// HasSection reports whether section exists.
func (p *Pixini) HasSection(section string) bool {
	_, ok := p.sections[fold(section)]
	return ok
}

// Len returns the number of key/value records in the document.
func (p *Pixini) Len() int {
	n := 0
	for _, recs := range p.sections {
		for _, r := range recs {
			if r.Kind == record.KeyValue {
				n++
			}
		}
	}
	return n
}
