// Package record defines the typed line records that make up a parsed INI
// document. Every line of input that survives classification becomes exactly
// one Record, and the serializer replays Records back into text.
package record

// DefaultSection is the case-folded name of the implicit section that holds
// records appearing before any explicit [section] header.
const DefaultSection = "default"

// Kind identifies what a classified line holds.
type Kind int

const (
	// None marks a line that carries nothing: blank, malformed, or otherwise
	// unrecognized. None records are never stored in a document.
	None Kind = iota
	// Comment is a whole-line comment.
	Comment
	// Section is a [name] header line.
	Section
	// KeyValue is a key/value pair.
	KeyValue
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Comment:
		return "Comment"
	case Section:
		return "Section"
	case KeyValue:
		return "KeyValue"
	}
	return "Unknown"
}

// Record represents a single classified line.
//
// The value payload of a KeyValue record is either Value (scalar) or Array,
// never both: Array is nil for scalars, and Value is empty when Array is set.
// Arrays produced by value parsing always hold at least two elements; a
// single token is always stored as a scalar.
//
// Comment holds inline or whole-line comment text including its leading ';',
// so an empty string means "no comment" while ";" is a present, empty
// comment. Quote records the quote character wrapping the original value (0
// when unquoted); quoted payloads are stored with the quotes stripped.
type Record struct {
	Kind    Kind
	Section string // section the record belongs to, display casing
	Key     string // KeyValue only
	Value   string // scalar payload
	Array   []string
	Quote   byte // 0, '"' or '\''
	Comment string
}

// IsArray reports whether the record currently holds an array payload.
func (r Record) IsArray() bool {
	return r.Array != nil
}
