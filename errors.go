package pixini

import (
	"errors"
	"strconv"
)

// ErrNotFound indicates the requested key does not exist in the given
// section, or exists but does not hold the requested shape (a scalar
// where an array was asked for).
var ErrNotFound = errors.New("pixini: not found")

// A ConvError reports an array element that could not be converted to
// the requested type.
type ConvError struct {
	Key     string // key the array was read from
	Section string // section the key lives in
	Index   int    // zero-based element index
	Value   string // the offending element text
	Target  string // target type name: "int", "float64" or "bool"
	Err     error  // underlying conversion error
}

func (e *ConvError) Error() string {
	return "pixini: cannot convert " + e.Key + "[" + strconv.Itoa(e.Index) + "] = " +
		strconv.Quote(e.Value) + " in section " + strconv.Quote(e.Section) +
		" to " + e.Target + ": " + e.Err.Error()
}

func (e *ConvError) Unwrap() error { return e.Err }
