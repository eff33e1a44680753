package pixini

import "fmt"

// Option configures a Pixini document. Options are applied and
// validated at construction; an invalid option aborts New, Parse,
// or Load with an error.
type Option func(*options) error

// options holds the resolved configuration for a document.
type options struct {
	inSep  byte
	outSep byte

	blankBeforeSection bool
	blankBeforeComment bool
	blankBetweenKeys   bool
}

func defaultOptions() options {
	return options{
		inSep:              '=',
		outSep:             '=',
		blankBeforeSection: true,
		blankBeforeComment: true,
		blankBetweenKeys:   false,
	}
}

func (o *options) apply(opts []Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// InputSeparator returns an Option that sets the byte separating keys
// from values when parsing. The default is '='.
func InputSeparator(c byte) Option {
	return func(o *options) error {
		if err := checkSeparator(c); err != nil {
			return err
		}
		o.inSep = c
		return nil
	}
}

// OutputSeparator returns an Option that sets the byte written between
// keys and values when serializing. The default is '='.
func OutputSeparator(c byte) Option {
	return func(o *options) error {
		if err := checkSeparator(c); err != nil {
			return err
		}
		o.outSep = c
		return nil
	}
}

func checkSeparator(c byte) error {
	switch {
	case c <= ' ' || c >= 0x7f:
		return fmt.Errorf("pixini: separator must be a printable non-space character")
	case c == ';' || c == '[' || c == ']':
		return fmt.Errorf("pixini: separator %q collides with comment or section syntax", c)
	}
	return nil
}

// BlankLineBeforeSection returns an Option that controls whether a
// blank line is emitted before each section header. Enabled by
// default.
func BlankLineBeforeSection(on bool) Option {
	return func(o *options) error {
		o.blankBeforeSection = on
		return nil
	}
}

// BlankLineBeforeComment returns an Option that controls whether a
// blank line is emitted before a comment that follows a key/value
// line. Enabled by default.
func BlankLineBeforeComment(on bool) Option {
	return func(o *options) error {
		o.blankBeforeComment = on
		return nil
	}
}

// BlankLineBetweenKeys returns an Option that controls whether a blank
// line is emitted between consecutive key/value lines. Disabled by
// default.
func BlankLineBetweenKeys(on bool) Option {
	return func(o *options) error {
		o.blankBetweenKeys = on
		return nil
	}
}
