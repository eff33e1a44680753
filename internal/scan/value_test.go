package scan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bncastle/Pixini/internal/record"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{
			name:  "Empty",
			input: "",
			want:  Value{},
		},
		{
			name:  "Scalar",
			input: "hello",
			want:  Value{Scalar: "hello"},
		},
		{
			name:  "ScalarSurroundingWhitespace",
			input: "  hello \t",
			want:  Value{Scalar: "hello"},
		},
		{
			name:  "ScalarWithComment",
			input: "hello ; greeting",
			want:  Value{Scalar: "hello", Comment: "; greeting"},
		},
		{
			name:  "EmptyValueWithComment",
			input: ";only a comment",
			want:  Value{Comment: ";only a comment"},
		},
		{
			name:  "EscapedSemicolonStaysInValue",
			input: `a\;b`,
			want:  Value{Scalar: `a\;b`},
		},
		{
			name:  "EscapedThenRealSemicolon",
			input: `a\;b ;note`,
			want:  Value{Scalar: `a\;b`, Comment: ";note"},
		},
		{
			name:  "CSVArray",
			input: "67.3,54.2,1",
			want:  Value{Array: []string{"67.3", "54.2", "1"}},
		},
		{
			name:  "CSVArrayTrimsTokens",
			input: " German , American ,\tJapanese",
			want:  Value{Array: []string{"German", "American", "Japanese"}},
		},
		{
			name:  "CSVArrayWithComment",
			input: "a,b ;pair",
			want:  Value{Array: []string{"a", "b"}, Comment: ";pair"},
		},
		{
			name:  "TrailingCommaCollapsesToScalar",
			input: "5,",
			want:  Value{Scalar: "5"},
		},
		{
			name:  "OnlyCommasStayScalar",
			input: ",,",
			want:  Value{Scalar: ",,"},
		},
		{
			name:  "DoubleQuoted",
			input: `"hello world"`,
			want:  Value{Scalar: "hello world", Quote: '"'},
		},
		{
			name:  "SingleQuoted",
			input: `'hello world'`,
			want:  Value{Scalar: "hello world", Quote: '\''},
		},
		{
			name:  "QuotedCommasStayScalar",
			input: `"German, American, Japanese"`,
			want:  Value{Scalar: "German, American, Japanese", Quote: '"'},
		},
		{
			name:  "QuotedWithComment",
			input: `"value" ; note`,
			want:  Value{Scalar: "value", Quote: '"', Comment: "; note"},
		},
		{
			name:  "QuotedSemicolonInsideValue",
			input: `"a;b"`,
			want:  Value{Scalar: "a;b", Quote: '"'},
		},
		{
			name:  "SingleQuotesInsideDoubleQuotes",
			input: `"it's fine"`,
			want:  Value{Scalar: "it's fine", Quote: '"'},
		},
		{
			name:  "LoneQuoteIsNotQuoting",
			input: `"abc`,
			want:  Value{Scalar: `"abc`},
		},
		{
			name:  "LoneSingleQuoteIsNotQuoting",
			input: "it's",
			want:  Value{Scalar: "it's"},
		},
		{
			name:  "TextBeforeQuoteIsDropped",
			input: `abc "def"`,
			want:  Value{Scalar: "def", Quote: '"'},
		},
		{
			name:  "TrailingGarbageAfterQuoteIsDropped",
			input: `"a" b`,
			want:  Value{Scalar: "a", Quote: '"'},
		},
		{
			name:  "QuoteCountingWinsOverComment",
			input: `val ; "note"`,
			want:  Value{Scalar: "note", Quote: '"'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseValue(tt.input)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		rec  record.Record
		want string
	}{
		{
			name: "Scalar",
			rec:  record.Record{Kind: record.KeyValue, Value: "hello"},
			want: "hello",
		},
		{
			name: "QuotedScalar",
			rec:  record.Record{Kind: record.KeyValue, Value: "German, American, Japanese", Quote: '"'},
			want: `"German, American, Japanese"`,
		},
		{
			name: "SingleQuotedScalar",
			rec:  record.Record{Kind: record.KeyValue, Value: "a b", Quote: '\''},
			want: "'a b'",
		},
		{
			name: "Array",
			rec:  record.Record{Kind: record.KeyValue, Array: []string{"67.3", "54.2", "1"}},
			want: "67.3, 54.2, 1",
		},
		{
			name: "SingleElementArray",
			rec:  record.Record{Kind: record.KeyValue, Array: []string{"only"}},
			want: "only",
		},
		{
			name: "EmptyScalar",
			rec:  record.Record{Kind: record.KeyValue},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatValue(tt.rec))
		})
	}
}

// Round-tripping a parsed value through FormatValue and ParseValue again must
// be stable for well-formed input.
func TestValueRoundTrip(t *testing.T) {
	inputs := []string{
		"hello",
		"67.3,54.2,1",
		`"German, American, Japanese"`,
		"'single quoted'",
		"plain ;comment",
		"",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			first := ParseValue(in)
			rec := record.Record{
				Kind:  record.KeyValue,
				Value: first.Scalar,
				Array: first.Array,
				Quote: first.Quote,
			}
			second := ParseValue(FormatValue(rec))
			second.Comment = first.Comment
			require.Equal(t, first, second)
		})
	}
}
