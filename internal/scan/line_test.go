package scan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bncastle/Pixini/internal/record"
)

func TestClassifierNext(t *testing.T) {
	input := []string{
		";leading comment",
		"speed=88",
		"",
		"[Cars]",
		"make= Toyota ;inline",
		"models=Corolla,Camry,Yaris",
		"[Cars] ;duplicate header, still a section line",
		"not a key value line",
		"[unclosed=actually a key",
		"  [ Spaced ]  ",
		"last=true",
	}

	expected := []record.Record{
		{Kind: record.Comment, Section: "default", Comment: ";leading comment"},
		{Kind: record.KeyValue, Section: "default", Key: "speed", Value: "88"},
		{Kind: record.None, Section: "default"},
		{Kind: record.Section, Section: "Cars"},
		{Kind: record.KeyValue, Section: "Cars", Key: "make", Value: "Toyota", Comment: ";inline"},
		{Kind: record.KeyValue, Section: "Cars", Key: "models", Array: []string{"Corolla", "Camry", "Yaris"}},
		{Kind: record.Section, Section: "Cars", Comment: ";duplicate header, still a section line"},
		{Kind: record.None, Section: "Cars"},
		{Kind: record.KeyValue, Section: "Cars", Key: "[unclosed", Value: "actually a key"},
		{Kind: record.Section, Section: "Spaced"},
		{Kind: record.KeyValue, Section: "Spaced", Key: "last", Value: "true"},
	}

	c := NewClassifier('=')
	for i, line := range input {
		rec := c.Next(line)
		require.Equal(t, expected[i], rec, "line[%d] %q", i, line)
	}
}

func TestClassifierTruncatesKeyAtWhitespace(t *testing.T) {
	c := NewClassifier('=')

	rec := c.Next("my key=5")
	require.Equal(t, record.KeyValue, rec.Kind)
	require.Equal(t, "my", rec.Key)
	require.Equal(t, "5", rec.Value)

	rec = c.Next("spaced =value")
	require.Equal(t, "spaced", rec.Key)
	require.Equal(t, "value", rec.Value)
}

func TestClassifierCustomSeparator(t *testing.T) {
	c := NewClassifier(':')

	rec := c.Next("host:localhost")
	require.Equal(t, record.KeyValue, rec.Kind)
	require.Equal(t, "host", rec.Key)
	require.Equal(t, "localhost", rec.Value)

	// '=' means nothing to a ':' classifier.
	rec = c.Next("host=localhost")
	require.Equal(t, record.None, rec.Kind)
}

func TestClassifierSectionContext(t *testing.T) {
	c := NewClassifier('=')

	require.Equal(t, "default", c.Next("a=1").Section)
	c.Next("[One]")
	require.Equal(t, "One", c.Next("b=2").Section)
	require.Equal(t, "One", c.Next(";comment in one").Section)
	c.Next("[Two]")
	require.Equal(t, "Two", c.Next("c=3").Section)
}
