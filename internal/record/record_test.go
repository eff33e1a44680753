package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{None, "None"},
		{Comment, "Comment"},
		{Section, "Section"},
		{KeyValue, "KeyValue"},
		{Kind(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestIsArray(t *testing.T) {
	scalar := Record{Kind: KeyValue, Key: "a", Value: "1"}
	require.False(t, scalar.IsArray())

	arr := Record{Kind: KeyValue, Key: "a", Array: []string{"1", "2"}}
	require.True(t, arr.IsArray())

	// An empty but non-nil array still counts as array mode. SetArray can
	// produce these; the value parser never does.
	empty := Record{Kind: KeyValue, Key: "a", Array: []string{}}
	require.True(t, empty.IsArray())
}
