package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gospellx/symspell/symspell"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := symspell.Suggestions{
		{Term: "hello", Distance: 0, Count: 1000},
		{Term: "help", Distance: 2, Count: 50},
	}
	data, err := Encode(in)
	require.NoError(t, err)
	out, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, []symspell.Suggestion(in), []symspell.Suggestion(out))
}

func TestEncodeEmptyListProducesCountOnly(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	require.Len(t, data, 4)

	out, err := Decode(data)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestEncodeRejectsOversizedTerm(t *testing.T) {
	longTerm := make([]byte, 300)
	for i := range longTerm {
		longTerm[i] = 'a'
	}
	_, err := Encode(symspell.Suggestions{{Term: string(longTerm), Distance: 0, Count: 1}})
	require.Error(t, err)
}
