package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const exampleInput = `Player 1:
9
2
6
3
1

Player 2:
5
8
4
7
10
`

func TestParseDecks(t *testing.T) {
	t.Run("example input", func(t *testing.T) {
		a, b, err := ParseDecks(strings.NewReader(exampleInput))

		require.NoError(t, err)
		require.Equal(t, exampleA, a)
		require.Equal(t, exampleB, b)
	})

	t.Run("windows line endings and no trailing newline", func(t *testing.T) {
		input := strings.ReplaceAll(strings.TrimSpace(exampleInput), "\n", "\r\n")
		a, b, err := ParseDecks(strings.NewReader(input))

		require.NoError(t, err)
		require.Equal(t, exampleA, a)
		require.Equal(t, exampleB, b)
	})

	failures := []struct {
		name  string
		input string
		want  error
	}{
		{name: "missing second block", input: "Player 1:\n1\n2\n", want: ErrParse},
		{name: "wrong header", input: "Player 2:\n1\n\nPlayer 1:\n2\n", want: ErrParse},
		{name: "non-integer rank", input: "Player 1:\n1\nten\n\nPlayer 2:\n2\n", want: ErrParse},
		{name: "empty deck", input: "Player 1:\n\nPlayer 2:\n2\n", want: ErrParse},
		{name: "third block", input: "Player 1:\n1\n\nPlayer 2:\n2\n\nPlayer 3:\n3\n", want: ErrParse},
		{name: "duplicate rank", input: "Player 1:\n1\n2\n\nPlayer 2:\n2\n", want: ErrInvalidDeck},
		{name: "negative rank", input: "Player 1:\n-1\n\nPlayer 2:\n2\n", want: ErrInvalidDeck},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseDecks(strings.NewReader(tt.input))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormatDecks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatDecks(&buf, exampleA, exampleB))
	require.Equal(t, exampleInput, buf.String())

	a, b, err := ParseDecks(&buf)
	require.NoError(t, err)
	require.Equal(t, exampleA, a)
	require.Equal(t, exampleB, b)
}
