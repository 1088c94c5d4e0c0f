package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("reading marks and separators", func(t *testing.T) {
		b, err := ParseBoard("x.o | -X_ | ...")

		require.NoError(t, err)
		require.Equal(t, Board{{X, Empty, O}, {Empty, X, Empty}, {Empty, Empty, Empty}}, b)
	})

	tests := []struct {
		name  string
		board string
	}{
		{"too few cells", "XO_/___"},
		{"too many cells", "XO_/___/___/_"},
		{"unknown mark", "XQ_/___/___"},
		{"O ahead of X", "OO_/X__/___"},
		{"X two ahead", "XXX/O__/___"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.board)

			require.ErrorIs(t, err, ErrInvalidBoard)
		})
	}
}

func TestParseAction(t *testing.T) {
	t.Run("space or comma separated", func(t *testing.T) {
		for _, s := range []string{"1 2", "1,2", " 1 , 2 "} {
			a, err := ParseAction(s)

			require.NoError(t, err)
			require.Equal(t, Action{Row: 1, Col: 2}, a, "Input %q", s)
		}
	})

	t.Run("rejecting malformed input", func(t *testing.T) {
		for _, s := range []string{"", "1", "1 2 3", "a 1", "1 b"} {
			_, err := ParseAction(s)

			require.ErrorIs(t, err, ErrIllegalAction, "Input %q", s)
		}
	})
}
