package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardBasics(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, X, b.Player(), "X moves first")
		require.Equal(t, []Cell{0, 1, 2, 3, 4, 5, 6, 7, 8}, b.LegalMoves())
		require.Equal(t, Ongoing, b.Result())
		require.Equal(t, uint32(0), b.Key())
	})

	t.Run("players alternate", func(t *testing.T) {
		var st State = NewBoard()
		for i, want := range []Player{X, O, X, O, X} {
			require.Equal(t, want, st.Player(), "mover at ply %d", i)
			next, err := st.Play(st.LegalMoves()[0])
			require.NoError(t, err)
			st = next
		}
	})

	t.Run("play does not mutate the receiver", func(t *testing.T) {
		b := NewBoard()
		next, err := b.Play(4)
		require.NoError(t, err)
		require.Equal(t, Nobody, b.Mark(4), "original board must stay empty")
		require.Equal(t, X, next.(Board).Mark(4))
		require.Len(t, b.LegalMoves(), 9)
		require.Len(t, next.LegalMoves(), 8)
	})
}

func TestBoardInvalidMoves(t *testing.T) {
	b, err := BoardFrom([]Cell{4}, nil)
	require.NoError(t, err)

	t.Run("occupied cell", func(t *testing.T) {
		_, err := b.Play(4)
		var invalid InvalidMoveError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, Cell(4), invalid.Cell)
		require.Equal(t, X, invalid.By)
	})

	t.Run("out of range", func(t *testing.T) {
		for _, c := range []Cell{-1, 9, 100} {
			_, err := b.Play(c)
			var invalid InvalidMoveError
			require.ErrorAs(t, err, &invalid, "cell %d", c)
		}
	})
}

func TestBoardResult(t *testing.T) {
	cases := []struct {
		name string
		xs   []Cell
		os   []Cell
		want Result
	}{
		{"ongoing", []Cell{0, 4}, []Cell{1}, Ongoing},
		{"top row", []Cell{0, 1, 2, 4}, []Cell{3, 5, 7}, XWins},
		{"left column", []Cell{1, 2, 5}, []Cell{0, 3, 6}, OWins},
		{"main diagonal", []Cell{0, 4, 8}, []Cell{1, 2}, XWins},
		{"anti diagonal", []Cell{0, 1, 5}, []Cell{2, 4, 6}, OWins},
		{"middle column", []Cell{1, 4, 7}, []Cell{0, 3}, XWins},
		{"full board draw", []Cell{0, 2, 3, 7, 8}, []Cell{1, 4, 5, 6}, Draw},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := BoardFrom(tc.xs, tc.os)
			require.NoError(t, err)
			require.Equal(t, tc.want, b.Result())
		})
	}
}

func TestBoardFromRejectsImpossiblePositions(t *testing.T) {
	t.Run("overlapping cells", func(t *testing.T) {
		_, err := BoardFrom([]Cell{4}, []Cell{4})
		require.Error(t, err)
	})
	t.Run("too many X marks", func(t *testing.T) {
		_, err := BoardFrom([]Cell{0, 1, 2}, nil)
		require.Error(t, err)
	})
	t.Run("more O than X", func(t *testing.T) {
		_, err := BoardFrom([]Cell{0}, []Cell{1, 2})
		require.Error(t, err)
	})
}

func TestBoardString(t *testing.T) {
	b, err := BoardFrom([]Cell{0, 4}, []Cell{1, 6})
	require.NoError(t, err)
	want := " X | O |  \n" +
		"---+---+---\n" +
		"   | X |  \n" +
		"---+---+---\n" +
		" O |   |  "
	require.Equal(t, want, b.String())
}
