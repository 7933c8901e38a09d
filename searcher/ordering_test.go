package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/righthandabacus/tttai/game"
)

func TestKillerTable(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		kt := newKillerTable()
		for depth := 0; depth < 9; depth++ {
			require.Equal(t, game.NoCell, kt.at(depth))
		}
	})

	t.Run("one slot per depth, last cutoff wins", func(t *testing.T) {
		kt := newKillerTable()
		kt.cutoff(3, 2)
		kt.cutoff(5, 2)
		kt.cutoff(7, 4)
		require.Equal(t, game.Cell(5), kt.at(2), "second cutoff overwrites the first")
		require.Equal(t, game.Cell(7), kt.at(4))
		require.Equal(t, game.NoCell, kt.at(3), "untouched depth stays empty")
	})

	t.Run("killer is tried first when legal", func(t *testing.T) {
		kt := newKillerTable()
		kt.cutoff(6, 1)
		moves := []game.Cell{0, 2, 6, 8}
		kt.order(game.NewBoard(), moves, 1)
		require.Equal(t, game.Cell(6), moves[0])
		require.ElementsMatch(t, []game.Cell{0, 2, 6, 8}, moves)
	})

	t.Run("absent killer leaves the order alone", func(t *testing.T) {
		kt := newKillerTable()
		kt.cutoff(5, 1)
		moves := []game.Cell{0, 2, 8}
		kt.order(game.NewBoard(), moves, 1)
		require.Equal(t, []game.Cell{0, 2, 8}, moves)
	})

	t.Run("reset clears every slot", func(t *testing.T) {
		kt := newKillerTable()
		kt.cutoff(1, 0)
		kt.cutoff(2, 5)
		kt.reset()
		for depth := 0; depth < 9; depth++ {
			require.Equal(t, game.NoCell, kt.at(depth))
		}
	})

	t.Run("out of range depths are ignored", func(t *testing.T) {
		kt := newKillerTable()
		kt.cutoff(1, 42)
		kt.cutoff(1, -1)
		moves := []game.Cell{0, 1}
		kt.order(game.NewBoard(), moves, 42)
		require.Equal(t, []game.Cell{0, 1}, moves)
	})
}

func TestKillerTableResetsBetweenSearches(t *testing.T) {
	s := NewAlphaBetaKiller().(*negamax)
	_, err := s.Search(game.NewBoard())
	require.NoError(t, err)

	kt := s.policy.(*killerTable)
	dirty := false
	for depth := 0; depth < 9; depth++ {
		if kt.at(depth) != game.NoCell {
			dirty = true
		}
	}
	require.True(t, dirty, "a full search must have recorded at least one killer")

	// A repeated search starts from a clean table, so it must do exactly
	// the same work as the first.
	first, err := s.Search(game.NewBoard())
	require.NoError(t, err)
	second, err := s.Search(game.NewBoard())
	require.NoError(t, err)
	require.Equal(t, first, second, "leftover killers leaked between searches")
}

func TestHeuristicOrderPrefersStrongerMoves(t *testing.T) {
	// X already holds 0: opening the second mark next to it (completing
	// two in the top row) scores higher than a far corner, so it must
	// sort first.
	b, err := game.BoardFrom([]game.Cell{0}, []game.Cell{4})
	require.NoError(t, err)

	moves := b.LegalMoves()
	h := heuristicOrder{next: naturalOrder{}}
	h.order(b, moves, 0)

	require.Equal(t, game.Cell(1), moves[0], "strongest continuation first")
	require.ElementsMatch(t, b.LegalMoves(), moves, "ordering must permute, not drop")
}
