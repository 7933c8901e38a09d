package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/righthandabacus/tttai/game"
)

func agent(t *testing.T, spec Spec) Agent {
	t.Helper()
	a, err := NewAgent(spec)
	require.NoError(t, err)
	return a
}

func TestPerfectPlayersDraw(t *testing.T) {
	// Any pairing of exhaustive searchers plays the theoretical draw, on
	// either encoding of the board.
	algos := []string{Minimax, CachedMinimax, AlphaBeta, Killer, Negascout}
	starts := map[string]game.State{
		"array":    game.NewBoard(),
		"bitboard": game.NewBitboard(),
	}

	for _, x := range algos {
		for _, o := range algos {
			for enc, start := range starts {
				t.Run(x+"_vs_"+o+"_"+enc, func(t *testing.T) {
					m := LocalMatch(agent(t, Spec{Algorithm: x}), agent(t, Spec{Algorithm: o}))
					result, records, err := m.Run(start)
					require.NoError(t, err)
					require.Equal(t, game.Draw, result)
					require.Len(t, records, 9, "a drawn game fills the board")
				})
			}
		}
	}
}

func TestMatchRecords(t *testing.T) {
	m := LocalMatch(
		agent(t, Spec{Algorithm: AlphaBeta}),
		agent(t, Spec{Algorithm: Negascout}),
	)
	result, records, err := m.Run(game.NewBoard())
	require.NoError(t, err)
	require.True(t, result.Over())

	for i, rec := range records {
		require.Equal(t, i+1, rec.Ply)
		require.True(t, rec.Move.Valid())
		require.Positive(t, rec.Nodes)
		if i%2 == 0 {
			require.Equal(t, game.X, rec.Player)
		} else {
			require.Equal(t, game.O, rec.Player)
		}
	}
}

func TestMatchFromMidgame(t *testing.T) {
	// X already threatens the top row; the very next search must finish it.
	start, err := game.BoardFrom([]game.Cell{0, 1}, []game.Cell{3, 4})
	require.NoError(t, err)

	m := LocalMatch(agent(t, Spec{Algorithm: Killer}), agent(t, Spec{Algorithm: AlphaBeta}))
	result, records, err := m.Run(start)
	require.NoError(t, err)
	require.Equal(t, game.XWins, result)
	require.Len(t, records, 1)
	require.Equal(t, game.Cell(2), records[0].Move)
}

func TestMatchOnFinishedPosition(t *testing.T) {
	won, err := game.BoardFrom([]game.Cell{0, 1, 2}, []game.Cell{3, 4})
	require.NoError(t, err)

	m := LocalMatch(agent(t, Spec{Algorithm: Minimax}), agent(t, Spec{Algorithm: Minimax}))
	result, records, err := m.Run(won)
	require.NoError(t, err, "nothing to play is not an error")
	require.Equal(t, game.XWins, result)
	require.Empty(t, records)
}

func TestMCTSVersusPerfectPlayer(t *testing.T) {
	// A well-budgeted Monte Carlo X never loses to exhaustive search.
	m := LocalMatch(
		agent(t, Spec{Algorithm: MCTS, Seed: 5, Iterations: 20000}),
		agent(t, Spec{Algorithm: AlphaBeta}),
	)
	result, _, err := m.Run(game.NewBoard())
	require.NoError(t, err)
	require.NotEqual(t, game.OWins, result)
}
