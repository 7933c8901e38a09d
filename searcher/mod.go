package searcher

import (
	"errors"
	"fmt"

	"github.com/righthandabacus/tttai/game"
)

// Searcher turns a position into a chosen move. Implementations are
// single-threaded and run to completion; each Search call is independent
// and any carried state (killer table, cache, MCTS tree) is reset or
// discarded between calls.
type Searcher interface {
	Search(state game.State) (Decision, error)
}

// Decision is the outcome of one search invocation.
type Decision struct {
	Move    game.Cell
	Value   int     // exact negamax score from the mover's perspective (minimax family)
	WinRate float64 // mean reward of the chosen child (MCTS only)
	Metrics Metrics
}

// Metrics counts the work done by one search invocation.
type Metrics struct {
	Nodes      int // positions visited by the tree searchers
	Cutoffs    int // beta cutoffs taken
	Researches int // negascout full-window re-searches after a fail-high
	Rollouts   int // MCTS random playouts run
}

// ErrNoLegalMove is returned when Search is called on a terminal state.
// Continuing play past terminal is always a caller bug, so the searchers
// fail loudly instead of returning an empty decision.
var ErrNoLegalMove = errors.New("searcher: no legal move in terminal state")

// Terminal scores are within [-1, 1]; the search window starts one past
// either end so no real value ever clips against it.
const (
	windowMin = -2
	windowMax = 2
)

// mustPlay applies a move taken from LegalMoves, which cannot fail unless a
// State implementation is broken.
func mustPlay(s game.State, c game.Cell) game.State {
	next, err := s.Play(c)
	if err != nil {
		panic(fmt.Sprintf("legal move rejected: %v", err))
	}
	return next
}
