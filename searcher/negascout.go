package searcher

import "github.com/righthandabacus/tttai/game"

// negascout implements principal variation search: the first child of a
// node gets the full (alpha, beta) window on the assumption that move
// ordering put the best move first; every later sibling gets a null
// (zero-width) window that only answers "better than the current best?".
// A sibling that fails high inside the window is re-searched with the full
// window to pin down its exact value.
type negascout struct {
	policy ordering
	m      Metrics
}

// NewNegascout returns the principal variation searcher. It backs up the
// same value as alpha-beta for every position; only the node count depends
// on ordering quality.
func NewNegascout(opts ...Option) Searcher {
	return &negascout{policy: buildPolicy(naturalOrder{}, opts)}
}

func (n *negascout) Search(s game.State) (Decision, error) {
	if s.Result().Over() {
		return Decision{Move: game.NoCell}, ErrNoLegalMove
	}
	n.m = Metrics{}
	n.policy.reset()

	moves := s.LegalMoves()
	n.policy.order(s, moves, 0)

	alpha, beta := windowMin, windowMax
	bestMove := moves[0]
	best := -n.search(mustPlay(s, moves[0]), 1, -beta, -alpha)
	if best > alpha {
		alpha = best
	}
	for _, mv := range moves[1:] {
		child := mustPlay(s, mv)
		v := -n.search(child, 1, -(alpha + 1), -alpha)
		if v > alpha && v < beta {
			n.m.Researches++
			v = -n.search(child, 1, -beta, -v)
		}
		if v > best {
			best, bestMove = v, mv
		}
		if v > alpha {
			alpha = v
		}
	}
	return Decision{Move: bestMove, Value: best, Metrics: n.m}, nil
}

func (n *negascout) search(s game.State, depth, alpha, beta int) int {
	n.m.Nodes++
	if r := s.Result(); r.Over() {
		return game.Score(s, s.Player())
	}

	moves := s.LegalMoves()
	n.policy.order(s, moves, depth)

	// First child: full window, establishing the bound.
	best := -n.search(mustPlay(s, moves[0]), depth+1, -beta, -alpha)
	if best >= beta {
		n.m.Cutoffs++
		n.policy.cutoff(moves[0], depth)
		return best
	}
	if best > alpha {
		alpha = best
	}

	for _, mv := range moves[1:] {
		child := mustPlay(s, mv)
		// Null window: a cheap test of "better than the current bound?".
		v := -n.search(child, depth+1, -(alpha + 1), -alpha)
		if v > alpha && v < beta {
			// Fail-high inside the window proved "better" but not "how
			// much better"; re-search for the exact value.
			n.m.Researches++
			v = -n.search(child, depth+1, -beta, -v)
		}
		if v > best {
			best = v
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			n.m.Cutoffs++
			n.policy.cutoff(mv, depth)
			break
		}
	}
	return best
}
