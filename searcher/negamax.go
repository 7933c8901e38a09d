package searcher

import "github.com/righthandabacus/tttai/game"

// Option tunes a minimax-family searcher.
type Option func(*config)

type config struct {
	heuristic bool
}

// WithHeuristicOrdering presorts children by the open-line heuristic to
// provoke earlier cutoffs. It changes node counts only, never the returned
// move or value.
func WithHeuristicOrdering() Option {
	return func(c *config) {
		c.heuristic = true
	}
}

func buildPolicy(base ordering, opts []Option) ordering {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.heuristic {
		return heuristicOrder{next: base}
	}
	return base
}

// negamax is the shared depth-first driver behind the whole minimax family.
// The value returned is always from the mover's perspective and a parent
// negates its child's value, so one recursion serves maximizer and
// minimizer alike. Variants differ only in whether the pruning window is
// live, the ordering policy, and the optional exact-value cache.
type negamax struct {
	prune  bool
	cached bool
	policy ordering
	cache  map[uint32]int
	m      Metrics
}

// NewMinimax returns the exhaustive searcher: no pruning, every remaining
// subtree explored on every call. Correct but the slowest of the family.
func NewMinimax() Searcher {
	return &negamax{policy: naturalOrder{}}
}

// NewCachedMinimax returns exhaustive minimax with a transposition cache of
// exact values keyed by position. Sound only without a pruning window, so
// it never combines with alpha-beta. The cache lives for one Search call.
func NewCachedMinimax() Searcher {
	return &negamax{cached: true, policy: naturalOrder{}}
}

// NewAlphaBeta returns minimax with alpha-beta pruning. It backs up the
// same value as exhaustive minimax for every position; pruning only skips
// siblings that cannot affect the result.
func NewAlphaBeta(opts ...Option) Searcher {
	return &negamax{prune: true, policy: buildPolicy(naturalOrder{}, opts)}
}

// NewAlphaBetaKiller returns alpha-beta with killer-move ordering layered
// on top: the move that last caused a cutoff at a depth is tried first in
// sibling nodes at that depth.
func NewAlphaBetaKiller(opts ...Option) Searcher {
	return &negamax{prune: true, policy: buildPolicy(newKillerTable(), opts)}
}

func (n *negamax) Search(s game.State) (Decision, error) {
	if s.Result().Over() {
		return Decision{Move: game.NoCell}, ErrNoLegalMove
	}
	n.m = Metrics{}
	n.policy.reset()
	if n.cached {
		n.cache = make(map[uint32]int)
	}

	moves := s.LegalMoves()
	bestMove, bestValue := game.NoCell, windowMin
	alpha, beta := windowMin, windowMax
	for _, mv := range moves {
		v := -n.search(mustPlay(s, mv), 1, -beta, -alpha)
		if v > bestValue {
			bestValue, bestMove = v, mv
		}
		if n.prune && bestValue > alpha {
			alpha = bestValue
		}
	}
	return Decision{Move: bestMove, Value: bestValue, Metrics: n.m}, nil
}

func (n *negamax) search(s game.State, depth, alpha, beta int) int {
	n.m.Nodes++
	if r := s.Result(); r.Over() {
		return game.Score(s, s.Player())
	}
	if n.cached {
		if v, ok := n.cache[s.Key()]; ok {
			return v
		}
	}

	moves := s.LegalMoves()
	n.policy.order(s, moves, depth)
	best := windowMin
	for _, mv := range moves {
		v := -n.search(mustPlay(s, mv), depth+1, -beta, -alpha)
		if v > best {
			best = v
		}
		if n.prune {
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				n.m.Cutoffs++
				n.policy.cutoff(mv, depth)
				break
			}
		}
	}
	if n.cached {
		n.cache[s.Key()] = best
	}
	return best
}
