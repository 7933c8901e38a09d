package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/righthandabacus/tttai/game"
)

const (
	// DefaultIterations is the per-decision simulation budget.
	DefaultIterations = 3000
	// DefaultExploration is the UCT exploration constant.
	DefaultExploration = math.Sqrt2
)

// MCTSOption tunes the Monte Carlo searcher.
type MCTSOption func(*MCTS)

// WithIterations sets the simulation budget per Search call.
func WithIterations(n int) MCTSOption {
	return func(m *MCTS) {
		if n > 0 {
			m.iterations = n
		}
	}
}

// WithSeed fixes the rollout RNG seed. The seed and the iteration budget
// are deliberately separate knobs. Reusing a seed reproduces the exact
// same tree and move.
func WithSeed(seed uint64) MCTSOption {
	return func(m *MCTS) {
		m.seed = seed
	}
}

// WithExploration sets the UCT exploration constant.
func WithExploration(c float64) MCTSOption {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// MCTS chooses moves by Monte Carlo tree search with UCT selection,
// uniform random rollouts, and the robust-child final policy. The tree is
// built fresh for each Search call and discarded with it; no statistics
// persist across decisions. Single-threaded, so a fixed seed makes the
// whole search deterministic.
type MCTS struct {
	iterations  int
	exploration float64
	seed        uint64
	m           Metrics
}

func NewMCTS(opts ...MCTSOption) *MCTS {
	m := &MCTS{
		iterations:  DefaultIterations,
		exploration: DefaultExploration,
		seed:        1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MCTS) Search(s game.State) (Decision, error) {
	if s.Result().Over() {
		return Decision{Move: game.NoCell}, ErrNoLegalMove
	}
	m.m = Metrics{}
	rng := rand.New(rand.NewSource(m.seed))

	root := newNode(nil, game.NoCell, s)
	for i := 0; i < m.iterations; i++ {
		m.simulate(root, s, rng)
	}

	best := root.bestChild()
	return Decision{
		Move:    best.move,
		WinRate: best.winRate(),
		Metrics: m.m,
	}, nil
}

// simulate runs one selection-expansion-rollout-backup cycle.
func (m *MCTS) simulate(root *node, s game.State, rng *rand.Rand) {
	nd, st := root, s
	for !nd.expandable() && !nd.terminal() {
		nd = nd.selectChild(m.exploration)
		st = mustPlay(st, nd.move)
	}
	if nd.expandable() {
		nd, st = nd.expand(st)
	}
	winner := m.rollout(st, rng)
	nd.backup(winner)
}

// rollout plays uniformly random legal moves for both sides until the game
// ends, returning the winner (Nobody for a draw).
func (m *MCTS) rollout(s game.State, rng *rand.Rand) game.Player {
	m.m.Rollouts++
	r := s.Result()
	for !r.Over() {
		moves := s.LegalMoves()
		s = mustPlay(s, moves[rng.Intn(len(moves))])
		r = s.Result()
	}
	return r.Winner()
}
