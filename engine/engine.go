package engine

import (
	"github.com/pkg/errors"

	"github.com/righthandabacus/tttai/searcher"
)

// Algorithm names accepted by NewAgent.
const (
	Minimax       = "minimax"
	CachedMinimax = "cache"
	AlphaBeta     = "alphabeta"
	Killer        = "killer"
	Negascout     = "negascout"
	MCTS          = "mcts"
)

// Spec describes an agent to construct. Seed and Iterations apply to MCTS
// only and are separate knobs: the seed drives the rollout RNG, the
// iteration count bounds the simulation budget.
type Spec struct {
	Algorithm   string  `yaml:"algorithm"`
	Seed        uint64  `yaml:"seed"`
	Iterations  int     `yaml:"iterations"`
	Exploration float64 `yaml:"exploration"`
	Heuristic   bool    `yaml:"heuristic"`
}

// Agent pairs a searcher with a display name.
type Agent struct {
	Name     string
	Searcher searcher.Searcher
}

// NewAgent builds the searcher an agent spec names.
func NewAgent(spec Spec) (Agent, error) {
	var opts []searcher.Option
	if spec.Heuristic {
		opts = append(opts, searcher.WithHeuristicOrdering())
	}

	var s searcher.Searcher
	switch spec.Algorithm {
	case Minimax:
		s = searcher.NewMinimax()
	case CachedMinimax:
		s = searcher.NewCachedMinimax()
	case AlphaBeta:
		s = searcher.NewAlphaBeta(opts...)
	case Killer:
		s = searcher.NewAlphaBetaKiller(opts...)
	case Negascout:
		s = searcher.NewNegascout(opts...)
	case MCTS:
		mopts := []searcher.MCTSOption{
			searcher.WithSeed(spec.Seed),
			searcher.WithIterations(spec.Iterations),
			searcher.WithExploration(spec.Exploration),
		}
		s = searcher.NewMCTS(mopts...)
	default:
		return Agent{}, errors.Errorf("unknown algorithm %q", spec.Algorithm)
	}
	return Agent{Name: spec.Algorithm, Searcher: s}, nil
}
