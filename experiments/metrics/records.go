package metrics

import (
	"time"

	"github.com/righthandabacus/tttai/engine"
)

// AgentConfig is an agent spec with a stable ID for cross-referencing the
// game and move records.
type AgentConfig struct {
	ID int
	engine.Spec
}

// GameRecord summarizes one finished game of a matchup.
type GameRecord struct {
	ID       int
	AgentX   int // AgentConfig.ID
	AgentO   int // AgentConfig.ID
	Result   string
	Plies    int
	Duration time.Duration
}

// MoveRecord is one ply of a recorded game.
type MoveRecord struct {
	Game    int // GameRecord.ID
	Ply     int
	Player  string
	Cell    int
	Value   int
	Nodes   int
	Elapsed time.Duration
}

// SearchRecord is one searcher invocation on a fixed position, used by the
// node-count sweep comparing the pruning variants.
type SearchRecord struct {
	Algorithm  string
	Position   uint32 // game.State.Key()
	Move       int
	Value      int
	Nodes      int
	Cutoffs    int
	Researches int
}
