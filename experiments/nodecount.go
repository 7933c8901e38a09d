package experiments

import (
	"github.com/rs/zerolog/log"

	"github.com/righthandabacus/tttai/engine"
	"github.com/righthandabacus/tttai/experiments/metrics"
	"github.com/righthandabacus/tttai/game"
)

// NodeCountSweep runs every minimax-family searcher over all positions
// reachable within the given number of opening plies and records the work
// done on each. The records make the pruning guarantees observable:
// alpha-beta visits no more nodes than minimax on any position, and every
// variant backs up the same value.
func NodeCountSweep(name string, plies int, baseDir string) error {
	writer, err := metrics.NewWriter(baseDir, name)
	if err != nil {
		return err
	}

	specs := []engine.Spec{
		{Algorithm: engine.Minimax},
		{Algorithm: engine.CachedMinimax},
		{Algorithm: engine.AlphaBeta},
		{Algorithm: engine.AlphaBeta, Heuristic: true},
		{Algorithm: engine.Killer},
		{Algorithm: engine.Negascout},
		{Algorithm: engine.Negascout, Heuristic: true},
	}

	positions := openingPositions(plies)
	var records []metrics.SearchRecord
	for _, spec := range specs {
		agent, err := engine.NewAgent(spec)
		if err != nil {
			return err
		}
		label := spec.Algorithm
		if spec.Heuristic {
			label += "+heuristic"
		}
		total := 0
		for _, st := range positions {
			dec, err := agent.Searcher.Search(st)
			if err != nil {
				return err
			}
			records = append(records, metrics.SearchRecord{
				Algorithm:  label,
				Position:   st.Key(),
				Move:       int(dec.Move),
				Value:      dec.Value,
				Nodes:      dec.Metrics.Nodes,
				Cutoffs:    dec.Metrics.Cutoffs,
				Researches: dec.Metrics.Researches,
			})
			total += dec.Metrics.Nodes
		}
		log.Info().
			Str("algorithm", label).
			Int("positions", len(positions)).
			Int("nodes", total).
			Msg("sweep pass complete")
	}
	return writer.WriteSearchRecords(records)
}

// openingPositions enumerates the distinct non-terminal positions reachable
// within the given number of plies from the empty board.
func openingPositions(plies int) []game.State {
	seen := make(map[uint32]bool)
	var out []game.State
	var walk func(s game.State, left int)
	walk = func(s game.State, left int) {
		if seen[s.Key()] || s.Result().Over() {
			return
		}
		seen[s.Key()] = true
		out = append(out, s)
		if left == 0 {
			return
		}
		for _, mv := range s.LegalMoves() {
			next, err := s.Play(mv)
			if err != nil {
				panic(err)
			}
			walk(next, left-1)
		}
	}
	walk(game.NewBoard(), plies)
	return out
}
