package engine

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/righthandabacus/tttai/game"
)

// MoveRecord is one ply of a finished game.
type MoveRecord struct {
	Ply     int
	Player  game.Player
	Move    game.Cell
	Value   int
	WinRate float64
	Nodes   int
	Elapsed time.Duration
}

// Match drives a game between two agents: X moves first, agents alternate
// until the position is terminal. The match loop owns the authoritative
// state and validates every returned move before applying it.
type Match struct {
	X, O Agent
}

func LocalMatch(x, o Agent) *Match {
	return &Match{X: x, O: o}
}

// Run plays the match out from the given position and returns the final
// result with the per-ply records.
func (m *Match) Run(start game.State) (game.Result, []MoveRecord, error) {
	st := start
	var records []MoveRecord
	for ply := 1; !st.Result().Over(); ply++ {
		mover := st.Player()
		agent := m.X
		if mover == game.O {
			agent = m.O
		}

		began := time.Now()
		dec, err := agent.Searcher.Search(st)
		if err != nil {
			return st.Result(), records, errors.Wrapf(err, "agent %s (%s) at ply %d", agent.Name, mover, ply)
		}
		next, err := st.Play(dec.Move)
		if err != nil {
			return st.Result(), records, errors.Wrapf(err, "agent %s (%s) returned a bad move at ply %d", agent.Name, mover, ply)
		}
		elapsed := time.Since(began)

		records = append(records, MoveRecord{
			Ply:     ply,
			Player:  mover,
			Move:    dec.Move,
			Value:   dec.Value,
			WinRate: dec.WinRate,
			Nodes:   dec.Metrics.Nodes,
			Elapsed: elapsed,
		})
		log.Info().
			Int("ply", ply).
			Stringer("player", mover).
			Str("agent", agent.Name).
			Int("cell", int(dec.Move)).
			Int("value", dec.Value).
			Int("nodes", dec.Metrics.Nodes).
			Dur("elapsed", elapsed).
			Msg("move played")
		log.Debug().Msgf("board after ply %d:\n%s", ply, next)

		st = next
	}

	result := st.Result()
	log.Info().Stringer("result", result).Int("plies", len(records)).Msg("game over")
	return result, records, nil
}
