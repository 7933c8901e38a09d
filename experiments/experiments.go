package experiments

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/righthandabacus/tttai/engine"
	"github.com/righthandabacus/tttai/experiments/metrics"
	"github.com/righthandabacus/tttai/game"
)

// Matchup pairs two agent configs: X against O.
type Matchup struct {
	X, O metrics.AgentConfig
}

// Run plays every matchup for the given number of games, games of one
// matchup in parallel, and writes the records as CSV under
// baseDir/name/<timestamp>. Agents are constructed per game so no search
// state is ever shared between in-flight games.
func Run(name string, matchups []Matchup, games int, baseDir string) error {
	writer, err := metrics.NewWriter(baseDir, name)
	if err != nil {
		return err
	}

	configs := lo.UniqBy(
		lo.FlatMap(matchups, func(m Matchup, _ int) []metrics.AgentConfig {
			return []metrics.AgentConfig{m.X, m.O}
		}),
		func(c metrics.AgentConfig) int { return c.ID },
	)
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	var mu sync.Mutex
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	gameID := 0
	for _, matchup := range matchups {
		log.Info().
			Str("experiment", name).
			Str("agent_x", matchup.X.Algorithm).
			Str("agent_o", matchup.O.Algorithm).
			Int("games", games).
			Msg("matchup started")

		var g errgroup.Group
		for i := 0; i < games; i++ {
			gameID++
			id := gameID
			matchup := matchup
			g.Go(func() error {
				record, moves, err := playGame(id, matchup)
				if err != nil {
					return err
				}
				mu.Lock()
				defer mu.Unlock()
				gameRecords = append(gameRecords, record)
				moveRecords = append(moveRecords, moves...)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	sort.Slice(gameRecords, func(i, j int) bool { return gameRecords[i].ID < gameRecords[j].ID })
	sort.Slice(moveRecords, func(i, j int) bool {
		if moveRecords[i].Game != moveRecords[j].Game {
			return moveRecords[i].Game < moveRecords[j].Game
		}
		return moveRecords[i].Ply < moveRecords[j].Ply
	})

	outcomes := lo.CountValuesBy(gameRecords, func(r metrics.GameRecord) string { return r.Result })
	log.Info().
		Str("experiment", name).
		Int("games", len(gameRecords)).
		Interface("outcomes", outcomes).
		Str("dir", writer.Dir()).
		Msg("experiment complete")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}

func playGame(id int, matchup Matchup) (metrics.GameRecord, []metrics.MoveRecord, error) {
	agentX, err := engine.NewAgent(matchup.X.Spec)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	agentO, err := engine.NewAgent(matchup.O.Spec)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	began := time.Now()
	result, moves, err := engine.LocalMatch(agentX, agentO).Run(game.NewBoard())
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:       id,
		AgentX:   matchup.X.ID,
		AgentO:   matchup.O.ID,
		Result:   result.String(),
		Plies:    len(moves),
		Duration: time.Since(began),
	}
	moveRecords := lo.Map(moves, func(m engine.MoveRecord, _ int) metrics.MoveRecord {
		return metrics.MoveRecord{
			Game:    id,
			Ply:     m.Ply,
			Player:  m.Player.String(),
			Cell:    int(m.Move),
			Value:   m.Value,
			Nodes:   m.Nodes,
			Elapsed: m.Elapsed,
		}
	})
	return record, moveRecords, nil
}
