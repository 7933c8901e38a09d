package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/righthandabacus/tttai/engine"
	"github.com/righthandabacus/tttai/experiments"
	"github.com/righthandabacus/tttai/experiments/metrics"
	"github.com/righthandabacus/tttai/searcher"
)

func main() {
	var (
		algoX      = flag.String("x", engine.Negascout, "algorithm for X: minimax|cache|alphabeta|killer|negascout|mcts")
		algoO      = flag.String("o", engine.AlphaBeta, "algorithm for O")
		seed       = flag.Uint64("seed", 1, "random seed for MCTS rollouts")
		iterations = flag.Int("iterations", searcher.DefaultIterations, "MCTS simulation budget per move")
		heuristic  = flag.Bool("heuristic", false, "presort moves by the open-line heuristic")
		encoding   = flag.String("encoding", "array", "board encoding: array|bitboard")
		configPath = flag.String("config", "", "YAML config file overriding the flags")
		experiment = flag.String("experiment", "", "run a built-in experiment instead of a match: matchups|nodecount")
		games      = flag.Int("games", 10, "games per matchup in the matchups experiment")
		outDir     = flag.String("out", "results", "experiment output directory")
		debug      = flag.Bool("debug", false, "log the board after every ply")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch *experiment {
	case "":
		cfg := Config{
			Encoding: *encoding,
			X:        engine.Spec{Algorithm: *algoX, Seed: *seed, Iterations: *iterations, Heuristic: *heuristic},
			O:        engine.Spec{Algorithm: *algoO, Seed: *seed, Iterations: *iterations, Heuristic: *heuristic},
		}
		if *configPath != "" {
			loaded, err := LoadConfig(*configPath)
			if err != nil {
				log.Fatal().Err(err).Msg("bad config")
			}
			cfg = loaded
		}
		if err := runMatch(cfg); err != nil {
			log.Fatal().Err(err).Msg("match failed")
		}
	case "matchups":
		if err := experiments.Run("matchups", allMatchups(*seed, *iterations), *games, *outDir); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	case "nodecount":
		if err := experiments.NodeCountSweep("nodecount", 2, *outDir); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	default:
		log.Fatal().Str("experiment", *experiment).Msg("unknown experiment")
	}
}

func runMatch(cfg Config) error {
	agentX, err := engine.NewAgent(cfg.X)
	if err != nil {
		return err
	}
	agentO, err := engine.NewAgent(cfg.O)
	if err != nil {
		return err
	}
	start, err := cfg.Start()
	if err != nil {
		return err
	}

	result, moves, err := engine.LocalMatch(agentX, agentO).Run(start)
	if err != nil {
		return err
	}

	// Replay the moves to show the final board.
	final := start
	for _, m := range moves {
		if final, err = final.Play(m.Move); err != nil {
			return err
		}
	}
	fmt.Println(final)
	fmt.Println(result)
	return nil
}

// allMatchups crosses every algorithm with every other as X vs O.
func allMatchups(seed uint64, iterations int) []experiments.Matchup {
	algorithms := []string{
		engine.Minimax,
		engine.CachedMinimax,
		engine.AlphaBeta,
		engine.Killer,
		engine.Negascout,
		engine.MCTS,
	}
	configs := make([]metrics.AgentConfig, len(algorithms))
	for i, algo := range algorithms {
		configs[i] = metrics.AgentConfig{
			ID:   i + 1,
			Spec: engine.Spec{Algorithm: algo, Seed: seed, Iterations: iterations},
		}
	}
	var matchups []experiments.Matchup
	for _, x := range configs {
		for _, o := range configs {
			matchups = append(matchups, experiments.Matchup{X: x, O: o})
		}
	}
	return matchups
}
