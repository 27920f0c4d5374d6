package main

import (
	"os"

	"atarigo/engine"
	"atarigo/experiments"
	"atarigo/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := "config.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := loadConfig(path)
	if err != nil {
		log.Fatal().Err(err).Msg("bad config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	state := startingState(cfg)
	e := engine.NewLocal(state, engine.NewRandom(cfg.Seed), engine.NewRandom(cfg.Seed+1))
	winner := e.Run()
	log.Info().Msgf("exhibition game result: %s", winner)

	if cfg.Experiment {
		experiments.RunThroughput(experiments.DefaultConfigs)
	}
}

func startingState(cfg config) *game.GameState {
	if cfg.Board == "" {
		board := make([][]game.Cell, 9)
		for i := range board {
			board[i] = make([]game.Cell, 9)
		}
		return game.NewGameState(1, board)
	}

	f, err := os.Open(cfg.Board)
	if err != nil {
		log.Fatal().Err(err).Msgf("cannot open board file %s", cfg.Board)
	}
	defer f.Close()

	state, err := game.LoadBoard(f)
	if err != nil {
		log.Fatal().Err(err).Msgf("cannot load board file %s", cfg.Board)
	}
	return state
}
