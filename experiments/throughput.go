package experiments

import (
	"fmt"
	"sync"
	"time"

	"atarigo/engine"
	"atarigo/experiments/metrics"
	"atarigo/game"

	"github.com/rs/zerolog/log"
)

// DefaultConfigs covers the board sizes the engine is expected to
// serve and a spread of worker counts. Every game clones a state per
// move, so moves per second is effectively clones per second.
var DefaultConfigs = []metrics.PlayoutConfig{
	{ID: 1, BoardSize: 5, Goroutines: 1, Games: 200, Seed: 1},
	{ID: 2, BoardSize: 5, Goroutines: 8, Games: 200, Seed: 2},
	{ID: 3, BoardSize: 9, Goroutines: 1, Games: 100, Seed: 3},
	{ID: 4, BoardSize: 9, Goroutines: 8, Games: 100, Seed: 4},
	{ID: 5, BoardSize: 19, Goroutines: 8, Games: 50, Seed: 5},
}

// RunThroughput plays batches of random games per config and stores
// the per-game and aggregate records as CSVs.
func RunThroughput(configs []metrics.PlayoutConfig) {
	writer, err := metrics.NewWriter()
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WritePlayoutConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store playout configs: %v", err))
	}

	log.Info().Msg("starting throughput experiment...")

	gameRecords := []metrics.GameRecord{}
	throughputRecords := []metrics.ThroughputRecord{}
	count := 0

	for _, config := range configs {
		log.Info().Msgf("running config %+v...", config)

		records, throughput := runConfig(config)
		for _, record := range records {
			count++
			record.ID = count
			gameRecords = append(gameRecords, record)
		}
		throughputRecords = append(throughputRecords, throughput)

		log.Info().Msgf("config %d: %d games, %.1f moves/s", config.ID, throughput.Games, throughput.MovesPerSecond)
	}

	log.Info().Msg("completed throughput experiment")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	err = writer.WriteThroughputRecords(throughputRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write throughput records: %v", err))
	}
	log.Info().Msg("stored experiment records")
}

// runConfig spreads a config's games across its goroutines and
// collects the records.
func runConfig(config metrics.PlayoutConfig) ([]metrics.GameRecord, metrics.ThroughputRecord) {
	collector := metrics.NewCollector()
	collector.Start()

	task := make(chan int, config.Games)
	for i := 0; i < config.Games; i++ {
		task <- i
	}
	close(task)

	results := make(chan metrics.GameRecord, config.Games)

	var wg sync.WaitGroup
	for i := 0; i < config.Goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for n := range task {
				record := playRandomGame(config, uint64(n))
				collector.AddGame(record.Moves)
				results <- record
			}
		}()
	}
	wg.Wait()
	close(results)

	records := make([]metrics.GameRecord, 0, config.Games)
	for record := range results {
		records = append(records, record)
	}

	return records, collector.Complete(config.ID)
}

// playRandomGame runs one random-vs-random game on an empty board.
func playRandomGame(config metrics.PlayoutConfig, n uint64) metrics.GameRecord {
	board := make([][]game.Cell, config.BoardSize)
	for i := range board {
		board[i] = make([]game.Cell, config.BoardSize)
	}
	state := game.NewGameState(1, board)

	e := engine.NewLocal(state,
		engine.NewRandom(config.Seed+2*n),
		engine.NewRandom(config.Seed+2*n+1))

	start := time.Now()
	winner := e.Run()

	return metrics.GameRecord{
		Config:   config.ID,
		Winner:   winner,
		Moves:    e.Moves,
		Duration: time.Since(start),
	}
}
