package metrics

import (
	"sync/atomic"
	"time"
)

// PlayoutConfig describes one throughput run: how many random games to
// play on which board size, spread across how many goroutines.
type PlayoutConfig struct {
	ID         int
	BoardSize  int
	Goroutines int
	Games      int
	Seed       uint64
}

// GameRecord captures a single finished game.
type GameRecord struct {
	ID       int
	Config   int // PlayoutConfig.ID
	Winner   string
	Moves    int
	Duration time.Duration
}

// ThroughputRecord aggregates a whole run.
type ThroughputRecord struct {
	Config         int // PlayoutConfig.ID
	Games          int
	Moves          int
	Duration       time.Duration
	MovesPerSecond float64
}

// Collector accumulates game and move counts from concurrent workers.
type Collector struct {
	startTime time.Time
	games     atomic.Int32
	moves     atomic.Int64
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Start() {
	c.startTime = time.Now()
}

func (c *Collector) AddGame(moves int) {
	c.games.Add(1)
	c.moves.Add(int64(moves))
}

func (c *Collector) Complete(configID int) ThroughputRecord {
	duration := time.Since(c.startTime)
	moves := int(c.moves.Load())

	perSecond := 0.0
	if duration > 0 {
		perSecond = float64(moves) / duration.Seconds()
	}

	return ThroughputRecord{
		Config:         configID,
		Games:          int(c.games.Load()),
		Moves:          moves,
		Duration:       duration,
		MovesPerSecond: perSecond,
	}
}
