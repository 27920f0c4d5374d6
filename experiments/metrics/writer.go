package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

func NewWriter() (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", "throughput", timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WritePlayoutConfigs(configs []PlayoutConfig) error {
	path := filepath.Join(w.baseDir, "playout_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create playout configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "board_size", "goroutines", "games", "seed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write playout configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.BoardSize),
			strconv.Itoa(config.Goroutines),
			strconv.Itoa(config.Games),
			strconv.FormatUint(config.Seed, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write playout config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "config", "winner", "moves", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			record.Winner,
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteThroughputRecords(records []ThroughputRecord) error {
	path := filepath.Join(w.baseDir, "throughput_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create throughput records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"config", "games", "moves", "duration", "moves_per_second"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write throughput records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Games),
			strconv.Itoa(record.Moves),
			record.Duration.String(),
			strconv.FormatFloat(record.MovesPerSecond, 'f', 1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write throughput record row: %w", err)
		}
	}

	return nil
}
