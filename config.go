package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type config struct {
	// Board is an optional board file to start from; empty means a
	// fresh 9x9 board.
	Board string `yaml:"board"`
	// Seed feeds the random agents of the exhibition game.
	Seed uint64 `yaml:"seed"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
	// Experiment also runs the throughput experiment.
	Experiment bool `yaml:"experiment"`
}

func defaultConfig() config {
	return config{
		Seed:     42,
		LogLevel: "info",
	}
}

// loadConfig reads a YAML config, falling back to defaults when the
// file does not exist.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
