package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	Seed       int64         `toml:"seed"`       // 0 = seed from the clock
	TickRate   time.Duration `toml:"tick_rate"`  // wall-clock interval between ticks
	MaxTicks   uint64        `toml:"max_ticks"`  // 0 = run until cancelled
	Archetypes string        `toml:"archetypes"` // YAML path; empty = built-in population
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a TOML document over the defaults. Keys absent from data
// keep their default value.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Simulation.TickRate <= 0 {
		return nil, fmt.Errorf("simulation.tick_rate must be positive, got %s", cfg.Simulation.TickRate)
	}
	return cfg, nil
}

func Default() *Config { return defaults() }

func defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickRate: 16 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
