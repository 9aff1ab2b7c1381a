package game

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/embedsim/simcore/internal/config"
	"github.com/embedsim/simcore/internal/data"
)

// NewFromConfig builds a populated, unstarted Manager: logger from the
// logging section, archetypes from the configured YAML file (built-in
// population when empty), randomness seeded from Simulation.Seed (the clock
// when zero). RunConfigured then drives it at the configured tick rate.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Manager, error) {
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	tbl := data.DefaultArchetypeTable()
	if path := cfg.Simulation.Archetypes; path != "" {
		if tbl, err = data.LoadArchetypeTable(path); err != nil {
			return nil, err
		}
	}

	m := New(log, opts...)
	m.sim = cfg.Simulation

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = m.now().UnixNano()
	}
	if _, err := Populate(m, tbl, rand.New(rand.NewSource(seed))); err != nil {
		return nil, err
	}
	m.log.Info("simulation configured",
		zap.Int64("seed", seed),
		zap.Duration("tick", cfg.Simulation.TickRate),
		zap.Uint64("max_ticks", cfg.Simulation.MaxTicks),
	)
	return m, nil
}
