package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[simulation]
seed = 42
max_ticks = 600
`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, uint64(600), cfg.Simulation.MaxTicks)
	assert.Equal(t, 16*time.Millisecond, cfg.Simulation.TickRate)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestParseDuration(t *testing.T) {
	cfg, err := Parse([]byte(`
[simulation]
tick_rate = "50ms"
archetypes = "data/population.yaml"

[logging]
level = "debug"
format = "json"
`))
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.Simulation.TickRate)
	assert.Equal(t, "data/population.yaml", cfg.Simulation.Archetypes)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestParseRejectsNonPositiveTickRate(t *testing.T) {
	_, err := Parse([]byte(`
[simulation]
tick_rate = "0s"
`))
	assert.Error(t, err)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`[simulation`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.toml")
	require.NoError(t, os.WriteFile(path, []byte("[simulation]\nseed = 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	log, err = NewLogger(LoggingConfig{Level: "nonsense"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
