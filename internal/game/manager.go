package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/embedsim/simcore/internal/config"
	"github.com/embedsim/simcore/internal/core/event"
	coresys "github.com/embedsim/simcore/internal/core/system"
	"github.com/embedsim/simcore/internal/system"
	"github.com/embedsim/simcore/internal/world"
)

// Manager drives one simulation run. It owns the object registry (embedded
// State) and advances it through the fixed tick protocol:
//
//	Phase 0 Input     - deliver last tick's events
//	Phase 1 Init      - deferred OnStart of late-added components
//	Phase 2 Cleanup   - process queued destructions
//	Phase 3 Update    - OnUpdate on every live object
//	Phase 4 Collision - one collision pass
type Manager struct {
	*world.State

	runner *coresys.Runner
	log    *zap.Logger
	now    func() time.Time
	runID  uuid.UUID

	sim config.SimulationConfig

	startTime time.Time
	lastTime  time.Time
	ticks     uint64
}

type Option func(*Manager)

// WithClock replaces the wall clock used for tick deltas.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id uuid.UUID) Option {
	return func(m *Manager) { m.runID = id }
}

func New(log *zap.Logger, opts ...Option) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		now:   time.Now,
		runID: uuid.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = log.With(zap.String("run", m.runID.String()))

	bus := event.NewBus()
	m.State = world.NewState(m.log, bus)

	m.runner = coresys.NewRunner()
	m.runner.Register(system.NewEventDispatchSystem(bus))
	m.runner.Register(system.NewInitSystem(m.State))
	m.runner.Register(system.NewCleanupSystem(m.State))
	m.runner.Register(system.NewBehaviourSystem(m.State))
	m.runner.Register(system.NewCollisionSystem(m.State))
	return m
}

func (m *Manager) RunID() uuid.UUID { return m.runID }

// Ticks returns how many UpdateGame calls have completed.
func (m *Manager) Ticks() uint64 { return m.ticks }

// StartGame records the clock start and runs awake then start on every
// registered object. Only the first call has any effect.
func (m *Manager) StartGame() {
	if m.Started() {
		m.log.Warn("start game called twice")
		return
	}
	m.startTime = m.now()
	m.lastTime = m.startTime
	m.State.MarkStarted()
	m.State.AwakeAll()
	m.log.Info("game started", zap.Int("objects", m.Len()))
}

// MarkStarted and AwakeAll only happen as part of StartGame on a Manager.
func (m *Manager) MarkStarted() { m.StartGame() }
func (m *Manager) AwakeAll()    { m.StartGame() }

// UpdateGame advances the simulation by one tick and returns the delta it
// used: the wall-clock time since the previous call, or since StartGame.
// Before StartGame the delta is zero.
func (m *Manager) UpdateGame() time.Duration {
	var dt time.Duration
	now := m.now()
	if !m.lastTime.IsZero() {
		dt = now.Sub(m.lastTime)
		if dt < 0 {
			dt = 0
		}
	}
	m.lastTime = now

	m.runner.Tick(dt)
	m.ticks++

	m.log.Debug("update",
		zap.Uint64("tick", m.ticks),
		zap.Duration("delta", dt),
		zap.Int("objects", m.Len()),
		zap.Int("colliding", m.Collisions().Pairs()),
	)
	return dt
}

// Elapsed returns the clock time since StartGame.
func (m *Manager) Elapsed() time.Duration {
	if m.startTime.IsZero() {
		return 0
	}
	return m.now().Sub(m.startTime)
}

// Run starts the game if needed and calls UpdateGame every tickRate until
// ctx is cancelled or maxTicks ticks have run (0 = no limit). It blocks on
// the caller's goroutine.
func (m *Manager) Run(ctx context.Context, tickRate time.Duration, maxTicks uint64) error {
	if tickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %s", tickRate)
	}
	m.StartGame()

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	m.log.Info("simulation loop started", zap.Duration("tick", tickRate), zap.Uint64("max_ticks", maxTicks))
	var n uint64
	for {
		select {
		case <-ticker.C:
			m.UpdateGame()
			n++
			if maxTicks > 0 && n >= maxTicks {
				m.log.Info("simulation finished", zap.Uint64("ticks", m.ticks), zap.Int("objects", m.Len()))
				return nil
			}
		case <-ctx.Done():
			m.log.Info("simulation stopped", zap.Uint64("ticks", m.ticks), zap.Error(ctx.Err()))
			return ctx.Err()
		}
	}
}

// RunConfigured drives Run with the tick rate and tick limit of the
// configuration the manager was built from.
func (m *Manager) RunConfigured(ctx context.Context) error {
	return m.Run(ctx, m.sim.TickRate, m.sim.MaxTicks)
}
