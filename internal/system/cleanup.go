package system

import (
	"time"

	coresys "github.com/embedsim/simcore/internal/core/system"
	"github.com/embedsim/simcore/internal/world"
)

// CleanupSystem flushes the deferred destruction queue, so destroyed objects
// are gone before anything is updated this tick.
// Phase 2 (Cleanup).
type CleanupSystem struct {
	world *world.State
}

func NewCleanupSystem(ws *world.State) *CleanupSystem {
	return &CleanupSystem{world: ws}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.world.FlushDestroyQueue()
}
