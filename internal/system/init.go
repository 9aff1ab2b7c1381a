package system

import (
	"time"

	coresys "github.com/embedsim/simcore/internal/core/system"
	"github.com/embedsim/simcore/internal/world"
)

// InitSystem runs the deferred OnStart of components attached after the
// simulation started. Phase 1 (Init).
type InitSystem struct {
	world *world.State
}

func NewInitSystem(ws *world.State) *InitSystem {
	return &InitSystem{world: ws}
}

func (s *InitSystem) Phase() coresys.Phase { return coresys.PhaseInit }

func (s *InitSystem) Update(_ time.Duration) {
	s.world.FlushInitQueue()
}
