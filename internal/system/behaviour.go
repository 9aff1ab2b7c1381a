package system

import (
	"time"

	coresys "github.com/embedsim/simcore/internal/core/system"
	"github.com/embedsim/simcore/internal/world"
)

// BehaviourSystem calls OnUpdate on every live object with the tick delta in
// seconds. Phase 3 (Update).
type BehaviourSystem struct {
	world *world.State
}

func NewBehaviourSystem(ws *world.State) *BehaviourSystem {
	return &BehaviourSystem{world: ws}
}

func (s *BehaviourSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *BehaviourSystem) Update(dt time.Duration) {
	s.world.UpdateAll(dt.Seconds())
}
