package system

import (
	"time"

	coresys "github.com/embedsim/simcore/internal/core/system"
	"github.com/embedsim/simcore/internal/world"
)

// CollisionSystem runs one pairwise overlap pass over the positions left by
// the update phase. Phase 4 (Collision).
type CollisionSystem struct {
	collisions *world.Collisions
}

func NewCollisionSystem(ws *world.State) *CollisionSystem {
	return &CollisionSystem{collisions: ws.Collisions()}
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseCollision }

func (s *CollisionSystem) Update(_ time.Duration) {
	s.collisions.Update()
}
