package component

import (
	"github.com/embedsim/simcore/internal/core/ecs"
	"github.com/embedsim/simcore/internal/core/geom"
	"github.com/embedsim/simcore/internal/world"
)

// arriveSqrDist is how close (squared) the owner must get to its waypoint
// before a new one is picked.
const arriveSqrDist = 0.5

// RandomWalk drifts its owner toward random waypoints within TargetDistance
// of wherever it stood when the waypoint was chosen.
type RandomWalk struct {
	world.Base
	MoveSpeed      float64
	TargetDistance float64
	ShouldWalk     bool

	rng  Rand
	next geom.Vector3
}

func NewRandomWalk(moveSpeed, targetDistance float64, rng Rand) *RandomWalk {
	return &RandomWalk{
		MoveSpeed:      moveSpeed,
		TargetDistance: targetDistance,
		ShouldWalk:     true,
		rng:            rng,
	}
}

func (w *RandomWalk) Kind() ecs.Kind { return ecs.KindRandomWalk }

// Waypoint returns the point the walk is currently heading to.
func (w *RandomWalk) Waypoint() geom.Vector3 { return w.next }

func (w *RandomWalk) OnStart(s *world.State) {
	if o, ok := world.OwnerOf(s, w); ok {
		w.next = w.pick(o)
	}
}

func (w *RandomWalk) OnUpdate(s *world.State, dt float64) {
	if !w.ShouldWalk {
		return
	}
	o, ok := world.OwnerOf(s, w)
	if !ok {
		return
	}
	if geom.SqrDistance(w.next, o.Position()) < arriveSqrDist {
		w.next = w.pick(o)
	}
	o.SetPosition(geom.MoveTowards(o.Position(), w.next, w.MoveSpeed*dt))
}

func (w *RandomWalk) pick(o *world.Object) geom.Vector3 {
	return o.Position().Add(InsideUnitCircle(w.rng).Scale(w.TargetDistance))
}
