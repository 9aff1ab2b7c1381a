package component

import (
	"github.com/embedsim/simcore/internal/core/ecs"
	"github.com/embedsim/simcore/internal/core/geom"
	"github.com/embedsim/simcore/internal/world"
)

// closeEnoughSqr stops the follow once the owner sits (almost) on the target.
const closeEnoughSqr = 0.01

// TargetFollow eases its owner toward another object. Target is a handle:
// once the target's destruction is processed it resolves to nothing and the
// follow clears itself.
type TargetFollow struct {
	world.Base
	Target       ecs.EntityID
	FollowSpeed  float64
	ShouldFollow bool
}

func NewTargetFollow(target ecs.EntityID, followSpeed float64) *TargetFollow {
	return &TargetFollow{
		Target:       target,
		FollowSpeed:  followSpeed,
		ShouldFollow: true,
	}
}

func (f *TargetFollow) Kind() ecs.Kind { return ecs.KindTargetFollow }

func (f *TargetFollow) HasTarget() bool { return !f.Target.IsZero() }

func (f *TargetFollow) OnUpdate(s *world.State, dt float64) {
	if f.Target.IsZero() || !f.ShouldFollow {
		return
	}
	target, ok := s.Object(f.Target)
	if !ok {
		f.Target = ecs.NoEntity
		return
	}
	o, ok := world.OwnerOf(s, f)
	if !ok {
		return
	}
	if geom.SqrDistance(target.Position(), o.Position()) > closeEnoughSqr {
		o.SetPosition(geom.Lerp(o.Position(), target.Position(), f.FollowSpeed*dt))
	}
}
