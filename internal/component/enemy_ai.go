package component

import (
	"github.com/embedsim/simcore/internal/core/ecs"
	"github.com/embedsim/simcore/internal/world"
)

// EnemyTag marks objects an EnemyAI never chases.
const EnemyTag = "Enemy"

// EnemyAI hunts whatever non-enemy wanders into its collider: it points the
// sibling TargetFollow at the intruder and stops the sibling RandomWalk until
// the intruder leaves. Both siblings are optional.
type EnemyAI struct {
	world.Base
	follow *TargetFollow
	walk   *RandomWalk
}

func NewEnemyAI() *EnemyAI { return &EnemyAI{} }

func (e *EnemyAI) Kind() ecs.Kind { return ecs.KindEnemyAI }

func (e *EnemyAI) OnAwake(s *world.State) {
	o, ok := world.OwnerOf(s, e)
	if !ok {
		return
	}
	if c, ok := o.GetComponent(ecs.KindTargetFollow); ok {
		e.follow, _ = c.(*TargetFollow)
	}
	if c, ok := o.GetComponent(ecs.KindRandomWalk); ok {
		e.walk, _ = c.(*RandomWalk)
	}
}

func (e *EnemyAI) OnCollisionEnter(_ *world.State, other *world.Object) {
	e.acquire(other)
}

func (e *EnemyAI) OnCollisionStay(_ *world.State, other *world.Object) {
	e.acquire(other)
}

func (e *EnemyAI) OnCollisionExit(_ *world.State, other *world.Object) {
	if e.follow == nil || e.follow.Target != other.ID() {
		return
	}
	e.follow.Target = ecs.NoEntity
	if e.walk != nil {
		e.walk.ShouldWalk = true
	}
}

// Chasing reports whether the AI currently has a follow target.
func (e *EnemyAI) Chasing() bool {
	return e.follow != nil && e.follow.HasTarget()
}

func (e *EnemyAI) acquire(other *world.Object) {
	if other.Tag == EnemyTag || e.follow == nil {
		return
	}
	if !e.follow.HasTarget() {
		e.follow.Target = other.ID()
	}
	if e.walk != nil {
		e.walk.ShouldWalk = false
	}
}
