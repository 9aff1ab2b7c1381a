package world

import "github.com/embedsim/simcore/internal/core/ecs"

// Component is a behaviour unit attached to at most one Object at a time.
// Every hook receives the owning State; the owner itself is reached through
// the handle returned by Owner, never through a stored pointer.
//
// Implementations embed Base, which provides the handle plumbing and no-op
// defaults for every hook.
type Component interface {
	Kind() ecs.Kind
	Owner() ecs.EntityID

	OnAwake(s *State)
	OnStart(s *State)
	OnUpdate(s *State, dt float64)
	OnDestroy(s *State)

	OnCollisionEnter(s *State, other *Object)
	OnCollisionStay(s *State, other *Object)
	OnCollisionExit(s *State, other *Object)

	base() *Base
}

// Collider is the capability that makes the collision manager track a
// component. Radius is in world units around the owner's position.
type Collider interface {
	Component
	Radius() float64
}

// Base carries the owner handle and the deferred-start flag.
type Base struct {
	owner        ecs.EntityID
	pendingStart bool
}

func (b *Base) Owner() ecs.EntityID { return b.owner }

// Attached reports whether the component currently has an owner.
func (b *Base) Attached() bool { return !b.owner.IsZero() }

func (b *Base) OnAwake(*State)                   {}
func (b *Base) OnStart(*State)                   {}
func (b *Base) OnUpdate(*State, float64)         {}
func (b *Base) OnDestroy(*State)                 {}
func (b *Base) OnCollisionEnter(*State, *Object) {}
func (b *Base) OnCollisionStay(*State, *Object)  {}
func (b *Base) OnCollisionExit(*State, *Object)  {}
func (b *Base) base() *Base                      { return b }

// OwnerOf resolves c's owner. It returns false for detached components and
// for owners whose destruction has already been processed.
func OwnerOf(s *State, c Component) (*Object, bool) {
	return s.Object(c.Owner())
}
