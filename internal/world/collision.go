package world

import (
	"slices"

	"github.com/embedsim/simcore/internal/core/ecs"
	"github.com/embedsim/simcore/internal/core/event"
	"github.com/embedsim/simcore/internal/core/geom"
)

// pairKey names an unordered pair of objects; lo < hi.
type pairKey struct {
	lo, hi ecs.EntityID
}

func keyOf(a, b ecs.EntityID) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Collisions tracks which objects carry colliders and which pairs currently
// overlap. Every tick, Update tests each unordered pair of tracked objects
// and fires enter, stay or exit hooks on both sides.
//
// The overlap test uses entity positions only (collider offsets do not
// exist) and squared distances throughout:
//
//	|posA - posB|² < (rA + rB)²
//
// for at least one collider combination between the two objects.
// Accessed only from the game loop goroutine, no locks.
type Collisions struct {
	state     *State
	order     []*Object // registration order, drives pair iteration
	colliders map[ecs.EntityID][]Collider
	colliding map[pairKey]struct{}
}

func newCollisions(s *State) *Collisions {
	return &Collisions{
		state:     s,
		colliders: make(map[ecs.EntityID][]Collider, 64),
		colliding: make(map[pairKey]struct{}, 64),
	}
}

// Register tracks c for o. Registering the same collider twice is a no-op,
// and so is registering for an object that is no longer live.
func (m *Collisions) Register(o *Object, c Collider) {
	if _, live := m.state.byID[o.id]; !live {
		return
	}
	list, ok := m.colliders[o.id]
	if !ok {
		m.order = append(m.order, o)
	}
	if slices.Contains(list, c) {
		return
	}
	m.colliders[o.id] = append(list, c)
}

// Deregister stops tracking c. Removing the last collider keeps o as a key
// with an empty list; it stays in the scan but never overlaps anything.
func (m *Collisions) Deregister(o *Object, c Collider) {
	list, ok := m.colliders[o.id]
	if !ok {
		return
	}
	if i := slices.Index(list, c); i >= 0 {
		m.colliders[o.id] = slices.Delete(list, i, i+1)
	}
}

// Tracked reports whether o is a key, and how many colliders it has.
func (m *Collisions) Tracked(o *Object) (int, bool) {
	list, ok := m.colliders[o.id]
	return len(list), ok
}

// Colliding reports whether a and b were overlapping at the last Update.
func (m *Collisions) Colliding(a, b *Object) bool {
	_, ok := m.colliding[keyOf(a.id, b.id)]
	return ok
}

// Pairs reports how many pairs are currently overlapping.
func (m *Collisions) Pairs() int { return len(m.colliding) }

// Update runs one full pairwise pass.
func (m *Collisions) Update() {
	keys := slices.Clone(m.order)
	for i := 0; i < len(keys)-1; i++ {
		for j := i + 1; j < len(keys); j++ {
			a, b := keys[i], keys[j]
			if !m.live(a) || !m.live(b) {
				continue
			}
			k := keyOf(a.id, b.id)
			_, was := m.colliding[k]
			switch hit := m.overlap(a, b); {
			case hit && was:
				m.fire(a, b, Component.OnCollisionStay)
			case hit:
				m.colliding[k] = struct{}{}
				event.Emit(m.state.bus, event.CollisionEntered{A: a.id, B: b.id})
				m.fire(a, b, Component.OnCollisionEnter)
			case was:
				delete(m.colliding, k)
				event.Emit(m.state.bus, event.CollisionExited{A: a.id, B: b.id})
				m.fire(a, b, Component.OnCollisionExit)
			}
		}
	}
}

// Forget drops o from the manager. Every partner o was overlapping gets
// OnCollisionExit; o itself gets nothing, its destruction has already run.
func (m *Collisions) Forget(o *Object) {
	if _, ok := m.colliders[o.id]; !ok {
		return
	}
	delete(m.colliders, o.id)
	if i := slices.Index(m.order, o); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	for _, p := range m.order {
		k := keyOf(o.id, p.id)
		if _, ok := m.colliding[k]; !ok {
			continue
		}
		delete(m.colliding, k)
		event.Emit(m.state.bus, event.CollisionExited{A: p.id, B: o.id})
		for _, c := range p.Components() {
			if p.attached(c) {
				c.OnCollisionExit(m.state, o)
			}
		}
	}
}

// live guards against objects forgotten by a hook earlier in the same pass.
func (m *Collisions) live(o *Object) bool {
	_, ok := m.colliders[o.id]
	return ok
}

func (m *Collisions) overlap(a, b *Object) bool {
	sqrDist := geom.SqrDistance(a.Position(), b.Position())
	for _, ca := range m.colliders[a.id] {
		for _, cb := range m.colliders[b.id] {
			r := ca.Radius() + cb.Radius()
			if sqrDist < r*r {
				return true
			}
		}
	}
	return false
}

// fire calls hook on every component of a with b as argument, then on every
// component of b with a.
func (m *Collisions) fire(a, b *Object, hook func(Component, *State, *Object)) {
	for _, c := range a.Components() {
		if a.attached(c) {
			hook(c, m.state, b)
		}
	}
	for _, c := range b.Components() {
		if b.attached(c) {
			hook(c, m.state, a)
		}
	}
}
