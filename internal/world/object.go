package world

import (
	"fmt"
	"slices"

	"github.com/embedsim/simcore/internal/core/ecs"
	"github.com/embedsim/simcore/internal/core/geom"
)

// DefaultTag is given to objects created without a tag.
const DefaultTag = "Object"

// Object is a named, tagged entity: one Transform plus an ordered list of
// components. Insertion order is the order lifecycle hooks run in.
// Identity is the handle; two Objects are never equal by value.
type Object struct {
	Name      string
	Tag       string
	Transform geom.Transform

	id             ecs.EntityID
	state          *State
	components     []Component
	byKind         map[ecs.Kind][]Component
	pendingDestroy bool
}

func (o *Object) ID() ecs.EntityID { return o.id }

func (o *Object) Position() geom.Vector3     { return o.Transform.Position }
func (o *Object) SetPosition(p geom.Vector3) { o.Transform.Position = p }

// PendingDestroy reports whether destruction has been requested.
func (o *Object) PendingDestroy() bool { return o.pendingDestroy }

// Components returns a copy of the attached components in insertion order.
func (o *Object) Components() []Component {
	return slices.Clone(o.components)
}

// AddComponent attaches c. Colliders are handed to the collision manager.
// Once the simulation has started, c gets its awake now and its start on the
// next tick instead of waiting for a bulk start pass.
// A component already attached elsewhere is moved; re-adding to o is a no-op.
// Attaching to an object whose destruction has been processed does nothing.
func (o *Object) AddComponent(c Component) {
	if _, live := o.state.Object(o.id); !live {
		return
	}
	b := c.base()
	if b.owner == o.id {
		return
	}
	if prev, ok := o.state.Object(b.owner); ok {
		prev.RemoveComponent(c)
	}
	b.owner = o.id
	o.components = append(o.components, c)
	o.byKind[c.Kind()] = append(o.byKind[c.Kind()], c)

	if col, ok := c.(Collider); ok {
		o.state.collisions.Register(o, col)
	}
	if o.state.started {
		o.state.QueueComponentInitialization(c)
	}
}

// RemoveComponent detaches c. It is a no-op, returning false, when c is not
// attached to o.
func (o *Object) RemoveComponent(c Component) bool {
	i := slices.Index(o.components, c)
	if i < 0 {
		return false
	}
	o.components = slices.Delete(o.components, i, i+1)

	k := c.Kind()
	if j := slices.Index(o.byKind[k], c); j >= 0 {
		o.byKind[k] = slices.Delete(o.byKind[k], j, j+1)
	}

	b := c.base()
	b.owner = ecs.NoEntity
	b.pendingStart = false

	if col, ok := c.(Collider); ok {
		o.state.collisions.Deregister(o, col)
	}
	return true
}

// GetComponent returns the first attached component of kind k.
func (o *Object) GetComponent(k ecs.Kind) (Component, bool) {
	cs := o.byKind[k]
	if len(cs) == 0 {
		return nil, false
	}
	return cs[0], true
}

func (o *Object) HasComponent(k ecs.Kind) bool {
	return len(o.byKind[k]) > 0
}

// GetComponents returns every attached component of kind k in insertion order.
func (o *Object) GetComponents(k ecs.Kind) []Component {
	return slices.Clone(o.byKind[k])
}

// Destroy requests destruction at the next tick boundary.
func (o *Object) Destroy() {
	o.state.QueueDestroy(o)
}

// attached reports whether c still belongs to o; hooks may detach siblings
// while a lifecycle pass is walking a snapshot.
func (o *Object) attached(c Component) bool {
	return c.Owner() == o.id
}

func (o *Object) awake() {
	for _, c := range o.Components() {
		if o.attached(c) && !c.base().pendingStart {
			c.OnAwake(o.state)
		}
	}
}

func (o *Object) start() {
	for _, c := range o.Components() {
		if o.attached(c) && !c.base().pendingStart {
			c.OnStart(o.state)
		}
	}
}

func (o *Object) update(dt float64) {
	for _, c := range o.Components() {
		if o.attached(c) && !c.base().pendingStart {
			c.OnUpdate(o.state, dt)
		}
	}
}

func (o *Object) destroy() {
	for _, c := range o.Components() {
		if o.attached(c) {
			c.OnDestroy(o.state)
		}
	}
}

func (o *Object) String() string {
	return fmt.Sprintf("%s[%s] %s", o.Name, o.Tag, o.Transform)
}
