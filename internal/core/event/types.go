package event

import "github.com/embedsim/simcore/internal/core/ecs"

// EntityDestroyed fires once an entity's destruction has been processed.
type EntityDestroyed struct {
	EntityID ecs.EntityID
	Name     string
}

// CollisionEntered fires when a pair starts overlapping. A was registered
// with the collision manager before B.
type CollisionEntered struct {
	A, B ecs.EntityID
}

// CollisionExited fires when a pair stops overlapping or one side is
// destroyed; in the latter case B is the destroyed side.
type CollisionExited struct {
	A, B ecs.EntityID
}
