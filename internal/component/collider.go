package component

import (
	"github.com/embedsim/simcore/internal/core/ecs"
	"github.com/embedsim/simcore/internal/world"
)

// SphereCollider marks its owner for the collision pass.
// Pure data: the radius is read by world.Collisions, there is no behaviour.
type SphereCollider struct {
	world.Base
	R float64
}

func NewSphereCollider(radius float64) *SphereCollider {
	return &SphereCollider{R: radius}
}

func (c *SphereCollider) Kind() ecs.Kind  { return ecs.KindSphereCollider }
func (c *SphereCollider) Radius() float64 { return c.R }
