package geom

import "fmt"

// Transform is owned by exactly one Object and mutated in place.
type Transform struct {
	Position    Vector3
	Scale       Vector3
	EulerAngles Vector3
}

// NewTransform returns the identity transform: origin, unit scale, no rotation.
func NewTransform() Transform {
	return Transform{Scale: One}
}

func (t Transform) String() string {
	return fmt.Sprintf("pos=%s scale=%s rot=%s", t.Position, t.Scale, t.EulerAngles)
}
