package geom

import (
	"fmt"
	"math"
)

// Vector3 is a 3D vector with value semantics. All operations return a new
// value; nothing is mutated in place.
type Vector3 struct {
	X, Y, Z float64
}

var (
	Zero = Vector3{}
	One  = Vector3{1, 1, 1}
)

func Vec3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul multiplies component-wise.
func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func (v Vector3) SqrMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.SqrMagnitude())
}

// SqrDistance returns the squared distance between a and b.
func SqrDistance(a, b Vector3) float64 {
	return a.Sub(b).SqrMagnitude()
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b Vector3, t float64) Vector3 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Vector3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// MoveTowards moves current toward target by at most maxDelta and never
// overshoots. A negative maxDelta moves away from target.
func MoveTowards(current, target Vector3, maxDelta float64) Vector3 {
	diff := target.Sub(current)
	sqr := diff.SqrMagnitude()
	if sqr == 0 || (maxDelta >= 0 && sqr <= maxDelta*maxDelta) {
		return target
	}
	dist := math.Sqrt(sqr)
	return current.Add(diff.Scale(maxDelta / dist))
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
