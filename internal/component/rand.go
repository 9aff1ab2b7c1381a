package component

import (
	"math"

	"github.com/embedsim/simcore/internal/core/geom"
)

// Rand is the randomness behaviours draw from. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Range returns a uniform sample in [lo, hi).
func Range(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// InsideUnitCircle returns a uniform point in the unit disc on the XY plane.
func InsideUnitCircle(r Rand) geom.Vector3 {
	radius := math.Sqrt(r.Float64())
	theta := 2 * math.Pi * r.Float64()
	return geom.Vec3(radius*math.Cos(theta), radius*math.Sin(theta), 0)
}
