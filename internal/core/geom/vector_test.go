package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 5, 6)

	assert.Equal(t, Vec3(5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, Vec3(4, 10, 18), a.Mul(b))
	assert.Equal(t, Vec3(2, 4, 6), a.Scale(2))
	assert.Equal(t, Vec3(-1, -2, -3), a.Neg())
	assert.Equal(t, 14.0, a.SqrMagnitude())

	// value semantics: operands untouched
	assert.Equal(t, Vec3(1, 2, 3), a)
}

func TestSqrDistance(t *testing.T) {
	assert.Equal(t, 2.25, SqrDistance(Vec3(0, 0, 0), Vec3(1.5, 0, 0)))
	assert.Equal(t, 9.0, SqrDistance(Vec3(3, 0, 0), Vec3(0, 0, 0)))
}

func TestLerpClampsT(t *testing.T) {
	a := Vec3(0, 0, 0)
	b := Vec3(10, 0, -10)

	assert.Equal(t, Vec3(5, 0, -5), Lerp(a, b, 0.5))
	assert.Equal(t, a, Lerp(a, b, -1))
	assert.Equal(t, b, Lerp(a, b, 3))
}

func TestMoveTowards(t *testing.T) {
	cur := Vec3(0, 0, 0)
	target := Vec3(10, 0, 0)

	assert.Equal(t, Vec3(3, 0, 0), MoveTowards(cur, target, 3))
	assert.Equal(t, target, MoveTowards(cur, target, 20), "must not overshoot")
	assert.Equal(t, target, MoveTowards(target, target, 1))
	assert.Equal(t, Vec3(-1, 0, 0), MoveTowards(cur, target, -1))
}

func TestNewTransform(t *testing.T) {
	tr := NewTransform()
	assert.Equal(t, Zero, tr.Position)
	assert.Equal(t, One, tr.Scale)
	assert.Equal(t, Zero, tr.EulerAngles)
}
