package csg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFlattensUnions(t *testing.T) {
	base := NewBox(10, 10, 10, false)
	a := NewBox(1, 1, 1, false)
	b := NewBox(2, 2, 2, false)
	c := NewBox(3, 3, 3, false)

	s := Add(Add(base, a, b), c)
	u, ok := s.(Union)
	require.True(t, ok)
	assert.Len(t, u.Children, 4)
}

func TestSubtractFlattensDifferences(t *testing.T) {
	base := NewBox(10, 10, 10, false)
	a := NewBox(1, 1, 1, false)
	b := NewBox(2, 2, 2, false)

	s := Subtract(Subtract(base, a), b)
	d, ok := s.(Difference)
	require.True(t, ok)
	// (base - a) - b is the same solid as difference(base, a, b).
	require.Len(t, d.Children, 3)
	assert.Equal(t, base, d.Children[0])
}

func TestAddSubtractNoOps(t *testing.T) {
	base := NewBox(10, 10, 10, false)
	assert.Equal(t, Solid(base), Add(base))
	assert.Equal(t, Solid(base), Subtract(base))
}

func TestSubtractAfterAddDoesNotFlatten(t *testing.T) {
	base := Add(NewBox(10, 10, 10, false), NewBox(1, 1, 1, false))
	s := Subtract(base, NewBox(2, 2, 2, false))
	d, ok := s.(Difference)
	require.True(t, ok)
	assert.Len(t, d.Children, 2)
}

func TestNewBoxPanicsOnNonPositiveDimension(t *testing.T) {
	assert.Panics(t, func() { NewBox(0, 1, 1, false) })
	assert.Panics(t, func() { NewBox(1, -2, 1, false) })
}

func TestWellPrismPanics(t *testing.T) {
	assert.Panics(t, func() { WellPrism(0, 5, 32, false) })
	assert.Panics(t, func() { WellPrism(5, 5, 2, false) })
}

func TestCubeBoundingBox(t *testing.T) {
	b := NewBox(10, 20, 30, false).BoundingBox()
	assert.Equal(t, Vec3{}, b.Min)
	assert.Equal(t, Vec3{X: 10, Y: 20, Z: 30}, b.Max)

	c := NewBox(10, 20, 30, true).BoundingBox()
	assert.Equal(t, Vec3{X: -5, Y: -10, Z: -15}, c.Min)
	assert.Equal(t, Vec3{X: 5, Y: 10, Z: 15}, c.Max)
}

// A 4-segment prism rotated 45 degrees is a square aligned with the axes;
// its half-extent is the inradius d/2·cos(45°), not the circumradius d/2.
func TestSquareWellPrismBoundsAxisAligned(t *testing.T) {
	s := WellPrism(10, 5, 4, false)
	b := s.BoundingBox()

	half := 5 * 0.7071067811865476
	assert.InDelta(t, -half, b.Min.X, 1e-12)
	assert.InDelta(t, -half, b.Min.Y, 1e-12)
	assert.InDelta(t, half, b.Max.X, 1e-12)
	assert.InDelta(t, half, b.Max.Y, 1e-12)
	assert.Equal(t, 0.0, b.Min.Z)
	assert.Equal(t, 5.0, b.Max.Z)
}

func TestCylinderBoundsUseActualVertices(t *testing.T) {
	// An unrotated square prism has vertices on the axes, so its bounds
	// reach the full circumradius in X but only through the vertex set in Y.
	c := Cylinder{Diameter: 10, Height: 2, Segments: 4}
	b := c.BoundingBox()
	assert.InDelta(t, 5.0, b.Max.X, 1e-12)
	assert.InDelta(t, -5.0, b.Min.X, 1e-12)
}

func TestTranslationShiftsBounds(t *testing.T) {
	s := Translate(NewBox(2, 2, 2, false), 10, 20, 30)
	b := s.BoundingBox()
	assert.Equal(t, Vec3{X: 10, Y: 20, Z: 30}, b.Min)
	assert.Equal(t, Vec3{X: 12, Y: 22, Z: 32}, b.Max)
}

func TestUnionBoundsCoverAllChildren(t *testing.T) {
	s := Add(
		NewBox(2, 2, 2, false),
		Translate(NewBox(2, 2, 2, false), 10, 0, 0),
	)
	b := s.BoundingBox()
	assert.Equal(t, 0.0, b.Min.X)
	assert.Equal(t, 12.0, b.Max.X)
	assert.Equal(t, Vec3{X: 12, Y: 2, Z: 2}, b.Size())
}

func TestDifferenceBoundsAreBaseBounds(t *testing.T) {
	base := NewBox(10, 10, 10, false)
	s := Subtract(base, Translate(NewBox(50, 50, 50, false), -20, -20, -20))
	assert.Equal(t, base.BoundingBox(), s.BoundingBox())
}

func TestCenteredCylinderBounds(t *testing.T) {
	c := Cylinder{Diameter: 6, Height: 4, Segments: 32, Center: true}
	b := c.BoundingBox()
	assert.Equal(t, -2.0, b.Min.Z)
	assert.Equal(t, 2.0, b.Max.Z)
}
