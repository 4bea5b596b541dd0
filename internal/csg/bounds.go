package csg

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BoundingBox implements Solid.
func (c Cube) BoundingBox() Box {
	if c.Center {
		half := Vec3{X: c.Size.X / 2, Y: c.Size.Y / 2, Z: c.Size.Z / 2}
		return Box{Min: Vec3{X: -half.X, Y: -half.Y, Z: -half.Z}, Max: half}
	}
	return Box{Max: c.Size}
}

// BoundingBox implements Solid by bounding the prism's actual vertices, so a
// low segment count reports its true footprint rather than the circumscribed
// circle.
func (c Cylinder) BoundingBox() Box {
	return c.rotatedBounds(0)
}

// rotatedBounds returns the prism bounds after an extra rotation about Z, in
// degrees. Vertices sit on the circumcircle starting at angle zero, as
// OpenSCAD places them.
func (c Cylinder) rotatedBounds(extraDeg float64) Box {
	r := c.Diameter / 2
	xs := make([]float64, c.Segments)
	ys := make([]float64, c.Segments)
	for i := 0; i < c.Segments; i++ {
		a := 2*math.Pi*float64(i)/float64(c.Segments) + extraDeg*math.Pi/180
		xs[i] = r * math.Cos(a)
		ys[i] = r * math.Sin(a)
	}
	b := Box{
		Min: Vec3{X: floats.Min(xs), Y: floats.Min(ys)},
		Max: Vec3{X: floats.Max(xs), Y: floats.Max(ys), Z: c.Height},
	}
	if c.Center {
		b.Min.Z = -c.Height / 2
		b.Max.Z = c.Height / 2
	}
	return b
}

// BoundingBox implements Solid. Rotated prisms are bounded exactly from
// their vertices; for any other child the rotated corners of the child's box
// are bounded, which is conservative.
func (r Rotation) BoundingBox() Box {
	switch child := r.Child.(type) {
	case Cylinder:
		return child.rotatedBounds(r.Angle)
	case Rotation:
		if c, ok := child.Child.(Cylinder); ok {
			return c.rotatedBounds(r.Angle + child.Angle)
		}
	}
	inner := r.Child.BoundingBox()
	a := r.Angle * math.Pi / 180
	sin, cos := math.Sin(a), math.Cos(a)
	xs := make([]float64, 0, 4)
	ys := make([]float64, 0, 4)
	for _, x := range []float64{inner.Min.X, inner.Max.X} {
		for _, y := range []float64{inner.Min.Y, inner.Max.Y} {
			xs = append(xs, x*cos-y*sin)
			ys = append(ys, x*sin+y*cos)
		}
	}
	return Box{
		Min: Vec3{X: floats.Min(xs), Y: floats.Min(ys), Z: inner.Min.Z},
		Max: Vec3{X: floats.Max(xs), Y: floats.Max(ys), Z: inner.Max.Z},
	}
}

// BoundingBox implements Solid.
func (t Translation) BoundingBox() Box {
	b := t.Child.BoundingBox()
	b.Min.X += t.Offset.X
	b.Min.Y += t.Offset.Y
	b.Min.Z += t.Offset.Z
	b.Max.X += t.Offset.X
	b.Max.Y += t.Offset.Y
	b.Max.Z += t.Offset.Z
	return b
}

// BoundingBox implements Solid.
func (u Union) BoundingBox() Box {
	if len(u.Children) == 0 {
		return Box{}
	}
	b := u.Children[0].BoundingBox()
	for _, c := range u.Children[1:] {
		cb := c.BoundingBox()
		b.Min.X = math.Min(b.Min.X, cb.Min.X)
		b.Min.Y = math.Min(b.Min.Y, cb.Min.Y)
		b.Min.Z = math.Min(b.Min.Z, cb.Min.Z)
		b.Max.X = math.Max(b.Max.X, cb.Max.X)
		b.Max.Y = math.Max(b.Max.Y, cb.Max.Y)
		b.Max.Z = math.Max(b.Max.Z, cb.Max.Z)
	}
	return b
}

// BoundingBox implements Solid. Subtracting can only shrink the base, so the
// base bounds are an upper bound on the result.
func (d Difference) BoundingBox() Box {
	if len(d.Children) == 0 {
		return Box{}
	}
	return d.Children[0].BoundingBox()
}
