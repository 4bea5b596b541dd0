// Package csg models solids as immutable constructive-solid-geometry trees:
// primitive shapes combined by union and difference, positioned by
// translation and Z rotation. Trees are plain values; nothing here performs
// mesh evaluation, which belongs to the external OpenSCAD toolchain.
package csg

import "fmt"

// Vec3 is a 3D offset in mm.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Solid is one node of a CSG tree. The node set is closed; consumers walk
// trees with a type switch.
type Solid interface {
	// BoundingBox returns the axis-aligned bounds of the solid. For
	// differences this is the bounds of the base solid (subtraction never
	// grows a part).
	BoundingBox() Box
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min Vec3
	Max Vec3
}

// Size returns the box extents along each axis.
func (b Box) Size() Vec3 {
	return Vec3{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y, Z: b.Max.Z - b.Min.Z}
}

// Cube is a rectangular box. With Center false it spans [0,Size] on each
// axis, matching OpenSCAD's cube().
type Cube struct {
	Size   Vec3
	Center bool
}

// Cylinder is an n-sided prism approximating a cylinder, matching OpenSCAD's
// cylinder(d, h, $fn). Segments of 4 yields a square prism whose vertices
// start on the +X axis. With Center false the base sits at z=0.
type Cylinder struct {
	Diameter float64
	Height   float64
	Segments int
	Center   bool
}

// Rotation rotates its child about the Z axis. Angle is in degrees.
type Rotation struct {
	Angle float64
	Child Solid
}

// Translation shifts its child by Offset.
type Translation struct {
	Offset Vec3
	Child  Solid
}

// Union is the boolean union of its children.
type Union struct {
	Children []Solid
}

// Difference subtracts every child after the first from the first.
type Difference struct {
	Children []Solid
}

// NewBox builds a cube primitive. The dimensions come from validated parameters;
// a non-positive dimension here means a feasibility bound the validator
// should have enforced, so it is treated as a defect rather than an error.
func NewBox(dx, dy, dz float64, centered bool) Cube {
	if dx <= 0 || dy <= 0 || dz <= 0 {
		panic(fmt.Sprintf("csg: non-positive cube dimensions %g x %g x %g", dx, dy, dz))
	}
	return Cube{Size: Vec3{X: dx, Y: dy, Z: dz}, Center: centered}
}

// WellPrism builds the well primitive every generator scatters across the
// grid: a cylinder rotated 45 degrees about Z. The rotation is what makes a
// 4-segment (square) well come out edge-aligned with the plate axes instead
// of corner-out; it is applied unconditionally so the circular and square
// modes share one code path.
func WellPrism(diameter, height float64, segments int, centered bool) Solid {
	if diameter <= 0 || height <= 0 {
		panic(fmt.Sprintf("csg: non-positive well prism dimensions d=%g h=%g", diameter, height))
	}
	if segments < 3 {
		panic(fmt.Sprintf("csg: well prism needs at least 3 segments, got %d", segments))
	}
	return Rotation{
		Angle: 45,
		Child: Cylinder{Diameter: diameter, Height: height, Segments: segments, Center: centered},
	}
}

// Translate shifts a solid by (x, y, z).
func Translate(s Solid, x, y, z float64) Solid {
	return Translation{Offset: Vec3{X: x, Y: y, Z: z}, Child: s}
}

// Add unions parts onto base. Successive additions to the same union flatten
// into one node so a well field renders as a single union() block.
func Add(base Solid, parts ...Solid) Solid {
	if len(parts) == 0 {
		return base
	}
	if u, ok := base.(Union); ok {
		children := make([]Solid, 0, len(u.Children)+len(parts))
		children = append(children, u.Children...)
		children = append(children, parts...)
		return Union{Children: children}
	}
	children := make([]Solid, 0, 1+len(parts))
	children = append(children, base)
	children = append(children, parts...)
	return Union{Children: children}
}

// Subtract removes cuts from base. (a-b)-c flattens to difference(a, b, c),
// which is the same solid.
func Subtract(base Solid, cuts ...Solid) Solid {
	if len(cuts) == 0 {
		return base
	}
	if d, ok := base.(Difference); ok {
		children := make([]Solid, 0, len(d.Children)+len(cuts))
		children = append(children, d.Children...)
		children = append(children, cuts...)
		return Difference{Children: children}
	}
	children := make([]Solid, 0, 1+len(cuts))
	children = append(children, base)
	children = append(children, cuts...)
	return Difference{Children: children}
}
