// Package scad renders CSG trees to OpenSCAD source text. Rendering is
// deterministic: children are emitted in insertion order with fixed decimal
// formatting, so the same tree always produces byte-identical output.
package scad

import (
	"fmt"
	"strings"

	"github.com/piwi3910/platestamper/internal/csg"
)

// Renderer converts CSG trees to OpenSCAD text.
type Renderer struct {
	DecimalPlaces int // Decimal places for every coordinate and dimension
	Indent        string
}

// New returns a Renderer with the default formatting (6 decimal places,
// tab indentation).
func New() *Renderer {
	return &Renderer{DecimalPlaces: 6, Indent: "\t"}
}

// Render returns the OpenSCAD source for a solid, terminated by a newline.
func (r *Renderer) Render(s csg.Solid) string {
	var b strings.Builder
	r.writeSolid(&b, s, 0)
	return b.String()
}

func (r *Renderer) writeSolid(b *strings.Builder, s csg.Solid, depth int) {
	indent := strings.Repeat(r.Indent, depth)

	switch n := s.(type) {
	case csg.Cube:
		b.WriteString(fmt.Sprintf("%scube(size = [%s, %s, %s]%s);\n",
			indent, r.format(n.Size.X), r.format(n.Size.Y), r.format(n.Size.Z),
			r.centerArg(n.Center)))

	case csg.Cylinder:
		b.WriteString(fmt.Sprintf("%scylinder(d = %s, h = %s%s, $fn = %d);\n",
			indent, r.format(n.Diameter), r.format(n.Height),
			r.centerArg(n.Center), n.Segments))

	case csg.Rotation:
		b.WriteString(fmt.Sprintf("%srotate(a = %s) {\n", indent, r.format(n.Angle)))
		r.writeSolid(b, n.Child, depth+1)
		b.WriteString(indent + "}\n")

	case csg.Translation:
		b.WriteString(fmt.Sprintf("%stranslate(v = [%s, %s, %s]) {\n",
			indent, r.format(n.Offset.X), r.format(n.Offset.Y), r.format(n.Offset.Z)))
		r.writeSolid(b, n.Child, depth+1)
		b.WriteString(indent + "}\n")

	case csg.Union:
		b.WriteString(indent + "union() {\n")
		for _, c := range n.Children {
			r.writeSolid(b, c, depth+1)
		}
		b.WriteString(indent + "}\n")

	case csg.Difference:
		b.WriteString(indent + "difference() {\n")
		for _, c := range n.Children {
			r.writeSolid(b, c, depth+1)
		}
		b.WriteString(indent + "}\n")

	default:
		panic(fmt.Sprintf("scad: unknown solid node %T", s))
	}
}

func (r *Renderer) centerArg(center bool) string {
	if center {
		return ", center = true"
	}
	return ""
}

// format formats a value with the renderer's decimal places, with trailing
// zeros trimmed so integers stay readable.
func (r *Renderer) format(v float64) string {
	s := fmt.Sprintf(fmt.Sprintf("%%.%df", r.DecimalPlaces), v)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
