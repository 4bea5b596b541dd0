package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/piwi3910/platestamper/internal/model"
)

// DXFSchematic writes a 2D DXF drawing of the plate layout for CAD import:
// the chamfered plate outline on an OUTLINE layer and one circle per well on
// a WELLS layer, all in plate coordinates (mm).
func DXFSchematic(path string, ps model.ParameterSet) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer("OUTLINE", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("export: adding DXF layer: %w", err)
	}
	chamfer := ps.WellSpacing
	l, w := ps.PlateLength, ps.PlateWidth
	outline := [][4]float64{
		{0, chamfer, 0, w},
		{0, w, l, w},
		{l, w, l, 0},
		{l, 0, chamfer, 0},
		{chamfer, 0, 0, chamfer}, // A1 corner chamfer
	}
	for _, seg := range outline {
		if _, err := d.Line(seg[0], seg[1], 0, seg[2], seg[3], 0); err != nil {
			return fmt.Errorf("export: drawing DXF outline: %w", err)
		}
	}

	if _, err := d.AddLayer("WELLS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("export: adding DXF layer: %w", err)
	}
	r := ps.WellRadius()
	for _, p := range ps.Grid().Positions() {
		if _, err := d.Circle(p.X, p.Y, 0, r); err != nil {
			return fmt.Errorf("export: drawing DXF well: %w", err)
		}
	}

	return d.SaveAs(path)
}
