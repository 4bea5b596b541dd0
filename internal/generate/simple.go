package generate

import (
	"github.com/piwi3910/platestamper/internal/csg"
	"github.com/piwi3910/platestamper/internal/model"
)

// Stamp generates the simplified insert variant: a base slab with one pillar
// per well, without the frame slot or brim carving of the full insert. The
// pillars extend past the plate height by the stamp depth extension so they
// reach through the mould.
func Stamp(ps model.ParameterSet) csg.Solid {
	brim := ps.BrimExtension
	base := csg.NewBox(ps.PlateLength+brim*2, ps.PlateWidth+brim*2, ps.StampBaseHeight, false)
	pillar := csg.WellPrism(
		ps.WellDiameter*(1.0-ps.StampWellModifier),
		ps.PlateHeight*(1.0+ps.StampDepthExtension),
		ps.CylinderSegments, false)
	proto := csg.Translate(pillar, ps.WellXOffset+brim, ps.WellYOffset+brim, ps.StampBaseHeight)
	return addWells(base, proto, ps.Grid())
}

// Mould generates the simplified topper variant: a plate-footprint slab whose
// thickness sets the pad thickness, with one hole per stamp pillar. Holes are
// expanded by the same modifier that shrank the pillars, then again by the
// mould's own modifier.
func Mould(ps model.ParameterSet) csg.Solid {
	base := csg.NewBox(ps.PlateLength, ps.PlateWidth, ps.MouldThickness, false)
	hole := csg.WellPrism(
		ps.WellDiameter*(1.0+ps.StampWellModifier)*(1.0+ps.MouldWellModifier),
		ps.MouldThickness, ps.CylinderSegments, false)
	proto := csg.Translate(hole, ps.WellXOffset, ps.WellYOffset, 0)
	return subtractWells(base, proto, ps.Grid())
}
