// Package generate derives the tooling geometries from a validated parameter
// set. Every generator is a pure function from ParameterSet to a CSG tree;
// validation already happened at construction, so generators never check
// their inputs and never fail. A non-positive derived dimension panics inside
// csg, which indicates a feasibility bound missing from the validator.
package generate

import (
	"github.com/piwi3910/platestamper/internal/csg"
	"github.com/piwi3910/platestamper/internal/model"
)

// Plate generates a reference copy of the multi-well plate itself: the plate
// body with one well subtracted per grid cell at the raw offsets.
func Plate(ps model.ParameterSet) csg.Solid {
	base := csg.NewBox(ps.PlateLength, ps.PlateWidth, ps.PlateHeight, false)
	well := csg.WellPrism(ps.WellDiameter, ps.WellDepth, ps.CylinderSegments, false)
	proto := csg.Translate(well, ps.WellXOffset, ps.WellYOffset, ps.WellZOffset)
	return subtractWells(base, proto, ps.Grid())
}

// Insert generates the plate insert: a base slab with one pillar per well,
// each pillar shrunk by the insert well modifier for clearance and deepened
// past the plate height by the depth modifier. The slab's rim is cut down to
// a slot the frame seats in; unless NoBrim is set, half the base height is
// left as a brim ledge under the slot.
func Insert(ps model.ParameterSet) csg.Solid {
	brim := ps.BrimExtension
	base := csg.NewBox(ps.PlateLength+brim*2, ps.PlateWidth+brim*2, ps.InsertBaseHeight, false)

	// The walls solid carves the frame slot out of the base rim. Its cavity
	// is inset by the slot-widened wall thickness on each side.
	walls := csg.NewBox(ps.PlateLength+brim*2, ps.PlateWidth+brim*2, ps.InsertBaseHeight, false)
	slotWall := ps.FrameWallThickness * (1.0 + ps.FrameSlotModifier)
	cavity := csg.NewBox(ps.PlateLength-slotWall*2, ps.PlateWidth-slotWall*2, ps.InsertBaseHeight, false)
	slot := csg.Subtract(walls, csg.Translate(cavity, slotWall+brim, slotWall+brim, 0))
	if !ps.NoBrim {
		// Raising the slot leaves the lower half of the base as the brim.
		slot = csg.Translate(slot, 0, 0, ps.InsertBaseHeight/2)
	}
	body := csg.Subtract(base, slot)

	pillar := csg.WellPrism(
		ps.WellDiameter*(1.0-ps.InsertWellModifier),
		ps.PlateHeight*(1.0+ps.InsertDepthModifier),
		ps.CylinderSegments, false)
	proto := csg.Translate(pillar, ps.WellXOffset+brim, ps.WellYOffset+brim, ps.InsertBaseHeight)
	return addWells(body, proto, ps.Grid())
}

// Frame generates the frame that sits on the insert's slot and holds the
// topper: a wall ring of the plate footprint with an inset cut into its top
// for the topper to drop into.
func Frame(ps model.ParameterSet) csg.Solid {
	// The topper slot is undersized by the slot modifier so the topper seats
	// with clearance. Only one wall thickness is removed because the topper
	// half-overlaps the walls.
	gap := ps.FrameWallThickness * (1.0 - ps.TopperSlotModifier)
	topperLength := ps.PlateLength - gap
	topperWidth := ps.PlateWidth - gap
	topperHole := csg.NewBox(topperLength, topperWidth, ps.TopperBaseThickness, true)

	// Tall enough to clear the insert pillars plus the exposed half of the
	// insert base and the mould depth.
	frameHeight := ps.PlateHeight*(1.0+ps.InsertDepthModifier) + ps.InsertBaseHeight/2 + ps.TopperDepth
	if ps.NoBrim {
		// No brim means the frame reaches the full insert base height.
		frameHeight += ps.InsertBaseHeight / 2
	}

	frame := csg.NewBox(ps.PlateLength, ps.PlateWidth, frameHeight, true)
	cavity := csg.NewBox(
		ps.PlateLength-ps.FrameWallThickness*2,
		ps.PlateWidth-ps.FrameWallThickness*2,
		frameHeight, true)
	return csg.Subtract(frame,
		cavity,
		csg.Translate(topperHole, 0, 0, (frameHeight-ps.TopperBaseThickness)/2))
}

// Topper generates the mould topper that sits in the frame: a slab with the
// agarose mould cavity sunk into its top, one hole per insert pillar, and
// four corner holes for the cutter's guide pins.
func Topper(ps model.ParameterSet) csg.Solid {
	// Half-overlaps the frame walls, so one wall thickness comes off the
	// plate footprint.
	topperLength := ps.PlateLength - ps.FrameWallThickness
	topperWidth := ps.PlateWidth - ps.FrameWallThickness
	base := csg.NewBox(topperLength, topperWidth, ps.TopperBaseThickness, false)

	// Cavity margin on each side: well offset back to the well edge, less
	// the clearance. Doubled because it applies to both sides, so the cavity
	// stays symmetric about the well field.
	xMargin := (ps.WellXOffset - (ps.WellRadius() + ps.MouldWellClearance)) * 2
	yMargin := (ps.WellYOffset - (ps.WellRadius() + ps.MouldWellClearance)) * 2
	cavity := csg.NewBox(ps.PlateLength-xMargin, ps.PlateWidth-yMargin, ps.TopperDepth, false)
	body := csg.Subtract(base, csg.Translate(cavity,
		xMargin/2-ps.FrameWallThickness/2,
		yMargin/2-ps.FrameWallThickness/2,
		ps.TopperBaseThickness-ps.TopperDepth))

	// Holes are expanded relative to the insert pillars: first by the insert
	// well modifier, then again by the topper's own modifier.
	hole := csg.WellPrism(
		ps.WellDiameter*(1.0+ps.InsertWellModifier)*(1.0+ps.TopperWellModifier),
		ps.TopperBaseThickness, ps.CylinderSegments, false)
	proto := csg.Translate(hole,
		ps.WellXOffset-ps.FrameWallThickness/2,
		ps.WellYOffset-ps.FrameWallThickness/2, 0)
	body = subtractWells(body, proto, ps.Grid())

	// Guide holes in the four corners, inset past half the frame wall so
	// they line up with the cutter's pins.
	guideHole := csg.NewBox(ps.CutterGuideSides, ps.CutterGuideSides, ps.TopperBaseThickness, false)
	inset := ps.CutterGuideOffset + ps.FrameWallThickness/2
	cuts := make([]csg.Solid, 0, 4)
	for _, c := range cornerOffsets(topperLength, topperWidth, inset, ps.CutterGuideSides) {
		cuts = append(cuts, csg.Translate(guideHole, c.X, c.Y, 0))
	}
	return csg.Subtract(body, cuts...)
}

// Cutter generates the tool that trims excess agarose from around the wells:
// a base slab carrying one annular cutting ring per well and four corner
// guide pins matching the topper's guide holes.
func Cutter(ps model.ParameterSet) csg.Solid {
	base := csg.NewBox(ps.PlateLength, ps.PlateWidth, ps.CutterBaseThickness, false)

	// Rings are sized from the insert pillars, shrunk by the cutter
	// modifier so the cut lands just inside the topper holes.
	ringDiameter := ps.WellDiameter * (1.0 + ps.InsertWellModifier) * (1.0 - ps.CutterDiameterModifier)
	inner := csg.WellPrism(ringDiameter, ps.CutterEdgeLength, ps.CylinderSegments, true)
	outer := csg.WellPrism(ringDiameter+ps.CutterEdgeThickness*2, ps.CutterEdgeLength, ps.CylinderSegments, true)
	ring := csg.Subtract(outer, inner)
	// The ring is centred, so it rises half its edge length above the base.
	proto := csg.Translate(ring, ps.WellXOffset, ps.WellYOffset,
		ps.CutterBaseThickness+ps.CutterEdgeLength/2)
	body := addWells(base, proto, ps.Grid())

	// Pins are shrunk by the guide modifier to fit the topper's holes, and
	// re-centred in the hole by half the size difference.
	pinSide := ps.CutterGuideSides * (1.0 - ps.CutterGuideModifier)
	sizeDiff := ps.CutterGuideSides - pinSide
	pin := csg.NewBox(pinSide, pinSide, ps.CutterGuideLength, false)
	inset := ps.CutterGuideOffset + ps.FrameWallThickness + sizeDiff/2
	pins := make([]csg.Solid, 0, 4)
	for _, c := range cornerOffsets(ps.PlateLength, ps.PlateWidth, inset, pinSide) {
		pins = append(pins, csg.Translate(pin, c.X, c.Y, ps.CutterBaseThickness))
	}
	return csg.Add(body, pins...)
}
