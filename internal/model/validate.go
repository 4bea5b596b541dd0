package model

import (
	"fmt"
	"math"
)

// requiredField pairs a parameter name with its value for positivity checks.
// The fit modifiers (InsertDepthModifier, InsertWellModifier,
// TopperWellModifier, FrameSlotModifier, CutterDiameterModifier,
// CutterGuideModifier, MouldWellClearance, StampDepthExtension,
// StampWellModifier, MouldWellModifier) plus BrimExtension and CuboidWellSize
// are deliberately absent: zero is a legitimate value for them, and those
// formulated as (1 - modifier) encode a shrink.
type requiredField struct {
	name  string
	value float64
}

func (ps ParameterSet) requiredFields() []requiredField {
	return []requiredField{
		{"PlateLength", ps.PlateLength},
		{"PlateWidth", ps.PlateWidth},
		{"PlateHeight", ps.PlateHeight},
		{"WellDiameter", ps.WellDiameter},
		{"WellSpacing", ps.WellSpacing},
		{"WellDepth", ps.WellDepth},
		{"WellXOffset", ps.WellXOffset},
		{"WellYOffset", ps.WellYOffset},
		{"WellZOffset", ps.WellZOffset},
		{"Rows", float64(ps.Rows)},
		{"Columns", float64(ps.Columns)},
		{"CylinderSegments", float64(ps.CylinderSegments)},
		{"InsertBaseHeight", ps.InsertBaseHeight},
		{"FrameWallThickness", ps.FrameWallThickness},
		{"TopperSlotModifier", ps.TopperSlotModifier},
		{"TopperDepth", ps.TopperDepth},
		{"TopperBaseThickness", ps.TopperBaseThickness},
		{"CutterBaseThickness", ps.CutterBaseThickness},
		{"CutterEdgeThickness", ps.CutterEdgeThickness},
		{"CutterEdgeLength", ps.CutterEdgeLength},
		{"CutterGuideSides", ps.CutterGuideSides},
		{"CutterGuideLength", ps.CutterGuideLength},
		{"CutterGuideOffset", ps.CutterGuideOffset},
		{"StampBaseHeight", ps.StampBaseHeight},
		{"MouldThickness", ps.MouldThickness},
	}
}

// validate enforces per-field positivity and the two cross-field feasibility
// bounds. A zero required field reads as unset (the zero value is how an
// omitted field arrives from JSON or a spreadsheet), a negative one as
// explicitly wrong.
func (ps ParameterSet) validate() error {
	for _, f := range ps.requiredFields() {
		if f.value == 0 {
			return fmt.Errorf("%w: %s", ErrMissingParameter, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s", ErrNonPositiveParameter, f.name)
		}
	}

	// A prism needs at least three faces to enclose a volume; one or two
	// segments would reach generation and produce degenerate wells.
	if ps.CylinderSegments < 3 {
		return fmt.Errorf("%w: CylinderSegments must be at least 3",
			ErrInfeasibleGeometry)
	}

	// The frame wall must fit between the well edge and the plate edge
	// without intruding into the outermost wells.
	maxFrameWalls := math.Min(ps.WellXOffset, ps.WellYOffset) - ps.WellDiameter/2
	if ps.FrameWallThickness >= maxFrameWalls {
		return fmt.Errorf("%w: FrameWallThickness must be less than %g (the distance between the wells and the edge of the plate)",
			ErrInfeasibleGeometry, maxFrameWalls)
	}

	// The corner guide pin must not overlap the mould clearance region. Both
	// bounds are reported: shrinking the guide offset or the well clearance
	// satisfies the constraint.
	maxGuideOffset := max(ps.WellXOffset, ps.WellYOffset) -
		ps.WellDiameter/2 -
		ps.MouldWellClearance -
		ps.CutterGuideSides -
		ps.FrameWallThickness
	maxWellClearance := ps.MouldWellClearance - maxGuideOffset
	if ps.CutterGuideOffset >= maxGuideOffset {
		return fmt.Errorf("%w: either CutterGuideOffset must be less than %g or MouldWellClearance must be less than %g in order to not overlap",
			ErrInfeasibleGeometry, maxGuideOffset, maxWellClearance)
	}

	return nil
}
