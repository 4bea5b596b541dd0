package model

import "github.com/google/uuid"

// ComponentKind identifies one of the generated tooling geometries.
type ComponentKind string

const (
	ComponentPlate  ComponentKind = "plate"  // Reference copy of the multi-well plate itself
	ComponentInsert ComponentKind = "insert" // Pillar insert that reaches into the wells
	ComponentFrame  ComponentKind = "frame"  // Frame holding the topper above the insert
	ComponentTopper ComponentKind = "topper" // Mould topper that sits on the frame
	ComponentCutter ComponentKind = "cutter" // Ring cutter trimming excess around each well
	ComponentStamp  ComponentKind = "stamp"  // Simplified insert (stamp/mould variant)
	ComponentMould  ComponentKind = "mould"  // Simplified topper (stamp/mould variant)
)

// AdvancedKinds lists the components of the insert/frame/topper/cutter family.
var AdvancedKinds = []ComponentKind{
	ComponentPlate, ComponentInsert, ComponentFrame, ComponentTopper, ComponentCutter,
}

// SimpleKinds lists the components of the stamp/mould family.
var SimpleKinds = []ComponentKind{ComponentPlate, ComponentStamp, ComponentMould}

// Standard SBS-footprint microplate outline in mm. These are the defaults the
// original tooling was designed around; callers override them for
// non-standard plates.
const (
	StandardPlateLength = 127.76
	StandardPlateWidth  = 85.48
	StandardPlateHeight = 13.4
)

// ParameterSet holds every physical measurement and fit modifier the
// generators derive geometry from. All lengths are mm; modifiers are
// dimensionless scale factors applied as base*(1±modifier) so clearances
// scale with part size.
//
// Fill one in (usually starting from DefaultParameters) and pass it to
// NewParameterSet, which validates it once and returns the copy every
// generator consumes. The validated copy is never mutated afterwards.
type ParameterSet struct {
	ID string `json:"id"` // Assigned by NewParameterSet

	// Plate dimensions
	PlateLength float64 `json:"plate_length"` // Long edge of the plate
	PlateWidth  float64 `json:"plate_width"`  // Short edge of the plate
	PlateHeight float64 `json:"plate_height"` // Height of the plate body

	// Well geometry
	WellDiameter float64 `json:"well_diameter"` // Diameter of each well
	WellSpacing  float64 `json:"well_spacing"`  // Centre-to-centre well distance
	WellDepth    float64 `json:"well_depth"`    // Depth of each well
	WellXOffset  float64 `json:"well_x_offset"` // First well centre from the short edge
	WellYOffset  float64 `json:"well_y_offset"` // First well centre from the long edge
	WellZOffset  float64 `json:"well_z_offset"` // Well floor above the plate bottom
	Rows         int     `json:"rows"`
	Columns      int     `json:"columns"`

	// Well rendering
	CuboidWellSize   float64 `json:"cuboid_well_size"`  // >0 switches to square wells of this size
	CylinderSegments int     `json:"cylinder_segments"` // Facets per well cylinder

	// Brim the frame seats on
	BrimExtension float64 `json:"brim_extension"` // Footprint extension per side
	NoBrim        bool    `json:"no_brim"`        // Skip the brim ledge entirely

	// Insert (advanced family)
	InsertBaseHeight    float64 `json:"insert_base_height"`
	InsertDepthModifier float64 `json:"insert_depth_modifier"` // Deepens the insert pillars
	InsertWellModifier  float64 `json:"insert_well_modifier"`  // Shrinks the pillars for clearance

	// Frame
	FrameSlotModifier  float64 `json:"frame_slot_modifier"` // Widens the frame's seating slot
	FrameWallThickness float64 `json:"frame_wall_thickness"`

	// Topper
	TopperWellModifier  float64 `json:"topper_well_modifier"` // Grows the topper holes past the pillars
	TopperSlotModifier  float64 `json:"topper_slot_modifier"` // Loosens the topper's slot in the frame
	TopperDepth         float64 `json:"topper_depth"`         // Mould cavity depth (pad thickness)
	TopperBaseThickness float64 `json:"topper_base_thickness"`
	MouldWellClearance  float64 `json:"mould_well_clearance"` // Cavity margin past the well edges

	// Cutter
	CutterBaseThickness    float64 `json:"cutter_base_thickness"`
	CutterEdgeThickness    float64 `json:"cutter_edge_thickness"` // Annular cutting edge wall
	CutterEdgeLength       float64 `json:"cutter_edge_length"`    // Cutting edge height
	CutterDiameterModifier float64 `json:"cutter_diameter_modifier"` // Shrinks rings vs the topper holes
	CutterGuideSides       float64 `json:"cutter_guide_sides"`       // Square guide pin side length
	CutterGuideLength      float64 `json:"cutter_guide_length"`      // Guide pin height
	CutterGuideOffset      float64 `json:"cutter_guide_offset"`      // Corner inset from the frame wall
	CutterGuideModifier    float64 `json:"cutter_guide_modifier"`    // Shrinks pins to fit the holes

	// Stamp/mould (simple family)
	StampBaseHeight     float64 `json:"stamp_base_height"`
	StampDepthExtension float64 `json:"stamp_depth_extension"` // Extends pillars past the mould
	StampWellModifier   float64 `json:"stamp_well_modifier"`   // Shrinks the stamp pillars
	MouldWellModifier   float64 `json:"mould_well_modifier"`   // Grows the mould holes vs the stamp
	MouldThickness      float64 `json:"mould_thickness"`       // Mould plate = pad thickness
}

// DefaultParameters returns a ParameterSet with the standard plate outline and
// the fit modifiers the tooling was tuned with. Well geometry (diameter,
// spacing, depth, offsets, rows, columns) is left zero and must be supplied.
func DefaultParameters() ParameterSet {
	return ParameterSet{
		PlateLength: StandardPlateLength,
		PlateWidth:  StandardPlateWidth,
		PlateHeight: StandardPlateHeight,
		WellZOffset: 0.29,

		CylinderSegments: 32,

		InsertBaseHeight:    5.0,
		InsertDepthModifier: 0.05,
		InsertWellModifier:  0.05,

		FrameSlotModifier:  0.05,
		FrameWallThickness: 5.0,

		TopperWellModifier:  0.01,
		TopperSlotModifier:  0.05,
		TopperDepth:         0.5,
		TopperBaseThickness: 3.0,
		MouldWellClearance:  1.0,

		CutterBaseThickness:    5.0,
		CutterEdgeThickness:    0.5,
		CutterEdgeLength:       2.0,
		CutterDiameterModifier: 0.05,
		CutterGuideSides:       4.0,
		CutterGuideLength:      8.0,
		CutterGuideOffset:      0.5,
		CutterGuideModifier:    0.025,

		StampBaseHeight:     5.0,
		StampDepthExtension: 1.0,
		StampWellModifier:   0.05,
		MouldWellModifier:   0.01,
		MouldThickness:      2.0,
	}
}

// NewParameterSet validates ps and returns the copy all generators consume.
// Validation runs exactly once, here; generators never re-check. On success
// the square-well override is applied (CuboidWellSize replaces the well
// diameter and the segment count collapses to 4) and a fresh ID is assigned.
func NewParameterSet(ps ParameterSet) (ParameterSet, error) {
	if err := ps.validate(); err != nil {
		return ParameterSet{}, err
	}
	// The feasibility bounds above are checked against the diameter the
	// caller supplied; the square override replaces it only for generation.
	if ps.CuboidWellSize > 0 {
		ps.WellDiameter = ps.CuboidWellSize
		ps.CylinderSegments = 4
	}
	ps.ID = uuid.New().String()[:8]
	return ps, nil
}

// WellRadius returns half the effective well diameter.
func (ps ParameterSet) WellRadius() float64 {
	return ps.WellDiameter / 2
}

// SquareWells reports whether the square-well override is active.
func (ps ParameterSet) SquareWells() bool {
	return ps.CuboidWellSize > 0
}

// Grid returns the well grid described by this parameter set.
func (ps ParameterSet) Grid() WellGrid {
	return WellGrid{
		Rows:    ps.Rows,
		Columns: ps.Columns,
		Spacing: ps.WellSpacing,
		XOffset: ps.WellXOffset,
		YOffset: ps.WellYOffset,
	}
}
