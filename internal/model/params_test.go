package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// params96 returns a complete parameter set for a standard 96-well plate.
func params96() ParameterSet {
	ps := DefaultParameters()
	ps.WellDiameter = 6.4
	ps.WellSpacing = 9.0
	ps.WellDepth = 10.9
	ps.WellXOffset = 14.38
	ps.WellYOffset = 11.24
	ps.Rows = 8
	ps.Columns = 12
	return ps
}

func TestNewParameterSetValid(t *testing.T) {
	ps, err := NewParameterSet(params96())
	require.NoError(t, err)

	assert.Len(t, ps.ID, 8)
	assert.Equal(t, 6.4, ps.WellDiameter)
	assert.Equal(t, 3.2, ps.WellRadius())
	assert.False(t, ps.SquareWells())
	assert.Equal(t, 32, ps.CylinderSegments)
}

func TestNewParameterSetAssignsFreshID(t *testing.T) {
	a, err := NewParameterSet(params96())
	require.NoError(t, err)
	b, err := NewParameterSet(params96())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewParameterSetMissingField(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(*ParameterSet)
	}{
		{"WellDiameter", func(ps *ParameterSet) { ps.WellDiameter = 0 }},
		{"WellSpacing", func(ps *ParameterSet) { ps.WellSpacing = 0 }},
		{"WellDepth", func(ps *ParameterSet) { ps.WellDepth = 0 }},
		{"Rows", func(ps *ParameterSet) { ps.Rows = 0 }},
		{"Columns", func(ps *ParameterSet) { ps.Columns = 0 }},
		{"PlateHeight", func(ps *ParameterSet) { ps.PlateHeight = 0 }},
		{"TopperSlotModifier", func(ps *ParameterSet) { ps.TopperSlotModifier = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := params96()
			tt.tweak(&ps)
			_, err := NewParameterSet(ps)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingParameter))
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestNewParameterSetNegativeField(t *testing.T) {
	ps := params96()
	ps.WellDepth = -1

	_, err := NewParameterSet(ps)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonPositiveParameter))
	assert.Contains(t, err.Error(), "WellDepth")
}

// Zero is a valid value for the fit modifiers: they encode "no adjustment",
// not "unset".
func TestNewParameterSetZeroModifiersAllowed(t *testing.T) {
	ps := params96()
	ps.InsertDepthModifier = 0
	ps.InsertWellModifier = 0
	ps.TopperWellModifier = 0
	ps.FrameSlotModifier = 0
	ps.CutterDiameterModifier = 0
	ps.CutterGuideModifier = 0
	ps.StampDepthExtension = 0
	ps.StampWellModifier = 0
	ps.MouldWellModifier = 0
	ps.BrimExtension = 0

	_, err := NewParameterSet(ps)
	assert.NoError(t, err)
}

// Segment counts below 3 cannot form a prism; they must be rejected here
// rather than reaching the generators.
func TestNewParameterSetRejectsDegenerateSegments(t *testing.T) {
	for _, segments := range []int{1, 2} {
		ps := params96()
		ps.CylinderSegments = segments
		_, err := NewParameterSet(ps)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInfeasibleGeometry))
		assert.Contains(t, err.Error(), "CylinderSegments")
	}

	ps := params96()
	ps.CylinderSegments = 3
	_, err := NewParameterSet(ps)
	assert.NoError(t, err)
}

func TestNewParameterSetFrameWallTooThick(t *testing.T) {
	ps := params96()
	ps.FrameWallThickness = 50.0

	_, err := NewParameterSet(ps)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInfeasibleGeometry))
	// min(14.38, 11.24) - 6.4/2 = 8.04
	assert.Contains(t, err.Error(), "FrameWallThickness must be less than 8.04")
}

func TestNewParameterSetGuideOverlapsClearance(t *testing.T) {
	ps := params96()
	ps.CutterGuideOffset = 2.0 // bound is 14.38 - 3.2 - 1.0 - 4.0 - 5.0 = 1.18

	_, err := NewParameterSet(ps)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInfeasibleGeometry))
	assert.Contains(t, err.Error(), "CutterGuideOffset must be less than 1.18")
	assert.Contains(t, err.Error(), "MouldWellClearance")
}

// The feasibility bounds are evaluated against the round diameter; the square
// override only replaces it afterwards.
func TestNewParameterSetSquareOverride(t *testing.T) {
	ps := params96()
	ps.CuboidWellSize = 5.0

	out, err := NewParameterSet(ps)
	require.NoError(t, err)
	assert.True(t, out.SquareWells())
	assert.Equal(t, 5.0, out.WellDiameter)
	assert.Equal(t, 4, out.CylinderSegments)
}

func TestDefaultParametersOutline(t *testing.T) {
	ps := DefaultParameters()

	assert.Equal(t, 127.76, ps.PlateLength)
	assert.Equal(t, 85.48, ps.PlateWidth)
	assert.Equal(t, 13.4, ps.PlateHeight)
	// Well geometry has no sensible default and must be supplied.
	assert.Zero(t, ps.WellDiameter)
	assert.Zero(t, ps.Rows)
}
