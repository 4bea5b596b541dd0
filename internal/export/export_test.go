package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/platestamper/internal/csg"
	"github.com/piwi3910/platestamper/internal/model"
)

func testParams(t *testing.T) model.ParameterSet {
	t.Helper()
	ps := model.DefaultParameters()
	ps.WellDiameter = 6.4
	ps.WellSpacing = 9.0
	ps.WellDepth = 10.9
	ps.WellXOffset = 14.38
	ps.WellYOffset = 11.24
	ps.Rows = 8
	ps.Columns = 12
	out, err := model.NewParameterSet(ps)
	require.NoError(t, err)
	return out
}

func TestSolidWritesSCADByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "insert.scad")

	err := Solid(csg.NewBox(10, 20, 30, false), path, Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cube(size = [10, 20, 30]);\n", string(data))
}

func TestSolidExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "insert.SCAD")

	err := Solid(csg.NewBox(1, 1, 1, false), path, Options{})
	require.NoError(t, err)
	// The extension is stripped and re-added lowercase.
	_, err = os.Stat(filepath.Join(dir, "insert.scad"))
	assert.NoError(t, err)
}

func TestSolidNoFormat(t *testing.T) {
	err := Solid(csg.NewBox(1, 1, 1, false), filepath.Join(t.TempDir(), "insert"), Options{})
	assert.ErrorIs(t, err, ErrNoFormat)
}

func TestSolidSCADFlagWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame")

	err := Solid(csg.NewBox(1, 1, 1, false), path, Options{SCAD: true})
	require.NoError(t, err)
	_, err = os.Stat(path + ".scad")
	assert.NoError(t, err)
}

func TestSolidSTLRequiresOpenSCADPath(t *testing.T) {
	err := Solid(csg.NewBox(1, 1, 1, false), filepath.Join(t.TempDir(), "insert.stl"), Options{})
	assert.ErrorIs(t, err, ErrOpenSCADNotSet)
}

func TestSolidSTLConversionFailure(t *testing.T) {
	dir := t.TempDir()
	err := Solid(csg.NewBox(1, 1, 1, false), filepath.Join(dir, "insert.stl"),
		Options{OpenSCADPath: filepath.Join(dir, "no-such-openscad")})
	assert.ErrorIs(t, err, ErrConversionFailed)
}

func TestWellName(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "A1"},
		{0, 11, "A12"},
		{7, 0, "H1"},
		{7, 11, "H12"},
		{25, 0, "Z1"},
		{26, 0, "AA1"},
		{27, 3, "AB4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WellName(tt.row, tt.col))
	}
}

func TestCoordinatesWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wells.xlsx")
	err := Coordinates(path, testParams(t))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSchematicWritesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.pdf")
	err := Schematic(path, testParams(t))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestDXFSchematicWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.dxf")
	err := DXFSchematic(path, testParams(t))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestLabelsRequireComponents(t *testing.T) {
	err := Labels(filepath.Join(t.TempDir(), "labels.pdf"), testParams(t), nil)
	assert.Error(t, err)
}

func TestLabelsWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	err := Labels(path, testParams(t), model.AdvancedKinds)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
