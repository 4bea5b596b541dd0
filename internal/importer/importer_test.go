package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "WellDiameter,6.4\nWellSpacing,9.0\n", ','},
		{"semicolon", "WellDiameter;6.4\nWellSpacing;9.0\n", ';'},
		{"tab", "WellDiameter\t6.4\nWellSpacing\t9.0\n", '\t'},
		{"pipe", "WellDiameter|6.4\nWellSpacing|9.0\n", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCSVDelimiter([]byte(tt.data)))
		})
	}
}

func TestDetectColumns(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Parameter", "Value"})
	assert.True(t, isHeader)
	assert.Equal(t, 0, mapping.Name)
	assert.Equal(t, 1, mapping.Value)

	// Reversed column order still maps correctly.
	mapping, isHeader = DetectColumns([]string{"Value", "Name"})
	assert.True(t, isHeader)
	assert.Equal(t, 1, mapping.Name)
	assert.Equal(t, 0, mapping.Value)

	// A data row is not a header; positional mapping applies.
	mapping, isHeader = DetectColumns([]string{"WellDiameter", "6.4"})
	assert.False(t, isHeader)
	assert.Equal(t, 0, mapping.Name)
	assert.Equal(t, 1, mapping.Value)
}

func TestImportCSVAppliesParameters(t *testing.T) {
	path := writeTemp(t, "plate.csv", strings.Join([]string{
		"Parameter,Value",
		"WellDiameter,6.4",
		"WellSpacing,9.0",
		"WellDepth,10.9",
		"WellXOffset,14.38",
		"WellYOffset,11.24",
		"Rows,8",
		"Columns,12",
	}, "\n"))

	result := ImportCSV(path)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 7, result.Applied)
	assert.Equal(t, 6.4, result.Params.WellDiameter)
	assert.Equal(t, 9.0, result.Params.WellSpacing)
	assert.Equal(t, 8, result.Params.Rows)
	assert.Equal(t, 12, result.Params.Columns)
	// Unset fields keep their defaults.
	assert.Equal(t, 127.76, result.Params.PlateLength)
}

func TestImportCSVNameAliases(t *testing.T) {
	path := writeTemp(t, "plate.csv", strings.Join([]string{
		"diameter,6.4",
		"well to well distance,9.0",
		"x offset,14.38",
		"y_offset,11.24",
		"cols,12",
	}, "\n"))

	result := ImportCSV(path)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 6.4, result.Params.WellDiameter)
	assert.Equal(t, 9.0, result.Params.WellSpacing)
	assert.Equal(t, 14.38, result.Params.WellXOffset)
	assert.Equal(t, 11.24, result.Params.WellYOffset)
	assert.Equal(t, 12, result.Params.Columns)
}

func TestImportCSVNoBrim(t *testing.T) {
	path := writeTemp(t, "plate.csv", "NoBrim,yes\n")
	result := ImportCSV(path)
	assert.Empty(t, result.Errors)
	assert.True(t, result.Params.NoBrim)

	path = writeTemp(t, "plate2.csv", "no_brim,maybe\n")
	result = ImportCSV(path)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "NoBrim")
}

func TestImportCSVUnknownParameterWarns(t *testing.T) {
	path := writeTemp(t, "plate.csv", "WellDiameter,6.4\nLidHeight,3.0\n")
	result := ImportCSV(path)

	assert.Empty(t, result.Errors)
	assert.Equal(t, 1, result.Applied)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[len(result.Warnings)-1], "LidHeight")
}

func TestImportCSVBadValue(t *testing.T) {
	path := writeTemp(t, "plate.csv", "WellDiameter,six point four\n")
	result := ImportCSV(path)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "six point four")
	assert.Zero(t, result.Applied)
}

// An unparsable value for an int-typed parameter is an invalid-value error,
// not an unknown-parameter warning.
func TestImportCSVBadIntValue(t *testing.T) {
	path := writeTemp(t, "plate.csv", "Rows,eight\nsegments,many\n")
	result := ImportCSV(path)

	assert.Empty(t, result.Warnings)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "eight")
	assert.Contains(t, result.Errors[1], "many")
	assert.Zero(t, result.Applied)
}

func TestImportCSVSemicolonDelimiterWarns(t *testing.T) {
	path := writeTemp(t, "plate.csv", "WellDiameter;6.4\nWellSpacing;9.0\n")
	result := ImportCSV(path)

	assert.Empty(t, result.Errors)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "semicolon")
	assert.Equal(t, 6.4, result.Params.WellDiameter)
}

func TestImportCSVEmptyFile(t *testing.T) {
	path := writeTemp(t, "plate.csv", "  \n")
	result := ImportCSV(path)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "empty")
}

func TestImportCSVFromReader(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("WellDiameter;6.4\n"), ';')
	assert.Empty(t, result.Errors)
	assert.Equal(t, 6.4, result.Params.WellDiameter)
}

func TestImportFileUnsupportedExtension(t *testing.T) {
	result := ImportFile("plate.pdf")
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], ".pdf")
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "platelength", canonical("Plate Length"))
	assert.Equal(t, "platelength", canonical("plate_length"))
	assert.Equal(t, "platelength", canonical("PLATE-LENGTH"))
	assert.Equal(t, "welldiameter", canonical("  Well Diameter  "))
}
