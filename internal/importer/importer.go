// Package importer reads plate definitions from CSV and Excel parameter
// tables. It supports automatic delimiter detection, flexible column mapping,
// and case-insensitive parameter name recognition, so spreadsheets kept by a
// lab can be consumed without reformatting.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/platestamper/internal/model"
)

// ImportResult holds the results of an import operation. Params starts from
// DefaultParameters with each recognized row applied on top; it is NOT
// validated — callers pass it through model.NewParameterSet.
type ImportResult struct {
	Params   model.ParameterSet
	Applied  int // Number of parameter rows applied
	Errors   []string
	Warnings []string
}

// ColumnMapping maps the parameter-name and value columns to their indices.
type ColumnMapping struct {
	Name  int
	Value int
}

// headerAliases maps canonical column roles to their accepted aliases (all
// lowercase).
var headerAliases = map[string][]string{
	"name":  {"parameter", "name", "field", "setting", "param"},
	"value": {"value", "val", "mm", "amount", "measurement"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter that
// produces the most consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. Matching
// is case-insensitive against the known aliases. Returns the mapping and true
// if a header was detected, or the default positional mapping (name first,
// value second) and false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Name: 0, Value: 1}
	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					if role == "name" {
						mapping.Name = i
					} else {
						mapping.Value = i
					}
				}
			}
		}
	}
	return mapping, isHeader
}

// canonical normalizes a parameter name for matching: lowercased with
// spaces, underscores, and hyphens stripped, so "Plate Length",
// "plate_length", and "PlateLength" all resolve to the same field.
func canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, name)
}

// applyParameter sets one named field on ps. It reports whether the name was
// recognized; value parse failure returns an error message instead.
func applyParameter(ps *model.ParameterSet, name, value string) (bool, string) {
	// NoBrim is the only boolean field
	if canonical(name) == "nobrim" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "yes", "1":
			ps.NoBrim = true
		case "false", "no", "0", "":
			ps.NoBrim = false
		default:
			return true, fmt.Sprintf("Invalid NoBrim value '%s'", value)
		}
		return true, ""
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return knownParameter(ps, canonical(name)),
			fmt.Sprintf("Invalid value '%s' for %s", value, name)
	}

	switch canonical(name) {
	case "rows":
		ps.Rows = int(v)
	case "columns", "cols":
		ps.Columns = int(v)
	case "cylindersegments", "segments":
		ps.CylinderSegments = int(v)
	default:
		field := paramField(ps, canonical(name))
		if field == nil {
			return false, ""
		}
		*field = v
	}
	return true, ""
}

// knownParameter reports whether a canonical name resolves to any parameter,
// including the int-typed ones paramField does not cover.
func knownParameter(ps *model.ParameterSet, name string) bool {
	switch name {
	case "rows", "columns", "cols", "cylindersegments", "segments":
		return true
	}
	return paramField(ps, name) != nil
}

// paramField resolves a canonical parameter name to its float field.
func paramField(ps *model.ParameterSet, name string) *float64 {
	switch name {
	case "platelength":
		return &ps.PlateLength
	case "platewidth":
		return &ps.PlateWidth
	case "plateheight":
		return &ps.PlateHeight
	case "welldiameter", "diameter":
		return &ps.WellDiameter
	case "wellspacing", "spacing", "welltowelldistance":
		return &ps.WellSpacing
	case "welldepth":
		return &ps.WellDepth
	case "wellxoffset", "xoffset":
		return &ps.WellXOffset
	case "wellyoffset", "yoffset":
		return &ps.WellYOffset
	case "wellzoffset", "zoffset":
		return &ps.WellZOffset
	case "cuboidwellsize":
		return &ps.CuboidWellSize
	case "brimextension":
		return &ps.BrimExtension
	case "insertbaseheight":
		return &ps.InsertBaseHeight
	case "insertdepthmodifier":
		return &ps.InsertDepthModifier
	case "insertwellmodifier":
		return &ps.InsertWellModifier
	case "frameslotmodifier":
		return &ps.FrameSlotModifier
	case "framewallthickness":
		return &ps.FrameWallThickness
	case "topperwellmodifier":
		return &ps.TopperWellModifier
	case "topperslotmodifier":
		return &ps.TopperSlotModifier
	case "topperdepth":
		return &ps.TopperDepth
	case "topperbasethickness":
		return &ps.TopperBaseThickness
	case "mouldwellclearance":
		return &ps.MouldWellClearance
	case "cutterbasethickness":
		return &ps.CutterBaseThickness
	case "cutteredgethickness":
		return &ps.CutterEdgeThickness
	case "cutteredgelength":
		return &ps.CutterEdgeLength
	case "cutterdiametermodifier":
		return &ps.CutterDiameterModifier
	case "cutterguidesides":
		return &ps.CutterGuideSides
	case "cutterguidelength":
		return &ps.CutterGuideLength
	case "cutterguideoffset":
		return &ps.CutterGuideOffset
	case "cutterguidemodifier":
		return &ps.CutterGuideModifier
	case "stampbaseheight":
		return &ps.StampBaseHeight
	case "stampdepthextension":
		return &ps.StampDepthExtension
	case "stampwellmodifier":
		return &ps.StampWellModifier
	case "mouldwellmodifier":
		return &ps.MouldWellModifier
	case "mouldthickness":
		return &ps.MouldThickness
	}
	return nil
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportFile dispatches on the path's extension: .csv for CSV, .xlsx/.xls
// for Excel.
func ImportFile(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return ImportExcel(path)
	case ".csv", ".txt":
		return ImportCSV(path)
	default:
		return ImportResult{Errors: []string{fmt.Sprintf("Unsupported definition format '%s'", filepath.Ext(path))}}
	}
}

// ImportCSV imports a plate definition from a CSV parameter table. It
// automatically detects the delimiter and the name/value columns.
func ImportCSV(path string) ImportResult {
	result := ImportResult{Params: model.DefaultParameters()}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	return importFromReader(bytes.NewReader(data), delimiter, "Line", result)
}

// ImportCSVFromReader imports a plate definition from a CSV reader with a
// known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{Params: model.DefaultParameters()}
	return importFromReader(reader, delimiter, "Line", result)
}

func importFromReader(reader io.Reader, delimiter rune, rowPrefix string, result ImportResult) ImportResult {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	return importFromRows(records, rowPrefix, result)
}

// ImportExcel imports a plate definition from an Excel file's first sheet.
func ImportExcel(path string) ImportResult {
	result := ImportResult{Params: model.DefaultParameters()}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", result)
}

// importFromRows is the shared import logic for CSV and Excel data: detect
// the header, then apply each name/value row onto the default parameters.
func importFromRows(rows [][]string, rowPrefix string, result ImportResult) ImportResult {
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		name := getCell(row, mapping.Name)
		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing parameter name", rowLabel))
			continue
		}
		value := getCell(row, mapping.Value)

		known, errMsg := applyParameter(&result.Params, name, value)
		if !known {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Unknown parameter '%s', skipping", rowLabel, name))
			continue
		}
		if errMsg != "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", rowLabel, errMsg))
			continue
		}
		result.Applied++
	}

	return result
}
