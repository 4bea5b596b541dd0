package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/platestamper/internal/model"
)

// WellName returns the conventional plate well name for a zero-based grid
// cell: lettered rows and numbered columns, A1 in the corner. Rows past Z
// double the letter (AA, AB, ...), as on 1536-well plates.
func WellName(row, col int) string {
	letters := ""
	r := row
	for {
		letters = string(rune('A'+r%26)) + letters
		r = r/26 - 1
		if r < 0 {
			break
		}
	}
	return fmt.Sprintf("%s%d", letters, col+1)
}

// Coordinates writes an XLSX workbook with one row per well (name and centre
// position) plus a sheet of the parameters the grid was derived from, for
// bench protocols that consume well positions directly.
func Coordinates(path string, ps model.ParameterSet) error {
	f := excelize.NewFile()
	defer f.Close()

	const wellSheet = "Wells"
	if err := f.SetSheetName("Sheet1", wellSheet); err != nil {
		return fmt.Errorf("export: renaming sheet: %w", err)
	}

	headers := []string{"Well", "Row", "Column", "X (mm)", "Y (mm)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(wellSheet, cell, h); err != nil {
			return fmt.Errorf("export: writing header: %w", err)
		}
	}

	grid := ps.Grid()
	positions := grid.Positions()
	for i, p := range positions {
		row := i / grid.Columns
		col := i % grid.Columns
		values := []interface{}{WellName(row, col), row + 1, col + 1, p.X, p.Y}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(wellSheet, cell, v); err != nil {
				return fmt.Errorf("export: writing well %s: %w", WellName(row, col), err)
			}
		}
	}

	if err := writeParameterSheet(f, ps); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// writeParameterSheet adds a name/value sheet of the key plate parameters.
func writeParameterSheet(f *excelize.File, ps model.ParameterSet) error {
	const sheet = "Parameters"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export: adding parameter sheet: %w", err)
	}

	rows := []struct {
		name  string
		value interface{}
	}{
		{"Config ID", ps.ID},
		{"Plate Length", ps.PlateLength},
		{"Plate Width", ps.PlateWidth},
		{"Plate Height", ps.PlateHeight},
		{"Well Diameter", ps.WellDiameter},
		{"Well Spacing", ps.WellSpacing},
		{"Well Depth", ps.WellDepth},
		{"Well X Offset", ps.WellXOffset},
		{"Well Y Offset", ps.WellYOffset},
		{"Rows", ps.Rows},
		{"Columns", ps.Columns},
	}
	for i, r := range rows {
		nameCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(sheet, nameCell, r.name); err != nil {
			return fmt.Errorf("export: writing parameter %s: %w", r.name, err)
		}
		if err := f.SetCellValue(sheet, valueCell, r.value); err != nil {
			return fmt.Errorf("export: writing parameter %s: %w", r.name, err)
		}
	}
	return nil
}
