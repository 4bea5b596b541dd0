package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/platestamper/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	dimGap       = 8.0 // Gap between the plate outline and dimension lines
)

// Schematic writes a one-page PDF drawing of the plate layout: the plate
// outline with the chamfered A1 corner, every well circle at its grid
// position, and length/width dimension lines.
func Schematic(path string, ps model.ParameterSet) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Plate %s: %.2f x %.2f mm, %d x %d wells",
		ps.ID, ps.PlateLength, ps.PlateWidth, ps.Rows, ps.Columns)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	wellShape := "round"
	if ps.SquareWells() {
		wellShape = "square"
	}
	stats := fmt.Sprintf("Well: %.2f mm %s | Spacing: %.2f mm | Offset: (%.2f, %.2f) | Depth: %.2f mm",
		ps.WellDiameter, wellShape, ps.WellSpacing, ps.WellXOffset, ps.WellYOffset, ps.WellDepth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the plate into the drawing area, leaving room for dimension
	// lines above and to the left.
	drawWidth := pageWidth - marginLeft - marginRight - 2*dimGap
	drawHeight := pageHeight - drawAreaTop - marginBottom - 2*dimGap
	scale := drawWidth / ps.PlateLength
	if s := drawHeight / ps.PlateWidth; s < scale {
		scale = s
	}

	plateW := ps.PlateLength * scale
	plateH := ps.PlateWidth * scale
	originX := marginLeft + 2*dimGap + (drawWidth-plateW)/2
	originY := drawAreaTop + 2*dimGap

	drawPlateOutline(pdf, ps, originX, originY, scale)
	drawWellField(pdf, ps, originX, originY, plateH, scale)
	drawDimensions(pdf, originX, originY, plateW, plateH)

	return pdf.OutputFileAndClose(path)
}

// drawPlateOutline draws the plate perimeter with the A1 corner chamfered by
// one well spacing, the conventional orientation mark on a multi-well plate.
func drawPlateOutline(pdf *fpdf.Fpdf, ps model.ParameterSet, x0, y0, scale float64) {
	chamfer := ps.WellSpacing * scale
	w := ps.PlateLength * scale
	h := ps.PlateWidth * scale

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	// The A1 corner sits at the top-left of the drawing; the chamfer skips
	// it with a diagonal.
	pdf.Line(x0+chamfer, y0, x0+w, y0)
	pdf.Line(x0+w, y0, x0+w, y0+h)
	pdf.Line(x0+w, y0+h, x0, y0+h)
	pdf.Line(x0, y0+h, x0, y0+chamfer)
	pdf.Line(x0, y0+chamfer, x0+chamfer, y0)
}

// drawWellField draws one circle (or square) per well. The PDF Y axis points
// down, so well rows are flipped to keep A1 at the top-left.
func drawWellField(pdf *fpdf.Fpdf, ps model.ParameterSet, x0, y0, plateH, scale float64) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	r := ps.WellRadius() * scale
	for _, p := range ps.Grid().Positions() {
		cx := x0 + p.X*scale
		cy := y0 + plateH - p.Y*scale
		if ps.SquareWells() {
			pdf.Rect(cx-r, cy-r, 2*r, 2*r, "D")
		} else {
			pdf.Circle(cx, cy, r, "D")
		}
	}
}

// drawDimensions draws the length and width dimension lines with end ticks
// and labels.
func drawDimensions(pdf *fpdf.Fpdf, x0, y0, plateW, plateH float64) {
	pdf.SetDrawColor(80, 80, 80)
	pdf.SetLineWidth(0.2)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetFont("Helvetica", "B", 8)

	const tick = 1.5

	// Length dimension above the plate
	dy := y0 - dimGap
	pdf.Line(x0, dy, x0+plateW, dy)
	pdf.Line(x0, dy-tick, x0, dy+tick)
	pdf.Line(x0+plateW, dy-tick, x0+plateW, dy+tick)
	pdf.SetXY(x0, dy-5)
	pdf.CellFormat(plateW, 4, "Length", "", 0, "C", false, 0, "")

	// Width dimension left of the plate
	dx := x0 - dimGap
	pdf.Line(dx, y0, dx, y0+plateH)
	pdf.Line(dx-tick, y0, dx+tick, y0)
	pdf.Line(dx-tick, y0+plateH, dx+tick, y0+plateH)
	pdf.TransformBegin()
	pdf.TransformRotate(90, dx-2, y0+plateH/2)
	pdf.SetXY(dx-2-plateH/2, y0+plateH/2-2)
	pdf.CellFormat(plateH, 4, "Width", "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}
