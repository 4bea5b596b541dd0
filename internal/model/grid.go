package model

// Point2D represents a 2D coordinate in mm.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WellGrid describes the rectangular array of well centres on a plate.
// It is a cheap derived value; recompute it rather than caching it.
type WellGrid struct {
	Rows    int     `json:"rows"`
	Columns int     `json:"columns"`
	Spacing float64 `json:"spacing"`   // Centre-to-centre distance
	XOffset float64 `json:"x_offset"`  // First well centre from the short edge
	YOffset float64 `json:"y_offset"`  // First well centre from the long edge
}

// Count returns the number of wells in the grid.
func (g WellGrid) Count() int {
	return g.Rows * g.Columns
}

// Positions returns the centre of every well in row-major order (row outer,
// column inner). The order only matters for reproducible output; downstream
// unions and differences are order-independent.
func (g WellGrid) Positions() []Point2D {
	positions := make([]Point2D, 0, g.Count())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			positions = append(positions, Point2D{
				X: g.XOffset + float64(col)*g.Spacing,
				Y: g.YOffset + float64(row)*g.Spacing,
			})
		}
	}
	return positions
}

// Offsets returns each well's translation relative to the first well, in the
// same row-major order as Positions. Generators place one prototype well
// feature at the grid origin and repeat it at these offsets.
func (g WellGrid) Offsets() []Point2D {
	offsets := make([]Point2D, 0, g.Count())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			offsets = append(offsets, Point2D{
				X: float64(col) * g.Spacing,
				Y: float64(row) * g.Spacing,
			})
		}
	}
	return offsets
}
