package generate

import (
	"github.com/piwi3910/platestamper/internal/csg"
	"github.com/piwi3910/platestamper/internal/model"
)

// scatter returns one copy of the prototype feature per grid cell, each
// translated by the cell's offset from the first well. The prototype already
// carries the first well's position, so cell (0,0) is the prototype itself.
func scatter(proto csg.Solid, grid model.WellGrid) []csg.Solid {
	features := make([]csg.Solid, 0, grid.Count())
	for _, off := range grid.Offsets() {
		features = append(features, csg.Translate(proto, off.X, off.Y, 0))
	}
	return features
}

// subtractWells removes one well feature per grid cell from base.
func subtractWells(base csg.Solid, proto csg.Solid, grid model.WellGrid) csg.Solid {
	return csg.Subtract(base, scatter(proto, grid)...)
}

// addWells unions one well feature per grid cell onto base.
func addWells(base csg.Solid, proto csg.Solid, grid model.WellGrid) csg.Solid {
	return csg.Add(base, scatter(proto, grid)...)
}
