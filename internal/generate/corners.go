package generate

import "github.com/piwi3910/platestamper/internal/model"

// cornerOffsets returns the four symmetric corner positions for a square
// guide feature of the given side length, inset by offset from the edges of
// a footprint of extentX by extentY. The far corners additionally back off
// by the feature's own side so every instance lies inside the footprint.
// Topper guide holes and cutter guide pins both place through here; offset
// already folds in the frame-wall share so the guides sit centred on the
// wall rather than the cavity.
func cornerOffsets(extentX, extentY, offset, side float64) []model.Point2D {
	far := offset + side
	return []model.Point2D{
		{X: offset, Y: offset},
		{X: extentX - far, Y: offset},
		{X: offset, Y: extentY - far},
		{X: extentX - far, Y: extentY - far},
	}
}
