// Package footprint derives the rectangular building envelope from a
// target floor area. The envelope is the coordinate space for all
// downstream zone and fixture placement.
package footprint

import (
	"math"

	"github.com/ChicagoDave/homeplanner/pkg/geo"
)

// Aspect and canvas constants. The width heuristic fixes the envelope
// aspect ratio at aspectScale²/unitFactor (1.44) for every area, so two
// plans that differ only in area are similar rectangles.
const (
	unitFactor  = 100.0
	aspectScale = 12.0

	// CanvasBudget is the drawing-unit length of the envelope's longer
	// side after rescaling.
	CanvasBudget = 100.0

	// OriginX and OriginY anchor the envelope's bottom-left corner,
	// leaving room for openings and labels outside the walls.
	OriginX = 10.0
	OriginY = 10.0
)

// Footprint is the computed building envelope. Width and Height are in
// drawing units; Origin is the bottom-left anchor. Immutable once solved.
type Footprint struct {
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Origin geo.Point `json:"origin"`
}

// Bounds returns the envelope rectangle in absolute coordinates.
func (f Footprint) Bounds() geo.Rect {
	return geo.Rect{X: f.Origin.X, Y: f.Origin.Y, W: f.Width, H: f.Height}
}

// Solve computes the envelope for a target area. Callers must validate
// area > 0 beforehand; Solve never sees invalid input.
func Solve(area float64) Footprint {
	width := math.Sqrt(area/unitFactor) * aspectScale
	height := area / width

	// Rescale so the longer side lands exactly on the canvas budget.
	scale := CanvasBudget / math.Max(width, height)
	width *= scale
	height *= scale

	return Footprint{
		Width:  width,
		Height: height,
		Origin: geo.Pt(OriginX, OriginY),
	}
}
