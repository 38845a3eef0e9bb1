package dispense

import (
	"errors"

	"github.com/solderworks/rpt2paste/pkg/geom"
)

// DefaultScale converts the report's inch coordinates to millimeters.
const DefaultScale = 25.4

// ErrNoPads reports that a plan has no dispensable pads. Rendering an empty
// plan is never meaningful, so callers check for this before going on.
var ErrNoPads = errors.New("no dispensable pads")

// Pad is a single solder-paste deposit target.
type Pad struct {
	Position geom.Point // global frame, scaled units
	Area     float64    // paste footprint area, scaled units squared
	Drill    float64    // nonzero marks a through-hole pad
}

// Config carries the settings for one conversion run.
type Config struct {
	Scale float64 // source linear units to output units
}

// DefaultConfig returns the settings matching stock pcbnew reports.
func DefaultConfig() Config {
	return Config{Scale: DefaultScale}
}

// ComponentContext is the placement of the component whose pads are being
// read: its board position and its rotation in radians.
type ComponentContext struct {
	Origin   geom.Point
	Rotation float64
}

// Transform maps a pad's component-local offset into the global frame:
// rotate by the component rotation, translate to the component origin, then
// apply the linear unit scale.
func Transform(local geom.Point, ctx ComponentContext, scale float64) geom.Point {
	return geom.Scale(scale, geom.Translate(geom.Rotate(local, ctx.Rotation), ctx.Origin))
}

// BoundingBox reduces the accepted pad list to its overall extent.
// Returns ErrNoPads for an empty list.
func BoundingBox(pads []Pad) (geom.BoundingBox, error) {
	if len(pads) == 0 {
		return geom.BoundingBox{}, ErrNoPads
	}
	bb := geom.NewBoundingBox()
	for _, pad := range pads {
		bb.Expand(pad.Position)
	}
	return bb, nil
}

// Positions extracts the pad positions in list order.
func Positions(pads []Pad) []geom.Point {
	points := make([]geom.Point, len(pads))
	for i, pad := range pads {
		points[i] = pad.Position
	}
	return points
}
