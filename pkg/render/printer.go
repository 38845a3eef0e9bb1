// Package render turns an ordered dispensing plan into an output document.
// Two strategies exist: machine-control G-code and a PostScript preview.
// Which one runs is the caller's choice; the pipeline core only hands over
// pads and their bounding box.
package render

import (
	"github.com/solderworks/rpt2paste/pkg/geom"
)

// Printer renders one dispensing plan. Start receives the dispense area
// corners in output units, Pad is called once per stop in visiting order.
type Printer interface {
	Start(min, max geom.Point) error
	Pad(p geom.Point, area float64) error
	Finish() error
}

// Normalize maps a pad position into machine coordinates: X relative to the
// smallest X plus the configured margin, Y mirrored at the largest Y. The
// mirroring matches how coordinates come out of the report frame.
func Normalize(p geom.Point, bb geom.BoundingBox, offset geom.Point) geom.Point {
	return geom.Point{
		X: p.X - bb.Min.X + offset.X,
		Y: bb.Max.Y - p.Y + offset.Y,
	}
}
