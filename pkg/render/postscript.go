package render

import (
	"fmt"
	"io"
	"math"

	"github.com/solderworks/rpt2paste/pkg/geom"
)

const mmToPoint = 72.0 / 25.4

// psMarginMM widens the document bounding box around the outermost pads.
const psMarginMM = 3.0

// PostScriptPrinter draws the plan as a PostScript document: a circle per
// pad sized to its paste area and a thin line tracing the travel path, for
// eyeballing the route before committing paste.
type PostScriptPrinter struct {
	w io.Writer
}

// NewPostScriptPrinter creates a printer writing PostScript to w.
func NewPostScriptPrinter(w io.Writer) *PostScriptPrinter {
	return &PostScriptPrinter{w: w}
}

// Start emits the document header and the pad/move procedures.
func (p *PostScriptPrinter) Start(min, max geom.Point) error {
	minX := (min.X - psMarginMM) * mmToPoint
	minY := (min.Y - psMarginMM) * mmToPoint
	maxX := (max.X + psMarginMM) * mmToPoint
	maxY := (max.Y + psMarginMM) * mmToPoint

	if _, err := fmt.Fprintf(p.w, "%%!PS-Adobe-3.0\n%%%%BoundingBox: %.0f %.0f %.0f %.0f\n",
		minX, minY, maxX, maxY); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w,
		"%% PastePad. Stack: <radius>\n/pp { 1 setlinewidth 0 360 arc stroke } def\n"+
			"%% Move. Stack: <x> <y>\n/m { 0.1 setlinewidth lineto currentpoint stroke } def\n"+
			"0 0 moveto ")
	return err
}

// Pad draws the travel line to the pad and a circle matching its paste area.
func (p *PostScriptPrinter) Pad(pt geom.Point, area float64) error {
	x := pt.X * mmToPoint
	y := pt.Y * mmToPoint
	radius := math.Sqrt(area / math.Pi)
	_, err := fmt.Fprintf(p.w, "%.3f %.3f m %.3f pp \n%.3f %.3f moveto\n",
		x, y, radius, x, y)
	return err
}

// Finish emits the page.
func (p *PostScriptPrinter) Finish() error {
	_, err := fmt.Fprintf(p.w, "showpage\n")
	return err
}
