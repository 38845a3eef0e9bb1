package render

import (
	"fmt"
	"io"

	"github.com/solderworks/rpt2paste/pkg/geom"
)

// GCodeOptions are the machine heights and dwell timing for dispensing.
// All heights are millimeters, dwell times milliseconds.
type GCodeOptions struct {
	ZDispense float64 // nozzle height while dispensing
	ZHover    float64 // travel height between pads
	ZRetract  float64 // pull-up height to separate the paste

	MinDwellMS  float64 // dwell floor for the smallest pads
	AreaDwellMS float64 // extra dwell per square millimeter of pad
}

// DefaultGCodeOptions returns timing and heights suited to a syringe
// dispenser on a repurposed 3D printer frame.
func DefaultGCodeOptions() GCodeOptions {
	return GCodeOptions{
		ZDispense:   0.6,
		ZHover:      2,
		ZRetract:    4,
		MinDwellMS:  50,
		AreaDwellMS: 25,
	}
}

// GCodePrinter emits machine-control G-code. The solenoid driving the
// dispenser hangs off the fan output, hence M106/M107 around each dwell.
type GCodePrinter struct {
	w    io.Writer
	opts GCodeOptions
}

// NewGCodePrinter creates a printer writing G-code to w.
func NewGCodePrinter(w io.Writer, opts GCodeOptions) *GCodePrinter {
	return &GCodePrinter{w: w, opts: opts}
}

// Start emits the preamble: millimeter units, feed rates, and a safe
// initial retract. Homing is assumed to have happened already.
func (g *GCodePrinter) Start(min, max geom.Point) error {
	_, err := fmt.Fprintf(g.w,
		"G21\n"+
			"G0 F20000\n"+
			"G1 F4000\n"+
			"G0 Z%g\n",
		g.opts.ZRetract)
	return err
}

// Dwell returns the dispense duration in milliseconds for a pad area.
// Monotonic in area: bigger pads get more paste.
func (g *GCodePrinter) Dwell(area float64) float64 {
	return g.opts.MinDwellMS + area*g.opts.AreaDwellMS
}

// Pad moves above the pad, lowers to dispense height, opens the solenoid
// for the area-dependent dwell and retracts high to tear the paste off.
func (g *GCodePrinter) Pad(p geom.Point, area float64) error {
	_, err := fmt.Fprintf(g.w,
		"G0 X%.3f Y%.3f Z%g\n"+
			"G1 Z%g\n"+
			"M106\n"+
			"G4 P%.1f\n"+
			"M107\n"+
			"G1 Z%g\n",
		p.X, p.Y, g.opts.ZHover,
		g.opts.ZDispense,
		g.Dwell(area),
		g.opts.ZRetract)
	return err
}

// Finish emits the trailing marker.
func (g *GCodePrinter) Finish() error {
	_, err := fmt.Fprintf(g.w, ";done\n")
	return err
}
