// Package rpt parses pcbnew placement reports into a stream of component
// and pad events.
package rpt

// EventReceiver consumes the event stream produced by parsing a placement
// report. Position and Orientation carry component placement when no pad is
// open and pad-local values while one is; that distinction is the receiver's
// to make, the parser only reports what it read.
//
// A non-nil error from any method aborts the parse.
type EventReceiver interface {
	StartComponent() error
	EndComponent() error
	StartPad() error
	EndPad() error
	Position(x, y float64) error
	Size(w, h float64) error
	Drill(diameter float64) error
	Orientation(angleDegrees float64) error
}
