package dispense

import (
	"fmt"
	"math"

	"github.com/solderworks/rpt2paste/pkg/geom"
)

type state int

const (
	stateIdle        state = iota // no open component
	stateInComponent              // component open, no pad open
	stateInPad                    // pad open within a component
)

// Collector materializes pads from the report event stream. It tracks the
// enclosing component's placement, transforms pad offsets into the global
// frame and keeps only surface-mount pads; through-hole pads (nonzero drill)
// are dropped on pad end.
//
// Collector implements rpt.EventReceiver.
type Collector struct {
	cfg Config

	st  state
	ctx ComponentContext
	cur *Pad

	pads []Pad

	components  int
	throughHole int
}

// NewCollector creates a collector for one conversion run.
func NewCollector(cfg Config) *Collector {
	return &Collector{cfg: cfg}
}

// Pads returns the accepted pads in the order they were read.
func (c *Collector) Pads() []Pad {
	return c.pads
}

// Components returns the number of components seen.
func (c *Collector) Components() int {
	return c.components
}

// ThroughHole returns the number of pads dropped for having a drill.
func (c *Collector) ThroughHole() int {
	return c.throughHole
}

// StartComponent opens a fresh component context. Placement events arriving
// before the first pad describe the component itself.
func (c *Collector) StartComponent() error {
	switch c.st {
	case stateInPad:
		return fmt.Errorf("component start while pad open")
	case stateInComponent:
		return fmt.Errorf("component start while component open")
	}
	c.st = stateInComponent
	c.ctx = ComponentContext{}
	c.components++
	return nil
}

// EndComponent closes the current component.
func (c *Collector) EndComponent() error {
	switch c.st {
	case stateIdle:
		return fmt.Errorf("component end without component start")
	case stateInPad:
		return fmt.Errorf("component end while pad open")
	}
	c.st = stateIdle
	return nil
}

// StartPad opens a new pad within the current component.
func (c *Collector) StartPad() error {
	switch c.st {
	case stateIdle:
		return fmt.Errorf("pad start outside component")
	case stateInPad:
		return fmt.Errorf("pad start while pad open")
	}
	c.st = stateInPad
	c.cur = &Pad{}
	return nil
}

// EndPad finalizes the open pad: through-hole pads are discarded, the rest
// join the accepted list.
func (c *Collector) EndPad() error {
	if c.st != stateInPad {
		return fmt.Errorf("pad end without pad start")
	}
	if c.cur.Drill != 0 {
		c.throughHole++
	} else {
		c.pads = append(c.pads, *c.cur)
	}
	c.cur = nil
	c.st = stateInComponent
	return nil
}

// Position sets the pad's global position while a pad is open, the component
// origin otherwise. The component origin is stored verbatim; scaling happens
// once, at the pad transform.
func (c *Collector) Position(x, y float64) error {
	switch c.st {
	case stateInPad:
		c.cur.Position = Transform(geom.Point{X: x, Y: y}, c.ctx, c.cfg.Scale)
	case stateInComponent:
		c.ctx.Origin = geom.Point{X: x, Y: y}
	}
	return nil
}

// Size records the pad's paste footprint area. Outside a pad it describes a
// field the dispenser does not use.
func (c *Collector) Size(w, h float64) error {
	if c.st != stateInPad {
		return nil
	}
	c.cur.Area = w * h * c.cfg.Scale * c.cfg.Scale
	return nil
}

// Drill records the pad's drill diameter.
func (c *Collector) Drill(diameter float64) error {
	if c.st != stateInPad {
		return nil
	}
	c.cur.Drill = diameter
	return nil
}

// Orientation sets the component rotation. The report angle is in degrees
// and turns in the opposite direction from the output frame, so the stored
// rotation is negated. That sign is a fixed convention of the report format;
// do not "correct" it without evidence from real report files.
func (c *Collector) Orientation(angleDegrees float64) error {
	if c.st != stateInComponent {
		return nil
	}
	c.ctx.Rotation = -math.Pi * angleDegrees / 180.0
	return nil
}
