package render

import (
	"math"
	"strings"
	"testing"

	"github.com/solderworks/rpt2paste/pkg/geom"
)

func TestNormalize(t *testing.T) {
	bb := geom.BoundingBox{
		Min: geom.Point{X: 100, Y: 200},
		Max: geom.Point{X: 160, Y: 260},
	}
	offset := geom.Point{X: 50, Y: 50}

	tests := []struct {
		name string
		p    geom.Point
		want geom.Point
	}{
		{
			name: "lowest corner maps to offset at mirrored top",
			p:    geom.Point{X: 100, Y: 200},
			want: geom.Point{X: 50, Y: 110},
		},
		{
			name: "highest y maps to offset",
			p:    geom.Point{X: 160, Y: 260},
			want: geom.Point{X: 110, Y: 50},
		},
		{
			name: "interior point",
			p:    geom.Point{X: 130, Y: 230},
			want: geom.Point{X: 80, Y: 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.p, bb, offset)
			if got.X != tt.want.X || got.Y != tt.want.Y {
				t.Errorf("Normalize(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestGCodePrinter(t *testing.T) {
	var buf strings.Builder
	g := NewGCodePrinter(&buf, DefaultGCodeOptions())

	if err := g.Start(geom.Point{X: 50, Y: 50}, geom.Point{X: 110, Y: 90}); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := g.Pad(geom.Point{X: 60.5, Y: 70.25}, 2); err != nil {
		t.Fatalf("Pad() error: %v", err)
	}
	if err := g.Finish(); err != nil {
		t.Fatalf("Finish() error: %v", err)
	}

	out := buf.String()
	wantContain := []string{
		"G21\n",                      // millimeter units
		"G0 F20000\n",                // rapid feed rate
		"G0 X60.500 Y70.250 Z2\n",    // hover above the pad
		"G1 Z0.6\n",                  // dispense height
		"M106\n",                     // solenoid on
		"G4 P100.0\n",                // 50 + 2 mm^2 * 25 ms
		"M107\n",                     // solenoid off
		"G1 Z4\n",                    // retract
		";done\n",
	}
	for _, want := range wantContain {
		if !strings.Contains(out, want) {
			t.Errorf("G-code output missing %q\nGot:\n%s", want, out)
		}
	}
}

func TestGCodeDwellMonotonic(t *testing.T) {
	g := NewGCodePrinter(&strings.Builder{}, DefaultGCodeOptions())

	last := -1.0
	for _, area := range []float64{0, 0.5, 1, 2, 8} {
		dwell := g.Dwell(area)
		if dwell <= last {
			t.Fatalf("dwell %v for area %v not greater than %v", dwell, area, last)
		}
		last = dwell
	}
	if g.Dwell(0) != DefaultGCodeOptions().MinDwellMS {
		t.Errorf("zero-area dwell = %v, want the floor %v", g.Dwell(0), DefaultGCodeOptions().MinDwellMS)
	}
}

func TestPostScriptPrinter(t *testing.T) {
	var buf strings.Builder
	p := NewPostScriptPrinter(&buf)

	if err := p.Start(geom.Point{X: 50, Y: 50}, geom.Point{X: 75.4, Y: 75.4}); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := p.Pad(geom.Point{X: 25.4, Y: 50.8}, math.Pi); err != nil {
		t.Fatalf("Pad() error: %v", err)
	}
	if err := p.Finish(); err != nil {
		t.Fatalf("Finish() error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%!PS-Adobe-3.0\n") {
		t.Errorf("output does not start with PostScript header:\n%s", out)
	}
	wantContain := []string{
		"%%BoundingBox: 133 133 222 222\n", // (50-3)*72/25.4 ... (75.4+3)*72/25.4
		"/pp {",
		"/m {",
		"72.000 144.000 m 1.000 pp \n", // 25.4mm = 72pt, radius sqrt(pi/pi) = 1
		"showpage\n",
	}
	for _, want := range wantContain {
		if !strings.Contains(out, want) {
			t.Errorf("PostScript output missing %q\nGot:\n%s", want, out)
		}
	}
}
