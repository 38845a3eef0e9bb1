package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/solderworks/rpt2paste/pkg/dispense"
	"github.com/solderworks/rpt2paste/pkg/geom"
	"github.com/solderworks/rpt2paste/pkg/render"
	"github.com/solderworks/rpt2paste/pkg/route"
	"github.com/solderworks/rpt2paste/pkg/rpt"
)

var gcodeCmd = &cobra.Command{
	Use:   "gcode <report.rpt>",
	Short: "Render the dispensing plan as machine G-code",
	Long: `Reads a placement report and writes G-code that visits every
surface-mount pad, opening the dispenser solenoid for a dwell time
proportional to the pad's paste area.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], func(w io.Writer) render.Printer {
			return render.NewGCodePrinter(w, render.DefaultGCodeOptions())
		})
	},
}

var postscriptCmd = &cobra.Command{
	Use:   "postscript <report.rpt>",
	Short: "Render the dispensing plan as a PostScript preview",
	Long: `Reads a placement report and writes a PostScript document showing
each pad as a circle sized to its paste deposit, connected by the
dispenser travel path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], func(w io.Writer) render.Printer {
			return render.NewPostScriptPrinter(w)
		})
	},
}

func init() {
	rootCmd.AddCommand(gcodeCmd)
	rootCmd.AddCommand(postscriptCmd)
}

// collectPads parses the report and returns the accepted pad list.
func collectPads(filename string) (*dispense.Collector, error) {
	collector := dispense.NewCollector(dispense.Config{Scale: scale})
	if err := rpt.ParseFile(filename, collector); err != nil {
		return nil, fmt.Errorf("error parsing report %s: %w", filename, err)
	}
	return collector, nil
}

func runConvert(filename string, newPrinter func(io.Writer) render.Printer) error {
	collector, err := collectPads(filename)
	if err != nil {
		return err
	}
	pads := collector.Pads()

	bb, err := dispense.BoundingBox(pads)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	order := route.Optimize(dispense.Positions(pads))

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("error creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	offset := geom.Point{X: offsetX, Y: offsetY}
	printer := newPrinter(out)

	if err := printer.Start(offset, geom.Point{X: bb.Width() + offsetX, Y: bb.Height() + offsetY}); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	for _, idx := range order {
		pad := pads[idx]
		if err := printer.Pad(render.Normalize(pad.Position, bb, offset), pad.Area); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}
	if err := printer.Finish(); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Dispensed %d pads.\n", len(pads))
	return nil
}
