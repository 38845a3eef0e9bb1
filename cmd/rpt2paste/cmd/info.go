package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solderworks/rpt2paste/pkg/dispense"
	"github.com/solderworks/rpt2paste/pkg/route"
)

var infoCmd = &cobra.Command{
	Use:   "info <report.rpt>",
	Short: "Show pad and travel statistics for a placement report",
	Long: `Parses a placement report and prints what a conversion would
dispense: pad counts, board extent and how much dispenser travel the
route optimization saves over file order.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	collector, err := collectPads(filename)
	if err != nil {
		return err
	}
	pads := collector.Pads()

	fmt.Printf("Report: %s\n", filename)
	fmt.Printf("  Components: %d\n", collector.Components())
	fmt.Printf("  Dispensable pads: %d\n", len(pads))
	fmt.Printf("  Through-hole pads skipped: %d\n", collector.ThroughHole())

	bb, err := dispense.BoundingBox(pads)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	fmt.Printf("  Pad extent: %.2f x %.2f mm\n", bb.Width(), bb.Height())
	fmt.Printf("  Pad extent center: (%.2f, %.2f) mm\n", bb.Center().X, bb.Center().Y)

	points := dispense.Positions(pads)
	fileOrder := make([]int, len(points))
	for i := range fileOrder {
		fileOrder[i] = i
	}
	order := route.Optimize(points)

	before := route.PathLength(points, fileOrder)
	after := route.PathLength(points, order)
	fmt.Printf("  Travel in file order: %.1f mm\n", before)
	fmt.Printf("  Travel optimized: %.1f mm\n", after)
	if before > 0 {
		fmt.Printf("  Travel saved: %.0f%%\n", 100*(before-after)/before)
	}

	return nil
}
