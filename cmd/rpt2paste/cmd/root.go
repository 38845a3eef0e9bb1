package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	scale   float64
	offsetX float64
	offsetY float64
	output  string
)

var rootCmd = &cobra.Command{
	Use:   "rpt2paste",
	Short: "Turn pcbnew placement reports into solder paste dispensing plans",
	Long: `rpt2paste reads a pcbnew placement report (.rpt), collects the
surface-mount pads, orders them for short dispenser travel and renders
the result as machine G-code or a PostScript preview.

Examples:
  rpt2paste gcode board.rpt -o board.gcode   # dispensing G-code
  rpt2paste postscript board.rpt             # route preview to stdout
  rpt2paste info board.rpt                   # pad and travel statistics`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&scale, "scale", 25.4, "source unit scale factor (25.4 = inches to mm)")
	rootCmd.PersistentFlags().Float64Var(&offsetX, "offset-x", 50, "dispense area X origin in mm")
	rootCmd.PersistentFlags().Float64Var(&offsetY, "offset-y", 50, "dispense area Y origin in mm")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
}
