package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ysnawara/cad-stl-analyzer/pkg/analysis"
	"github.com/ysnawara/cad-stl-analyzer/pkg/units"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [file...]",
	Short: "Estimate print mass and print time for STL files",
	Long: `Estimate the as-printed mass (shell/infill decomposition) and print
duration of one or more STL files under the given print settings.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	addPrintFlags(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) {
	opts, err := exportOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	results, failures := analysis.AnalyzeFiles(args)
	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", failure.Path, failure.Err)
	}

	fmt.Printf("Print settings: %s @ %.0f%% infill, %d walls, %.2f mm layers, %.0f mm/s\n\n",
		opts.Material, opts.Config.InfillPercent, opts.Config.WallCount,
		opts.Config.LayerHeight, opts.Config.PrintSpeed)

	for _, result := range results {
		solid := analysis.SolidMass(result, opts.Config.Density)
		printMass := analysis.PrintMass(result, opts.Config)
		printTime := analysis.PrintTime(result, opts.Config)

		fmt.Printf("%s\n", result.Filename)
		fmt.Printf("  Volume:      %s\n", units.FormatVolume(result.Volume, opts.Imperial))
		fmt.Printf("  Solid mass:  %s\n", units.FormatMass(solid))
		fmt.Printf("  Print mass:  %s\n", units.FormatMass(printMass))
		fmt.Printf("  Print time:  %s\n\n", units.FormatDuration(printTime))
	}

	if len(results) == 0 {
		os.Exit(1)
	}
}
