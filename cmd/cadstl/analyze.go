package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ysnawara/cad-stl-analyzer/pkg/analysis"
	"github.com/ysnawara/cad-stl-analyzer/pkg/units"
)

var analyzeImperial bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file...]",
	Short: "Report geometry and solid-mass estimates for STL files",
	Long: `Analyze one or more STL files and print bounding-box dimensions
(sorted length >= width >= height), enclosed volume, surface area,
triangle count, a watertightness check and the solid mass for every
material preset. Files that fail to load are reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeImperial, "imperial", false, "Report values in imperial units")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	results, failures := analysis.AnalyzeFiles(args)

	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", failure.Path, failure.Err)
	}

	for _, result := range results {
		printResult(result, analyzeImperial)
	}

	if len(results) == 0 {
		os.Exit(1)
	}
}

func printResult(result analysis.Result, imperial bool) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  CAD ANALYSIS: %s\n", strings.ToUpper(result.Filename))
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("  Dimensions:    %s x %s x %s\n",
		units.FormatDimension(result.Length, imperial),
		units.FormatDimension(result.Width, imperial),
		units.FormatDimension(result.Height, imperial))
	fmt.Printf("  Volume:        %s\n", units.FormatVolume(result.Volume, imperial))
	fmt.Printf("  Surface Area:  %s\n", units.FormatArea(result.SurfaceArea, imperial))
	fmt.Printf("  Triangles:     %d\n", result.TriangleCount)

	watertight := "NO"
	if result.IsWatertight {
		watertight = "YES"
	}
	fmt.Printf("  Watertight:    %s\n", watertight)

	fmt.Println("\n  MASS ESTIMATES (Solid):")
	for _, name := range analysis.MaterialNames() {
		mass := analysis.SolidMass(result, analysis.Materials[name])
		fmt.Printf("    - %-10s: %8.2f g\n", name, mass)
	}
	fmt.Println()
}
