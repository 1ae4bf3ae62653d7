package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ysnawara/cad-stl-analyzer/version"
)

var rootCmd = &cobra.Command{
	Use:   "cadstl",
	Short: "Analyze STL files for dimensions, volume and print cost estimates",
	Long: `cadstl inspects STL (Stereolithography) files and reports bounding-box
dimensions, enclosed volume, surface area and a watertightness check.
On top of the geometry it estimates material mass and print time for
additive manufacturing, using configurable material and print settings.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
