package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ysnawara/cad-stl-analyzer/pkg/analysis"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the material presets and their densities",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Material presets (density in g/cm³):")
		for _, name := range analysis.MaterialNames() {
			fmt.Printf("  %-10s %.2f\n", name, analysis.Materials[name])
		}
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
