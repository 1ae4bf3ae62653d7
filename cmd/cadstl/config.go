package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ysnawara/cad-stl-analyzer/pkg/analysis"
	"github.com/ysnawara/cad-stl-analyzer/pkg/export"
)

// Print-setting flags shared by the estimate, export and watch commands.
var (
	flagImperial        bool
	flagMaterial        string
	flagInfill          float64
	flagWallCount       int
	flagWallWidth       float64
	flagLayerHeight     float64
	flagTopBottomLayers int
	flagPrintSpeed      float64
	flagTravelSpeed     float64
)

func addPrintFlags(cmd *cobra.Command) {
	defaults := analysis.DefaultPrintConfig()

	cmd.Flags().BoolVar(&flagImperial, "imperial", false, "Report values in imperial units")
	cmd.Flags().StringVar(&flagMaterial, "material", analysis.DefaultMaterial, "Material preset (see 'cadstl materials')")
	cmd.Flags().Float64Var(&flagInfill, "infill", defaults.InfillPercent, "Infill percentage (0-100)")
	cmd.Flags().IntVar(&flagWallCount, "walls", defaults.WallCount, "Number of perimeter walls")
	cmd.Flags().Float64Var(&flagWallWidth, "wall-width", defaults.WallWidth, "Wall width in mm")
	cmd.Flags().Float64Var(&flagLayerHeight, "layer-height", defaults.LayerHeight, "Layer height in mm")
	cmd.Flags().IntVar(&flagTopBottomLayers, "top-bottom-layers", defaults.TopBottomLayers, "Solid layers on top and bottom")
	cmd.Flags().Float64Var(&flagPrintSpeed, "speed", defaults.PrintSpeed, "Print speed in mm/s")
	cmd.Flags().Float64Var(&flagTravelSpeed, "travel-speed", defaults.TravelSpeed, "Travel speed in mm/s")
}

// exportOptions assembles the print configuration from the flags.
func exportOptions() (export.Options, error) {
	density, ok := analysis.Materials[flagMaterial]
	if !ok {
		return export.Options{}, fmt.Errorf("unknown material %q (see 'cadstl materials')", flagMaterial)
	}

	cfg := analysis.DefaultPrintConfig()
	cfg.Density = density
	cfg.InfillPercent = flagInfill
	cfg.WallCount = flagWallCount
	cfg.WallWidth = flagWallWidth
	cfg.LayerHeight = flagLayerHeight
	cfg.TopBottomLayers = flagTopBottomLayers
	cfg.PrintSpeed = flagPrintSpeed
	cfg.TravelSpeed = flagTravelSpeed

	return export.Options{
		Imperial: flagImperial,
		Material: flagMaterial,
		Config:   cfg,
	}, nil
}
