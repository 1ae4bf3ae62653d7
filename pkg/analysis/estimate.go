package analysis

import (
	"math"
	"sort"
)

// Materials maps material names to density in g/cm³. The values are
// fixed for compatibility with previously exported data.
var Materials = map[string]float64{
	"PLA":      1.24,
	"ABS":      1.04,
	"PETG":     1.27,
	"Nylon":    1.15,
	"TPU":      1.21,
	"Resin":    1.10,
	"Aluminum": 2.70,
	"Steel":    7.85,
	"Titanium": 4.50,
	"Copper":   8.96,
}

// DefaultMaterial is the material assumed when none is selected.
const DefaultMaterial = "PLA"

// MaterialNames returns the preset material names in sorted order.
func MaterialNames() []string {
	names := make([]string, 0, len(Materials))
	for name := range Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calibration collects the tuning constants of the mass and time
// heuristics. They are calibration values, not physical laws; keeping
// them in one table means recalibrating never touches the formulas.
type Calibration struct {
	// NozzleWidth is the extrusion path width in mm.
	NozzleWidth float64
	// LayerChangeTime is the Z-move overhead per layer in seconds.
	LayerChangeTime float64
	// TravelFraction approximates non-extruding moves as a fraction
	// of extrusion time.
	TravelFraction float64
	// TimeFloorFraction is the material-equivalent print time at 0%
	// infill: perimeters and walls still have to be extruded.
	TimeFloorFraction float64
	// ShellVolumeCap bounds the estimated solid shell to this fraction
	// of the enclosed volume, so small or highly convex parts are not
	// over-estimated.
	ShellVolumeCap float64
	// FootprintDivisor estimates the horizontal footprint as surface
	// area divided by this value. Assumes a roughly box-like solid
	// (one of six bounding faces); accuracy on elongated or highly
	// non-convex shapes is unverified.
	FootprintDivisor float64
}

// DefaultCalibration returns the calibration the estimates were tuned with.
func DefaultCalibration() Calibration {
	return Calibration{
		NozzleWidth:       0.4,
		LayerChangeTime:   1.5,
		TravelFraction:    0.25,
		TimeFloorFraction: 0.3,
		ShellVolumeCap:    0.95,
		FootprintDivisor:  6,
	}
}

// PrintConfig holds the print settings the estimates depend on.
// It is always passed explicitly; there is no process-wide default
// state, so analyses of independent files can run in parallel.
type PrintConfig struct {
	// Density is the material density in g/cm³.
	Density float64
	// InfillPercent is the interior fill fraction, 0–100.
	InfillPercent float64
	// WallCount is the number of perimeter walls.
	WallCount int
	// WallWidth is the width of one wall in mm.
	WallWidth float64
	// LayerHeight is the slicing layer height in mm.
	LayerHeight float64
	// TopBottomLayers is the count of solid cap layers on each side.
	TopBottomLayers int
	// PrintSpeed is the extrusion speed in mm/s.
	PrintSpeed float64
	// TravelSpeed is the non-extruding move speed in mm/s. The time
	// heuristic models travel as a fraction of extrusion time instead,
	// but the value is carried for export provenance.
	TravelSpeed float64
	// Calibration tunes the heuristic constants.
	Calibration Calibration
}

// DefaultPrintConfig returns the PLA / 20% infill / 3 walls / 0.2 mm
// layer / 50 mm/s baseline.
func DefaultPrintConfig() PrintConfig {
	return PrintConfig{
		Density:         Materials[DefaultMaterial],
		InfillPercent:   20,
		WallCount:       3,
		WallWidth:       0.4,
		LayerHeight:     0.2,
		TopBottomLayers: 4,
		PrintSpeed:      50,
		TravelSpeed:     150,
		Calibration:     DefaultCalibration(),
	}
}

// SolidMass returns the mass in grams of the fully solid part:
// volume converted from mm³ to cm³ times density.
func SolidMass(r Result, density float64) float64 {
	return r.Volume / 1000 * density
}

// PrintMass estimates the as-printed mass in grams by decomposing the
// part into solid shell (perimeter walls plus top/bottom caps) and
// sparse infill. Printed parts are mostly hollow, so this is far
// closer to reality than volume times density — but it is a
// first-order approximation, not a slicer-accurate computation.
func PrintMass(r Result, cfg PrintConfig) float64 {
	if cfg.InfillPercent >= 100 {
		return SolidMass(r, cfg.Density)
	}

	cal := cfg.Calibration

	// Perimeter walls approximated as a constant-thickness offset shell.
	wallThickness := float64(cfg.WallCount) * cfg.WallWidth
	shellVolume := r.SurfaceArea * wallThickness

	// Solid caps over an estimated horizontal footprint.
	footprint := r.SurfaceArea / cal.FootprintDivisor
	topBottomVolume := footprint * cfg.LayerHeight * float64(cfg.TopBottomLayers) * 2

	// The shell estimate must never consume more than the capped share
	// of the true enclosed volume.
	solidShellVolume := math.Min(shellVolume+topBottomVolume, r.Volume*cal.ShellVolumeCap)
	infillVolume := math.Max(0, r.Volume-solidShellVolume)

	shellMass := solidShellVolume / 1000 * cfg.Density
	infillMass := infillVolume / 1000 * cfg.Density * (cfg.InfillPercent / 100)

	return shellMass + infillMass
}

// PrintTime estimates print duration in minutes from the volumetric
// extrusion rate plus per-layer and travel overheads. Like PrintMass
// this is a calibration-driven heuristic, not a slicer simulation.
func PrintTime(r Result, cfg PrintConfig) float64 {
	cal := cfg.Calibration

	// 0% infill still prints walls, hence the time floor.
	effectiveVolume := r.Volume * (cal.TimeFloorFraction + (1-cal.TimeFloorFraction)*(cfg.InfillPercent/100))

	extrusionRate := cfg.LayerHeight * cal.NozzleWidth * cfg.PrintSpeed
	extrusionTime := effectiveVolume / extrusionRate

	numLayers := r.Height / cfg.LayerHeight
	layerChangeTime := numLayers * cal.LayerChangeTime

	travelTime := extrusionTime * cal.TravelFraction

	return (extrusionTime + layerChangeTime + travelTime) / 60
}
