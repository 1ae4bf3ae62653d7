// Package units converts and formats the metric analysis values.
// Every function is a pure value transform: conversion produces a new
// result and formatting only rounds the displayed string, never the
// stored number.
package units

import (
	"fmt"

	"github.com/ysnawara/cad-stl-analyzer/pkg/analysis"
)

// Metric to imperial conversion constants.
const (
	MMToInch   = 0.0393701
	MM2ToInch2 = 0.00155
	MM3ToInch3 = 0.0000610237
)

// ToImperial returns a copy of the result with dimensions in inches,
// surface area in in² and volume in in³. Triangle count and the
// watertight flag are unit-independent and carried through.
func ToImperial(r analysis.Result) analysis.Result {
	return analysis.Result{
		Filename:      r.Filename,
		Length:        r.Length * MMToInch,
		Width:         r.Width * MMToInch,
		Height:        r.Height * MMToInch,
		Volume:        r.Volume * MM3ToInch3,
		SurfaceArea:   r.SurfaceArea * MM2ToInch2,
		TriangleCount: r.TriangleCount,
		IsWatertight:  r.IsWatertight,
	}
}

// FromImperial is the inverse of ToImperial.
func FromImperial(r analysis.Result) analysis.Result {
	return analysis.Result{
		Filename:      r.Filename,
		Length:        r.Length / MMToInch,
		Width:         r.Width / MMToInch,
		Height:        r.Height / MMToInch,
		Volume:        r.Volume / MM3ToInch3,
		SurfaceArea:   r.SurfaceArea / MM2ToInch2,
		TriangleCount: r.TriangleCount,
		IsWatertight:  r.IsWatertight,
	}
}

// FormatDimension formats a metric length value with a unit suffix.
func FormatDimension(mm float64, imperial bool) string {
	if imperial {
		return fmt.Sprintf("%.2f\"", mm*MMToInch)
	}
	return fmt.Sprintf("%.1f mm", mm)
}

// FormatVolume formats a metric volume value with a unit suffix.
func FormatVolume(mm3 float64, imperial bool) string {
	if imperial {
		return fmt.Sprintf("%.3f in³", mm3*MM3ToInch3)
	}
	return fmt.Sprintf("%.1f mm³", mm3)
}

// FormatArea formats a metric surface area value with a unit suffix.
func FormatArea(mm2 float64, imperial bool) string {
	if imperial {
		return fmt.Sprintf("%.2f in²", mm2*MM2ToInch2)
	}
	return fmt.Sprintf("%.1f mm²", mm2)
}

// FormatMass formats a mass in grams.
func FormatMass(grams float64) string {
	return fmt.Sprintf("%.1f g", grams)
}

// FormatDuration formats a print duration given in minutes, switching
// to hours and minutes past the hour mark.
func FormatDuration(minutes float64) string {
	if minutes < 60 {
		return fmt.Sprintf("%.0f min", minutes)
	}
	hours := int(minutes) / 60
	mins := int(minutes) % 60
	return fmt.Sprintf("%dh %dm", hours, mins)
}
