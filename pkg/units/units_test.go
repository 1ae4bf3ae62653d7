package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ysnawara/cad-stl-analyzer/pkg/analysis"
)

func metricCube() analysis.Result {
	return analysis.Result{
		Filename:      "cube",
		Length:        10,
		Width:         10,
		Height:        10,
		Volume:        1000,
		SurfaceArea:   600,
		TriangleCount: 12,
		IsWatertight:  true,
	}
}

func TestToImperial(t *testing.T) {
	imp := ToImperial(metricCube())

	assert.Equal(t, "cube", imp.Filename)
	assert.InDelta(t, 0.393701, imp.Length, 1e-9)
	assert.InDelta(t, 0.393701, imp.Width, 1e-9)
	assert.InDelta(t, 0.393701, imp.Height, 1e-9)
	assert.InDelta(t, 0.0610237, imp.Volume, 1e-9)
	assert.InDelta(t, 0.93, imp.SurfaceArea, 1e-9)
	assert.Equal(t, 12, imp.TriangleCount)
	assert.True(t, imp.IsWatertight)
}

func TestImperialRoundTrip(t *testing.T) {
	original := metricCube()
	back := FromImperial(ToImperial(original))

	relTol := 1e-4
	assert.InDelta(t, original.Length, back.Length, relTol*original.Length)
	assert.InDelta(t, original.Width, back.Width, relTol*original.Width)
	assert.InDelta(t, original.Height, back.Height, relTol*original.Height)
	assert.InDelta(t, original.Volume, back.Volume, relTol*original.Volume)
	assert.InDelta(t, original.SurfaceArea, back.SurfaceArea, relTol*original.SurfaceArea)
}

func TestConversionDoesNotMutate(t *testing.T) {
	original := metricCube()
	_ = ToImperial(original)

	assert.Equal(t, metricCube(), original)
}

func TestFormatDimension(t *testing.T) {
	assert.Equal(t, "10.0 mm", FormatDimension(10, false))
	assert.Equal(t, "0.39\"", FormatDimension(10, true))
	assert.Equal(t, "12.3 mm", FormatDimension(12.34, false))
}

func TestFormatVolume(t *testing.T) {
	assert.Equal(t, "1000.0 mm³", FormatVolume(1000, false))
	assert.Equal(t, "0.061 in³", FormatVolume(1000, true))
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "600.0 mm²", FormatArea(600, false))
	assert.Equal(t, "0.93 in²", FormatArea(600, true))
}

func TestFormatMass(t *testing.T) {
	assert.Equal(t, "1.2 g", FormatMass(1.24))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 min", FormatDuration(45))
	assert.Equal(t, "2h 5m", FormatDuration(125))
	assert.Equal(t, "1h 0m", FormatDuration(60))
}

func TestFormattingIsIdempotent(t *testing.T) {
	value := 123.456

	assert.Equal(t, FormatDimension(value, true), FormatDimension(value, true))
	assert.Equal(t, FormatVolume(value, false), FormatVolume(value, false))
	assert.Equal(t, FormatArea(value, true), FormatArea(value, true))
	assert.Equal(t, FormatDuration(value), FormatDuration(value))
}
