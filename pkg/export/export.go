// Package export projects analysis results into the shapes consumed by
// the presentation and file-export layers: a formatted table, a raw
// key/value record set with settings provenance, and the CSV/JSON
// serializations of both.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ysnawara/cad-stl-analyzer/pkg/analysis"
	"github.com/ysnawara/cad-stl-analyzer/pkg/units"
)

// Options selects the unit system and print settings an export is
// rendered with.
type Options struct {
	Imperial bool
	Material string
	Config   analysis.PrintConfig
}

// DefaultOptions returns a metric export with the baseline print config.
func DefaultOptions() Options {
	return Options{
		Material: analysis.DefaultMaterial,
		Config:   analysis.DefaultPrintConfig(),
	}
}

func (o Options) lengthUnit() string {
	if o.Imperial {
		return "in"
	}
	return "mm"
}

func (o Options) volumeUnit() string {
	if o.Imperial {
		return "in³"
	}
	return "mm³"
}

// TableHeader returns the column titles of the tabular projection.
func (o Options) TableHeader() []string {
	return []string{
		"File",
		fmt.Sprintf("L (%s)", o.lengthUnit()),
		fmt.Sprintf("W (%s)", o.lengthUnit()),
		fmt.Sprintf("H (%s)", o.lengthUnit()),
		fmt.Sprintf("Volume (%s)", o.volumeUnit()),
		fmt.Sprintf("Est. Mass (g) [%s @ %.0f%%]", o.Material, o.Config.InfillPercent),
		"Est. Time (min)",
	}
}

// TableRow renders one result as the table columns, converted to the
// selected unit system.
func (o Options) TableRow(r analysis.Result) []string {
	display := r
	if o.Imperial {
		display = units.ToImperial(r)
	}

	return []string{
		r.Filename,
		fmt.Sprintf("%.2f", display.Length),
		fmt.Sprintf("%.2f", display.Width),
		fmt.Sprintf("%.2f", display.Height),
		fmt.Sprintf("%.3f", display.Volume),
		fmt.Sprintf("%.2f", analysis.PrintMass(r, o.Config)),
		fmt.Sprintf("%.1f", analysis.PrintTime(r, o.Config)),
	}
}

// WriteCSV writes the tabular projection as CSV.
func WriteCSV(w io.Writer, results []analysis.Result, opts Options) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(opts.TableHeader()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		if err := cw.Write(opts.TableRow(r)); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", r.Filename, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Settings is the provenance block of the structured projection: the
// unit system and print configuration the estimates were computed with.
type Settings struct {
	Units           string  `json:"units"`
	Material        string  `json:"material"`
	DensityGCM3     float64 `json:"density_g_cm3"`
	InfillPercent   float64 `json:"infill_percent"`
	WallCount       int     `json:"wall_count"`
	WallWidthMM     float64 `json:"wall_width_mm"`
	LayerHeightMM   float64 `json:"layer_height_mm"`
	TopBottomLayers int     `json:"top_bottom_layers"`
	PrintSpeedMMS   float64 `json:"print_speed_mm_s"`
	TravelSpeedMMS  float64 `json:"travel_speed_mm_s"`
}

// Record carries the raw numeric fields of one result plus its derived
// estimates, in the selected unit system.
type Record struct {
	Filename        string  `json:"filename"`
	Length          float64 `json:"length"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	Volume          float64 `json:"volume"`
	SurfaceArea     float64 `json:"surface_area"`
	TriangleCount   int     `json:"triangle_count"`
	IsWatertight    bool    `json:"is_watertight"`
	SolidMassG      float64 `json:"solid_mass_g"`
	PrintMassG      float64 `json:"print_mass_g"`
	EstPrintTimeMin float64 `json:"est_print_time_min"`
}

// Document is the full structured projection: settings provenance
// followed by one record per analyzed file.
type Document struct {
	Settings Settings `json:"settings"`
	Results  []Record `json:"results"`
}

// BuildDocument assembles the structured projection for a result set.
func BuildDocument(results []analysis.Result, opts Options) Document {
	unitsName := "metric"
	if opts.Imperial {
		unitsName = "imperial"
	}

	doc := Document{
		Settings: Settings{
			Units:           unitsName,
			Material:        opts.Material,
			DensityGCM3:     opts.Config.Density,
			InfillPercent:   opts.Config.InfillPercent,
			WallCount:       opts.Config.WallCount,
			WallWidthMM:     opts.Config.WallWidth,
			LayerHeightMM:   opts.Config.LayerHeight,
			TopBottomLayers: opts.Config.TopBottomLayers,
			PrintSpeedMMS:   opts.Config.PrintSpeed,
			TravelSpeedMMS:  opts.Config.TravelSpeed,
		},
		Results: make([]Record, 0, len(results)),
	}

	for _, r := range results {
		display := r
		if opts.Imperial {
			display = units.ToImperial(r)
		}

		doc.Results = append(doc.Results, Record{
			Filename:        r.Filename,
			Length:          display.Length,
			Width:           display.Width,
			Height:          display.Height,
			Volume:          display.Volume,
			SurfaceArea:     display.SurfaceArea,
			TriangleCount:   r.TriangleCount,
			IsWatertight:    r.IsWatertight,
			SolidMassG:      analysis.SolidMass(r, opts.Config.Density),
			PrintMassG:      analysis.PrintMass(r, opts.Config),
			EstPrintTimeMin: analysis.PrintTime(r, opts.Config),
		})
	}

	return doc
}

// WriteJSON writes the structured projection as indented JSON.
func WriteJSON(w io.Writer, results []analysis.Result, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDocument(results, opts))
}

// ClipboardText renders the tabular projection as tab-separated text
// suitable for pasting into a spreadsheet.
func ClipboardText(results []analysis.Result, opts Options) string {
	var sb strings.Builder

	sb.WriteString(strings.Join(opts.TableHeader(), "\t"))
	for _, r := range results {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(opts.TableRow(r), "\t"))
	}

	return sb.String()
}
