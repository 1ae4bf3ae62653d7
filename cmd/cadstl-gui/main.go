package main

import (
	"fmt"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ysnawara/cad-stl-analyzer/pkg/analysis"
	"github.com/ysnawara/cad-stl-analyzer/pkg/export"
)

// App holds the GUI state: the selected files, their analysis results
// and the currently chosen print settings. All computation lives in
// pkg/analysis and pkg/export; this layer only wires widgets to it.
type App struct {
	window  fyne.Window
	files   []string
	results []analysis.Result

	imperial bool
	material string
	infill   float64
	layerH   float64
	speed    float64
	walls    int

	fileList    *widget.Label
	infillLabel *widget.Label
	resultsBox  *fyne.Container
	statusLabel *widget.Label
	analyzeBtn  *widget.Button
}

func main() {
	a := app.New()
	w := a.NewWindow("CAD Analyzer")

	defaults := analysis.DefaultPrintConfig()
	gui := &App{
		window:   w,
		material: analysis.DefaultMaterial,
		infill:   defaults.InfillPercent,
		layerH:   defaults.LayerHeight,
		speed:    defaults.PrintSpeed,
		walls:    defaults.WallCount,
	}

	w.SetContent(gui.buildUI())
	w.Resize(fyne.NewSize(950, 720))

	// Files passed on the command line are preloaded.
	if len(os.Args) > 1 {
		gui.addFiles(os.Args[1:])
	}

	w.ShowAndRun()
}

func (g *App) buildUI() fyne.CanvasObject {
	title := widget.NewLabel("CAD ANALYZER")
	title.TextStyle = fyne.TextStyle{Bold: true}
	subtitle := widget.NewLabel("Analyze STL files - dimensions, volume and mass estimates")

	g.fileList = widget.NewLabel("No files loaded")
	g.statusLabel = widget.NewLabel("")
	g.resultsBox = container.NewVBox()

	g.analyzeBtn = widget.NewButton("ANALYZE", g.analyze)

	browseBtn := widget.NewButton("Add STL File...", g.browse)
	clearBtn := widget.NewButton("Clear All", func() {
		g.files = nil
		g.results = nil
		g.fileList.SetText("No files loaded")
		g.refreshResults()
	})

	content := container.NewVBox(
		container.NewCenter(title),
		container.NewCenter(subtitle),
		g.buildSettings(),
		container.NewHBox(browseBtn, clearBtn, layout.NewSpacer()),
		g.fileList,
		g.analyzeBtn,
		g.buildExportButtons(),
		widget.NewSeparator(),
		widget.NewLabel("RESULTS"),
	)

	scroll := container.NewVScroll(g.resultsBox)
	return container.NewBorder(content, g.statusLabel, nil, nil, scroll)
}

func (g *App) buildSettings() fyne.CanvasObject {
	unitsRadio := widget.NewRadioGroup([]string{"Metric (mm)", "Imperial (in)"}, func(selected string) {
		g.imperial = selected == "Imperial (in)"
		g.refreshResults()
	})
	unitsRadio.SetSelected("Metric (mm)")
	unitsRadio.Horizontal = true

	materialSelect := widget.NewSelect(analysis.MaterialNames(), func(selected string) {
		g.material = selected
		g.refreshResults()
	})
	materialSelect.SetSelected(g.material)

	g.infillLabel = widget.NewLabel(fmt.Sprintf("%.0f%%", g.infill))
	infillSlider := widget.NewSlider(0, 100)
	infillSlider.Step = 5
	infillSlider.SetValue(g.infill)
	infillSlider.OnChanged = func(value float64) {
		g.infill = value
		g.infillLabel.SetText(fmt.Sprintf("%.0f%%", value))
		g.refreshResults()
	}

	layerSelect := widget.NewSelect([]string{"0.1", "0.15", "0.2", "0.28", "0.3"}, func(selected string) {
		g.layerH, _ = strconv.ParseFloat(selected, 64)
		g.refreshResults()
	})
	layerSelect.SetSelected("0.2")

	speedSelect := widget.NewSelect([]string{"30", "40", "50", "60", "80", "100"}, func(selected string) {
		g.speed, _ = strconv.ParseFloat(selected, 64)
		g.refreshResults()
	})
	speedSelect.SetSelected("50")

	wallSelect := widget.NewSelect([]string{"2", "3", "4", "5"}, func(selected string) {
		g.walls, _ = strconv.Atoi(selected)
		g.refreshResults()
	})
	wallSelect.SetSelected("3")

	return container.NewVBox(
		container.NewHBox(
			widget.NewLabel("Units:"), unitsRadio,
			layout.NewSpacer(),
			widget.NewLabel("Material:"), materialSelect,
		),
		container.NewBorder(nil, nil,
			widget.NewLabel("Infill:"),
			g.infillLabel,
			infillSlider,
		),
		container.NewHBox(
			widget.NewLabel("Layer:"), layerSelect, widget.NewLabel("mm"),
			widget.NewLabel("Speed:"), speedSelect, widget.NewLabel("mm/s"),
			widget.NewLabel("Walls:"), wallSelect,
			layout.NewSpacer(),
		),
	)
}

func (g *App) buildExportButtons() fyne.CanvasObject {
	return container.NewHBox(
		widget.NewButton("Export CSV", func() { g.export("csv") }),
		widget.NewButton("Export JSON", func() { g.export("json") }),
		widget.NewButton("Copy to Clipboard", g.copyClipboard),
		layout.NewSpacer(),
	)
}

func (g *App) browse() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		g.addFiles([]string{reader.URI().Path()})
	}, g.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".stl"}))
	fd.Show()
}

func (g *App) addFiles(paths []string) {
	for _, path := range paths {
		seen := false
		for _, existing := range g.files {
			if existing == path {
				seen = true
				break
			}
		}
		if !seen {
			g.files = append(g.files, path)
		}
	}

	text := ""
	for _, path := range g.files {
		text += path + "\n"
	}
	g.fileList.SetText(text)
}

func (g *App) analyze() {
	if len(g.files) == 0 {
		dialog.ShowInformation("No Files", "Please add STL files to analyze.", g.window)
		return
	}

	results, failures := analysis.AnalyzeFilesParallel(g.files)
	g.results = results

	if len(failures) > 0 {
		msg := ""
		for _, failure := range failures {
			msg += failure.Error() + "\n"
		}
		g.statusLabel.SetText(fmt.Sprintf("%d file(s) skipped: %s", len(failures), msg))
	} else {
		g.statusLabel.SetText("")
	}

	if len(results) == 0 {
		dialog.ShowError(fmt.Errorf("failed to analyze files, check the file format"), g.window)
		return
	}

	g.refreshResults()
}

// options assembles the current widget state into export options.
func (g *App) options() export.Options {
	cfg := analysis.DefaultPrintConfig()
	cfg.Density = analysis.Materials[g.material]
	cfg.InfillPercent = g.infill
	cfg.LayerHeight = g.layerH
	cfg.PrintSpeed = g.speed
	cfg.WallCount = g.walls

	return export.Options{
		Imperial: g.imperial,
		Material: g.material,
		Config:   cfg,
	}
}

func (g *App) refreshResults() {
	g.resultsBox.RemoveAll()
	if len(g.results) == 0 {
		g.resultsBox.Refresh()
		return
	}

	opts := g.options()

	header := container.NewGridWithColumns(7)
	for _, col := range opts.TableHeader() {
		lbl := widget.NewLabel(col)
		lbl.TextStyle = fyne.TextStyle{Bold: true}
		header.Add(lbl)
	}
	g.resultsBox.Add(header)

	for _, result := range g.results {
		row := container.NewGridWithColumns(7)
		for _, cell := range opts.TableRow(result) {
			row.Add(widget.NewLabel(cell))
		}
		g.resultsBox.Add(row)
	}

	g.resultsBox.Refresh()
}

func (g *App) export(format string) {
	if len(g.results) == 0 {
		dialog.ShowInformation("No Results", "Run analysis first.", g.window)
		return
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		opts := g.options()
		if format == "json" {
			err = export.WriteJSON(writer, g.results, opts)
		} else {
			err = export.WriteCSV(writer, g.results, opts)
		}
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}

		dialog.ShowInformation("Exported", "Saved to "+writer.URI().Path(), g.window)
	}, g.window)
}

func (g *App) copyClipboard() {
	if len(g.results) == 0 {
		dialog.ShowInformation("No Results", "Run analysis first.", g.window)
		return
	}

	g.window.Clipboard().SetContent(export.ClipboardText(g.results, g.options()))
	dialog.ShowInformation("Copied", "Results copied to clipboard.", g.window)
}
