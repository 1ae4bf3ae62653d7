package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ysnawara/cad-stl-analyzer/pkg/analysis"
	"github.com/ysnawara/cad-stl-analyzer/pkg/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export [file...]",
	Short: "Export analysis results as CSV or JSON",
	Long: `Analyze one or more STL files and write the results to a file or
stdout. CSV carries the formatted table in the selected unit system;
JSON carries the raw numeric fields plus the print settings used, so
an export is reproducible.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addPrintFlags(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Output format: csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) {
	opts, err := exportOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	results, failures := analysis.AnalyzeFiles(args)
	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", failure.Path, failure.Err)
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no files could be analyzed")
		os.Exit(1)
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	switch exportFormat {
	case "csv":
		err = export.WriteCSV(out, results, opts)
	case "json":
		err = export.WriteJSON(out, results, opts)
	default:
		err = fmt.Errorf("unknown format %q (want csv or json)", exportFormat)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
