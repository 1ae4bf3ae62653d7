package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ysnawara/cad-stl-analyzer/pkg/analysis"
	"github.com/ysnawara/cad-stl-analyzer/pkg/watcher"
)

var watchImperial bool

var watchCmd = &cobra.Command{
	Use:   "watch [file...]",
	Short: "Re-analyze STL files whenever they change on disk",
	Long: `Watch one or more STL files and print a fresh analysis every time a
file is written, e.g. on each export from a CAD tool. Runs until
interrupted.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVar(&watchImperial, "imperial", false, "Report values in imperial units")
}

func runWatch(cmd *cobra.Command, args []string) {
	analyzeOne := func(path string) {
		result, err := analysis.AnalyzeFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", path, err)
			return
		}
		printResult(result, watchImperial)
	}

	w, err := watcher.New(500*time.Millisecond, analyzeOne)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	if err := w.Add(args...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initial pass before waiting for changes.
	for _, path := range args {
		analyzeOne(path)
	}

	w.Start(func(err error) {
		fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
	})

	fmt.Fprintln(os.Stderr, "Watching for changes. Press Ctrl+C to stop.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
