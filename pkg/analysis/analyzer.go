package analysis

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ysnawara/cad-stl-analyzer/pkg/stl"
)

// Result holds the geometric analysis of a single mesh.
// All linear values are millimeters; Volume is mm³ and SurfaceArea mm².
// Length, Width and Height are the bounding-box extents sorted so that
// Length >= Width >= Height regardless of the mesh's axis alignment,
// matching the usual packaging convention. A Result is created once per
// mesh and never mutated; mass, time and imperial values are derived
// from it on demand.
type Result struct {
	Filename      string
	Length        float64
	Width         float64
	Height        float64
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	IsWatertight  bool
}

// Analyze computes the full geometric summary of a model.
// It is a pure function: the same model always yields the same Result.
// The loader guarantees a non-empty model; an empty one yields a
// zero-valued, non-watertight Result rather than an error.
func Analyze(model *stl.Model, name string) Result {
	bbox := model.BoundingBox()
	size := bbox.Size()

	dims := []float64{size.X, size.Y, size.Z}
	sort.Sort(sort.Reverse(sort.Float64Slice(dims)))

	volume := model.Volume()
	surfaceArea := model.SurfaceArea()

	if name == "" {
		name = model.Name
	}

	return Result{
		Filename:      name,
		Length:        dims[0],
		Width:         dims[1],
		Height:        dims[2],
		Volume:        volume,
		SurfaceArea:   surfaceArea,
		TriangleCount: model.TriangleCount(),
		IsWatertight:  isWatertight(volume, surfaceArea),
	}
}

// isWatertight is the closedness heuristic: positive enclosed volume
// and positive surface area. A mesh with holes whose signed volumes do
// not cancel, or with non-manifold topology, can still pass; real
// manifoldness checking would replace this one predicate.
func isWatertight(volume, surfaceArea float64) bool {
	return volume > 0 && surfaceArea > 0
}

// AnalyzeFile loads and analyzes a single STL file.
// The result is named after the file's base name without extension.
func AnalyzeFile(path string) (Result, error) {
	model, err := stl.Parse(path)
	if err != nil {
		return Result{}, err
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Analyze(model, stem), nil
}

// FileError records which file of a batch failed to load and why.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// AnalyzeFiles analyzes a batch of files sequentially. A file that
// fails to load is skipped, never aborts the batch; the failures are
// returned alongside the successful results.
func AnalyzeFiles(paths []string) ([]Result, []FileError) {
	results := make([]Result, 0, len(paths))
	var failures []FileError

	for _, path := range paths {
		result, err := AnalyzeFile(path)
		if err != nil {
			failures = append(failures, FileError{Path: path, Err: err})
			continue
		}
		results = append(results, result)
	}

	return results, failures
}

// AnalyzeFilesParallel analyzes a batch of files concurrently.
// Each file's load-and-analyze pipeline runs in isolation with no
// shared state; results come back in input order with failed files
// skipped, same as AnalyzeFiles.
func AnalyzeFilesParallel(paths []string) ([]Result, []FileError) {
	type slot struct {
		result Result
		err    error
	}

	slots := make([]slot, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			slots[i].result, slots[i].err = AnalyzeFile(path)
		}(i, path)
	}
	wg.Wait()

	results := make([]Result, 0, len(paths))
	var failures []FileError
	for i, s := range slots {
		if s.err != nil {
			failures = append(failures, FileError{Path: paths[i], Err: s.err})
			continue
		}
		results = append(results, s.result)
	}

	return results, failures
}
