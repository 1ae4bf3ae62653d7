package stl

import "errors"

// Load errors. A missing file surfaces as the wrapped os.Open error
// (matchable with errors.Is(err, fs.ErrNotExist)); the sentinels below
// cover the container-level failure modes. Malformed geometry inside a
// valid container (NaN coordinates, degenerate triangles) is not a load
// error: it is tolerated and shows up, if at all, in the analysis
// metrics downstream.
var (
	// ErrUnsupportedFormat indicates the data matches neither the ASCII
	// nor the binary STL layout.
	ErrUnsupportedFormat = errors.New("unsupported or corrupt STL encoding")

	// ErrTruncated indicates the data ended before the declared number
	// of triangle records was read.
	ErrTruncated = errors.New("truncated STL data")

	// ErrZeroTriangles indicates a structurally valid file that contains
	// no triangles. An empty mesh is a load failure, never an
	// empty-result success.
	ErrZeroTriangles = errors.New("STL file contains no triangles")
)
