package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubeFacets returns the 12 outward-wound triangles of an axis-aligned
// cube with corners at the origin and (s,s,s).
func cubeFacets(s float64) [][3][3]float64 {
	return [][3][3]float64{
		// bottom (z = 0)
		{{0, 0, 0}, {0, s, 0}, {s, s, 0}},
		{{0, 0, 0}, {s, s, 0}, {s, 0, 0}},
		// top (z = s)
		{{0, 0, s}, {s, 0, s}, {s, s, s}},
		{{0, 0, s}, {s, s, s}, {0, s, s}},
		// front (y = 0)
		{{0, 0, 0}, {s, 0, 0}, {s, 0, s}},
		{{0, 0, 0}, {s, 0, s}, {0, 0, s}},
		// back (y = s)
		{{0, s, 0}, {s, s, s}, {s, s, 0}},
		{{0, s, 0}, {0, s, s}, {s, s, s}},
		// left (x = 0)
		{{0, 0, 0}, {0, 0, s}, {0, s, s}},
		{{0, 0, 0}, {0, s, s}, {0, s, 0}},
		// right (x = s)
		{{s, 0, 0}, {s, s, 0}, {s, s, s}},
		{{s, 0, 0}, {s, s, s}, {s, 0, s}},
	}
}

func asciiCube(s float64) []byte {
	var buf bytes.Buffer
	buf.WriteString("solid cube\n")
	for _, facet := range cubeFacets(s) {
		buf.WriteString("  facet normal 0 0 0\n")
		buf.WriteString("    outer loop\n")
		for _, v := range facet {
			fmt.Fprintf(&buf, "      vertex %g %g %g\n", v[0], v[1], v[2])
		}
		buf.WriteString("    endloop\n")
		buf.WriteString("  endfacet\n")
	}
	buf.WriteString("endsolid cube\n")
	return buf.Bytes()
}

func binarySTL(facets [][3][3]float64) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(len(facets)))
	for _, facet := range facets {
		binary.Write(&buf, binary.LittleEndian, [3]float32{}) // normal, ignored
		for _, v := range facet {
			binary.Write(&buf, binary.LittleEndian, [3]float32{float32(v[0]), float32(v[1]), float32(v[2])})
		}
		binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func TestParseASCII(t *testing.T) {
	model, err := ParseReader(bytes.NewReader(asciiCube(10)), "")
	require.NoError(t, err)

	assert.Equal(t, "cube", model.Name)
	assert.Equal(t, 12, model.TriangleCount())
}

func TestParseBinary(t *testing.T) {
	model, err := ParseReader(bytes.NewReader(binarySTL(cubeFacets(10))), "fallback")
	require.NoError(t, err)

	// Blank binary header: the caller-provided name is used.
	assert.Equal(t, "fallback", model.Name)
	assert.Equal(t, 12, model.TriangleCount())
}

func TestParseFormatsAgree(t *testing.T) {
	ascii, err := ParseReader(bytes.NewReader(asciiCube(10)), "")
	require.NoError(t, err)
	bin, err := ParseReader(bytes.NewReader(binarySTL(cubeFacets(10))), "")
	require.NoError(t, err)

	require.Equal(t, ascii.TriangleCount(), bin.TriangleCount())
	assert.InDelta(t, ascii.Volume(), bin.Volume(), 1e-6*ascii.Volume())
	assert.InDelta(t, ascii.SurfaceArea(), bin.SurfaceArea(), 1e-6*ascii.SurfaceArea())

	for i := range ascii.Triangles {
		assert.InDelta(t, 0, ascii.Triangles[i].V0.Distance(bin.Triangles[i].V0), 1e-6)
		assert.InDelta(t, 0, ascii.Triangles[i].V1.Distance(bin.Triangles[i].V1), 1e-6)
		assert.InDelta(t, 0, ascii.Triangles[i].V2.Distance(bin.Triangles[i].V2), 1e-6)
	}
}

func TestParseDetectsFormatFromContent(t *testing.T) {
	// A binary cube saved with a misleading name must still parse.
	dir := t.TempDir()
	path := filepath.Join(dir, "actually-binary.stl")
	require.NoError(t, os.WriteFile(path, binarySTL(cubeFacets(10)), 0o644))

	model, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, 12, model.TriangleCount())
	assert.Equal(t, "actually-binary", model.Name)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.stl"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseZeroTrianglesBinary(t *testing.T) {
	_, err := ParseReader(bytes.NewReader(binarySTL(nil)), "")
	assert.ErrorIs(t, err, ErrZeroTriangles)
}

func TestParseZeroTrianglesASCII(t *testing.T) {
	data := []byte("solid empty\nendsolid empty\n")
	_, err := ParseReader(bytes.NewReader(data), "")
	assert.ErrorIs(t, err, ErrZeroTriangles)
}

func TestParseTruncatedBinary(t *testing.T) {
	full := binarySTL(cubeFacets(10))

	// Cut inside the 7th triangle record.
	_, err := ParseReader(bytes.NewReader(full[:84+6*50+13]), "")
	assert.ErrorIs(t, err, ErrTruncated)

	// Cut inside the header.
	_, err = ParseReader(bytes.NewReader(full[:40]), "")
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestParseTooShort(t *testing.T) {
	_, err := ParseReader(bytes.NewReader([]byte("ab")), "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseToleratesDegenerateGeometry(t *testing.T) {
	// A degenerate (zero-area) facet in a valid container is not a load
	// error; it only degrades downstream metrics.
	facets := [][3][3]float64{
		{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	}
	model, err := ParseReader(bytes.NewReader(binarySTL(facets)), "")
	require.NoError(t, err)
	assert.Equal(t, 1, model.TriangleCount())
	assert.Equal(t, 0.0, model.SurfaceArea())
}
