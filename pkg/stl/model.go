package stl

import (
	"math"

	"github.com/ysnawara/cad-stl-analyzer/pkg/geometry"
)

// Model represents a parsed STL mesh as an ordered triangle soup.
// The triangle order is preserved from the file for reproducibility;
// none of the aggregate measurements depend on it.
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle appends a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the axis-aligned bounding box of the model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V0)
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Volume calculates the enclosed volume of the model using the
// signed-tetrahedron method: each triangle forms a tetrahedron with
// the origin and the signed contributions are accumulated. The total
// is taken by absolute value so a mesh with inward-facing normals
// still reports a positive volume. Exact for a closed,
// non-self-intersecting surface; meaningless for an open one.
func (m *Model) Volume() float64 {
	signed := 0.0
	for _, triangle := range m.Triangles {
		signed += triangle.SignedVolume()
	}
	return math.Abs(signed)
}
