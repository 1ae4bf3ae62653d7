package geometry

// Triangle represents a triangular facet in 3D space.
// Vertex order defines the facing direction via the right-hand rule
// on (V1-V0)x(V2-V0). Normal carries whatever the source file declared
// and is not trusted for computation.
type Triangle struct {
	Normal     Vector3
	V0, V1, V2 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v0, v1, v2 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V0:     v0,
		V1:     v1,
		V2:     v2,
	}
}

// ComputedNormal derives the unit normal from the vertex winding,
// ignoring the normal stored in the file.
func (t Triangle) ComputedNormal() Vector3 {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle.
// Orientation does not matter since only the cross product
// magnitude is used.
func (t Triangle) Area() float64 {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)
	return edge1.Cross(edge2).Length() / 2.0
}

// SignedVolume returns the signed volume of the tetrahedron formed by
// the triangle and the coordinate origin. Summed over a closed surface
// this yields the enclosed volume (divergence theorem); the sign
// depends on the winding convention of the mesh.
func (t Triangle) SignedVolume() float64 {
	return t.V0.Dot(t.V1.Cross(t.V2)) / 6.0
}

// EdgeLengths returns the lengths of the three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V0.Distance(t.V1),
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V0),
	}
}

// Centroid returns the center point of the triangle
func (t Triangle) Centroid() Vector3 {
	return Vector3{
		X: (t.V0.X + t.V1.X + t.V2.X) / 3.0,
		Y: (t.V0.Y + t.V1.Y + t.V2.Y) / 3.0,
		Z: (t.V0.Z + t.V1.Z + t.V2.Z) / 3.0,
	}
}
