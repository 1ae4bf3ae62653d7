package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with legs 3 and 4
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleAreaOrientationIndependent(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)
	flipped := NewTriangle(tri.Normal, tri.V0, tri.V2, tri.V1)

	if math.Abs(tri.Area()-flipped.Area()) > 1e-10 {
		t.Errorf("Area changed under flipped winding: %v vs %v", tri.Area(), flipped.Area())
	}
}

func TestTriangleSignedVolume(t *testing.T) {
	// Unit tetrahedron face: the triangle on the plane x+y+z=1
	// forms a tetrahedron of volume 1/6 with the origin.
	tri := NewTriangle(
		Vector3{},
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 1),
	)

	volume := tri.SignedVolume()
	expected := 1.0 / 6.0

	if math.Abs(volume-expected) > 1e-10 {
		t.Errorf("SignedVolume failed: expected %v, got %v", expected, volume)
	}
}

func TestTriangleSignedVolumeFlipsWithWinding(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 1),
	)
	flipped := NewTriangle(tri.Normal, tri.V0, tri.V2, tri.V1)

	if math.Abs(tri.SignedVolume()+flipped.SignedVolume()) > 1e-10 {
		t.Errorf("SignedVolume should negate under flipped winding: %v vs %v",
			tri.SignedVolume(), flipped.SignedVolume())
	}
}

func TestTriangleComputedNormal(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	normal := tri.ComputedNormal()
	expected := NewVector3(0, 0, 1)

	if normal.Distance(expected) > 1e-10 {
		t.Errorf("ComputedNormal failed: expected %v, got %v", expected, normal)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()

	// Pythagorean triple: 3, 5, 4
	if math.Abs(lengths[0]-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-10 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	centroid := tri.Centroid()
	expected := NewVector3(1, 1, 0)

	if centroid != expected {
		t.Errorf("Centroid failed: expected %v, got %v", expected, centroid)
	}
}
