package collapse

import (
	"testing"

	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/mesh"
	"github.com/donaldnguyen99/qmesh/quadric"
)

func buildUnitSquarePlane(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	v0 := m.AddVertex(geom3d.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(geom3d.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(geom3d.Vec3{X: 1, Y: 1, Z: 0})
	v3 := m.AddVertex(geom3d.Vec3{X: 0, Y: 1, Z: 0})
	if _, err := m.AddTriangle(v0, v1, v2); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddTriangle(v0, v2, v3); err != nil {
		t.Fatal(err)
	}
	quadric.Initialize(m)
	m.UpdateMesh(false)
	return m
}

func TestFlippedFalseForCoplanarCollapse(t *testing.T) {
	m := buildUnitSquarePlane(t)
	// Collapsing the diagonal onto its midpoint keeps everything coplanar.
	p := geom3d.Mid(geom3d.Vec3{X: 0, Y: 0, Z: 0}, geom3d.Vec3{X: 1, Y: 1, Z: 0})
	if Flipped(m, 0, 2, p) {
		t.Fatalf("expected coplanar collapse to not be flagged as flipped")
	}
}

func TestFlippedTrueForInvertingCollapse(t *testing.T) {
	m := buildUnitSquarePlane(t)
	// Moving vertex 0 far to the opposite side of the plane's triangles
	// should invert at least one incident triangle's normal.
	p := geom3d.Vec3{X: 5, Y: 5, Z: 0}
	if !Flipped(m, 0, 1, p) {
		t.Fatalf("expected degenerate/flipped collapse to be detected")
	}
}
