package mesh

import (
	"errors"
	"testing"

	"github.com/donaldnguyen99/qmesh/geom3d"
)

func buildTetrahedron(t *testing.T) *Mesh {
	t.Helper()
	m := NewMesh()
	v0 := m.AddVertex(geom3d.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(geom3d.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(geom3d.Vec3{X: 0, Y: 1, Z: 0})
	v3 := m.AddVertex(geom3d.Vec3{X: 0, Y: 0, Z: 1})

	faces := [][3]int{{v0, v2, v1}, {v0, v1, v3}, {v1, v2, v3}, {v2, v0, v3}}
	for _, f := range faces {
		if _, err := m.AddTriangle(f[0], f[1], f[2]); err != nil {
			t.Fatalf("AddTriangle: %v", err)
		}
	}
	return m
}

func TestAddTriangleRejectsDegenerate(t *testing.T) {
	m := NewMesh()
	v0 := m.AddVertex(geom3d.Vec3{})
	v1 := m.AddVertex(geom3d.Vec3{X: 1})
	if _, err := m.AddTriangle(v0, v0, v1); !errors.Is(err, ErrDegenerateTriangle) {
		t.Fatalf("expected ErrDegenerateTriangle, got %v", err)
	}
}

func TestAddTriangleRejectsOutOfRange(t *testing.T) {
	m := NewMesh()
	m.AddVertex(geom3d.Vec3{})
	if _, err := m.AddTriangle(0, 1, 2); !errors.Is(err, ErrInvalidVertexID) {
		t.Fatalf("expected ErrInvalidVertexID, got %v", err)
	}
}

func TestUpdateMeshClassifiesBoundary(t *testing.T) {
	m := buildTetrahedron(t)
	m.UpdateMesh(false)

	for i := 0; i < m.NumVertices(); i++ {
		v, err := m.Vertex(i)
		if err != nil {
			t.Fatalf("Vertex(%d): %v", i, err)
		}
		if v.Boundary {
			t.Fatalf("closed tetrahedron should have no boundary vertices, vertex %d marked boundary", i)
		}
	}
}

func TestCompactMeshRemovesDeletedAndRemaps(t *testing.T) {
	m := buildTetrahedron(t)
	m.UpdateMesh(false)

	tri, _ := m.Triangle(0)
	tri.Deleted = true

	m.CompactMesh()

	if m.NumTriangles() != 3 {
		t.Fatalf("expected 3 triangles after compaction, got %d", m.NumTriangles())
	}
	for i := 0; i < m.NumTriangles(); i++ {
		tr, _ := m.Triangle(i)
		for _, v := range tr.V {
			if v < 0 || v >= m.NumVertices() {
				t.Fatalf("triangle %d references out-of-range vertex %d", i, v)
			}
		}
	}
}

func TestAddVertexMergesWithinTolerance(t *testing.T) {
	m := NewMesh(WithMergeDistance(1e-6))
	v0 := m.AddVertex(geom3d.Vec3{X: 1, Y: 2, Z: 3})
	v1 := m.AddVertex(geom3d.Vec3{X: 1 + 1e-9, Y: 2, Z: 3})
	if v0 != v1 {
		t.Fatalf("expected merge-on-insert, got distinct ids %d and %d", v0, v1)
	}
}
