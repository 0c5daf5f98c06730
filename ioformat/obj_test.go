package ioformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/mesh"
)

func TestLoadOBJParsesAllFaceVariants(t *testing.T) {
	src := strings.Join([]string{
		"v 0 0 0",
		"v 1 0 0",
		"v 0 1 0",
		"v 0 0 1",
		"vt 0 0",
		"vt 1 0",
		"vt 0 1",
		"f 1 2 3",
		"f 1/1 2/2 4/3",
		"f 1//1 3//2 4//3",
		"f 1/1/1 2/2/2 4/3/3",
	}, "\n")

	m, err := LoadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if m.NumVertices() != 4 {
		t.Fatalf("expected 4 vertices, got %d", m.NumVertices())
	}
	if m.NumTriangles() != 4 {
		t.Fatalf("expected 4 triangles, got %d", m.NumTriangles())
	}

	tri, err := m.Triangle(1)
	if err != nil {
		t.Fatal(err)
	}
	if tri.Attrs&mesh.AttrHasUV == 0 {
		t.Fatalf("expected second face to carry UV attribution")
	}
}

func TestOBJRoundTripPreservesGeometry(t *testing.T) {
	m := mesh.NewMesh()
	v0 := m.AddVertex(geom3d.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(geom3d.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(geom3d.Vec3{X: 0, Y: 1, Z: 0})
	v3 := m.AddVertex(geom3d.Vec3{X: 0, Y: 0, Z: 1})
	if _, err := m.AddTriangle(v0, v1, v2); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddTriangle(v0, v2, v3); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := SaveOBJ(&buf, m); err != nil {
		t.Fatalf("SaveOBJ: %v", err)
	}

	reloaded, err := LoadOBJ(&buf)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}

	if reloaded.NumVertices() != m.NumVertices() {
		t.Fatalf("vertex count mismatch: got %d, want %d", reloaded.NumVertices(), m.NumVertices())
	}
	if reloaded.NumTriangles() != m.NumTriangles() {
		t.Fatalf("triangle count mismatch: got %d, want %d", reloaded.NumTriangles(), m.NumTriangles())
	}

	for i, want := range m.Vertices() {
		got, err := reloaded.Vertex(i)
		if err != nil {
			t.Fatal(err)
		}
		if got.Position != want.Position {
			t.Fatalf("vertex %d moved across round trip: got %+v, want %+v", i, got.Position, want.Position)
		}
	}
}

func TestLoadOBJRejectsMalformedVertexLine(t *testing.T) {
	_, err := LoadOBJ(strings.NewReader("v 1 2\n"))
	if err == nil {
		t.Fatalf("expected an error for a truncated v line")
	}
}
