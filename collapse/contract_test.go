package collapse

import (
	"testing"

	"github.com/donaldnguyen99/qmesh/geom3d"
)

func TestContractMergesQuadricsAndDeletesSharedTriangles(t *testing.T) {
	m := buildUnitSquarePlane(t)

	deleted := Contract(m, 0, 2, geom3d.Vec3{X: 0.5, Y: 0.5, Z: 0})

	if deleted != 2 {
		t.Fatalf("expected both triangles sharing the diagonal to be deleted, got %d", deleted)
	}

	v0, err := m.Vertex(0)
	if err != nil {
		t.Fatal(err)
	}
	if v0.Position != (geom3d.Vec3{X: 0.5, Y: 0.5, Z: 0}) {
		t.Fatalf("expected survivor moved to contraction point, got %+v", v0.Position)
	}
}
