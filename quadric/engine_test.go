package quadric

import (
	"testing"

	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUnitSquarePlane(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	v0 := m.AddVertex(geom3d.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(geom3d.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(geom3d.Vec3{X: 1, Y: 1, Z: 0})
	v3 := m.AddVertex(geom3d.Vec3{X: 0, Y: 1, Z: 0})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)
	_, err = m.AddTriangle(v0, v2, v3)
	require.NoError(t, err)
	return m
}

func TestInitializeZeroErrorOnPlane(t *testing.T) {
	m := buildUnitSquarePlane(t)
	Initialize(m)

	for i := 0; i < m.NumVertices(); i++ {
		v, _ := m.Vertex(i)
		assert.InDelta(t, 0, v.Quadric.Error(v.Position), 1e-9)
	}
}

func TestCalculateErrorZeroOnCoplanarDiagonal(t *testing.T) {
	m := buildUnitSquarePlane(t)
	Initialize(m)
	m.UpdateMesh(false)

	// The shared diagonal (v0,v2) has two incident triangles, both on the
	// same plane, so its error should be ~0 regardless of boundary status.
	errVal, p := CalculateError(m, 0, 2)
	assert.InDelta(t, 0, errVal, 1e-6)
	assert.InDelta(t, 0, p.Z, 1e-9)
}
