package engine

import (
	"errors"
	"testing"

	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/mesh"
	"github.com/stretchr/testify/require"
)

func buildTetrahedron(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	v0 := m.AddVertex(geom3d.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(geom3d.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(geom3d.Vec3{X: 0, Y: 1, Z: 0})
	v3 := m.AddVertex(geom3d.Vec3{X: 0, Y: 0, Z: 1})

	faces := [][3]int{{v0, v2, v1}, {v0, v1, v3}, {v1, v2, v3}, {v2, v0, v3}}
	for _, f := range faces {
		_, err := m.AddTriangle(f[0], f[1], f[2])
		require.NoError(t, err)
	}
	return m
}

func buildCube(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	corners := []geom3d.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	ids := make([]int, len(corners))
	for i, c := range corners {
		ids[i] = m.AddVertex(c)
	}
	quads := [][4]int{
		{0, 1, 2, 3}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}
	for _, q := range quads {
		_, err := m.AddTriangle(ids[q[0]], ids[q[1]], ids[q[2]])
		require.NoError(t, err)
		_, err = m.AddTriangle(ids[q[0]], ids[q[2]], ids[q[3]])
		require.NoError(t, err)
	}
	return m
}

func TestSimplifyRefusesExtremeDecimation(t *testing.T) {
	m := buildTetrahedron(t)
	cfg := DefaultConfig()
	cfg.TargetCount = 2

	err := Simplify(m, cfg)
	if !errors.Is(err, ErrDegenerateTarget) {
		t.Fatalf("expected ErrDegenerateTarget, got %v", err)
	}
}

func TestSimplifyCubeKeepsCountAndIndicesValid(t *testing.T) {
	m := buildCube(t)
	cfg := DefaultConfig()
	cfg.TargetRatio = 0.5
	cfg.Aggressiveness = 7

	require.NoError(t, Simplify(m, cfg))

	if m.NumTriangles() > 12 {
		t.Fatalf("expected simplification to not increase triangle count, got %d", m.NumTriangles())
	}
	for i := 0; i < m.NumTriangles(); i++ {
		tr, err := m.Triangle(i)
		require.NoError(t, err)
		seen := map[int]bool{}
		for _, v := range tr.V {
			if seen[v] {
				t.Fatalf("triangle %d has a repeated vertex index", i)
			}
			seen[v] = true
			if v < 0 || v >= m.NumVertices() {
				t.Fatalf("triangle %d references out-of-range vertex %d", i, v)
			}
		}
	}
}

func TestThresholdScheduleIsMonotone(t *testing.T) {
	a := 7.0
	var prev float64
	for k := 0; k < 10; k++ {
		tau0 := 1e-9 * pow(float64(k+3), a)
		if k > 0 && tau0 <= prev {
			t.Fatalf("expected monotone increasing threshold, got tau0(%d)=%v <= tau0(%d)=%v", k, tau0, k-1, prev)
		}
		prev = tau0
	}
}

func pow(base, exp float64) float64 {
	r := 1.0
	for i := 0; i < int(exp); i++ {
		r *= base
	}
	return r
}
