// Package quadric implements quadric-error-metric initialization and
// per-edge error/contraction-point evaluation (§4.1).
package quadric

import (
	"math"

	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/mesh"
)

// Initialize computes each triangle's face normal and plane quadric, zeros
// every vertex quadric, and accumulates each triangle's plane quadric into
// its three vertices. It also fills each triangle's four edge errors via
// CalculateError. Call once after loading, before the first adjacency
// rebuild.
func Initialize(m *mesh.Mesh) {
	vertices := m.Vertices()
	for i := range vertices {
		vertices[i].Quadric = geom3d.SymmetricQuadric{}
	}

	triangles := m.Triangles()
	for i := range triangles {
		t := &triangles[i]
		p0 := vertices[t.V[0]].Position
		p1 := vertices[t.V[1]].Position
		p2 := vertices[t.V[2]].Position

		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if l := n.Length(); l > 0 {
			n = n.Scale(1 / l)
		}
		t.Normal = n

		d := -n.Dot(p0)
		q := geom3d.PlaneQuadric(n.X, n.Y, n.Z, d)
		for _, v := range t.V {
			vertices[v].Quadric = vertices[v].Quadric.Add(q)
		}
	}

	for i := range triangles {
		RecomputeErrors(m, i)
	}
}

// RecomputeErrors recomputes all four entries of triangles[i].Err (the
// three per-edge errors plus their minimum) using the mesh's current
// vertex quadrics and positions.
func RecomputeErrors(m *mesh.Mesh, tid int) {
	t, err := m.Triangle(tid)
	if err != nil {
		return
	}
	e0, _ := CalculateError(m, t.V[0], t.V[1])
	e1, _ := CalculateError(m, t.V[1], t.V[2])
	e2, _ := CalculateError(m, t.V[2], t.V[0])
	t.Err[0] = e0
	t.Err[1] = e1
	t.Err[2] = e2
	t.Err[3] = math.Min(e0, math.Min(e1, e2))
}

// CalculateError computes Q = Q_i + Q_j for the edge (i, j) and returns the
// minimum-error contraction point and its error value.
//
// If det(Q3) is non-zero and neither endpoint is a boundary vertex, the
// optimum is solved for in closed form. Otherwise the error is evaluated at
// p_i, p_j, and their midpoint, and the minimizer of those three is
// returned.
func CalculateError(m *mesh.Mesh, i, j int) (float64, geom3d.Vec3) {
	vi, _ := m.Vertex(i)
	vj, _ := m.Vertex(j)

	q := vi.Quadric.Add(vj.Quadric)
	boundary := vi.Boundary || vj.Boundary

	if det := q.Det3(); det != 0 && !boundary {
		p := q.OptimalPoint()
		return q.Error(p), p
	}

	pi, pj := vi.Position, vj.Position
	mid := geom3d.Mid(pi, pj)

	errI, errJ, errMid := q.Error(pi), q.Error(pj), q.Error(mid)
	best, bestErr := pi, errI
	if errJ < bestErr {
		best, bestErr = pj, errJ
	}
	if errMid < bestErr {
		best, bestErr = mid, errMid
	}
	return bestErr, best
}
