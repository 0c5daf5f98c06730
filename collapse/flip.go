// Package collapse implements the flip/fold-over predicate and the
// contraction application step of an edge collapse (§4.3, §4.4).
package collapse

import (
	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/mesh"
)

// Flipped reports whether collapsing the edge (v0, v1) to the candidate
// point p would fold or degenerate any triangle incident to v0 that
// survives the collapse. Callers must invoke it symmetrically from both
// endpoints (Flipped(m, v0, v1, p) and Flipped(m, v1, v0, p)).
func Flipped(m *mesh.Mesh, v0, v1 int, p geom3d.Vec3) bool {
	start, count := m.Window(v0)
	refs := m.Refs()

	for k := start; k < start+count; k++ {
		ref := refs[k]
		t, err := m.Triangle(ref.TID)
		if err != nil || t.Deleted {
			continue
		}

		other := [2]int{-1, -1}
		oi := 0
		for c := 0; c < 3; c++ {
			if c == ref.Corner {
				continue
			}
			other[oi] = t.V[c]
			oi++
		}

		if other[0] == v1 || other[1] == v1 {
			// This triangle is collapsed away entirely; it cannot fold.
			continue
		}

		vo0, _ := m.Vertex(other[0])
		vo1, _ := m.Vertex(other[1])

		d1 := vo0.Position.Sub(p)
		d2 := vo1.Position.Sub(p)
		if l := d1.Length(); l > 0 {
			d1 = d1.Scale(1 / l)
		}
		if l := d2.Length(); l > 0 {
			d2 = d2.Scale(1 / l)
		}

		if d1.Dot(d2) > 0.999 {
			return true
		}

		n := d1.Cross(d2)
		if l := n.Length(); l > 0 {
			n = n.Scale(1 / l)
		}
		if n.Dot(t.Normal) < 0.2 {
			return true
		}
	}
	return false
}
