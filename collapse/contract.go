package collapse

import (
	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/mesh"
	"github.com/donaldnguyen99/qmesh/quadric"
)

// Contract performs the collapse of edge (v0, v1) onto the point p: v1's
// quadric is merged into v0, v0's position is moved to p, and every
// triangle incident to either endpoint is either marked deleted (if it was
// incident to both, so the collapse removes it outright) or rewritten to
// reference v0 in place of v1.
//
// Surviving corners from both endpoints' original windows are appended to
// the tail of the ref table and v0's (tstart, tcount) window is reset to
// that freshly appended run. The run never needs to fit in place since
// the old window is abandoned outright.
//
// Returns the number of triangles newly marked deleted by this call.
func Contract(m *mesh.Mesh, v0, v1 int, p geom3d.Vec3) int {
	vv0, _ := m.Vertex(v0)
	vv1, _ := m.Vertex(v1)

	vv0.Quadric = vv0.Quadric.Add(vv1.Quadric)
	vv0.Position = p

	deleted := 0
	deleted += relocate(m, v0, v0, v1)
	deleted += relocate(m, v1, v0, v1)
	return deleted
}

// relocate walks src's current window, appends each surviving corner
// (rewritten to reference v0 instead of v1) to the tail of the ref table,
// and grows v0's window to include the newly appended run. Triangles
// incident to both v0 and v1 are marked deleted instead of appended.
func relocate(m *mesh.Mesh, src, v0, v1 int) int {
	start, count := m.Window(src)
	refs := m.Refs()

	deleted := 0
	var runStart, runCount int
	if src == v1 {
		// The v0 pass already established the run; keep extending it.
		runStart, runCount = m.Window(v0)
	} else {
		runStart, runCount = len(m.Refs()), 0
	}

	for k := start; k < start+count; k++ {
		ref := refs[k]
		t, err := m.Triangle(ref.TID)
		if err != nil || t.Deleted {
			continue
		}

		hasOther := false
		other := v1
		if src == v1 {
			other = v0
		}
		for _, v := range t.V {
			if v == other {
				hasOther = true
				break
			}
		}
		if hasOther {
			t.Deleted = true
			deleted++
			continue
		}

		for c := range t.V {
			if t.V[c] == src {
				t.V[c] = v0
			}
		}
		t.Dirty = true
		quadric.RecomputeErrors(m, ref.TID)

		m.AppendRef(mesh.Ref{TID: ref.TID, Corner: ref.Corner})
		runCount++
	}

	m.SetWindow(v0, runStart, runCount)
	return deleted
}
