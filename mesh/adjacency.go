package mesh

// UpdateMesh is the adjacency maintainer. On iteration 0 it additionally
// expects the caller to have already initialized quadrics and edge errors
// (the quadric package does this before the loop starts); this function
// only ever rebuilds derived adjacency state:
//
//  1. (compact) when compact is true, sweep the triangle table, move every
//     non-deleted triangle into a dense prefix and truncate.
//  2. (refs) rebuild the reference table from scratch.
//  3. (boundary) classify every vertex as boundary or interior.
func (m *Mesh) UpdateMesh(compact bool) {
	if compact {
		m.compactTriangles()
	}
	m.rebuildRefs()
	m.classifyBoundary()
}

// compactTriangles moves every non-deleted triangle into a dense prefix of
// the triangle table and truncates the rest away. It does not touch the
// vertex table; CompactMesh (§4.8) handles that at the very end.
func (m *Mesh) compactTriangles() {
	dst := 0
	for src := range m.triangles {
		if m.triangles[src].Deleted {
			continue
		}
		if dst != src {
			m.triangles[dst] = m.triangles[src]
		}
		dst++
	}
	m.triangles = m.triangles[:dst]
}

// rebuildRefs performs the two-pass reference-table rebuild: pass one
// tallies per-vertex corner counts, a prefix sum assigns each vertex its
// tstart, and pass two writes every corner into its vertex's window.
func (m *Mesh) rebuildRefs() {
	for i := range m.vertices {
		m.vertices[i].tcount = 0
	}
	for _, t := range m.triangles {
		if t.Deleted {
			continue
		}
		for _, v := range t.V {
			m.vertices[v].tcount++
		}
	}

	start := 0
	for i := range m.vertices {
		m.vertices[i].tstart = start
		start += m.vertices[i].tcount
		m.vertices[i].tcount = 0
	}

	refs := make([]Ref, start)
	for tid, t := range m.triangles {
		if t.Deleted {
			continue
		}
		for corner, v := range t.V {
			vv := &m.vertices[v]
			refs[vv.tstart+vv.tcount] = Ref{TID: tid, Corner: corner}
			vv.tcount++
		}
	}
	m.refs = refs
}

// classifyBoundary tallies, for each vertex, how many times each neighbor
// vertex id appears across its incident triangles. An edge (v, w) is on
// the boundary iff w appears exactly once; a vertex is on the boundary iff
// any of its edges are.
func (m *Mesh) classifyBoundary() {
	var neighborCount map[int]int
	for vi := range m.vertices {
		v := &m.vertices[vi]
		v.Boundary = false
		if v.tcount == 0 {
			continue
		}
		if neighborCount == nil {
			neighborCount = make(map[int]int, v.tcount*2)
		} else {
			clear(neighborCount)
		}
		for k := v.tstart; k < v.tstart+v.tcount; k++ {
			ref := m.refs[k]
			t := &m.triangles[ref.TID]
			if t.Deleted {
				continue
			}
			for c := 0; c < 3; c++ {
				if c == ref.Corner {
					continue
				}
				neighborCount[t.V[c]]++
			}
		}
		for _, count := range neighborCount {
			if count == 1 {
				v.Boundary = true
				break
			}
		}
	}
}

// Window returns the (tstart, tcount) adjacency window for vertex id.
func (m *Mesh) Window(id int) (start, count int) {
	v := &m.vertices[id]
	return v.tstart, v.tcount
}

// SetWindow overwrites vertex id's (tstart, tcount) pair. Used by the
// contraction step (collapse package) when relocating a survivor's run to
// the tail of the ref table.
func (m *Mesh) SetWindow(id, start, count int) {
	v := &m.vertices[id]
	v.tstart, v.tcount = start, count
}

// AppendRef appends a ref entry to the tail of the reference table and
// returns its index.
func (m *Mesh) AppendRef(r Ref) int {
	idx := len(m.refs)
	m.refs = append(m.refs, r)
	return idx
}
