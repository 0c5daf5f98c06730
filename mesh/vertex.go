package mesh

import (
	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/types"
)

// Vertex is one row of the mesh's vertex table.
//
// tstart/tcount describe a contiguous window into the owning Mesh's ref
// table: refs[tstart : tstart+tcount] enumerates every corner currently
// incident to this vertex. The window is exact immediately after the
// adjacency maintainer runs and a superset of the truth in between (stale
// entries are guarded by each triangle's deleted flag).
type Vertex struct {
	Position geom3d.Vec3
	Quadric  geom3d.SymmetricQuadric

	tstart int
	tcount int

	Boundary bool
}

// VertexRef is the payload passed to a WithDebugAddVertex hook.
type VertexRef struct {
	ID       types.VertexID
	Position geom3d.Vec3
}
