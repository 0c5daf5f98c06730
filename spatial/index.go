package spatial

import "github.com/donaldnguyen99/qmesh/geom3d"

// Index provides spatial queries for vertices, used by the tri9/tri10
// loaders to merge duplicate positions emitted by upstream triangle
// soup exporters.
type Index interface {
	// FindVerticesNear returns candidate vertex IDs near point p. The result
	// includes every vertex within radius of p but may also include vertices
	// farther away; callers check the exact distance.
	FindVerticesNear(p geom3d.Vec3, radius float64) []int
	// AddVertex adds a vertex to the index.
	AddVertex(id int, p geom3d.Vec3)
	// Build finalizes the index structure.
	Build()
}
