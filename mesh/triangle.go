package mesh

import "github.com/donaldnguyen99/qmesh/geom3d"

// AttrFlags is a bitmask of per-triangle attributes carried through from
// the loader. LoadOBJ sets only AttrHasUV.
type AttrFlags uint8

const (
	// AttrHasUV indicates the triangle carries per-corner UV coordinates.
	AttrHasUV AttrFlags = 1 << iota
	// AttrHasNormalIndex marks a face whose source gave per-corner normal
	// indices (OBJ's n slot). LoadOBJ does not set it and SaveOBJ does not
	// read it; OBJ normal indices are discarded on load.
	AttrHasNormalIndex
)

// Triangle is one row of the mesh's triangle table.
//
// Err holds the four per-edge collapse errors: Err[0] for edge (V0,V1),
// Err[1] for (V1,V2), Err[2] for (V2,V0), and Err[3] the minimum of the
// three, the value the simplification loop's threshold test reads first.
type Triangle struct {
	V [3]int

	Err [4]float64

	Deleted bool
	Dirty   bool

	Attrs    AttrFlags
	Normal   geom3d.Vec3
	UV       [3]geom3d.Vec3 // Z unused; kept as Vec3 to reuse the type for a (u,v) pair.
	Material int
}

// TriangleRef is the payload passed to a WithDebugAddTriangle hook.
type TriangleRef struct {
	ID       int
	Triangle Triangle
}

// Corner returns the j-th vertex index of the triangle, j in {0,1,2}.
func (t *Triangle) Corner(j int) int {
	return t.V[j]
}
