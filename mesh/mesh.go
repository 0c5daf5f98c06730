// Package mesh implements the vertex/triangle/ref store the simplification
// engine operates on: two owned tables (vertices, triangles) and one
// derived table (refs) rebuilt by the adjacency maintainer.
package mesh

import (
	"fmt"

	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/spatial"
	"github.com/donaldnguyen99/qmesh/types"
)

// Mesh holds the vertex table, triangle table, and the derived reference
// table, plus the spatial index used for merge-on-insert deduplication.
type Mesh struct {
	cfg config

	vertices  []Vertex
	triangles []Triangle
	refs      []Ref

	index spatial.Index
}

// NewMesh constructs an empty mesh with the given options applied.
func NewMesh(opts ...Option) *Mesh {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Mesh{cfg: cfg}
	if cfg.mergeVertices {
		m.index = spatial.NewHashGrid(cfg.effectiveMergeDistance() * 4)
	}
	return m
}

// NumVertices returns the number of rows in the vertex table, including
// any marked deleted but not yet compacted away.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumTriangles returns the number of rows in the triangle table, including
// any marked deleted but not yet compacted away.
func (m *Mesh) NumTriangles() int { return len(m.triangles) }

// Vertex returns a pointer to the id-th vertex. The pointer is invalidated
// by any AddVertex call or by CompactMesh; do not retain it across either.
func (m *Mesh) Vertex(id int) (*Vertex, error) {
	if !types.VertexID(id).IsValid() || id >= len(m.vertices) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertexID, id)
	}
	return &m.vertices[id], nil
}

// Triangle returns a pointer to the i-th triangle. The pointer is
// invalidated by any AddTriangle call or by CompactMesh.
func (m *Mesh) Triangle(i int) (*Triangle, error) {
	if i < 0 || i >= len(m.triangles) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTriangleIndex, i)
	}
	return &m.triangles[i], nil
}

// Ref returns the k-th entry of the reference table.
func (m *Mesh) Ref(k int) Ref { return m.refs[k] }

// Refs returns the full backing slice of the reference table. Callers must
// not retain it across a call that mutates the mesh.
func (m *Mesh) Refs() []Ref { return m.refs }

// SetRefs replaces the backing reference table wholesale. The adjacency
// maintainer does not call it; its rebuild assigns the table directly.
func (m *Mesh) SetRefs(refs []Ref) { m.refs = refs }

// AddVertex appends a new vertex at position p, or returns the id of an
// existing vertex within the merge distance when merge-on-insert is
// enabled.
func (m *Mesh) AddVertex(p geom3d.Vec3) int {
	if m.index != nil {
		dist := m.cfg.effectiveMergeDistance()
		for _, candidate := range m.index.FindVerticesNear(p, dist) {
			if m.vertices[candidate].Position.Dist2(p) <= dist*dist {
				return candidate
			}
		}
	}
	id := len(m.vertices)
	m.vertices = append(m.vertices, Vertex{Position: p})
	if m.index != nil {
		m.index.AddVertex(id, p)
	}
	if m.cfg.debugAddVertex != nil {
		m.cfg.debugAddVertex(VertexRef{ID: types.VertexID(id), Position: p})
	}
	return id
}

// AddTriangle appends a new triangle referencing the three given vertex
// ids. It returns ErrInvalidVertexID if any index is out of range and
// ErrDegenerateTriangle if two of the three indices coincide.
func (m *Mesh) AddTriangle(v0, v1, v2 int) (int, error) {
	for _, v := range [3]int{v0, v1, v2} {
		if !types.VertexID(v).IsValid() || v >= len(m.vertices) {
			return -1, fmt.Errorf("%w: %d", ErrInvalidVertexID, v)
		}
	}
	if v0 == v1 || v1 == v2 || v2 == v0 {
		return -1, ErrDegenerateTriangle
	}
	id := len(m.triangles)
	t := Triangle{V: [3]int{v0, v1, v2}}
	m.triangles = append(m.triangles, t)
	if m.cfg.debugAddTriangle != nil {
		m.cfg.debugAddTriangle(TriangleRef{ID: id, Triangle: t})
	}
	return id, nil
}

// Vertices returns the backing vertex slice. Callers must not retain it
// across a mutating call.
func (m *Mesh) Vertices() []Vertex { return m.vertices }

// Triangles returns the backing triangle slice. Callers must not retain it
// across a mutating call.
func (m *Mesh) Triangles() []Triangle { return m.triangles }
