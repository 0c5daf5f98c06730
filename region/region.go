// Package region implements spatial region descriptors, the in-region
// triangle test, and region-ratio accounting (§4.6).
package region

import (
	"github.com/donaldnguyen99/qmesh/mesh"
	"github.com/donaldnguyen99/qmesh/weight"
)

// Region is a spatial ball paired with a target reduction ratio and a
// weighting kernel.
type Region struct {
	Kernel weight.Kernel
	Power  float64

	TargetRatio float64
	Bound       bool

	Done bool

	initialCount int
	currentCount int
}

// InRegion reports whether all three of t's vertices lie within the
// region's radius of its center.
func (r *Region) InRegion(m *mesh.Mesh, t *mesh.Triangle) bool {
	for _, v := range t.V {
		vv, err := m.Vertex(v)
		if err != nil {
			return false
		}
		if vv.Position.Dist2(r.Kernel.Center) > r.Kernel.Radius*r.Kernel.Radius {
			return false
		}
	}
	return true
}

// InitCounts scans the mesh once to establish the region's initial and
// current in-region triangle counts. Call this at loop entry, before any
// collapses, for every active region, bound or unbound, so later ratio
// computations are never left reading a count that was only ever
// populated by a different code path.
func (r *Region) InitCounts(m *mesh.Mesh) {
	count := 0
	triangles := m.Triangles()
	for i := range triangles {
		if triangles[i].Deleted {
			continue
		}
		if r.InRegion(m, &triangles[i]) {
			count++
		}
	}
	r.initialCount = count
	r.currentCount = count
}

// Ratio returns the current in-region count divided by the initial count.
// A region with zero initial triangles reports ratio 0 (vacuously
// satisfied).
func (r *Region) Ratio() float64 {
	if r.initialCount == 0 {
		return 0
	}
	return float64(r.currentCount) / float64(r.initialCount)
}

// NoteDeleted decrements the region's current in-region count when a
// triangle that was in-region is deleted by a collapse.
func (r *Region) NoteDeleted(m *mesh.Mesh, wasInRegion bool) {
	if wasInRegion && r.currentCount > 0 {
		r.currentCount--
	}
	if r.Bound && r.Ratio() <= r.TargetRatio {
		r.Done = true
	}
}

// Satisfied reports whether a bound region has reached its target ratio.
// Unbound regions are always reported satisfied since they impose no stop
// condition of their own.
func (r *Region) Satisfied() bool {
	if !r.Bound {
		return true
	}
	return r.Done || r.Ratio() <= r.TargetRatio
}
