// Package engine implements the simplification loop (§4.7): threshold
// schedule, per-iteration sweep, stop conditions, and region accounting.
package engine

import (
	"fmt"
	"log"
	"math"

	"github.com/donaldnguyen99/qmesh/collapse"
	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/mesh"
	"github.com/donaldnguyen99/qmesh/quadric"
	"github.com/donaldnguyen99/qmesh/region"
	"github.com/donaldnguyen99/qmesh/weight"
)

// Simplify runs the simplification loop against m until the target is
// reached and every bound region has reached its target ratio, the
// no-progress abort threshold fires, or the iteration bound (one outer
// iteration per input triangle) runs out. It mutates m in place and
// leaves it compacted on return.
func Simplify(m *mesh.Mesh, cfg Config) error {
	if cfg.TargetRatio <= 0 || cfg.TargetRatio > 1 {
		if cfg.TargetCount == 0 {
			return fmt.Errorf("%w: %v", ErrRatioOutOfRange, cfg.TargetRatio)
		}
	}

	// -T r_in,r_out gives the bound region its own stop condition
	// (region.Region.Satisfied, driven by TargetRatio) while the overall
	// loop's target tracks the outside-region ratio instead of -t.
	globalRatio := cfg.TargetRatio
	if cfg.OutRegionRatio > 0 {
		globalRatio = cfg.OutRegionRatio
	}

	target := cfg.TargetCount
	if target == 0 {
		target = int(float64(m.NumTriangles()) * globalRatio)
	}
	if target < 4 {
		return ErrDegenerateTarget
	}

	for _, r := range cfg.Regions {
		r.InitCounts(m)
	}

	quadric.Initialize(m)
	m.UpdateMesh(false)

	deletedCount := 0
	noProgress := 0
	total := m.NumTriangles()

	for k := 0; k <= total; k++ {
		if total-deletedCount <= target && allBoundRegionsSatisfied(cfg.Regions) {
			break
		}

		if k%5 == 0 {
			m.UpdateMesh(true)
		}

		triangles := m.Triangles()
		for i := range triangles {
			triangles[i].Dirty = false
		}

		tau0 := 1e-9 * math.Pow(float64(k+3), cfg.Aggressiveness)

		deletedThisIter := 0

		triangles = m.Triangles()
		for ti := 0; ti < len(triangles); ti++ {
			t := &triangles[ti]
			if t.Deleted || t.Dirty {
				continue
			}

			tau := threshold(m, t, tau0, cfg)
			if t.Err[3] > tau {
				continue
			}

			for j := 0; j < 3; j++ {
				if t.Err[j] >= tau {
					continue
				}
				v0 := t.V[j]
				v1 := t.V[(j+1)%3]

				vv0, _ := m.Vertex(v0)
				vv1, _ := m.Vertex(v1)
				if vv0.Boundary != vv1.Boundary {
					continue
				}

				_, p := quadric.CalculateError(m, v0, v1)
				if collapse.Flipped(m, v0, v1, p) || collapse.Flipped(m, v1, v0, p) {
					continue
				}

				// The collapse deletes every triangle incident to both v0 and v1.
				inRegionDeleted := make([]int, len(cfg.Regions))
				start, count := m.Window(v0)
				for rk := start; rk < start+count && len(cfg.Regions) > 0; rk++ {
					nt, err := m.Triangle(m.Ref(rk).TID)
					if err != nil || nt.Deleted || (nt.V[0] != v1 && nt.V[1] != v1 && nt.V[2] != v1) {
						continue
					}
					for ri, r := range cfg.Regions {
						if r.InRegion(m, nt) {
							inRegionDeleted[ri]++
						}
					}
				}

				n := collapse.Contract(m, v0, v1, p)
				deletedCount += n
				deletedThisIter += n

				for ri, r := range cfg.Regions {
					for d := 0; d < inRegionDeleted[ri]; d++ {
						r.NoteDeleted(m, true)
					}
				}

				break
			}
		}

		if cfg.Verbose && cfg.VerboseEveryN > 0 && k%cfg.VerboseEveryN == 0 {
			log.Printf("iteration %d: %d triangles deleted so far", k, deletedCount)
		}

		if deletedThisIter == 0 {
			noProgress++
			if cfg.NoProgressLimit > 0 && noProgress >= cfg.NoProgressLimit {
				break
			}
		} else {
			noProgress = 0
		}

		if allBoundRegionsSatisfied(cfg.Regions) && total-deletedCount <= target {
			break
		}
	}

	m.CompactMesh()
	return nil
}

// threshold computes tau(t) from the base threshold and the active
// weighting regime: uniform (no regions), a single bound region, or
// multiple weighting centers. The kernel is always sampled at the
// triangle's first vertex, not its centroid, and every weighting term
// multiplies into tau0 rather than adding to it, so a region's kernel can
// drive the threshold all the way to zero.
func threshold(m *mesh.Mesh, t *mesh.Triangle, tau0 float64, cfg Config) float64 {
	p := firstVertexPosition(m, t)

	if len(cfg.Regions) == 0 {
		if cfg.Kernel.Kind == weight.Constant {
			return tau0
		}
		return tau0 * math.Pow(cfg.Kernel.Evaluate(p), cfg.Power)
	}

	hasBound := false
	for _, r := range cfg.Regions {
		if r.Bound {
			hasBound = true
			break
		}
	}

	tau := tau0
	for _, r := range cfg.Regions {
		w := 1.0
		if r.Kernel.Kind != weight.Constant {
			w = math.Pow(r.Kernel.Evaluate(p), r.Power)
		}

		if !hasBound {
			tau *= w
			continue
		}

		mask := regionMask(p, r.Kernel)
		if mask == 0 {
			return 0
		}
		tau *= w * mask
	}
	return tau
}

// regionMask evaluates the square kernel shaped by k's own center, radius,
// scale, and sign, independent of k's own Kind: it is the hard in/out lock
// a bound region applies on top of its weighting kernel, not the kernel
// itself.
func regionMask(p geom3d.Vec3, k weight.Kernel) float64 {
	mask := weight.Kernel{Kind: weight.Square, Center: k.Center, Radius: k.Radius, Scale: k.Scale, Negate: k.Negate}
	return mask.Evaluate(p)
}

func firstVertexPosition(m *mesh.Mesh, t *mesh.Triangle) geom3d.Vec3 {
	v0, _ := m.Vertex(t.V[0])
	return v0.Position
}

func allBoundRegionsSatisfied(regions []*region.Region) bool {
	for _, r := range regions {
		if !r.Satisfied() {
			return false
		}
	}
	return true
}
