package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/mesh"
	"github.com/donaldnguyen99/qmesh/spatial"
	"github.com/donaldnguyen99/qmesh/types"
)

// dedupEpsilon is the per-coordinate tolerance used when merging duplicate
// vertex positions emitted by a triangle-soup exporter: an absolute 1e-7
// per §6, with no relative term since tri9/tri10 coordinates are already
// assumed to be in a fixed, pre-scaled unit.
var dedupEpsilon = types.NewEpsilon(1e-7, 0)

// dedupTolerance is the scalar tolerance dedupEpsilon resolves to at the
// origin. It sizes the hash grid's cells; the query radius and the squared
// distance comparisons use dedupEpsilon.TolForPoints instead.
const dedupTolerance = 1e-7

// LoadTri loads a tri9 or tri10 triangle-soup stream: each line is a
// triangle given as 9 coordinates plus an optional trailing quality value
// that is ignored. Both fixed-width and free-form whitespace layouts are
// accepted transparently, since a fixed 15-character numeric column is
// still separated from its neighbors by whitespace. If the first
// non-blank line looks like a two-number "count factor" header, it is
// consumed and discarded.
//
// Because the format is triangle-soup, every triangle contributes three
// fresh position records; duplicates are merged via a spatial hash grid
// keyed to dedupTolerance, re-verified on hit (hash collisions can pair
// close-but-distinct positions), and a linear scan of the existing
// vertices is used as a fallback when the grid's cell neighbors disagree
// with a hash hit (Design Notes, "Duplicate-vertex merge").
func LoadTri(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.NewMesh()
	grid := spatial.NewHashGrid(dedupTolerance * 8)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	first := true
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		if first {
			first = false
			if len(fields) == 2 {
				// Looks like a "count factor" header; consume and skip.
				if _, err1 := strconv.ParseFloat(fields[0], 64); err1 == nil {
					if _, err2 := strconv.ParseFloat(fields[1], 64); err2 == nil {
						continue
					}
				}
			}
		}

		if len(fields) < 9 {
			return nil, fmt.Errorf("tri line %d: %w: expected 9 or 10 numbers, got %d", lineNo, ErrMalformedLine, len(fields))
		}

		var coords [9]float64
		for i := 0; i < 9; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("tri line %d: %w", lineNo, ErrMalformedLine)
			}
			coords[i] = v
		}

		p0 := geom3d.Vec3{X: coords[0], Y: coords[1], Z: coords[2]}
		p1 := geom3d.Vec3{X: coords[3], Y: coords[4], Z: coords[5]}
		p2 := geom3d.Vec3{X: coords[6], Y: coords[7], Z: coords[8]}

		v0 := dedupVertex(m, grid, p0)
		v1 := dedupVertex(m, grid, p1)
		v2 := dedupVertex(m, grid, p2)

		if v0 == v1 || v1 == v2 || v2 == v0 {
			// Degenerate triangle in the source soup; skip rather than
			// abort the whole load.
			continue
		}

		if _, err := m.AddTriangle(v0, v1, v2); err != nil {
			return nil, fmt.Errorf("tri line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return m, nil
}

// dedupVertex returns the id of an existing vertex within dedupTolerance
// of p, adding a new one if none is found. It first consults the hash
// grid; a hit is re-verified against the true distance (hash cells can
// pair close-but-distinct positions near a tolerance boundary), and a
// linear scan of all vertices added so far is used as a last-resort
// fallback when the grid disagrees.
func dedupVertex(m *mesh.Mesh, grid *spatial.HashGrid, p geom3d.Vec3) int {
	tol := dedupEpsilon.TolForPoints(p)
	tol2 := tol * tol

	for _, candidate := range grid.FindVerticesNear(p, tol) {
		vv, err := m.Vertex(candidate)
		if err != nil {
			continue
		}
		if vv.Position.Dist2(p) <= tol2 {
			return candidate
		}
	}

	for id := 0; id < m.NumVertices(); id++ {
		vv, _ := m.Vertex(id)
		if vv.Position.Dist2(p) <= tol2 {
			return id
		}
	}

	id := m.AddVertex(p)
	grid.AddVertex(id, p)
	return id
}

// SaveTri writes m as a tri9 (cols=9) or tri10 (cols=10) triangle-soup
// stream: one line per triangle, each number printed with at most seven
// significant digits, right-aligned in a fixed 15-character column (so
// neighboring numbers are always separated by whitespace), quality always
// written as 0.
func SaveTri(w io.Writer, m *mesh.Mesh, cols int) error {
	if cols != 9 && cols != 10 {
		return fmt.Errorf("%w: tri column count must be 9 or 10, got %d", ErrMalformedLine, cols)
	}

	bw := bufio.NewWriter(w)
	triangles := m.Triangles()
	for i := range triangles {
		t := &triangles[i]
		if t.Deleted {
			continue
		}
		vs := [3]geom3d.Vec3{}
		for c := 0; c < 3; c++ {
			vv, err := m.Vertex(t.V[c])
			if err != nil {
				return fmt.Errorf("%w: %v", ErrIOFailure, err)
			}
			vs[c] = vv.Position
		}

		if cols == 9 {
			if _, err := fmt.Fprintf(bw, "%15.7g%15.7g%15.7g%15.7g%15.7g%15.7g%15.7g%15.7g%15.7g\n",
				vs[0].X, vs[0].Y, vs[0].Z, vs[1].X, vs[1].Y, vs[1].Z, vs[2].X, vs[2].Y, vs[2].Z); err != nil {
				return fmt.Errorf("%w: %v", ErrIOFailure, err)
			}
		} else {
			if _, err := fmt.Fprintf(bw, "%15.7g%15.7g%15.7g%15.7g%15.7g%15.7g%15.7g%15.7g%15.7g%15.7g\n",
				vs[0].X, vs[0].Y, vs[0].Z, vs[1].X, vs[1].Y, vs[1].Z, vs[2].X, vs[2].Y, vs[2].Z, 0.0); err != nil {
				return fmt.Errorf("%w: %v", ErrIOFailure, err)
			}
		}
	}
	return bw.Flush()
}
