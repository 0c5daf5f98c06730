// Package ioformat implements the OBJ and tri9/tri10 loaders/writers that
// sit at the engine's external boundary (§6).
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/mesh"
)

// LoadOBJ parses an ASCII OBJ stream into a fresh Mesh. Recognized
// directives: mtllib, usemtl, v, vt (2 or 3 components), and the four f
// variants (plain, i//, i//n, i/t/n). Unknown directives are ignored.
func LoadOBJ(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.NewMesh()

	var uvs []geom3d.Vec3
	type faceUV struct{ tid, corner, uvIdx int }
	var faceUVs []faceUV

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: %w: expected v x y z", lineNo, ErrMalformedLine)
			}
			x, err1 := strconv.ParseFloat(fields[1], 64)
			y, err2 := strconv.ParseFloat(fields[2], 64)
			z, err3 := strconv.ParseFloat(fields[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("obj line %d: %w", lineNo, ErrMalformedLine)
			}
			m.AddVertex(geom3d.Vec3{X: x, Y: y, Z: z})
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("obj line %d: %w: expected vt u v [w]", lineNo, ErrMalformedLine)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			w := 0.0
			var err3 error
			if len(fields) >= 4 {
				w, err3 = strconv.ParseFloat(fields[3], 64)
			}
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("obj line %d: %w", lineNo, ErrMalformedLine)
			}
			uvs = append(uvs, geom3d.Vec3{X: u, Y: v, Z: w})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: %w: expected 3 face corners", lineNo, ErrMalformedLine)
			}
			vi := make([]int, 3)
			uvi := make([]int, 3)
			hasUV := false
			for c := 0; c < 3; c++ {
				v, uvIdx, withUV, err := parseFaceCorner(fields[c+1])
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				vi[c] = v
				if withUV {
					hasUV = true
					uvi[c] = uvIdx
				}
			}
			tid, err := m.AddTriangle(vi[0], vi[1], vi[2])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
			}
			if hasUV {
				for c := 0; c < 3; c++ {
					faceUVs = append(faceUVs, faceUV{tid: tid, corner: c, uvIdx: uvi[c]})
				}
			}
		case "mtllib", "usemtl":
			// Material bookkeeping is out of scope for the simplification
			// loop itself; names are not retained by the in-memory mesh.
		default:
			// Unknown directives are ignored per §6.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	for _, fu := range faceUVs {
		if fu.uvIdx < 0 || fu.uvIdx >= len(uvs) {
			continue
		}
		t, err := m.Triangle(fu.tid)
		if err != nil {
			continue
		}
		t.UV[fu.corner] = uvs[fu.uvIdx]
		t.Attrs |= mesh.AttrHasUV
	}

	return m, nil
}

// parseFaceCorner parses one OBJ face-corner token, handling all four
// directive variants: "i", "i/t", "i/t/n", "i//n". Returns the zero-based
// vertex index, zero-based UV index (if present), and whether a UV index
// was present.
func parseFaceCorner(tok string) (vertex, uv int, hasUV bool, err error) {
	parts := strings.Split(tok, "/")
	vi, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: bad face index %q", ErrMalformedLine, tok)
	}
	vertex = vi - 1

	if len(parts) >= 2 && parts[1] != "" {
		ui, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, false, fmt.Errorf("%w: bad uv index %q", ErrMalformedLine, tok)
		}
		uv = ui - 1
		hasUV = true
	}
	return vertex, uv, hasUV, nil
}

// SaveOBJ writes m as an ASCII OBJ stream: all vertices as v lines, then
// for each surviving triangle its three per-corner vt lines (when it
// carries UVs) followed by its f line, with 1-based indices.
func SaveOBJ(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	vertices := m.Vertices()
	for i := range vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", vertices[i].Position.X, vertices[i].Position.Y, vertices[i].Position.Z); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}

	triangles := m.Triangles()
	uvBase := 0
	for i := range triangles {
		t := &triangles[i]
		if t.Deleted {
			continue
		}
		if t.Attrs&mesh.AttrHasUV != 0 {
			for c := 0; c < 3; c++ {
				if _, err := fmt.Fprintf(bw, "vt %g %g\n", t.UV[c].X, t.UV[c].Y); err != nil {
					return fmt.Errorf("%w: %v", ErrIOFailure, err)
				}
			}
			if _, err := fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n",
				t.V[0]+1, uvBase+1, t.V[1]+1, uvBase+2, t.V[2]+1, uvBase+3); err != nil {
				return fmt.Errorf("%w: %v", ErrIOFailure, err)
			}
			uvBase += 3
		} else {
			if _, err := fmt.Fprintf(bw, "f %d %d %d\n", t.V[0]+1, t.V[1]+1, t.V[2]+1); err != nil {
				return fmt.Errorf("%w: %v", ErrIOFailure, err)
			}
		}
	}

	return bw.Flush()
}
