package spatial

import (
	"math"

	"github.com/donaldnguyen99/qmesh/geom3d"
)

// HashGrid implements Index using a uniform 3D spatial hash grid.
//
// It is the vertex-deduplication structure used while loading triangle-soup
// formats (tri9/tri10): every position is hashed into a cell, and a
// duplicate candidate is only a handful of neighboring vertices rather than
// the whole accumulated vertex list.
type HashGrid struct {
	cellSize float64
	cells    map[[3]int][]int
}

// NewHashGrid creates a hash grid index with the given cell size.
func NewHashGrid(cellSize float64) *HashGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &HashGrid{
		cellSize: cellSize,
		cells:    make(map[[3]int][]int),
	}
}

// FindVerticesNear returns vertices in cells overlapping the query radius.
func (h *HashGrid) FindVerticesNear(p geom3d.Vec3, radius float64) []int {
	if radius < 0 {
		radius = 0
	}

	if radius == 0 {
		cell := h.pointToCell(p)
		return append([]int(nil), h.cells[cell]...)
	}

	min := h.pointToCell(geom3d.Vec3{X: p.X - radius, Y: p.Y - radius, Z: p.Z - radius})
	max := h.pointToCell(geom3d.Vec3{X: p.X + radius, Y: p.Y + radius, Z: p.Z + radius})

	var result []int
	for cz := min[2]; cz <= max[2]; cz++ {
		for cy := min[1]; cy <= max[1]; cy++ {
			for cx := min[0]; cx <= max[0]; cx++ {
				if vertices, ok := h.cells[[3]int{cx, cy, cz}]; ok {
					result = append(result, vertices...)
				}
			}
		}
	}

	return result
}

// AddVertex adds a vertex to the appropriate cell.
func (h *HashGrid) AddVertex(id int, p geom3d.Vec3) {
	cell := h.pointToCell(p)
	h.cells[cell] = append(h.cells[cell], id)
}

// Build is a no-op for hash grid (incremental structure).
func (h *HashGrid) Build() {}

func (h *HashGrid) pointToCell(p geom3d.Vec3) [3]int {
	return [3]int{
		int(math.Floor(p.X / h.cellSize)),
		int(math.Floor(p.Y / h.cellSize)),
		int(math.Floor(p.Z / h.cellSize)),
	}
}
