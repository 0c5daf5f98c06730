package mesh

import "errors"

var (
	// ErrInvalidVertexID indicates a vertex ID is out of range or negative.
	ErrInvalidVertexID = errors.New("mesh: invalid vertex id")

	// ErrInvalidTriangleIndex indicates a triangle index is out of range.
	ErrInvalidTriangleIndex = errors.New("mesh: invalid triangle index")

	// ErrDegenerateTriangle indicates a triangle references the same vertex
	// more than once.
	ErrDegenerateTriangle = errors.New("mesh: degenerate triangle (repeated vertex)")
)
