// Package geom3d provides the 3D vector algebra and quadric matrix types
// used throughout the simplification engine.
package geom3d

import "math"

// Vec3 represents a position or direction in 3D Cartesian space.
//
// Coordinates use float64 precision, matching the double-precision
// geometry model used by the simplification engine.
//
// Example:
//
//	p := geom3d.Vec3{X: 1, Y: 0, Z: 0}
//	q := geom3d.Vec3{X: 0, Y: 1, Z: 0}
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the componentwise sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the componentwise difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length of a.
func (a Vec3) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Dist2 returns the squared distance between a and b.
func (a Vec3) Dist2(b Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Normalized returns a unit vector in the direction of a.
//
// If a has zero length the result is undefined (matches the source
// algorithm, which never normalizes a zero vector on the hot path).
func (a Vec3) Normalized() Vec3 {
	l := a.Length()
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Mid returns the midpoint of a and b.
func Mid(a, b Vec3) Vec3 {
	return a.Add(b).Scale(0.5)
}
