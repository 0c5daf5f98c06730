package geom3d

// SymmetricQuadric is the upper triangle of a symmetric 4x4 matrix Q used
// by the quadric error metric. The ten entries correspond to:
//
//	[ m0 m1 m2 m3 ]
//	[ m1 m4 m5 m6 ]
//	[ m2 m5 m7 m8 ]
//	[ m3 m6 m8 m9 ]
type SymmetricQuadric struct {
	m [10]float64
}

// PlaneQuadric builds the rank-1 quadric K = [a,b,c,d][a,b,c,d]^T for the
// plane with outward unit normal (a,b,c) and offset d (where d = -n·p for
// a point p on the plane).
func PlaneQuadric(a, b, c, d float64) SymmetricQuadric {
	return SymmetricQuadric{m: [10]float64{
		a * a, a * b, a * c, a * d,
		b * b, b * c, b * d,
		c * c, c * d,
		d * d,
	}}
}

// Add returns the sum of two quadrics.
func (q SymmetricQuadric) Add(o SymmetricQuadric) SymmetricQuadric {
	var r SymmetricQuadric
	for i := range q.m {
		r.m[i] = q.m[i] + o.m[i]
	}
	return r
}

// At returns the i-th upper-triangular entry (0..9).
func (q SymmetricQuadric) At(i int) float64 {
	return q.m[i]
}

// det3 computes the determinant of the 3x3 matrix formed by the nine
// supplied entry indices, read in row-major order.
func (q SymmetricQuadric) det3(a11, a12, a13, a21, a22, a23, a31, a32, a33 int) float64 {
	m := q.m
	return m[a11]*m[a22]*m[a33] + m[a13]*m[a21]*m[a32] + m[a12]*m[a23]*m[a31] -
		m[a13]*m[a22]*m[a31] - m[a11]*m[a23]*m[a32] - m[a12]*m[a21]*m[a33]
}

// Det3 returns det(Q3), the determinant of the upper-left 3x3 block.
//
// A non-zero value indicates the optimal contraction point for this
// quadric can be solved for in closed form.
func (q SymmetricQuadric) Det3() float64 {
	return q.det3(0, 1, 2, 1, 4, 5, 2, 5, 7)
}

// OptimalPoint solves for the point p minimizing e(p) = [p,1] Q [p,1]^T,
// assuming Det3() is non-zero. Behavior is undefined if it is zero.
func (q SymmetricQuadric) OptimalPoint() Vec3 {
	det := q.Det3()
	return Vec3{
		X: -1 / det * q.det3(1, 2, 3, 4, 5, 6, 5, 7, 8),
		Y: 1 / det * q.det3(0, 2, 3, 1, 5, 6, 2, 7, 8),
		Z: -1 / det * q.det3(0, 1, 3, 1, 4, 6, 2, 5, 8),
	}
}

// Error evaluates e(v) = [v,1] Q [v,1]^T, the sum of squared perpendicular
// distances from v to each plane that contributed to Q.
func (q SymmetricQuadric) Error(v Vec3) float64 {
	m := q.m
	x, y, z := v.X, v.Y, v.Z
	return m[0]*x*x + 2*m[1]*x*y + 2*m[2]*x*z + 2*m[3]*x + m[4]*y*y +
		2*m[5]*y*z + 2*m[6]*y + m[7]*z*z + 2*m[8]*z + m[9]
}
