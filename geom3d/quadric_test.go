package geom3d

import "testing"

func TestPlaneQuadricErrorOnPlane(t *testing.T) {
	// The plane z=0, normal (0,0,1), d=0.
	q := PlaneQuadric(0, 0, 1, 0)
	if e := q.Error(Vec3{1, 2, 0}); e > 1e-12 {
		t.Fatalf("expected zero error on-plane, got %v", e)
	}
	if e := q.Error(Vec3{0, 0, 2}); e < 3.9 || e > 4.1 {
		t.Fatalf("expected error 4 for distance 2, got %v", e)
	}
}

func TestQuadricAddAccumulates(t *testing.T) {
	q1 := PlaneQuadric(0, 0, 1, 0)
	q2 := PlaneQuadric(0, 0, 1, -1)
	sum := q1.Add(q2)
	if sum.At(9) != q1.At(9)+q2.At(9) {
		t.Fatalf("expected entries to add componentwise")
	}
}

func TestDet3NonDegenerate(t *testing.T) {
	// Three independent planes should yield a non-zero 3x3 determinant.
	q := PlaneQuadric(1, 0, 0, 0).Add(PlaneQuadric(0, 1, 0, 0)).Add(PlaneQuadric(0, 0, 1, 0))
	if d := q.Det3(); d == 0 {
		t.Fatalf("expected non-zero determinant, got %v", d)
	}
	p := q.OptimalPoint()
	if p != (Vec3{0, 0, 0}) {
		t.Fatalf("expected origin to minimize error for axis-aligned planes, got %v", p)
	}
}
