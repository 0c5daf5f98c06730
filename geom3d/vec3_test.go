package geom3d

import "testing"

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := x.Cross(y)
	if z != (Vec3{0, 0, 1}) {
		t.Fatalf("expected z axis, got %v", z)
	}
}

func TestVec3Normalized(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalized()
	if l := v.Length(); l < 0.9999 || l > 1.0001 {
		t.Fatalf("expected unit length, got %v", l)
	}
}

func TestVec3Dist2(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{3, 4, 0}
	if got := a.Dist2(b); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

func TestMid(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, 6}
	if got := Mid(a, b); got != (Vec3{1, 2, 3}) {
		t.Fatalf("expected midpoint, got %v", got)
	}
}
