// Package weight implements the spatial weighting kernels used to bias the
// simplification threshold toward or away from a region (§4.5).
package weight

import (
	"math"

	"github.com/donaldnguyen99/qmesh/geom3d"
)

// Kind is a tagged variant over the four supported kernels. Representing
// kernels this way, rather than as function pointers, keeps the loop's
// fast path a tag comparison instead of an identity comparison.
type Kind int

const (
	// Constant applies no attenuation; the threshold is uniform everywhere.
	Constant Kind = iota
	Gaussian
	Triangular
	Square
)

// Kernel holds a kernel kind and its parameters.
type Kernel struct {
	Kind   Kind
	Center geom3d.Vec3
	Radius float64
	Scale  float64
	Negate bool
}

// Evaluate returns the kernel's weighting value in [0,1] for position p.
func (k Kernel) Evaluate(p geom3d.Vec3) float64 {
	switch k.Kind {
	case Constant:
		return constantValue()
	case Gaussian:
		return gaussianValue(p, k.Center, k.Radius, k.Scale, k.Negate)
	case Triangular:
		return triangularValue(p, k.Center, k.Radius, k.Scale, k.Negate)
	case Square:
		return squareValue(p, k.Center, k.Radius, k.Scale, k.Negate)
	default:
		return constantValue()
	}
}

func constantValue() float64 { return 0 }

func gaussianValue(p, center geom3d.Vec3, radius, scale float64, negate bool) float64 {
	if scale <= 1 {
		scale = 2
	}
	dist2 := p.Dist2(center)
	denom := 2 * (radius * radius) / (2 * math.Log(scale))
	g := math.Exp(-dist2 / denom)
	if negate {
		return g
	}
	return 1 - g
}

func triangularValue(p, center geom3d.Vec3, radius, scale float64, negate bool) float64 {
	if scale == 0 {
		scale = 1
	}
	d := p.Sub(center).Length()
	rPrime := radius / scale
	if math.Abs(d) < math.Abs(rPrime) {
		ratio := math.Abs(d / rPrime)
		if negate {
			return 1 - ratio
		}
		return ratio
	}
	if negate {
		return 0
	}
	return 1
}

func squareValue(p, center geom3d.Vec3, radius, scale float64, negate bool) float64 {
	d := p.Sub(center).Length()
	if math.Abs(d) <= radius {
		s := math.Abs(scale)
		if s > 1 {
			s = 1
		}
		if negate {
			return s
		}
		return 1 - s
	}
	if negate {
		return 0
	}
	return 1
}
