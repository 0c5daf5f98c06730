package engine

import (
	"github.com/donaldnguyen99/qmesh/region"
	"github.com/donaldnguyen99/qmesh/weight"
)

// Config holds every tunable of the simplification loop (§4.7), populated
// from the CLI surface (§6) or programmatically.
type Config struct {
	// TargetRatio is the global target triangle count expressed as a
	// fraction of the input count. Ignored if TargetCount is set.
	TargetRatio float64

	// TargetCount, if non-zero, overrides TargetRatio with an absolute
	// target triangle count.
	TargetCount int

	// OutRegionRatio carries the outside half of -T r_in,r_out; the
	// in-region half is the bound region's TargetRatio. Simplify does not
	// read InRegionRatio.
	InRegionRatio  float64
	OutRegionRatio float64

	Aggressiveness float64

	Kernel weight.Kernel
	Power  float64

	Negate bool

	Regions []*region.Region

	Verbose       bool
	VerboseEveryN int

	NoProgressLimit int
}

// DefaultConfig returns the library defaults: target ratio 0.5,
// aggressiveness 7, the constant kernel, power 1, and a no-progress limit
// of 10000 iterations. The simplify CLI overwrites these from its own flag
// defaults, which differ in places (its -b default is 1000).
func DefaultConfig() Config {
	return Config{
		TargetRatio:     0.5,
		Aggressiveness:  7,
		Kernel:          weight.Kernel{Kind: weight.Constant, Scale: 1},
		Power:           1,
		NoProgressLimit: 10000,
	}
}

// Option mutates a Config. Kept as a type alias target for CLI wiring code
// that prefers the functional-options idiom over direct field assignment.
type Option func(*Config)

func WithTargetRatio(ratio float64) Option {
	return func(c *Config) { c.TargetRatio = ratio }
}

func WithTargetCount(count int) Option {
	return func(c *Config) { c.TargetCount = count }
}

func WithAggressiveness(a float64) Option {
	return func(c *Config) { c.Aggressiveness = a }
}

func WithNoProgressLimit(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.NoProgressLimit = n
		}
	}
}

func WithRegions(regions []*region.Region) Option {
	return func(c *Config) { c.Regions = regions }
}
