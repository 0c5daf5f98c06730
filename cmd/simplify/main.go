// Command simplify decimates a triangular mesh using a quadric error
// metric, optionally biasing the reduction toward or away from
// user-specified spatial regions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/donaldnguyen99/qmesh/engine"
	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/ioformat"
	"github.com/donaldnguyen99/qmesh/region"
	"github.com/donaldnguyen99/qmesh/weight"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [option...] inputfile outputfile\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Simplifies a triangular .obj, .tri9, or .tri10 mesh using a quadric error metric.")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintf(os.Stderr, "  %s -t 0.2 in.obj out.obj\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -v -t 0.1 -f gaussian -c 10,-20,0.5 -r 10 -n in.obj out.obj\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
}

func main() {
	var (
		targetRatio    = flag.Float64("t", 0.5, "total ratio of target's polygon count to source's")
		regionRatios   = flag.String("T", "", "in-region,outside-region target ratios, e.g. 0.8,0.1 (overrides -t)")
		aggressiveness = flag.Float64("a", 7.0, "aggressiveness; higher=faster, lower=better decimation")
		kernelName     = flag.String("f", "constant", "weighting function: square|triangular|gaussian|constant")
		center         = flag.String("c", "0,0,0", "comma-separated coordinate for the weighting function's center")
		radius         = flag.Float64("r", 1.0, "radius of the weighting function")
		scale          = flag.Float64("s", 1.0, "scale for the weighting function")
		power          = flag.Float64("p", 1.0, "power the weighting function is raised to")
		negate         = flag.Bool("n", false, "use the negative form of the weighting function")
		verbose        = flag.Bool("v", false, "be verbose")
		verboseEvery   = flag.Int("V", 10000, "be verbose with details every n iterations")
		noProgress     = flag.Int("b", 1000, "abort after this many consecutive no-progress iterations")
		regionSpecFile = flag.String("L", "", "load a region-spec file (see region.ParseSpecFile)")
		help           = flag.Bool("h", false, "show help")
	)
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return
	}
	if flag.NArg() < 2 {
		usage()
		return
	}

	cfg := engine.DefaultConfig()
	cfg.TargetRatio = *targetRatio
	cfg.Aggressiveness = *aggressiveness
	cfg.Verbose = *verbose
	cfg.VerboseEveryN = *verboseEvery
	cfg.NoProgressLimit = *noProgress
	cfg.Negate = *negate
	cfg.Power = *power

	kind, err := region.ParseKernelName(*kernelName)
	if err != nil {
		kind = weight.Constant
	}
	c, err := parseCenterFlag(*center)
	if err != nil {
		log.Fatalf("invalid -c value %q: %v", *center, err)
	}
	cfg.Kernel = weight.Kernel{Kind: kind, Center: c, Radius: *radius, Scale: *scale, Negate: *negate}

	if *regionSpecFile != "" {
		f, err := os.Open(*regionSpecFile)
		if err != nil {
			log.Fatalf("cannot open region spec file %q: %v", *regionSpecFile, err)
		}
		regions, err := region.ParseSpecFile(f)
		f.Close()
		if err != nil {
			log.Fatalf("cannot parse region spec file: %v", err)
		}
		cfg.Regions = regions
	} else if *regionRatios != "" {
		inR, outR, err := parseRegionRatios(*regionRatios)
		if err != nil {
			log.Fatalf("invalid -T value %q: %v", *regionRatios, err)
		}
		cfg.Regions = []*region.Region{{
			Kernel:      weight.Kernel{Kind: kind, Center: c, Radius: *radius, Scale: *scale, Negate: *negate},
			Power:       *power,
			TargetRatio: inR,
			Bound:       true,
		}}
		cfg.OutRegionRatio = outR
	}

	inPath, outPath := flag.Arg(0), flag.Arg(1)

	m, err := ioformat.LoadFile(inPath)
	if err != nil {
		log.Printf("failed to load %q: %v", inPath, err)
		os.Exit(1)
	}
	if m.NumTriangles() < 3 || m.NumVertices() < 3 {
		log.Printf("input mesh has too few vertices or triangles")
		os.Exit(1)
	}

	startCount := m.NumTriangles()
	if err := engine.Simplify(m, cfg); err != nil {
		if errors.Is(err, engine.ErrDegenerateTarget) {
			fmt.Fprintln(os.Stderr, "Object will not survive such extreme decimation")
		}
		log.Printf("simplification failed: %v", err)
		os.Exit(1)
	}

	if err := ioformat.SaveFile(outPath, m); err != nil {
		log.Printf("failed to write %q: %v", outPath, err)
		os.Exit(1)
	}

	if *verbose {
		log.Printf("Output: %d vertices, %d triangles (%.4f reduction)",
			m.NumVertices(), m.NumTriangles(), float64(m.NumTriangles())/float64(startCount))
	}
}

func parseCenterFlag(s string) (geom3d.Vec3, error) {
	isSep := func(r rune) bool {
		switch r {
		case '{', '[', '(', ',', ')', ']', '}', ' ':
			return true
		}
		return false
	}
	parts := strings.FieldsFunc(s, isSep)
	if len(parts) != 3 {
		return geom3d.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(parts))
	}
	var out [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return geom3d.Vec3{}, err
		}
		out[i] = v
	}
	return geom3d.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

func parseRegionRatios(s string) (in, out float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected in,out pair, got %q", s)
	}
	in, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	out, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	if in > 1 {
		in = 0.5
	}
	if out > 1 {
		out = 0.5
	}
	return in, out, nil
}
