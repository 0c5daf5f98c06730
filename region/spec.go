package region

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/weight"
)

// ParseSpecFile reads a region-spec text file (the -L CLI flag): one
// region per line, each a sequence of short flag/value pairs such as
// "-q 0.3 -f gaussian -c 10,-2,0.5 -r 20 -s 2 -p 3".
func ParseSpecFile(r io.Reader) ([]*Region, error) {
	var regions []*Region
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		reg, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("region spec line %d: %w", lineNo, err)
		}
		regions = append(regions, reg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("region spec: %w", err)
	}
	return regions, nil
}

func parseLine(line string) (*Region, error) {
	fields := strings.Fields(line)
	reg := &Region{Kernel: weight.Kernel{Kind: weight.Constant, Scale: 1}, Power: 1}

	for i := 0; i < len(fields); i++ {
		flag := fields[i]
		next := func() (string, error) {
			i++
			if i >= len(fields) {
				return "", fmt.Errorf("flag %s missing value", flag)
			}
			return fields[i], nil
		}

		switch flag {
		case "-q":
			v, err := next()
			if err != nil {
				return nil, err
			}
			ratio, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("-q value: %w", err)
			}
			reg.TargetRatio = ratio
			reg.Bound = false
		case "-Q":
			v, err := next()
			if err != nil {
				return nil, err
			}
			ratio, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("-Q value: %w", err)
			}
			reg.TargetRatio = ratio
			reg.Bound = true
		case "-f":
			v, err := next()
			if err != nil {
				return nil, err
			}
			kind, err := ParseKernelName(v)
			if err != nil {
				return nil, err
			}
			reg.Kernel.Kind = kind
		case "-c":
			v, err := next()
			if err != nil {
				return nil, err
			}
			c, err := parseCenter(v)
			if err != nil {
				return nil, err
			}
			reg.Kernel.Center = c
		case "-r":
			v, err := next()
			if err != nil {
				return nil, err
			}
			radius, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("-r value: %w", err)
			}
			reg.Kernel.Radius = radius
		case "-s":
			v, err := next()
			if err != nil {
				return nil, err
			}
			scale, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("-s value: %w", err)
			}
			reg.Kernel.Scale = scale
		case "-p":
			v, err := next()
			if err != nil {
				return nil, err
			}
			power, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("-p value: %w", err)
			}
			reg.Power = power
		case "-n":
			v, err := next()
			if err != nil {
				return nil, err
			}
			negate, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("-n value: %w", err)
			}
			reg.Kernel.Negate = negate
		default:
			return nil, fmt.Errorf("unrecognized flag %q", flag)
		}
	}
	return reg, nil
}

// ParseKernelName maps a CLI kernel name to its weight.Kind.
func ParseKernelName(name string) (weight.Kind, error) {
	switch strings.ToLower(name) {
	case "constant":
		return weight.Constant, nil
	case "gaussian":
		return weight.Gaussian, nil
	case "triangular":
		return weight.Triangular, nil
	case "square":
		return weight.Square, nil
	default:
		return 0, fmt.Errorf("unknown kernel %q", name)
	}
}

// parseCenter parses a "x,y,z" triple, accepting any of the separator
// characters {[( ,)]} between the three components.
func parseCenter(s string) (geom3d.Vec3, error) {
	isSep := func(r rune) bool {
		switch r {
		case '{', '[', '(', ',', ')', ']', '}', ' ':
			return true
		}
		return false
	}
	parts := strings.FieldsFunc(s, isSep)
	if len(parts) != 3 {
		return geom3d.Vec3{}, fmt.Errorf("center %q: expected 3 components, got %d", s, len(parts))
	}
	var out [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return geom3d.Vec3{}, fmt.Errorf("center %q: %w", s, err)
		}
		out[i] = v
	}
	return geom3d.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}
