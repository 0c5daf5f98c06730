// Command histogram prints the edge-length distribution of a mesh as an
// ASCII bar chart, optionally paging bucket-by-bucket in an interactive
// terminal mode.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/donaldnguyen99/qmesh/ioformat"
	"github.com/donaldnguyen99/qmesh/mesh"

	"github.com/eiannone/keyboard"
)

func main() {
	binCount := flag.Int("b", 100, "number of histogram buckets")
	maxHeight := flag.Int("c", 60, "max bar width in characters")
	interactive := flag.Bool("i", false, "page through buckets interactively with arrow keys")
	verbose := flag.Bool("v", false, "be verbose")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-b n] [-c n] [-i] input.obj\n", os.Args[0])
		return
	}

	m, err := ioformat.LoadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to load %q: %v", flag.Arg(0), err)
	}
	if *verbose {
		log.Printf("loaded %d vertices, %d triangles", m.NumVertices(), m.NumTriangles())
	}

	buckets, minVal, binSize := edgeLengthHistogram(m, *binCount)

	if *interactive {
		if err := pageBuckets(buckets, minVal, binSize, *maxHeight); err != nil {
			log.Printf("interactive paging unavailable, falling back to full dump: %v", err)
			printBuckets(buckets, minVal, binSize, *maxHeight)
		}
		return
	}
	printBuckets(buckets, minVal, binSize, *maxHeight)
}

// edgeLengthHistogram buckets every triangle edge's length into binCount+1
// evenly spaced bins between the observed min and max edge length.
func edgeLengthHistogram(m *mesh.Mesh, binCount int) (buckets []int, minVal, binSize float64) {
	triangles := m.Triangles()
	lengths := make([]float64, 0, len(triangles)*3)
	for i := range triangles {
		t := &triangles[i]
		if t.Deleted {
			continue
		}
		for c := 0; c < 3; c++ {
			v0, _ := m.Vertex(t.V[c])
			v1, _ := m.Vertex(t.V[(c+1)%3])
			lengths = append(lengths, v1.Position.Sub(v0.Position).Length())
		}
	}
	if len(lengths) == 0 {
		return nil, 0, 0
	}

	minVal, maxVal := lengths[0], lengths[0]
	for _, l := range lengths {
		minVal = math.Min(minVal, l)
		maxVal = math.Max(maxVal, l)
	}

	rng := maxVal - minVal
	if rng == 0 {
		rng = 1
	}
	binSize = rng / float64(binCount)

	buckets = make([]int, binCount+1)
	for _, l := range lengths {
		idx := int(math.Round((l - minVal) / rng * float64(binCount)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(buckets) {
			idx = len(buckets) - 1
		}
		buckets[idx]++
	}
	return buckets, minVal, binSize
}

func printBuckets(buckets []int, minVal, binSize float64, maxHeight int) {
	maxFreq := 0
	for _, f := range buckets {
		if f > maxFreq {
			maxFreq = f
		}
	}
	for i, f := range buckets {
		bar := 0
		if maxFreq > 0 {
			bar = int(math.Ceil(float64(f) / float64(maxFreq) * float64(maxHeight)))
		}
		fmt.Printf("%8.4f |%s %d\n", float64(i)*binSize+minVal, repeat(bar), f)
	}
}

func repeat(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b) + "."
}

// pageBuckets shows one bucket at a time, advancing on the down arrow and
// retreating on the up arrow, quitting on 'q' or Esc.
func pageBuckets(buckets []int, minVal, binSize float64, maxHeight int) error {
	if err := keyboard.Open(); err != nil {
		return err
	}
	defer keyboard.Close()

	maxFreq := 0
	for _, f := range buckets {
		if f > maxFreq {
			maxFreq = f
		}
	}

	idx := 0
	for {
		f := buckets[idx]
		bar := 0
		if maxFreq > 0 {
			bar = int(math.Ceil(float64(f) / float64(maxFreq) * float64(maxHeight)))
		}
		fmt.Printf("\r[%d/%d] %8.4f |%s %d   ", idx+1, len(buckets), float64(idx)*binSize+minVal, repeat(bar), f)

		char, key, err := keyboard.GetKey()
		if err != nil {
			return err
		}
		switch key {
		case keyboard.KeyArrowDown:
			if idx < len(buckets)-1 {
				idx++
			}
		case keyboard.KeyArrowUp:
			if idx > 0 {
				idx--
			}
		case keyboard.KeyEsc:
			fmt.Println()
			return nil
		}
		if char == 'q' {
			fmt.Println()
			return nil
		}
	}
}
