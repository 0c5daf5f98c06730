// Command tritoobj converts a tri9/tri10 triangle-soup mesh to OBJ,
// merging duplicate vertex positions along the way (see ioformat.LoadTri).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/donaldnguyen99/qmesh/ioformat"
)

func main() {
	verbose := flag.Bool("v", false, "be verbose")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-v] input.tri10 output.obj\n", os.Args[0])
		return
	}

	m, err := ioformat.LoadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to load %q: %v", flag.Arg(0), err)
	}
	if *verbose {
		log.Printf("deduplicated to %d vertices, %d triangles", m.NumVertices(), m.NumTriangles())
	}

	if err := ioformat.SaveFile(flag.Arg(1), m); err != nil {
		log.Fatalf("failed to write %q: %v", flag.Arg(1), err)
	}
}
