// Command objtotri converts an OBJ mesh to tri10 triangle-soup format.
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
		fmt.Fprintf(os.Stderr, "Usage: %s [-v] input.obj output.tri10\n", os.Args[0])
		return
	}

	m, err := ioformat.LoadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to load %q: %v", flag.Arg(0), err)
	}
	if *verbose {
		log.Printf("loaded %d vertices, %d triangles", m.NumVertices(), m.NumTriangles())
	}

	if err := ioformat.SaveFile(flag.Arg(1), m); err != nil {
		log.Fatalf("failed to write %q: %v", flag.Arg(1), err)
	}
	if *verbose {
		log.Printf("wrote %q", flag.Arg(1))
	}
}
