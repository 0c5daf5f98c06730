package ioformat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/donaldnguyen99/qmesh/mesh"
)

// LoadFile opens path and dispatches to the loader matching its
// extension (.obj, .tri9, .tri10).
func LoadFile(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(f)
	case ".tri9", ".tri10":
		return LoadTri(f)
	default:
		return nil, fmt.Errorf("%w: unrecognized extension %q", ErrMalformedLine, filepath.Ext(path))
	}
}

// SaveFile writes m to path, dispatching to the writer matching its
// extension (.obj, .tri9, .tri10). The output is written to a temporary
// file and renamed into place so a failure never leaves a partial file at
// path.
func SaveFile(path string, m *mesh.Mesh) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".qmesh-tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	var writeErr error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		writeErr = SaveOBJ(tmp, m)
	case ".tri9":
		writeErr = SaveTri(tmp, m, 9)
	case ".tri10":
		writeErr = SaveTri(tmp, m, 10)
	default:
		writeErr = fmt.Errorf("%w: unrecognized extension %q", ErrMalformedLine, filepath.Ext(path))
	}

	if cerr := tmp.Close(); writeErr == nil {
		writeErr = cerr
	}
	if writeErr != nil {
		return writeErr
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return nil
}
