package region

import (
	"strings"
	"testing"

	"github.com/donaldnguyen99/qmesh/geom3d"
	"github.com/donaldnguyen99/qmesh/mesh"
	"github.com/donaldnguyen99/qmesh/weight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecFileLine(t *testing.T) {
	regions, err := ParseSpecFile(strings.NewReader("-Q 0.3 -f gaussian -c 10,-2,0.5 -r 20 -s 2 -p 3\n"))
	require.NoError(t, err)
	require.Len(t, regions, 1)

	r := regions[0]
	assert.True(t, r.Bound)
	assert.Equal(t, weight.Gaussian, r.Kernel.Kind)
	assert.Equal(t, geom3d.Vec3{X: 10, Y: -2, Z: 0.5}, r.Kernel.Center)
	assert.Equal(t, 20.0, r.Kernel.Radius)
	assert.Equal(t, 2.0, r.Kernel.Scale)
	assert.Equal(t, 3.0, r.Power)
	assert.Equal(t, 0.3, r.TargetRatio)
}

func TestInRegionRequiresAllThreeVertices(t *testing.T) {
	m := mesh.NewMesh()
	v0 := m.AddVertex(geom3d.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(geom3d.Vec3{X: 0.1, Y: 0, Z: 0})
	v2 := m.AddVertex(geom3d.Vec3{X: 10, Y: 0, Z: 0})
	tid, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)
	tri, _ := m.Triangle(tid)

	r := &Region{Kernel: weight.Kernel{Center: geom3d.Vec3{}, Radius: 1}}
	assert.False(t, r.InRegion(m, tri), "triangle has a vertex far outside the radius")
}

func TestNoteDeletedMarksBoundRegionDone(t *testing.T) {
	m := mesh.NewMesh()
	v0 := m.AddVertex(geom3d.Vec3{})
	v1 := m.AddVertex(geom3d.Vec3{X: 1})
	v2 := m.AddVertex(geom3d.Vec3{Y: 1})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)

	r := &Region{Kernel: weight.Kernel{Center: geom3d.Vec3{}, Radius: 5}, Bound: true, TargetRatio: 0.99}
	r.InitCounts(m)
	r.NoteDeleted(m, true)
	assert.True(t, r.Satisfied())
}
