package triangulate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

func TestBuildRejectsEmptyInput(t *testing.T) {
	_, err := Build(nil, Options{})
	require.ErrorIs(t, err, ErrNoPoints)
}

func TestBuildSeedOnly(t *testing.T) {
	pts := []geom.Point3{{X: 0, Y: 0, Z: 0}}
	res, err := Build(pts, Options{})
	require.NoError(t, err)
	require.Equal(t, 4, res.Store.NumLiveTriangles(), "a single point lands on the seed diagonal and splits both seed triangles")
}

func TestBuildGridOfPoints(t *testing.T) {
	var pts []geom.Point3
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pts = append(pts, geom.Point3{X: float64(x), Y: float64(y), Z: float64(x + y)})
		}
	}

	res, err := Build(pts, Options{})
	require.NoError(t, err)

	// The mesh must hold more triangles than input points, and every live
	// triangle must be non-degenerate.
	require.Greater(t, res.Store.NumLiveTriangles(), len(pts))
	for i := range res.Store.Triangles {
		tri := &res.Store.Triangles[i]
		if tri.Deleted {
			continue
		}
		nodes := res.Store.TriangleNodes(meshstore.TriID(i))
		a := res.Store.Nodes[nodes[0]].Point2()
		b := res.Store.Nodes[nodes[1]].Point2()
		c := res.Store.Nodes[nodes[2]].Point2()
		require.NotEqual(t, 0, geom.Orient2D(a, b, c), "no triangle should collapse to zero area")
	}
}

func TestBuildHonoursSafetyCap(t *testing.T) {
	var pts []geom.Point3
	for i := 0; i < 200; i++ {
		pts = append(pts, geom.Point3{X: float64(i % 20), Y: float64(i / 20), Z: 0})
	}
	res, err := Build(pts, Options{})
	require.NoError(t, err)
	require.NotNil(t, res.Store)
}
