package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/smooth"
)

func gridPoints(n int) []geom.Point3 {
	pts := make([]geom.Point3, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pts = append(pts, geom.Point3{X: float64(i), Y: float64(j), Z: float64(i + j)})
		}
	}
	return pts
}

func TestBuildFromPointsThenRepairAndValidate(t *testing.T) {
	e := New()
	res := e.BuildFromPoints(gridPoints(6))
	require.True(t, res.Changed)
	require.NoError(t, res.Err)
	require.NotNil(t, e.Mesh())

	require.NoError(t, e.Repair().Err)
	require.NoError(t, e.Legalize().Err)
	require.NoError(t, e.RemoveSeedCorners().Err)

	report, vres := e.Validate()
	require.NoError(t, vres.Err)
	require.Equal(t, 0, report.NodesMissingTri)
	require.Equal(t, 0, report.OverusedEdges)
}

func TestBuildFromPointsRejectsEmptyInput(t *testing.T) {
	e := New()
	res := e.BuildFromPoints(nil)
	require.False(t, res.Changed)
	require.Equal(t, ErrBadArgCount, res.Code)
}

func TestOperationsRequireMeshFirst(t *testing.T) {
	e := New()
	res := e.Repair()
	require.ErrorIs(t, res.Err, ErrNoMesh)

	_, vres := e.Validate()
	require.ErrorIs(t, vres.Err, ErrNoMesh)
}

func TestDrapeAfterBuild(t *testing.T) {
	e := New()
	require.NoError(t, e.BuildFromPoints(gridPoints(6)).Err)
	require.NoError(t, e.RemoveSeedCorners().Err)

	pts, res := e.Drape([]geom.Point2{{X: 0.5, Y: 0.5}, {X: 3.5, Y: 3.5}})
	require.NoError(t, res.Err)
	require.NotEmpty(t, pts)
}

func TestSmoothAfterBuild(t *testing.T) {
	e := New()
	require.NoError(t, e.BuildFromPoints(gridPoints(6)).Err)

	res := e.Smooth(smooth.Options{SmoothingFactor: 0.3, Iterations: 2})
	require.NoError(t, res.Err)
}

func TestGridRoundTrip(t *testing.T) {
	e := New()
	require.NoError(t, e.BuildFromPoints(gridPoints(6)).Err)

	g, res := e.ToGrid(8, 8, 0, 0, 0.8, 0.8)
	require.NoError(t, res.Err)
	require.NotNil(t, g)

	buildRes := e.BuildFromGrid(g)
	require.NoError(t, buildRes.Err)
	require.NotNil(t, e.Mesh())
}
