package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrient2DBasic(t *testing.T) {
	a, b, c := Point2{0, 0}, Point2{1, 0}, Point2{0, 1}
	require.Equal(t, 1, Orient2D(a, b, c), "CCW triangle")
	require.Equal(t, -1, Orient2D(a, c, b), "reversed winding is CW")
	require.Equal(t, 0, Orient2D(a, b, Point2{2, 0}), "collinear points")
}

func TestInCircleKnownCase(t *testing.T) {
	a, b, c := Point2{0, 0}, Point2{1, 0}, Point2{0, 1}
	inside := Point2{0.25, 0.25}
	outside := Point2{10, 10}
	require.Equal(t, 1, InCircle(a, b, c, inside))
	require.Equal(t, -1, InCircle(a, b, c, outside))
}

func TestSegmentIntersectCrossing(t *testing.T) {
	res, err := SegmentIntersect(Point2{0, 0}, Point2{2, 2}, Point2{0, 2}, Point2{2, 0}, 1e-9)
	require.NoError(t, err)
	require.Equal(t, IntersectPoint, res.Kind)
	require.InDelta(t, 1.0, res.P.X, 1e-9)
	require.InDelta(t, 1.0, res.P.Y, 1e-9)
}

func TestSegmentIntersectDisjoint(t *testing.T) {
	res, err := SegmentIntersect(Point2{0, 0}, Point2{1, 0}, Point2{0, 5}, Point2{1, 5}, 1e-9)
	require.NoError(t, err)
	require.Equal(t, IntersectDisjoint, res.Kind)
}

func TestSegmentIntersectDegenerate(t *testing.T) {
	_, err := SegmentIntersect(Point2{0, 0}, Point2{0, 0}, Point2{0, 5}, Point2{1, 5}, 1e-9)
	require.ErrorIs(t, err, ErrDegenerate)
}

func TestPointOnSegment(t *testing.T) {
	require.True(t, PointOnSegment(Point2{0.5, 0}, Point2{0, 0}, Point2{1, 0}, 1e-9))
	require.False(t, PointOnSegment(Point2{0.5, 1}, Point2{0, 0}, Point2{1, 0}, 1e-9))
}

func TestPerpFoot(t *testing.T) {
	foot, tparam, err := PerpFoot(Point2{1, 1}, Point2{0, 0}, Point2{2, 0})
	require.NoError(t, err)
	require.InDelta(t, 0.5, tparam, 1e-9)
	require.InDelta(t, 1.0, foot.X, 1e-9)
	require.InDelta(t, 0.0, foot.Y, 1e-9)
}

func TestFitPlaneExactFit(t *testing.T) {
	// z = 2x + 3y + 1, sampled exactly: the least-squares fit should recover
	// the coefficients with no residual.
	pts := []Point3{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 3},
		{X: 0, Y: 1, Z: 4},
		{X: 1, Y: 1, Z: 6},
	}
	plane, err := FitPlane(pts)
	require.NoError(t, err)
	require.InDelta(t, 1.0, plane.A, 1e-6)
	require.InDelta(t, 2.0, plane.B, 1e-6)
	require.InDelta(t, 3.0, plane.C, 1e-6)
}

func TestPointInPolygonSquare(t *testing.T) {
	ring := []Point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	require.Equal(t, Inside, PointInPolygon(Point2{0.5, 0.5}, ring, 1e-9))
	require.Equal(t, Outside, PointInPolygon(Point2{2, 2}, ring, 1e-9))
	require.Equal(t, OnBoundary, PointInPolygon(Point2{0.5, 0}, ring, 1e-9))
}

func TestEquilateralness(t *testing.T) {
	require.InDelta(t, 1.0, Equilateralness(1, 1, 1), 1e-9)
	require.Equal(t, 0.0, Equilateralness(1, 1, 5))
}

func TestGrazeDistanceFallback(t *testing.T) {
	require.Greater(t, GrazeDistance(0), 0.0)
	require.InDelta(t, 100.0/DefaultGrazeDivisor, GrazeDistance(100), 1e-12)
}
