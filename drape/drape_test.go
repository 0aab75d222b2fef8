package drape

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
	"github.com/iceisfun/trimesh/spatial"
)

// buildSlopedSquare builds a two-triangle unit square with z = x + y, so
// every plane interpolation has an easily checked closed form.
func buildSlopedSquare(t *testing.T) *meshstore.Store {
	t.Helper()
	s := meshstore.New()
	n00 := s.AddNode(0, 0, 0, meshstore.Undefined)
	n10 := s.AddNode(1, 0, 1, meshstore.Undefined)
	n11 := s.AddNode(1, 1, 2, meshstore.Undefined)
	n01 := s.AddNode(0, 1, 1, meshstore.Undefined)

	eBottom := s.AddEdge(n00, n10, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
	eRight := s.AddEdge(n10, n11, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
	eDiag := s.AddEdge(n11, n00, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
	eTop := s.AddEdge(n11, n01, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
	eLeft := s.AddEdge(n01, n00, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)

	t1 := s.AddTriangle(eBottom, eRight, eDiag, 0)
	t2 := s.AddTriangle(eDiag, eTop, eLeft, 0)

	for _, pair := range []struct {
		e      meshstore.EdgeID
		t1, t2 meshstore.TriID
	}{
		{eBottom, t1, meshstore.NilTri},
		{eRight, t1, meshstore.NilTri},
		{eDiag, t1, t2},
		{eTop, t2, meshstore.NilTri},
		{eLeft, t2, meshstore.NilTri},
	} {
		edge := &s.Edges[pair.e]
		edge.Tri1, edge.Tri2 = pair.t1, pair.t2
		edge.OnBorder = edge.Tri2 == meshstore.NilTri
	}
	return s
}

func TestDrapePointInterpolatesPlane(t *testing.T) {
	s := buildSlopedSquare(t)
	idx := spatial.BuildTriangleIndex(s, 0, 0, 1, 1)

	p, err := DrapePoint(s, idx, geom.Point2{X: 0.25, Y: 0.25}, 1e-9)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p.Z, 1e-9)
}

func TestDrapePointOutsideMeshErrors(t *testing.T) {
	s := buildSlopedSquare(t)
	idx := spatial.BuildTriangleIndex(s, 0, 0, 1, 1)

	_, err := DrapePoint(s, idx, geom.Point2{X: 5, Y: 5}, 1e-9)
	require.ErrorIs(t, err, ErrOutsideMesh)
}

func TestDrapePolylineCrossesBothTriangles(t *testing.T) {
	s := buildSlopedSquare(t)
	idx := spatial.BuildTriangleIndex(s, 0, 0, 1, 1)

	pts := []geom.Point2{{X: 0.1, Y: 0.1}, {X: 0.9, Y: 0.9}}
	out, err := DrapePolyline(s, idx, pts, 1e-9)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(out), 2)
	require.InDelta(t, 0.2, out[0].Z, 1e-9)
	require.InDelta(t, 1.8, out[len(out)-1].Z, 1e-9)
}

func TestMeshBoundaryReturnsSingleRing(t *testing.T) {
	s := buildSlopedSquare(t)
	rings := MeshBoundary(s)
	require.Len(t, rings, 1)
	require.Len(t, rings[0], 4)
}

func TestClipMeshToPolygonKeepsInsideHalf(t *testing.T) {
	s := buildSlopedSquare(t)
	ring := []geom.Point2{{X: -1, Y: -1}, {X: 0.5, Y: -1}, {X: 0.5, Y: 2}, {X: -1, Y: 2}}

	before := s.NumLiveTriangles()
	ClipMeshToPolygon(s, ring, KeepInside, 1e-9)
	require.Less(t, s.NumLiveTriangles(), before)
}
