package constraint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
	"github.com/iceisfun/trimesh/triangulate"
)

func buildGridMesh(t *testing.T) *meshstore.Store {
	t.Helper()
	var pts []geom.Point3
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			pts = append(pts, geom.Point3{X: float64(x), Y: float64(y), Z: 0})
		}
	}
	res, err := triangulate.Build(pts, triangulate.Options{})
	require.NoError(t, err)
	return res.Store
}

// buildUnitSquare mirrors meshops' canonical two-triangle square so the
// constraint walk's "edge already exists" path is exercised deterministically.
func buildUnitSquare(t *testing.T) (*meshstore.Store, meshstore.EdgeID) {
	t.Helper()
	s := meshstore.New()
	n00 := s.AddNode(0, 0, 0, meshstore.Undefined)
	n10 := s.AddNode(1, 0, 0, meshstore.Undefined)
	n11 := s.AddNode(1, 1, 0, meshstore.Undefined)
	n01 := s.AddNode(0, 1, 0, meshstore.Undefined)

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

	return s, eDiag
}

func TestInsertSegmentReusesExistingEdge(t *testing.T) {
	s, eDiag := buildUnitSquare(t)

	err := InsertSegment(s, geom.Point3{X: 1, Y: 1}, geom.Point3{X: 0, Y: 0}, meshstore.Fault, 7, 1.0, 1e-9)
	require.NoError(t, err)
	require.True(t, s.Edges[eDiag].IsConstraint)
	require.Equal(t, meshstore.Fault, s.Edges[eDiag].Flag)
	require.Equal(t, 7, s.Edges[eDiag].LineID)
}

func TestInsertSegmentCrossesExistingDiagonal(t *testing.T) {
	// The anti-diagonal (1,0)-(0,1) crosses the square's existing (0,0)-
	// (1,1) diagonal at its midpoint; the walk must split the existing
	// diagonal there and complete on the second hop.
	s, eDiag := buildUnitSquare(t)
	before := s.NumLiveTriangles()

	err := InsertSegment(s, geom.Point3{X: 1, Y: 0}, geom.Point3{X: 0, Y: 1}, meshstore.Fault, 2, 1.0, 1e-9)
	require.NoError(t, err)
	require.False(t, (s.Edges[eDiag].Node1 == 2 && s.Edges[eDiag].Node2 == 0) || (s.Edges[eDiag].Node1 == 0 && s.Edges[eDiag].Node2 == 2), "the crossed diagonal must have been split at the crossing")
	require.Greater(t, s.NumLiveTriangles(), before, "splitting the crossing produces more triangles")

	var constrained int
	for i := range s.Edges {
		e := &s.Edges[i]
		if !e.Deleted && e.IsConstraint && e.Flag == meshstore.Fault && e.LineID == 2 {
			constrained++
		}
	}
	require.Equal(t, 2, constrained, "both halves of the crossed segment get tagged")
}

func TestWhackFaultPolygonsNoOpWithoutClosedChain(t *testing.T) {
	s := buildGridMesh(t)
	before := s.NumLiveEdges()
	WhackFaultPolygons(s, 1e-6)
	require.Equal(t, before, s.NumLiveEdges(), "no fault edges means nothing to whack")
}
