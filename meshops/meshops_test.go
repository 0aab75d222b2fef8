package meshops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/trimesh/meshstore"
)

// buildTwoTriangleSquare builds the canonical unit square split by the
// (0,0)-(1,1) diagonal into two triangles, matching scenario 1.
func buildTwoTriangleSquare(t *testing.T) (*meshstore.Store, meshstore.TriID, meshstore.TriID, meshstore.EdgeID) {
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

	setTriSides(s, eBottom, t1, meshstore.NilTri)
	setTriSides(s, eRight, t1, meshstore.NilTri)
	setTriSides(s, eDiag, t1, t2)
	setTriSides(s, eTop, t2, meshstore.NilTri)
	setTriSides(s, eLeft, t2, meshstore.NilTri)

	return s, t1, t2, eDiag
}

func TestSplitTriangleInteriorPoint(t *testing.T) {
	s, t1, _, _ := buildTwoTriangleSquare(t)
	center := s.AddNode(0.7, 0.2, 0, meshstore.Undefined)

	res, err := SplitTriangle(s, t1, center, 1e-9)
	require.NoError(t, err)
	require.Len(t, res.NewTriangles, 3)
	require.Len(t, res.NewEdges, 3)
	require.Equal(t, 4, s.NumLiveTriangles())
}

func TestSplitFromEdgeGrazedPoint(t *testing.T) {
	s, _, _, eDiag := buildTwoTriangleSquare(t)
	mid := s.AddNode(0.5, 0.5, 0, meshstore.Undefined)

	res, err := SplitFromEdge(s, eDiag, mid)
	require.NoError(t, err)
	require.Len(t, res.NewTriangles, 2, "both triangles sharing the diagonal split")
	require.Equal(t, 4, s.NumLiveTriangles())
}

func TestQuadAndConvexity(t *testing.T) {
	s, _, _, eDiag := buildTwoTriangleSquare(t)
	q, ok := Quad(s, eDiag)
	require.True(t, ok)
	require.True(t, IsConvexQuad(s, q), "a unit square's quad must be convex")
}

func TestSwapEdgeFlipsDiagonal(t *testing.T) {
	s, t1, t2, eDiag := buildTwoTriangleSquare(t)
	before := s.Edges[eDiag].Node1
	_ = before

	nt1, nt2, err := SwapEdge(s, eDiag)
	require.NoError(t, err)
	require.Equal(t, t1, nt1)
	require.Equal(t, t2, nt2)

	// After the flip the diagonal endpoints should be the two nodes that
	// were previously the triangles' "opposite" apexes.
	require.ElementsMatch(t, []meshstore.NodeID{1, 3}, []meshstore.NodeID{s.Edges[eDiag].Node1, s.Edges[eDiag].Node2})
	nodes := s.TriangleNodes(t1)
	require.Len(t, nodes, 3)
	require.Equal(t, 2, s.NumLiveTriangles())
}

func TestGlobalSwapPassConverges(t *testing.T) {
	s, _, _, _ := buildTwoTriangleSquare(t)
	noCorner := func(meshstore.NodeID) bool { return false }
	swaps := GlobalSwapPass(s, meshstore.SwapAny, 1, noCorner)
	require.GreaterOrEqual(t, swaps, 0)
	// A second pass from the converged state must be a no-op.
	require.Equal(t, 0, GlobalSwapPass(s, meshstore.SwapAny, 1, noCorner))
}
