package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func flatGrid(rows, cols int) *Grid {
	g := New(rows, cols, 0, 0, 1, 1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(r, c, 2)
		}
	}
	return g
}

func TestToMeshCellDiagonalTriangleCount(t *testing.T) {
	g := flatGrid(4, 4)
	s := ToMeshCellDiagonal(g)
	require.Equal(t, 16, s.NumLiveNodes())
	require.Equal(t, 2*3*3, s.NumLiveTriangles())
}

func TestToMeshCellDiagonalFlatZ(t *testing.T) {
	g := flatGrid(3, 3)
	s := ToMeshCellDiagonal(g)
	for i := range s.Nodes {
		require.Equal(t, 2.0, s.Nodes[i].Z)
	}
}

func TestToMeshCellDiagonalNullNodeFlagged(t *testing.T) {
	g := flatGrid(3, 3)
	g.Set(1, 1, Null)
	s := ToMeshCellDiagonal(g)
	var sawNull bool
	for i := range s.Nodes {
		if s.Nodes[i].IsNull() {
			sawNull = true
		}
	}
	require.True(t, sawNull)
}

func TestSampleInterpolatesFlatGrid(t *testing.T) {
	g := flatGrid(3, 3)
	z, ok := Sample(g, 0.5, 0.5)
	require.True(t, ok)
	require.InDelta(t, 2.0, z, 1e-9)
}

func TestSampleOutsideGridFails(t *testing.T) {
	g := flatGrid(3, 3)
	_, ok := Sample(g, 10, 10)
	require.False(t, ok)
}

func TestFromMeshRoundTripsFlatPlane(t *testing.T) {
	g := flatGrid(4, 4)
	s := ToMeshCellDiagonal(g)

	out := New(4, 4, 0, 0, 1, 1)
	FromMesh(s, out)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.InDelta(t, 2.0, out.At(r, c), 1e-6)
		}
	}
}

func TestRemoveNullsDeletesNullEdges(t *testing.T) {
	g := flatGrid(3, 3)
	g.Set(0, 0, Null)
	s := ToMeshCellDiagonal(g)
	RemoveNulls(s)
	for i := range s.Edges {
		if s.Edges[i].Deleted {
			continue
		}
		require.False(t, s.Nodes[s.Edges[i].Node1].IsNull())
		require.False(t, s.Nodes[s.Edges[i].Node2].IsNull())
	}
}

func TestFillNullsExtrapolatesFlatPlane(t *testing.T) {
	g := flatGrid(3, 3)
	g.Set(1, 1, Null)
	s := ToMeshCellDiagonal(g)

	filled := FillNulls(s, g, FillPlaneExtrapolate)
	require.Equal(t, 1, filled)
	for i := range s.Nodes {
		require.False(t, s.Nodes[i].IsNull())
	}
}

func TestToMeshEquilateralProducesTriangles(t *testing.T) {
	g := flatGrid(5, 5)
	s := ToMeshEquilateral(g)
	require.Greater(t, s.NumLiveTriangles(), 0)
	require.Greater(t, s.NumLiveNodes(), 0)
}
