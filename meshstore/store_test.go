package meshstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddNodeAssignsSequentialIDs(t *testing.T) {
	s := New()
	a := s.AddNode(0, 0, 0, Undefined)
	b := s.AddNode(1, 0, 0, Undefined)
	require.Equal(t, NodeID(0), a)
	require.Equal(t, NodeID(1), b)
	require.Equal(t, 2, s.NumLiveNodes())
}

func TestAddEdgeTracksIncidentLists(t *testing.T) {
	s := New()
	a := s.AddNode(0, 0, 0, Undefined)
	b := s.AddNode(1, 0, 0, Undefined)
	e := s.AddEdge(a, b, 0, NilTri, Undefined)

	require.Len(t, s.Nodes[a].Edges(), 1)
	require.Len(t, s.Nodes[b].Edges(), 1)
	require.Equal(t, e, s.Nodes[a].Edges()[0])
	require.InDelta(t, 1.0, s.Edges[e].Length, 1e-12)
	require.True(t, s.Edges[e].OnBorder, "edge with Tri2 == NilTri is a boundary edge")
}

func TestWhackEdgeDeletesUntriangulableTriangles(t *testing.T) {
	s := New()
	a := s.AddNode(0, 0, 0, Undefined)
	b := s.AddNode(1, 0, 0, Undefined)
	c := s.AddNode(0, 1, 0, Undefined)

	e1 := s.AddEdge(a, b, 0, NilTri, Undefined)
	e2 := s.AddEdge(b, c, 0, NilTri, Undefined)
	e3 := s.AddEdge(c, a, 0, NilTri, Undefined)
	tri := s.AddTriangle(e1, e2, e3, 0)
	s.Edges[e1].Tri1 = tri
	s.Edges[e2].Tri1 = tri
	s.Edges[e3].Tri1 = tri

	s.WhackEdge(e1)

	require.True(t, s.Edges[e1].Deleted)
	require.True(t, s.Triangles[tri].Deleted, "triangle loses its third side and cannot stand")
	require.NotContains(t, s.Nodes[a].Edges(), e1)
	require.NotContains(t, s.Nodes[b].Edges(), e1)
}

func TestRemoveDeletedCompactsAndRewritesReferences(t *testing.T) {
	s := New()
	a := s.AddNode(0, 0, 0, Undefined)
	b := s.AddNode(1, 0, 0, Undefined)
	c := s.AddNode(0, 1, 0, Undefined)
	e1 := s.AddEdge(a, b, 0, NilTri, Undefined)
	e2 := s.AddEdge(b, c, 0, NilTri, Undefined)
	e3 := s.AddEdge(c, a, 0, NilTri, Undefined)
	tri := s.AddTriangle(e1, e2, e3, 0)
	s.Edges[e1].Tri1, s.Edges[e2].Tri1, s.Edges[e3].Tri1 = tri, tri, tri

	s.Nodes[a].Deleted = true // simulate an orphaned tombstoned node
	s.liveNodes--

	res := s.RemoveDeleted()

	require.Len(t, s.Nodes, 2)
	require.Len(t, s.Triangles, 1)
	require.NotEmpty(t, res.EdgeMap)
}

func TestRemoveDeletedIsIdempotent(t *testing.T) {
	s := New()
	a := s.AddNode(0, 0, 0, Undefined)
	b := s.AddNode(1, 0, 0, Undefined)
	s.AddEdge(a, b, 0, NilTri, Undefined)

	first := s.RemoveDeleted()
	second := s.RemoveDeleted()

	require.Equal(t, len(first.NodeMap), len(second.NodeMap))
	require.Equal(t, 2, s.NumLiveNodes())
}

func TestOppositeNodeAndEdge(t *testing.T) {
	s := New()
	a := s.AddNode(0, 0, 0, Undefined)
	b := s.AddNode(1, 0, 0, Undefined)
	c := s.AddNode(0, 1, 0, Undefined)
	e1 := s.AddEdge(a, b, 0, NilTri, Undefined)
	e2 := s.AddEdge(b, c, 0, NilTri, Undefined)
	e3 := s.AddEdge(c, a, 0, NilTri, Undefined)
	tri := s.AddTriangle(e1, e2, e3, 0)

	require.Equal(t, c, s.OppositeNode(tri, e1))
	require.Equal(t, e2, s.OppositeEdge(tri, a))
}
