package tmeshio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/trimesh/meshstore"
)

func buildUnitSquare(t *testing.T) *meshstore.Store {
	t.Helper()
	s := meshstore.New()
	n00 := s.AddNode(0, 0, 1, meshstore.Boundary)
	n10 := s.AddNode(1, 0, 2, meshstore.Boundary)
	n11 := s.AddNode(1, 1, 3, meshstore.Boundary)
	n01 := s.AddNode(0, 1, 4, meshstore.Boundary)

	eBottom := s.AddEdge(n00, n10, meshstore.NilTri, meshstore.NilTri, meshstore.Boundary)
	eRight := s.AddEdge(n10, n11, meshstore.NilTri, meshstore.NilTri, meshstore.Boundary)
	eDiag := s.AddEdge(n11, n00, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
	eTop := s.AddEdge(n11, n01, meshstore.NilTri, meshstore.NilTri, meshstore.Boundary)
	eLeft := s.AddEdge(n01, n00, meshstore.NilTri, meshstore.NilTri, meshstore.Boundary)

	t1 := s.AddTriangle(eBottom, eRight, eDiag, 0)
	t2 := s.AddTriangle(eDiag, eTop, eLeft, 0)

	for _, p := range []struct {
		e      meshstore.EdgeID
		t1, t2 meshstore.TriID
	}{
		{eBottom, t1, meshstore.NilTri},
		{eRight, t1, meshstore.NilTri},
		{eDiag, t1, t2},
		{eTop, t2, meshstore.NilTri},
		{eLeft, t2, meshstore.NilTri},
	} {
		edge := &s.Edges[p.e]
		edge.Tri1, edge.Tri2 = p.t1, p.t2
		edge.OnBorder = edge.Tri2 == meshstore.NilTri
	}
	return s
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := buildUnitSquare(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s, Baseline{}))

	got, base, err := Read(&buf)
	require.NoError(t, err)
	require.False(t, base.Used)
	require.Equal(t, 4, got.NumLiveNodes())
	require.Equal(t, 5, got.NumLiveEdges())
	require.Equal(t, 2, got.NumLiveTriangles())

	for i := range got.Nodes {
		require.Equal(t, s.Nodes[i].X, got.Nodes[i].X)
		require.Equal(t, s.Nodes[i].Y, got.Nodes[i].Y)
		require.Equal(t, s.Nodes[i].Z, got.Nodes[i].Z)
	}

	for i := range got.Edges {
		require.Equal(t, s.Edges[i].Tri1, got.Edges[i].Tri1)
		require.Equal(t, s.Edges[i].Tri2, got.Edges[i].Tri2)
	}
}

func TestReadRejectsBadHeader(t *testing.T) {
	_, _, err := Read(bytes.NewBufferString("not a tmesh file\n"))
	require.Error(t, err)
}

func TestWriteSkipsDeletedElements(t *testing.T) {
	s := buildUnitSquare(t)
	s.WhackEdge(2) // the shared diagonal; cascades both triangles

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s, Baseline{}))

	got, _, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, 0, got.NumLiveTriangles())
	require.Equal(t, 4, got.NumLiveEdges())
}
