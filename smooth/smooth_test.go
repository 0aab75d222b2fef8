package smooth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/trimesh/meshstore"
)

func buildFlatSquare(t *testing.T) *meshstore.Store {
	t.Helper()
	s := meshstore.New()
	n00 := s.AddNode(0, 0, 1, meshstore.Undefined)
	n10 := s.AddNode(1, 0, 1, meshstore.Undefined)
	n11 := s.AddNode(1, 1, 1, meshstore.Undefined)
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

func TestTriangleNormalOfFlatSquareIsUp(t *testing.T) {
	s := buildFlatSquare(t)
	ComputeNormals(s)
	for i := range s.Nodes {
		require.NotNil(t, s.Nodes[i].Norm)
		require.InDelta(t, 1.0, s.Nodes[i].Norm.Z, 1e-9)
	}
}

func TestBezierTriangleFlatSurfaceIsConstant(t *testing.T) {
	s := buildFlatSquare(t)
	ComputeNormals(s)
	bt := BuildBezierTriangle(s, 0)

	require.InDelta(t, 1.0, bt.C111, 1e-9)
	require.InDelta(t, 1.0, bt.Evaluate(0.2, 0.5, 0.3), 1e-9)
	require.InDelta(t, 1.0, bt.Evaluate(1, 0, 0), 1e-9)
}

func TestSmootherRunFlatSquareStaysFlat(t *testing.T) {
	s := buildFlatSquare(t)
	err := Run(s, Options{SmoothingFactor: 0.5, Iterations: 3})
	require.NoError(t, err)
	for i := range s.Nodes {
		require.InDelta(t, 1.0, s.Nodes[i].Z, 1e-6)
	}
}
