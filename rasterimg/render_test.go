package rasterimg

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/trimesh/meshstore"
)

func buildUnitSquare(t *testing.T) *meshstore.Store {
	t.Helper()
	s := meshstore.New()
	n00 := s.AddNode(0, 0, 0, meshstore.Boundary)
	n10 := s.AddNode(1, 0, 0, meshstore.Boundary)
	n11 := s.AddNode(1, 1, 0, meshstore.Boundary)
	n01 := s.AddNode(0, 1, 0, meshstore.Boundary)

	eBottom := s.AddEdge(n00, n10, meshstore.NilTri, meshstore.NilTri, meshstore.Boundary)
	eRight := s.AddEdge(n10, n11, meshstore.NilTri, meshstore.NilTri, meshstore.Boundary)
	eDiag := s.AddEdge(n11, n00, meshstore.NilTri, meshstore.NilTri, meshstore.Fault)
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

func TestRenderProducesNonBackgroundPixels(t *testing.T) {
	s := buildUnitSquare(t)
	img, err := Render(s, WithDimensions(64, 64))
	require.NoError(t, err)
	require.Equal(t, 64, img.Bounds().Dx())

	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	found := false
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y && !found; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				found = true
				break
			}
		}
	}
	require.True(t, found, "expected at least one non-background pixel")
}

func TestRenderEmptyMeshStaysBackground(t *testing.T) {
	s := meshstore.New()
	img, err := Render(s, WithDimensions(16, 16))
	require.NoError(t, err)

	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			require.Equal(t, bg, img.RGBAAt(x, y))
		}
	}
}
