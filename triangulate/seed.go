// Package triangulate implements the unconstrained triangulator: seed
// quadrilateral, point-in-triangle search driven by the raw-point spatial
// index, 3-way split, and edge-swap to local optimality. Grounded on the
// teacher's cdt.SeedTriangulation / cdt.Build shape, adapted to the
// edge-indexed Node/Edge/Triangle model.
package triangulate

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

// CornerBias is the bias divisor applied to corner-using triangles during
// the final swap pass (corner-biased swap step: "CORNER_BIAS (>1)").
const CornerBias = 4.0

// SeedQuad computes the overall bounding box of pts, inflates it by
// inflatePct ("~5%"), adds the four corner nodes, and wires
// the two seed triangles tiling the inflated rectangle. It returns the
// four corner node ids in insertion order.
func SeedQuad(s *meshstore.Store, pts []geom.Point2, inflatePct float64) ([4]meshstore.NodeID, error) {
	minP, maxP, ok := geom.BoundingBox(pts)
	if !ok {
		return [4]meshstore.NodeID{}, geom.ErrDegenerate
	}

	w := maxP.X - minP.X
	h := maxP.Y - minP.Y
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	padX := w * inflatePct
	padY := h * inflatePct

	bl := s.AddNode(minP.X-padX, minP.Y-padY, 0, meshstore.CornerPoint)
	br := s.AddNode(maxP.X+padX, minP.Y-padY, 0, meshstore.CornerPoint)
	tr := s.AddNode(maxP.X+padX, maxP.Y+padY, 0, meshstore.CornerPoint)
	tl := s.AddNode(minP.X-padX, maxP.Y+padY, 0, meshstore.CornerPoint)

	eBottom := s.AddEdge(bl, br, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
	eRight := s.AddEdge(br, tr, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
	eDiag := s.AddEdge(tr, bl, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
	eTop := s.AddEdge(tr, tl, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
	eLeft := s.AddEdge(tl, bl, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)

	t1 := s.AddTriangle(eBottom, eRight, eDiag, 0)
	t2 := s.AddTriangle(eDiag, eTop, eLeft, 0)

	wireBoundarySide(s, eBottom, t1)
	wireBoundarySide(s, eRight, t1)
	s.Edges[eDiag].Tri1, s.Edges[eDiag].Tri2 = t1, t2
	wireBoundarySide(s, eTop, t2)
	wireBoundarySide(s, eLeft, t2)

	return [4]meshstore.NodeID{bl, br, tr, tl}, nil
}

func wireBoundarySide(s *meshstore.Store, e meshstore.EdgeID, t meshstore.TriID) {
	edge := &s.Edges[e]
	edge.Tri1, edge.Tri2 = t, meshstore.NilTri
	edge.OnBorder = true
}

// IsCornerSet returns a membership predicate over the four corner nodes,
// for use with meshops.ShouldSwapQuality's cornerBias parameter.
func IsCornerSet(corners [4]meshstore.NodeID) func(meshstore.NodeID) bool {
	set := map[meshstore.NodeID]bool{}
	for _, c := range corners {
		set[c] = true
	}
	return func(n meshstore.NodeID) bool { return set[n] }
}
