package meshops

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

// QuadNodes are the four nodes of the quadrilateral formed by the two
// triangles sharing edge e: n1,n3 are the shared edge's endpoints, n2 is
// T1's opposite node and n4 is T2's opposite node.
type QuadNodes struct {
	N1, N2, N3, N4 meshstore.NodeID
}

// Quad returns the quadrilateral nodes for an interior edge, or false if e
// is a boundary edge.
func Quad(s *meshstore.Store, e meshstore.EdgeID) (QuadNodes, bool) {
	edge := &s.Edges[e]
	if !edge.Tri1.IsValid() || !edge.Tri2.IsValid() {
		return QuadNodes{}, false
	}
	n2 := s.OppositeNode(edge.Tri1, e)
	n4 := s.OppositeNode(edge.Tri2, e)
	return QuadNodes{N1: edge.Node1, N2: n2, N3: edge.Node2, N4: n4}, true
}

// IsConvexQuad reports whether the quadrilateral n1,n2,n3,n4 (in that
// cyclic order) is convex, i.e. the two diagonals' midpoints both fall
// inside it (: "Not swapped... if the two diagonals'
// midpoints are both outside the quadrilateral (concave case)").
func IsConvexQuad(s *meshstore.Store, q QuadNodes) bool {
	p := func(id meshstore.NodeID) geom.Point2 { return s.Nodes[id].Point2() }
	a, b, c, d := p(q.N1), p(q.N2), p(q.N3), p(q.N4)

	// n2 and n4 must lie on opposite sides of diagonal n1-n3, and n1,n3
	// must lie on opposite sides of diagonal n2-n4.
	o1 := geom.Orient2D(a, c, b)
	o2 := geom.Orient2D(a, c, d)
	o3 := geom.Orient2D(b, d, a)
	o4 := geom.Orient2D(b, d, c)
	return o1*o2 < 0 && o3*o4 < 0
}

// biasedEquilateralness returns the equilateralness of triangle (a,b,c),
// divided by cornerBias when cornerBias > 1 and any of its three nodes is
// a corner node.
func biasedEquilateralness(s *meshstore.Store, a, b, c meshstore.NodeID, cornerBias float64, isCorner func(meshstore.NodeID) bool) float64 {
	pa, pb, pc := s.Nodes[a].Point2(), s.Nodes[b].Point2(), s.Nodes[c].Point2()
	ab, bc, ca := geom.SideLengths(pa, pb, pc)
	e := geom.Equilateralness(ab, bc, ca)
	if cornerBias > 1 && (isCorner(a) || isCorner(b) || isCorner(c)) {
		e /= cornerBias
	}
	return e
}

// ShouldSwapQuality implements the equilateralness-based swap decision of
//: swap if the current pair contains a degenerate triangle, or
// the alternative's worst epsilon beats the current's worst by >= 10%, or
// the alternative's summed epsilon beats the current's sum by >= 1%.
func ShouldSwapQuality(s *meshstore.Store, q QuadNodes, cornerBias float64, isCorner func(meshstore.NodeID) bool) bool {
	eCur1 := biasedEquilateralness(s, q.N1, q.N2, q.N3, cornerBias, isCorner)
	eCur2 := biasedEquilateralness(s, q.N1, q.N3, q.N4, cornerBias, isCorner)
	eAlt1 := biasedEquilateralness(s, q.N1, q.N2, q.N4, cornerBias, isCorner)
	eAlt2 := biasedEquilateralness(s, q.N2, q.N3, q.N4, cornerBias, isCorner)

	curWorst, curSum := minOf(eCur1, eCur2), eCur1+eCur2
	altWorst, altSum := minOf(eAlt1, eAlt2), eAlt1+eAlt2

	if curWorst <= 0 {
		return true
	}
	if altWorst >= curWorst*1.10 {
		return true
	}
	if altSum >= curSum*1.01 {
		return true
	}
	return false
}

func minOf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// CanSwapEdge reports whether edge e is eligible to be swapped at all,
// independent of the quality decision: not a constraint edge (unless
// mode honours flags), not a boundary edge, and not part of a concave
// quadrilateral.
func CanSwapEdge(s *meshstore.Store, e meshstore.EdgeID, mode meshstore.SwapMode) (QuadNodes, bool) {
	edge := &s.Edges[e]

	if mode != meshstore.SwapForce {
		// Constraint edges (flag != Undefined) are never swapped by
		// quality improvement, except that
		// SwapAsFlagged still honours an explicit DontSwap and nothing
		// else, matching 's "honours per-edge flags".
		switch mode {
		case meshstore.SwapAsFlagged:
			if edge.Flag == meshstore.DontSwap {
				return QuadNodes{}, false
			}
		case meshstore.SwapNullRemoval:
			if edge.IsConstraint {
				return QuadNodes{}, false
			}
			n1Null := s.Nodes[edge.Node1].IsNull()
			n2Null := s.Nodes[edge.Node2].IsNull()
			if n1Null == n2Null {
				// Only a null/non-null straddling edge is a candidate for
				// null-removal routing.
				return QuadNodes{}, false
			}
		default:
			if edge.Flag != meshstore.Undefined {
				return QuadNodes{}, false
			}
		}
	}

	q, ok := Quad(s, e)
	if !ok {
		return QuadNodes{}, false
	}
	if mode != meshstore.SwapForce && !IsConvexQuad(s, q) {
		return QuadNodes{}, false
	}
	if mode == meshstore.SwapNullRemoval && s.Nodes[q.N2].IsNull() && s.Nodes[q.N4].IsNull() {
		// The alternative diagonal would run null-to-null: taking it would
		// strand the straddling edge's non-null node off the new boundary
		// instead of preserving its z as part of the surviving mesh.
		return QuadNodes{}, false
	}
	return q, true
}

// SwapEdge executes the flip described in: moves e from the
// n1-n3 diagonal to the n2-n4 diagonal, recomputes its length, transfers
// it out of n1's and n3's incident lists into n2's and n4's, rewrites the
// two triangles' edge arrays, and fixes the two "outer" edges' Tri1/Tri2.
func SwapEdge(s *meshstore.Store, e meshstore.EdgeID) (meshstore.TriID, meshstore.TriID, error) {
	edge := &s.Edges[e]
	t1, t2 := edge.Tri1, edge.Tri2
	if !t1.IsValid() || !t2.IsValid() {
		return meshstore.NilTri, meshstore.NilTri, ErrNotBoundaryEdgeCandidate
	}

	q, ok := Quad(s, e)
	if !ok {
		return meshstore.NilTri, meshstore.NilTri, ErrNotBoundaryEdgeCandidate
	}

	// The four outer edges of the quad, found by node pair.
	outer12 := edgeBetween(s, t1, q.N1, q.N2)
	outer23 := edgeBetween(s, t1, q.N2, q.N3)
	outer34 := edgeBetween(s, t2, q.N3, q.N4)
	outer41 := edgeBetween(s, t2, q.N4, q.N1)

	s.Nodes[q.N1].edges = removeEdgeRef(s.Nodes[q.N1].edges, e)
	s.Nodes[q.N3].edges = removeEdgeRef(s.Nodes[q.N3].edges, e)
	s.Nodes[q.N2].edges = append(s.Nodes[q.N2].edges, e)
	s.Nodes[q.N4].edges = append(s.Nodes[q.N4].edges, e)

	edge.Node1, edge.Node2 = q.N2, q.N4
	edge.Length = nodeDist(s, q.N2, q.N4)

	// t1 becomes (n1,n2,n4); t2 becomes (n2,n3,n4).
	s.Triangles[t1].Edge1, s.Triangles[t1].Edge2, s.Triangles[t1].Edge3 = outer41, outer12, e
	s.Triangles[t2].Edge1, s.Triangles[t2].Edge2, s.Triangles[t2].Edge3 = outer23, outer34, e

	// outer12 and outer34 keep referencing t1/t2 respectively (those ids
	// are stable across the flip); only outer23 and outer41 cross from
	// one triangle to the other.
	retargetTri(s, outer23, t1, t2)
	retargetTri(s, outer41, t2, t1)

	return t1, t2, nil
}

func edgeBetween(s *meshstore.Store, t meshstore.TriID, a, b meshstore.NodeID) meshstore.EdgeID {
	tri := &s.Triangles[t]
	for _, eid := range tri.Edges() {
		edge := &s.Edges[eid]
		if (edge.Node1 == a && edge.Node2 == b) || (edge.Node1 == b && edge.Node2 == a) {
			return eid
		}
	}
	return meshstore.NilEdge
}
