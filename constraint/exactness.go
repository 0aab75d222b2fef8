package constraint

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshops"
	"github.com/iceisfun/trimesh/meshstore"
	"github.com/iceisfun/trimesh/repair"
)

// ExactnessOptions configures the exact-constraint-honouring passes of.
type ExactnessOptions struct {
	CornerBias float64
	IsCorner   func(meshstore.NodeID) bool
}

// PreDeleteClose implements (a): remove any non-constraint,
// non-corner node whose perpendicular distance to segment (p,q) is less
// than 0.4x the segment's length, before that segment gets walked in. This
// keeps the walk from creating slivers around points that sit almost on
// the line.
func PreDeleteClose(s *meshstore.Store, p, q geom.Point2, isCorner func(meshstore.NodeID) bool, graze float64) int {
	segLen := geom.Dist(p, q)
	if segLen <= graze {
		return 0
	}
	threshold := 0.4 * segLen

	removed := 0
	for i := range s.Nodes {
		n := meshstore.NodeID(i)
		if s.Nodes[i].Deleted || s.Nodes[i].Flag != meshstore.Undefined {
			continue
		}
		if isCorner != nil && isCorner(n) {
			continue
		}
		foot, t, err := geom.PerpFoot(s.Nodes[i].Point2(), p, q)
		if err != nil || t <= 0 || t >= 1 {
			continue
		}
		if geom.Dist(foot, s.Nodes[i].Point2()) < threshold {
			if repair.RemoveNode(s, n, graze) {
				removed++
			}
		}
	}
	return removed
}

// UntangleCrossings implements (b): swap any edge that crosses
// segment (p,q), recursing through the newly produced edges so chains of
// crossings get fully untangled before the segment is walked in.
func UntangleCrossings(s *meshstore.Store, p, q geom.Point2, mode meshstore.SwapMode, opts ExactnessOptions, graze float64) int {
	swapped := 0
	for pass := 0; pass < 64; pass++ {
		didSwap := false
		for i := range s.Edges {
			e := meshstore.EdgeID(i)
			edge := &s.Edges[i]
			if edge.Deleted || edge.IsConstraint {
				continue
			}
			a, b := s.Nodes[edge.Node1].Point2(), s.Nodes[edge.Node2].Point2()
			res, err := geom.SegmentIntersect(a, b, p, q, graze)
			if err != nil || res.Kind != geom.IntersectPoint {
				continue
			}
			const eps = 1e-9
			if res.T <= eps || res.T >= 1-eps {
				continue
			}
			if q2, ok := meshops.Quad(s, e); ok && meshops.IsConvexQuad(s, q2) {
				if _, _, err := meshops.SwapEdge(s, e); err == nil {
					swapped++
					didSwap = true
				}
			}
		}
		if !didSwap {
			break
		}
	}
	return swapped
}

// maxExactWalkSteps bounds the constrained-chain walk in
// RemoveInteriorSegmentNodes against a pathological polyline whose segment
// endpoints were never actually snapped into the mesh.
const maxExactWalkSteps = 4096

// RemoveInteriorSegmentNodes implements (d): once segment (p,q) has been
// walked in as one or more constraint edges, any node strictly between p
// and q is a point the walk snapped to or split in rather than a genuine
// polyline vertex, and is removed: its non-constraint incident edges are
// swapped away until it sits at 3 (mesh border) or 4 (mesh interior)
// edges, its two constraint edges are replaced by a single edge stitched
// directly between their far nodes, and the 1 or 2 surviving triangles are
// rebuilt from whatever edges remain.
func RemoveInteriorSegmentNodes(s *meshstore.Store, p, q geom.Point2, flag meshstore.ConstraintFlag, lineID int, graze float64) int {
	np, ok := nearestNodeWithin(s, p, graze)
	if !ok {
		return 0
	}
	nq, ok := nearestNodeWithin(s, q, graze)
	if !ok {
		return 0
	}

	removed := 0
	prev := meshstore.NilNode
	cur := np
	for steps := 0; steps < maxExactWalkSteps; steps++ {
		next, ok := constraintHop(s, cur, prev, lineID)
		if !ok || next == nq {
			break
		}
		if removeSegmentInteriorNode(s, next, flag, lineID) {
			removed++
			continue // cur keeps its place; the stitch rewires it past next.
		}
		prev, cur = cur, next
	}
	return removed
}

// constraintHop returns the node reached from cur by its one constraint
// edge of lineID that doesn't lead back to exclude.
func constraintHop(s *meshstore.Store, cur, exclude meshstore.NodeID, lineID int) (meshstore.NodeID, bool) {
	for _, e := range s.Nodes[cur].Edges() {
		edge := &s.Edges[e]
		if !edge.IsConstraint || edge.LineID != lineID {
			continue
		}
		if other := edge.OtherNode(cur); other != exclude {
			return other, true
		}
	}
	return meshstore.NilNode, false
}

func removeSegmentInteriorNode(s *meshstore.Store, n meshstore.NodeID, flag meshstore.ConstraintFlag, lineID int) bool {
	border := nodeIsMeshBorder(s, n)
	target := 4
	if border {
		target = 3
	}

	for i := 0; i < maxExactReduceSwaps && len(s.Nodes[n].Edges()) > target; i++ {
		if !reduceOneNonConstraint(s, n) {
			return false
		}
	}
	if len(s.Nodes[n].Edges()) != target {
		return false
	}

	var constrained, other []meshstore.EdgeID
	for _, e := range s.Nodes[n].Edges() {
		edge := &s.Edges[e]
		if edge.IsConstraint && edge.LineID == lineID {
			constrained = append(constrained, e)
		} else {
			other = append(other, e)
		}
	}
	if len(constrained) != 2 || len(other) != target-2 {
		return false
	}
	p1 := s.Edges[constrained[0]].OtherNode(n)
	p2 := s.Edges[constrained[1]].OtherNode(n)
	if !p1.IsValid() || !p2.IsValid() {
		return false
	}

	all := append(append([]meshstore.EdgeID{}, constrained...), other...)
	triSet := map[meshstore.TriID]bool{}
	for _, e := range all {
		edge := &s.Edges[e]
		for _, t := range [2]meshstore.TriID{edge.Tri1, edge.Tri2} {
			if t.IsValid() {
				triSet[t] = true
			}
		}
	}
	expectedTris := target
	if border {
		expectedTris = target - 1
	}
	if len(triSet) != expectedTris {
		return false
	}

	// Group each triangle's opposite edge by the "side" node it shares
	// with neither p1 nor p2: a border node has one side, an interior node
	// has two, and each side's pair of opposite edges becomes one
	// rebuilt triangle with the new p1-p2 edge as its third side.
	sides := map[meshstore.NodeID][]meshstore.EdgeID{}
	for t := range triSet {
		oe := s.OppositeEdge(t, n)
		if !oe.IsValid() {
			return false
		}
		edge := &s.Edges[oe]
		side := edge.Node1
		if side == p1 || side == p2 {
			side = edge.Node2
		}
		sides[side] = append(sides[side], oe)
	}
	expectedSides := 1
	if !border {
		expectedSides = 2
	}
	if len(sides) != expectedSides {
		return false
	}
	for _, oes := range sides {
		if len(oes) != 2 {
			return false
		}
	}

	for _, e := range all {
		s.WhackEdge(e)
	}
	s.Nodes[n].Deleted = true

	newEdge := s.AddEdge(p1, p2, meshstore.NilTri, meshstore.NilTri, flag)
	newEdgeRef := &s.Edges[newEdge]
	newEdgeRef.IsConstraint = true
	newEdgeRef.LineID = lineID

	for _, oes := range sides {
		newTri := s.AddTriangle(oes[0], newEdge, oes[1], 0)
		for _, oe := range [3]meshstore.EdgeID{oes[0], newEdge, oes[1]} {
			edge := &s.Edges[oe]
			switch {
			case !edge.Tri1.IsValid():
				edge.Tri1 = newTri
			case !edge.Tri2.IsValid():
				edge.Tri2 = newTri
			}
			edge.OnBorder = edge.Tri2 == meshstore.NilTri
		}
	}
	return true
}

func nodeIsMeshBorder(s *meshstore.Store, n meshstore.NodeID) bool {
	for _, e := range s.Nodes[n].Edges() {
		if s.Edges[e].IsBoundary() {
			return true
		}
	}
	return false
}

// maxExactReduceSwaps bounds removeSegmentInteriorNode's fan-reduction loop
// against a node whose remaining edges can never be swapped away.
const maxExactReduceSwaps = 256

// reduceOneNonConstraint swaps away one non-boundary, non-constraint edge
// incident to n. It mirrors repair.RemoveNode's reduceOnce: constraint
// edges (any non-Undefined flag) are never candidates, so the two edges
// being merged by RemoveInteriorSegmentNodes are always left alone.
func reduceOneNonConstraint(s *meshstore.Store, n meshstore.NodeID) bool {
	for _, e := range s.Nodes[n].Edges() {
		edge := &s.Edges[e]
		if edge.Deleted || edge.IsBoundary() || edge.Flag != meshstore.Undefined {
			continue
		}
		if _, _, err := meshops.SwapEdge(s, e); err == nil {
			return true
		}
	}
	return false
}

// RemoveCloseConstraintApexes implements (e): for every live constraint
// edge of lineID, either adjoining triangle's apex (the node opposite the
// constraint edge) is removed if its perpendicular distance to that edge
// is less than 0.4x the edge's length. This is PreDeleteClose's mirror,
// checked against the constraint edges actually inserted rather than the
// polyline's nominal segments.
func RemoveCloseConstraintApexes(s *meshstore.Store, lineID int, isCorner func(meshstore.NodeID) bool, graze float64) int {
	removed := 0
	for i := range s.Edges {
		e := meshstore.EdgeID(i)
		edge := &s.Edges[i]
		if edge.Deleted || !edge.IsConstraint || edge.LineID != lineID {
			continue
		}
		a, b := s.Nodes[edge.Node1].Point2(), s.Nodes[edge.Node2].Point2()
		segLen := geom.Dist(a, b)
		if segLen <= graze {
			continue
		}
		threshold := 0.4 * segLen

		for _, t := range [2]meshstore.TriID{edge.Tri1, edge.Tri2} {
			if !t.IsValid() {
				continue
			}
			apex := s.OppositeNode(t, e)
			if !apex.IsValid() || s.Nodes[apex].Deleted {
				continue
			}
			if isCorner != nil && isCorner(apex) {
				continue
			}
			apexPt := s.Nodes[apex].Point2()
			foot, tParam, err := geom.PerpFoot(apexPt, a, b)
			if err != nil || tParam <= 0 || tParam >= 1 {
				continue
			}
			if geom.Dist(foot, apexPt) < threshold {
				if repair.RemoveNode(s, apex, graze) {
					removed++
				}
			}
		}
	}
	return removed
}

// FinalReequilibrate implements (f): a last non-constraint
// edge-swap pass to restore equilateralness after the constraint edges
// are locked in (constraint edges are never swapped, per CanSwapEdge).
func FinalReequilibrate(s *meshstore.Store, opts ExactnessOptions) int {
	bias := opts.CornerBias
	if bias <= 0 {
		bias = 1
	}
	isCorner := opts.IsCorner
	if isCorner == nil {
		isCorner = func(meshstore.NodeID) bool { return false }
	}
	return meshops.GlobalSwapPass(s, meshstore.SwapAny, bias, isCorner)
}
