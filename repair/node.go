package repair

import (
	"github.com/iceisfun/trimesh/meshops"
	"github.com/iceisfun/trimesh/meshstore"
)

// maxReduceSwaps bounds the fan-reduction loop against a pathological node
// whose incident edges can never be swapped down further (e.g. every
// neighbour is itself constrained).
const maxReduceSwaps = 256

// RemoveNode implements 's node removal: an interior node is
// reduced to a 3-edge fan and replaced by one triangle built from the
// fan's three opposite edges; a border node is reduced to its two
// boundary edges, which then collapse directly since a border node's last
// triangle's non-n edge already connects the two boundary neighbours.
//
// The swap used to shrink the fan is unconditional (ignores the quality
// metric, unlike GlobalSwapPass) but still refuses to cross a constraint
// edge: only a non-constraint incident edge is ever swapped this way.
func RemoveNode(s *meshstore.Store, n meshstore.NodeID, graze float64) bool {
	if !n.IsValid() || s.Nodes[n].Deleted {
		return false
	}

	isBorder := nodeIsBorder(s, n)
	target := 3
	if isBorder {
		target = 2
	}

	for i := 0; i < maxReduceSwaps && len(s.Nodes[n].Edges()) > target; i++ {
		if !reduceOnce(s, n) {
			break
		}
	}

	switch {
	case isBorder && len(s.Nodes[n].Edges()) == 2:
		return collapseBorderNode(s, n)
	case isBorder && len(s.Nodes[n].Edges()) == 3:
		return collapseBorderNodeThreeEdge(s, n)
	case !isBorder && len(s.Nodes[n].Edges()) == 3:
		return collapseInteriorFan(s, n)
	default:
		return false
	}
}

func nodeIsBorder(s *meshstore.Store, n meshstore.NodeID) bool {
	for _, e := range s.Nodes[n].Edges() {
		if s.Edges[e].IsBoundary() {
			return true
		}
	}
	return false
}

// reduceOnce swaps away one non-boundary, non-constraint edge incident to
// n, moving it off n's incident list. Returns false if no such edge can be
// swapped (every remaining edge is boundary, constrained, or concave).
func reduceOnce(s *meshstore.Store, n meshstore.NodeID) bool {
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

// collapseBorderNode handles the 2-boundary-edge case: the single
// remaining triangle's third side already connects the two far nodes, so
// deleting both boundary edges (and, with them, the triangle) leaves that
// third side as the new boundary edge automatically.
func collapseBorderNode(s *meshstore.Store, n meshstore.NodeID) bool {
	edges := s.Nodes[n].Edges()
	if len(edges) != 2 {
		return false
	}
	for _, e := range edges {
		s.WhackEdge(e)
	}
	s.Nodes[n].Deleted = true
	return true
}

// collapseBorderNodeThreeEdge handles a border node stuck with its two
// boundary edges plus one interior edge that reduceOnce could never swap
// away (its far quad is concave, or the edge is itself constrained): the
// two triangles fanning the open side of n are replaced by one new
// triangle built from their two opposite edges, stitched shut with one new
// boundary edge between the two outer boundary neighbours.
func collapseBorderNodeThreeEdge(s *meshstore.Store, n meshstore.NodeID) bool {
	edges := s.Nodes[n].Edges()
	if len(edges) != 3 {
		return false
	}

	var boundary []meshstore.EdgeID
	var interior meshstore.EdgeID
	for _, e := range edges {
		if s.Edges[e].IsBoundary() {
			boundary = append(boundary, e)
		} else {
			interior = e
		}
	}
	if len(boundary) != 2 || !interior.IsValid() {
		return false
	}

	triSet := map[meshstore.TriID]bool{}
	for _, e := range edges {
		edge := &s.Edges[e]
		for _, t := range [2]meshstore.TriID{edge.Tri1, edge.Tri2} {
			if t.IsValid() {
				triSet[t] = true
			}
		}
	}
	if len(triSet) != 2 {
		return false
	}

	var outer [2]meshstore.EdgeID
	i := 0
	for t := range triSet {
		outer[i] = s.OppositeEdge(t, n)
		i++
	}
	if !outer[0].IsValid() || !outer[1].IsValid() {
		return false
	}

	far2 := s.Edges[interior].OtherNode(n)
	far1 := s.Edges[outer[0]].OtherNode(far2)
	far3 := s.Edges[outer[1]].OtherNode(far2)
	if !far1.IsValid() || !far3.IsValid() {
		return false
	}

	boundaryFlag := s.Edges[boundary[0]].Flag

	for _, e := range edges {
		s.WhackEdge(e)
	}
	s.Nodes[n].Deleted = true

	newEdge := s.AddEdge(far1, far3, meshstore.NilTri, meshstore.NilTri, boundaryFlag)
	newEdge2 := &s.Edges[newEdge]
	newEdge2.OnBorder = true

	newTri := s.AddTriangle(outer[0], newEdge, outer[1], 0)
	for _, oe := range [3]meshstore.EdgeID{outer[0], newEdge, outer[1]} {
		edge := &s.Edges[oe]
		switch {
		case !edge.Tri1.IsValid():
			edge.Tri1 = newTri
		case !edge.Tri2.IsValid():
			edge.Tri2 = newTri
		}
		edge.OnBorder = edge.Tri2 == meshstore.NilTri
	}
	return true
}

// collapseInteriorFan handles the 3-edge interior case: the three
// triangles fanning around n are deleted along with n's three edges, and
// their three opposite edges are stitched into one new triangle.
func collapseInteriorFan(s *meshstore.Store, n meshstore.NodeID) bool {
	edges := s.Nodes[n].Edges()
	if len(edges) != 3 {
		return false
	}

	triSet := map[meshstore.TriID]bool{}
	for _, e := range edges {
		edge := &s.Edges[e]
		for _, t := range [2]meshstore.TriID{edge.Tri1, edge.Tri2} {
			if t.IsValid() {
				triSet[t] = true
			}
		}
	}
	if len(triSet) != 3 {
		return false
	}

	var outer [3]meshstore.EdgeID
	i := 0
	for t := range triSet {
		outer[i] = s.OppositeEdge(t, n)
		i++
	}

	for _, e := range edges {
		s.WhackEdge(e)
	}
	s.Nodes[n].Deleted = true

	newTri := s.AddTriangle(outer[0], outer[1], outer[2], 0)
	for _, oe := range outer {
		edge := &s.Edges[oe]
		switch {
		case !edge.Tri1.IsValid():
			edge.Tri1 = newTri
		case !edge.Tri2.IsValid():
			edge.Tri2 = newTri
		}
		edge.OnBorder = edge.Tri2 == meshstore.NilTri
	}
	return true
}
