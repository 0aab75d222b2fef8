// Package repair implements 's topology cleanup passes: zero-
// length edge collapse, zero-area triangle removal, and interior/border
// node removal. Grounded on the teacher's cdt/cleanup.go sweep-and-compact
// shape, adapted to collapse/remove individual mesh elements in place
// rather than rebuilding a whole TriSoup.
package repair

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

// CollapseZeroLengthEdges implements: any live edge no longer
// than perimeter/20000 has its two endpoints merged into one (every edge
// incident to n1 is reassigned to n2), then the two triangles straddling
// the collapsed edge are deleted along with it.
func CollapseZeroLengthEdges(s *meshstore.Store, perimeter float64) int {
	threshold := perimeter / 20000
	count := 0
	for i := range s.Edges {
		if s.Edges[i].Deleted {
			continue
		}
		if s.Edges[i].Length <= threshold {
			collapseEdge(s, meshstore.EdgeID(i))
			count++
		}
	}
	return count
}

func collapseEdge(s *meshstore.Store, eid meshstore.EdgeID) {
	edge := &s.Edges[eid]
	n1, n2 := edge.Node1, edge.Node2

	for _, oe := range append([]meshstore.EdgeID(nil), s.Nodes[n1].Edges()...) {
		if oe == eid {
			continue
		}
		other := &s.Edges[oe]
		switch n1 {
		case other.Node1:
			other.Node1 = n2
		case other.Node2:
			other.Node2 = n2
		}
		other.Length = geom.Dist(s.Nodes[other.Node1].Point2(), s.Nodes[other.Node2].Point2())
		s.Nodes[n2].AttachEdge(oe)
	}
	s.Nodes[n1].Deleted = true

	s.WhackEdge(eid)
}
