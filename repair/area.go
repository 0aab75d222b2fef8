package repair

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

// RemoveZeroAreaTriangles implements: a triangle whose Heron
// area is at or below (perimeter/200000)^2 is degenerate. The fix deletes
// its longest edge when that edge is a boundary edge (the triangle just
// vanishes); otherwise the "middle" of the three colinear corners is
// removed via the interior/border node-removal routine.
func RemoveZeroAreaTriangles(s *meshstore.Store, perimeter float64) int {
	graze := geom.GrazeDistance(perimeter)
	threshold := perimeter / 200000
	areaThreshold := threshold * threshold

	count := 0
	for i := range s.Triangles {
		if s.Triangles[i].Deleted {
			continue
		}
		t := meshstore.TriID(i)
		nodes := s.TriangleNodes(t)
		a, b, c := s.Nodes[nodes[0]].Point2(), s.Nodes[nodes[1]].Point2(), s.Nodes[nodes[2]].Point2()
		ab, bc, ca := geom.SideLengths(a, b, c)
		if geom.HeronArea(ab, bc, ca) > areaThreshold {
			continue
		}

		longestEdge := longestSide(s, t)
		if s.Edges[longestEdge].IsBoundary() {
			s.WhackEdge(longestEdge)
			count++
			continue
		}

		mid := middleColinearNode(s, nodes, graze)
		if RemoveNode(s, mid, graze) {
			count++
		}
	}
	return count
}

func longestSide(s *meshstore.Store, t meshstore.TriID) meshstore.EdgeID {
	edges := s.Triangles[t].Edges()
	longest := edges[0]
	longestLen := s.Edges[edges[0]].Length
	for _, e := range edges[1:] {
		if s.Edges[e].Length > longestLen {
			longest = e
			longestLen = s.Edges[e].Length
		}
	}
	return longest
}

// middleColinearNode returns the node that lies between the other two
// along the shared line, i.e. the one NOT an endpoint of the triangle's
// longest side.
func middleColinearNode(s *meshstore.Store, nodes [3]meshstore.NodeID, graze float64) meshstore.NodeID {
	longest := 0
	longestLen := -1.0
	pairs := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	for i, pr := range pairs {
		d := geom.Dist(s.Nodes[nodes[pr[0]]].Point2(), s.Nodes[nodes[pr[1]]].Point2())
		if d > longestLen {
			longestLen = d
			longest = i
		}
	}
	// The node not part of the longest pair is the middle one.
	for _, n := range nodes {
		if n != nodes[pairs[longest][0]] && n != nodes[pairs[longest][1]] {
			return n
		}
	}
	return nodes[0]
}
