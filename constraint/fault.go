package constraint

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

// WhackFaultPolygons implements: follow every fault/
// discontinuity edge chain by shared endpoints and matching lineid; where a
// chain closes into a polygon, delete every non-fault edge whose midpoint
// falls strictly inside it, carving a hole along the fault.
func WhackFaultPolygons(s *meshstore.Store, graze float64) {
	byLine := map[int][]meshstore.EdgeID{}
	for i := range s.Edges {
		e := &s.Edges[i]
		if e.Deleted || !e.Flag.IsFault() {
			continue
		}
		byLine[e.LineID] = append(byLine[e.LineID], meshstore.EdgeID(i))
	}

	for lineID, edges := range byLine {
		ring, closed := faultRing(s, edges)
		if !closed {
			continue
		}
		whackInsideRing(s, ring, lineID, graze)
	}
}

// faultRing walks a set of same-lineid fault edges by shared endpoints and
// returns the ordered node ring if the chain closes.
func faultRing(s *meshstore.Store, edges []meshstore.EdgeID) ([]meshstore.NodeID, bool) {
	if len(edges) < 3 {
		return nil, false
	}

	byNode := map[meshstore.NodeID][]meshstore.EdgeID{}
	for _, e := range edges {
		edge := &s.Edges[e]
		byNode[edge.Node1] = append(byNode[edge.Node1], e)
		byNode[edge.Node2] = append(byNode[edge.Node2], e)
	}

	start := s.Edges[edges[0]].Node1
	current := start
	prevEdge := meshstore.NilEdge
	ring := []meshstore.NodeID{start}

	for step := 0; step < len(edges)+1; step++ {
		next := meshstore.NilEdge
		for _, e := range byNode[current] {
			if e != prevEdge {
				next = e
				break
			}
		}
		if !next.IsValid() {
			return nil, false
		}
		edge := &s.Edges[next]
		other := edge.OtherNode(current)
		if other == start {
			return ring, true
		}
		ring = append(ring, other)
		current = other
		prevEdge = next
	}
	return nil, false
}

func whackInsideRing(s *meshstore.Store, ring []meshstore.NodeID, lineID int, graze float64) {
	poly := make([]geom.Point2, len(ring))
	for i, n := range ring {
		poly[i] = s.Nodes[n].Point2()
	}

	var toWhack []meshstore.EdgeID
	for i := range s.Edges {
		e := &s.Edges[i]
		if e.Deleted || e.Flag.IsFault() {
			continue
		}
		mid := geom.Point2{
			X: (s.Nodes[e.Node1].X + s.Nodes[e.Node2].X) / 2,
			Y: (s.Nodes[e.Node1].Y + s.Nodes[e.Node2].Y) / 2,
		}
		if geom.PointInPolygon(mid, poly, graze) == geom.Inside {
			toWhack = append(toWhack, meshstore.EdgeID(i))
		}
	}

	for _, e := range toWhack {
		s.WhackEdge(e)
	}
}
