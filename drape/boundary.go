package drape

import "github.com/iceisfun/trimesh/meshstore"

// MeshBoundary walks every boundary edge (Tri2 == NilTri) into ordered
// rings: from an unused boundary edge, follow the only other unused
// boundary edge at the current node until the ring closes. There may be
// several rings when the mesh has holes.
func MeshBoundary(s *meshstore.Store) [][]meshstore.NodeID {
	used := make(map[meshstore.EdgeID]bool)
	var rings [][]meshstore.NodeID

	for i := range s.Edges {
		start := meshstore.EdgeID(i)
		if s.Edges[start].Deleted || !s.Edges[start].IsBoundary() || used[start] {
			continue
		}

		ring := []meshstore.NodeID{s.Edges[start].Node1}
		cur := s.Edges[start].Node2
		usedEdge := start
		used[start] = true
		ring = append(ring, cur)

		for len(ring) < s.NumLiveEdges()+1 {
			next, ok := nextBoundaryEdge(s, cur, usedEdge, used)
			if !ok {
				break
			}
			used[next] = true
			cur = s.Edges[next].OtherNode(cur)
			usedEdge = next
			if cur == ring[0] {
				break
			}
			ring = append(ring, cur)
		}
		rings = append(rings, ring)
	}
	return rings
}

func nextBoundaryEdge(s *meshstore.Store, n meshstore.NodeID, avoid meshstore.EdgeID, used map[meshstore.EdgeID]bool) (meshstore.EdgeID, bool) {
	for _, e := range s.Nodes[n].Edges() {
		if e == avoid || used[e] || s.Edges[e].Deleted || !s.Edges[e].IsBoundary() {
			continue
		}
		return e, true
	}
	return meshstore.NilEdge, false
}
