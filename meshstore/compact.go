package meshstore

// CompactResult reports the old->new index maps produced by RemoveDeleted,
// so callers holding cached ids elsewhere (spatial indices, client data,
// drainage accumulators) can rewrite them.
type CompactResult struct {
	NodeMap [][2]NodeID // old -> new, deleted entries absent
	EdgeMap [][2]EdgeID
	TriMap  [][2]TriID
}

// RemoveDeleted compacts all three arrays, dropping any edge whose both
// triangles vanished (an edge with Tri1 == NilTri after both deletions
// would violate invariant (i); such an edge is itself deleted first) and
// any triangle whose any edge vanished, then rewrites every cross-
// reference via the old->new maps.
//
// Idempotent: calling it twice in a row is a no-op the second time.
func (s *Store) RemoveDeleted() CompactResult {
	// First pass: drop edges that lost both triangles.
	for i := range s.Edges {
		e := &s.Edges[i]
		if e.Deleted {
			continue
		}
		if !e.Tri1.IsValid() && !e.Tri2.IsValid() {
			e.Deleted = true
			s.liveEdges--
			s.detachIncident(e.Node1, EdgeID(i))
			s.detachIncident(e.Node2, EdgeID(i))
		}
	}

	// Second pass: drop triangles referencing a now-deleted edge.
	for i := range s.Triangles {
		tri := &s.Triangles[i]
		if tri.Deleted {
			continue
		}
		for _, eid := range tri.Edges() {
			if !eid.IsValid() || s.Edges[eid].Deleted {
				tri.Deleted = true
				s.liveTris--
				break
			}
		}
	}

	nodeMap := make([]NodeID, len(s.Nodes))
	edgeMap := make([]EdgeID, len(s.Edges))
	triMap := make([]TriID, len(s.Triangles))
	for i := range nodeMap {
		nodeMap[i] = NilNode
	}
	for i := range edgeMap {
		edgeMap[i] = NilEdge
	}
	for i := range triMap {
		triMap[i] = NilTri
	}

	newNodes := make([]Node, 0, s.liveNodes)
	for i, n := range s.Nodes {
		if n.Deleted {
			continue
		}
		nodeMap[i] = NodeID(len(newNodes))
		newNodes = append(newNodes, n)
	}

	newEdges := make([]Edge, 0, s.liveEdges)
	for i, e := range s.Edges {
		if e.Deleted {
			continue
		}
		edgeMap[i] = EdgeID(len(newEdges))
		newEdges = append(newEdges, e)
	}

	newTris := make([]Triangle, 0, s.liveTris)
	for i, t := range s.Triangles {
		if t.Deleted {
			continue
		}
		triMap[i] = TriID(len(newTris))
		newTris = append(newTris, t)
	}

	// Rewrite cross-references using the maps.
	for i := range newNodes {
		n := &newNodes[i]
		remapped := n.edges[:0]
		for _, eid := range n.edges {
			if eid.IsValid() && edgeMap[eid].IsValid() {
				remapped = append(remapped, edgeMap[eid])
			}
		}
		n.edges = remapped
		if n.AdjustingNode.IsValid() {
			n.AdjustingNode = nodeMap[n.AdjustingNode]
		}
	}
	for i := range newEdges {
		e := &newEdges[i]
		e.Node1 = remapNode(nodeMap, e.Node1)
		e.Node2 = remapNode(nodeMap, e.Node2)
		e.Tri1 = remapTri(triMap, e.Tri1)
		e.Tri2 = remapTri(triMap, e.Tri2)
	}
	for i := range newTris {
		t := &newTris[i]
		t.Edge1 = remapEdge(edgeMap, t.Edge1)
		t.Edge2 = remapEdge(edgeMap, t.Edge2)
		t.Edge3 = remapEdge(edgeMap, t.Edge3)
	}

	res := CompactResult{}
	for oldID, newID := range nodeMap {
		if newID.IsValid() {
			res.NodeMap = append(res.NodeMap, [2]NodeID{NodeID(oldID), newID})
		}
	}
	for oldID, newID := range edgeMap {
		if newID.IsValid() {
			res.EdgeMap = append(res.EdgeMap, [2]EdgeID{EdgeID(oldID), newID})
		}
	}
	for oldID, newID := range triMap {
		if newID.IsValid() {
			res.TriMap = append(res.TriMap, [2]TriID{TriID(oldID), newID})
		}
	}

	s.Nodes = newNodes
	s.Edges = newEdges
	s.Triangles = newTris
	s.liveNodes = len(newNodes)
	s.liveEdges = len(newEdges)
	s.liveTris = len(newTris)

	return res
}

func remapNode(m []NodeID, id NodeID) NodeID {
	if !id.IsValid() {
		return NilNode
	}
	return m[id]
}
func remapEdge(m []EdgeID, id EdgeID) EdgeID {
	if !id.IsValid() {
		return NilEdge
	}
	return m[id]
}
func remapTri(m []TriID, id TriID) TriID {
	if !id.IsValid() {
		return NilTri
	}
	return m[id]
}

// NumLiveNodes, NumLiveEdges, NumLiveTriangles report live (non-tombstoned)
// element counts without requiring a compaction pass.
func (s *Store) NumLiveNodes() int     { return s.liveNodes }
func (s *Store) NumLiveEdges() int     { return s.liveEdges }
func (s *Store) NumLiveTriangles() int { return s.liveTris }
