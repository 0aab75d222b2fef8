package meshstore

// Triangle is an ordered triple of edges sharing three distinct nodes.
// Unlike the teacher's cdt.Tri (vertex-indexed with neighbour pointers),
// the mesh core is edge-indexed: triangle adjacency is derived
// by following Edge.Tri1/Tri2, which is what lets an edge carry a
// constraint class independent of any one triangle.
type Triangle struct {
	Edge1, Edge2, Edge3 TriEdgeRef
	Flag                int
	Deleted             bool
	Norm                *Normal
}

// TriEdgeRef is an edge id paired with nothing extra; kept as a named type
// so triangle.Edges() reads clearly at call sites.
type TriEdgeRef = EdgeID

// Edges returns the triangle's three edge ids in winding order.
func (t *Triangle) Edges() [3]EdgeID {
	return [3]EdgeID{t.Edge1, t.Edge2, t.Edge3}
}

// EdgeIndex returns the local slot (0,1,2) of e within the triangle, or -1.
func (t *Triangle) EdgeIndex(e EdgeID) int {
	switch e {
	case t.Edge1:
		return 0
	case t.Edge2:
		return 1
	case t.Edge3:
		return 2
	}
	return -1
}

// SetEdge overwrites the edge at local slot i (0,1,2).
func (t *Triangle) SetEdge(i int, e EdgeID) {
	switch i {
	case 0:
		t.Edge1 = e
	case 1:
		t.Edge2 = e
	case 2:
		t.Edge3 = e
	}
}
