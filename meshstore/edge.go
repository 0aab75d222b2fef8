package meshstore

// Edge connects Node1 and Node2 and tracks the one or two triangles that
// use it. Tri1 is always valid for a live edge; Tri2 == NilTri iff the edge
// is a boundary edge.
type Edge struct {
	Node1, Node2 NodeID
	Tri1, Tri2   TriID

	Length float64
	Flag   ConstraintFlag
	Number int

	// LineID groups edges inserted from the same constraint polyline.
	LineID int

	// PairID (1-based, 0 = unset) links the two sides of a zero-offset
	// fault.
	PairID int

	Deleted bool

	// Tflag/Tflag2 are scratch bits used by multi-pass algorithms
	// (edge-swap oscillation tracking, constraint walking) within a
	// single public operation; callers never see them.
	Tflag, Tflag2 bool

	OnBorder     bool
	IsConstraint bool

	// ClientData optionally points to a crossing-node accumulator used
	// during ridge/drainage processing; owned by the caller.
	ClientData any
}

func newEdge(n1, n2 NodeID, t1, t2 TriID, flag ConstraintFlag) Edge {
	return Edge{Node1: n1, Node2: n2, Tri1: t1, Tri2: t2, Flag: flag}
}

// OtherNode returns the node at the opposite end of the edge from n.
func (e *Edge) OtherNode(n NodeID) NodeID {
	if e.Node1 == n {
		return e.Node2
	}
	if e.Node2 == n {
		return e.Node1
	}
	return NilNode
}

// HasNode reports whether n is one of the edge's endpoints.
func (e *Edge) HasNode(n NodeID) bool {
	return e.Node1 == n || e.Node2 == n
}

// OtherTri returns the triangle on the other side of the edge from t.
func (e *Edge) OtherTri(t TriID) TriID {
	if e.Tri1 == t {
		return e.Tri2
	}
	if e.Tri2 == t {
		return e.Tri1
	}
	return NilTri
}

// IsBoundary reports whether the edge has only one live triangle.
func (e *Edge) IsBoundary() bool { return e.Tri2 == NilTri }
