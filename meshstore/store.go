package meshstore

import "math"

// RawPoint is an input sample point, before it is (or is not) promoted to
// a mesh node ("Raw point").
type RawPoint struct {
	X, Y, Z float64
	Used    bool
}

// Store is the mutable collection of three parallel dense arrays (Nodes,
// Edges, Triangles) described by. It grows geometrically (1.5x)
// and never shrinks capacity mid-operation, so ids handed out during a
// build stay stable until the caller explicitly compacts.
//
// Store also owns the raw-point and constraint-raw-point tables (
// Ownership): they are cleared together with the rest of the store.
type Store struct {
	Nodes     []Node
	Edges     []Edge
	Triangles []Triangle

	RawPoints           []RawPoint
	ConstraintRawPoints []RawPoint

	liveNodes, liveEdges, liveTris int
}

// New creates an empty store with a small initial reservation, mirroring
// the teacher's NewMesh(64-capacity slices) growth habit.
func New() *Store {
	return &Store{
		Nodes:     make([]Node, 0, 64),
		Edges:     make([]Edge, 0, 128),
		Triangles: make([]Triangle, 0, 64),
	}
}

func grow[T any](s []T, minCap int) []T {
	if cap(s) >= minCap {
		return s
	}
	newCap := cap(s) + cap(s)/2
	if newCap < minCap {
		newCap = minCap
	}
	grown := make([]T, len(s), newCap)
	copy(grown, s)
	return grown
}

// AddNode appends a node and returns its id.
func (s *Store) AddNode(x, y, z float64, flag ConstraintFlag) NodeID {
	s.Nodes = grow(s.Nodes, len(s.Nodes)+1)
	s.Nodes = append(s.Nodes, newNode(x, y, z, flag))
	s.liveNodes++
	return NodeID(len(s.Nodes) - 1)
}

// AddEdge appends an edge between n1 and n2, records t1/t2 as its
// triangles (the triangles themselves are not modified), registers it
// with both endpoints' incident lists, and returns its id.
func (s *Store) AddEdge(n1, n2 NodeID, t1, t2 TriID, flag ConstraintFlag) EdgeID {
	s.Edges = grow(s.Edges, len(s.Edges)+1)
	e := newEdge(n1, n2, t1, t2, flag)
	e.Length = nodeDist(s, n1, n2)
	e.OnBorder = t2 == NilTri
	s.Edges = append(s.Edges, e)
	id := EdgeID(len(s.Edges) - 1)
	s.liveEdges++

	s.attachIncident(n1, id)
	s.attachIncident(n2, id)
	return id
}

// AddTriangle appends a triangle from three edges and returns its id.
// Caller is responsible for having already rewritten e1,e2,e3's Tri1/Tri2
// to reference the id this call will produce; AddTriangle does not rewrite
// edges itself because many callers build several triangles in one
// transaction before wiring cross-references (split, swap).
func (s *Store) AddTriangle(e1, e2, e3 EdgeID, flag int) TriID {
	s.Triangles = grow(s.Triangles, len(s.Triangles)+1)
	s.Triangles = append(s.Triangles, Triangle{Edge1: e1, Edge2: e2, Edge3: e3, Flag: flag})
	s.liveTris++
	return TriID(len(s.Triangles) - 1)
}

func (s *Store) attachIncident(n NodeID, e EdgeID) {
	if !n.IsValid() {
		return
	}
	node := &s.Nodes[n]
	node.edges = append(node.edges, e)
}

func (s *Store) detachIncident(n NodeID, e EdgeID) {
	if !n.IsValid() {
		return
	}
	node := &s.Nodes[n]
	for i, ee := range node.edges {
		if ee == e {
			node.edges = append(node.edges[:i], node.edges[i+1:]...)
			return
		}
	}
}

func nodeDist(s *Store, a, b NodeID) float64 {
	if !a.IsValid() || !b.IsValid() {
		return 0
	}
	na, nb := &s.Nodes[a], &s.Nodes[b]
	dx, dy := na.X-nb.X, na.Y-nb.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// WhackEdge marks an edge deleted, detaches its two triangles (setting
// their missing third edge to Tri2 = NilTri as appropriate), deletes those
// triangles if they become untriangulable (i.e. they lose an edge and have
// no third side to stand on), and removes the edge from both endpoints'
// incident lists.
func (s *Store) WhackEdge(id EdgeID) {
	if !id.IsValid() || int(id) >= len(s.Edges) || s.Edges[id].Deleted {
		return
	}
	e := &s.Edges[id]
	e.Deleted = true
	s.liveEdges--

	s.detachIncident(e.Node1, id)
	s.detachIncident(e.Node2, id)

	for _, tid := range [2]TriID{e.Tri1, e.Tri2} {
		if !tid.IsValid() || s.Triangles[tid].Deleted {
			continue
		}
		s.deleteTriangle(tid, id)
	}
}

// deleteTriangle marks triangle tid deleted because edge 'via' vanished,
// and for its surviving two edges flips the reference that pointed at tid
// to NilTri (the triangle on "the other side" of those edges is now the
// boundary).
func (s *Store) deleteTriangle(tid TriID, via EdgeID) {
	tri := &s.Triangles[tid]
	if tri.Deleted {
		return
	}
	tri.Deleted = true
	s.liveTris--

	for _, eid := range tri.Edges() {
		if eid == via || !eid.IsValid() {
			continue
		}
		edge := &s.Edges[eid]
		if edge.Tri1 == tid {
			edge.Tri1 = edge.Tri2
			edge.Tri2 = NilTri
		} else if edge.Tri2 == tid {
			edge.Tri2 = NilTri
		}
		edge.OnBorder = edge.Tri2 == NilTri
	}
}

// DeleteIsolatedNode tombstones a node that has no remaining incident
// edges (e.g. after every edge touching it was whacked by a polygon
// clip). It is a no-op if the node still has incident edges, since
// removing those is WhackEdge's and repair's job.
func (s *Store) DeleteIsolatedNode(n NodeID) bool {
	if !n.IsValid() || int(n) >= len(s.Nodes) {
		return false
	}
	node := &s.Nodes[n]
	if node.Deleted || len(node.edges) > 0 {
		return false
	}
	node.Deleted = true
	s.liveNodes--
	return true
}

// OppositeNode returns the third node of triangle t, given one of its
// edges e.
func (s *Store) OppositeNode(t TriID, e EdgeID) NodeID {
	tri := &s.Triangles[t]
	edge := &s.Edges[e]
	for _, eid := range tri.Edges() {
		if eid == e {
			continue
		}
		other := &s.Edges[eid]
		for _, n := range [2]NodeID{other.Node1, other.Node2} {
			if n != edge.Node1 && n != edge.Node2 {
				return n
			}
		}
	}
	return NilNode
}

// OppositeEdge returns the edge of triangle t that does not touch node n.
func (s *Store) OppositeEdge(t TriID, n NodeID) EdgeID {
	tri := &s.Triangles[t]
	for _, eid := range tri.Edges() {
		e := &s.Edges[eid]
		if e.Node1 != n && e.Node2 != n {
			return eid
		}
	}
	return NilEdge
}

// TriangleNodes returns the three distinct nodes of a triangle, walking
// edge1 then picking up the new node introduced by edge2 and edge3 in turn.
func (s *Store) TriangleNodes(t TriID) [3]NodeID {
	tri := &s.Triangles[t]
	e1 := &s.Edges[tri.Edge1]
	e2 := &s.Edges[tri.Edge2]
	n1, n2 := e1.Node1, e1.Node2

	var n3 NodeID
	if e2.Node1 != n1 && e2.Node1 != n2 {
		n3 = e2.Node1
	} else {
		n3 = e2.Node2
	}
	return [3]NodeID{n1, n2, n3}
}
