package meshops

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

// triangleEdgeNodes returns the triangle's three nodes walked in winding
// order (n1,n2,n3) such that Edge1=(n1,n2), Edge2=(n2,n3), Edge3=(n3,n1).
// Every triangle built by this package maintains that convention; it is
// the local equivalent of the teacher's Tri.Edge(i) helper.
func triangleEdgeNodes(s *meshstore.Store, t meshstore.TriID) (n1, n2, n3 meshstore.NodeID) {
	nodes := s.TriangleNodes(t)
	return nodes[0], nodes[1], nodes[2]
}

// SplitResult reports what a split produced, for the caller to feed into
// edge-swap legalisation ("after a full pass, run the edge-swap pass").
type SplitResult struct {
	NewTriangles []meshstore.TriID
	NewEdges     []meshstore.EdgeID
	// EdgesToLegalize are the "outer" edges of the affected triangle(s):
	// the ones most likely to have become locally illegal.
	EdgesToLegalize []meshstore.EdgeID
}

// SplitTriangle implements: split triangle t at interior node
// p. If p grazes one of t's three edges it delegates to SplitFromEdge so
// both incident triangles are split, preserving the grazed edge's
// constraint class.
func SplitTriangle(s *meshstore.Store, t meshstore.TriID, p meshstore.NodeID, graze float64) (SplitResult, error) {
	tri := &s.Triangles[t]
	pp := s.Nodes[p].Point2()

	for _, eid := range tri.Edges() {
		e := &s.Edges[eid]
		a := s.Nodes[e.Node1].Point2()
		b := s.Nodes[e.Node2].Point2()
		if geom.PointOnSegment(pp, a, b, graze) {
			return SplitFromEdge(s, eid, p)
		}
	}

	n1, n2, n3 := triangleEdgeNodes(s, t)
	e1, e2, e3 := tri.Edge1, tri.Edge2, tri.Edge3

	pN1 := s.AddEdge(p, n1, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
	pN2 := s.AddEdge(p, n2, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
	pN3 := s.AddEdge(p, n3, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)

	// Ta reuses t's slot: vertices (n1,n2,p).
	tri.Edge1, tri.Edge2, tri.Edge3 = e1, pN2, pN1
	ta := t

	// Tb: vertices (n2,n3,p).
	tb := s.AddTriangle(e2, pN3, pN2, 0)

	// Tc: vertices (n3,n1,p).
	tc := s.AddTriangle(e3, pN1, pN3, 0)

	retargetTri(s, e2, t, tb)
	retargetTri(s, e3, t, tc)

	setTriSides(s, pN1, ta, tc)
	setTriSides(s, pN2, ta, tb)
	setTriSides(s, pN3, tb, tc)

	return SplitResult{
		NewTriangles:    []meshstore.TriID{ta, tb, tc},
		NewEdges:        []meshstore.EdgeID{pN1, pN2, pN3},
		EdgesToLegalize: []meshstore.EdgeID{e1, e2, e3},
	}, nil
}

// SplitFromEdge implements: split one or both triangles
// sharing edge e at node p, which must already lie on e within graze.
// Creates up to three new edges (p to each opposite node plus the new
// half of e) and up to two new triangles, preserving e's constraint class
// on both halves.
func SplitFromEdge(s *meshstore.Store, e meshstore.EdgeID, p meshstore.NodeID) (SplitResult, error) {
	edge := &s.Edges[e]
	n1, n2 := edge.Node1, edge.Node2
	flag := edge.Flag
	isConstraint := edge.IsConstraint
	lineID := edge.LineID

	res := SplitResult{}

	// The original edge becomes (n1,p); a new edge covers (p,n2).
	edge.Node2 = p
	s.Nodes[n2].edges = removeEdgeRef(s.Nodes[n2].edges, e)
	s.Nodes[p].edges = append(s.Nodes[p].edges, e)
	edge.Length = nodeDist(s, n1, p)

	halfEdge := s.AddEdge(p, n2, meshstore.NilTri, meshstore.NilTri, flag)
	s.Edges[halfEdge].IsConstraint = isConstraint
	s.Edges[halfEdge].LineID = lineID
	res.NewEdges = append(res.NewEdges, halfEdge)

	var halfEdgeSides [2]meshstore.TriID
	sides := [2]meshstore.TriID{edge.Tri1, edge.Tri2}
	for i, side := range sides {
		if !side.IsValid() {
			halfEdgeSides[i] = meshstore.NilTri
			continue
		}
		opp := s.OppositeNode(side, e)
		pOpp := s.AddEdge(p, opp, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
		res.NewEdges = append(res.NewEdges, pOpp)

		// side currently spans (n1,opp,n2) via (e, oppEdge1, oppEdge2).
		// It keeps the half touching n1 and we append a new triangle for
		// the half touching n2.
		oppEdgeN2 := findOtherEdge(s, side, e, n2)
		newTri := s.AddTriangle(halfEdge, oppEdgeN2, pOpp, 0)
		retargetTri(s, oppEdgeN2, side, newTri)
		setTriSides(s, pOpp, side, newTri)
		halfEdgeSides[i] = newTri

		res.NewTriangles = append(res.NewTriangles, newTri)
		res.EdgesToLegalize = append(res.EdgesToLegalize, oppEdgeN2)
	}
	setTriSides(s, halfEdge, halfEdgeSides[0], halfEdgeSides[1])
	res.EdgesToLegalize = append(res.EdgesToLegalize, e)

	return res, nil
}

// findOtherEdge returns the edge of triangle t that is neither e nor
// touches node n1 only; concretely, the edge incident to target node n
// that is not e.
func findOtherEdge(s *meshstore.Store, t meshstore.TriID, e meshstore.EdgeID, target meshstore.NodeID) meshstore.EdgeID {
	tri := &s.Triangles[t]
	for _, eid := range tri.Edges() {
		if eid == e {
			continue
		}
		edge := &s.Edges[eid]
		if edge.Node1 == target || edge.Node2 == target {
			return eid
		}
	}
	return meshstore.NilEdge
}

// retargetTri rewrites edge e's Tri1/Tri2 slot that pointed at 'from' to
// instead point at 'to' (used when a triangle is replaced by a new id
// during a split).
func retargetTri(s *meshstore.Store, e meshstore.EdgeID, from, to meshstore.TriID) {
	edge := &s.Edges[e]
	if edge.Tri1 == from {
		edge.Tri1 = to
	} else if edge.Tri2 == from {
		edge.Tri2 = to
	}
}

// setTriSides sets edge e's Tri1/Tri2 to (t1,t2), normalising so that a
// valid triangle never ends up in Tri2 while Tri1 is NilTri (
// invariant i requires Tri1 to always be valid for a live edge).
func setTriSides(s *meshstore.Store, e meshstore.EdgeID, t1, t2 meshstore.TriID) {
	if !t1.IsValid() && t2.IsValid() {
		t1, t2 = t2, t1
	}
	edge := &s.Edges[e]
	edge.Tri1, edge.Tri2 = t1, t2
	edge.OnBorder = edge.Tri2 == meshstore.NilTri
}

func removeEdgeRef(edges []meshstore.EdgeID, target meshstore.EdgeID) []meshstore.EdgeID {
	for i, e := range edges {
		if e == target {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}

func nodeDist(s *meshstore.Store, a, b meshstore.NodeID) float64 {
	na, nb := s.Nodes[a].Point2(), s.Nodes[b].Point2()
	return geom.Dist(na, nb)
}
