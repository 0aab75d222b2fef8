package constraint

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshops"
	"github.com/iceisfun/trimesh/meshstore"
)

// maxWalkSteps bounds the segment walk against runaway loops on malformed
// input; a well-formed mesh resolves a segment in at most a handful of
// triangle crossings.
const maxWalkSteps = 4096

// InsertSegment implements: locate p and q's nodes, then walk
// from p's node toward q, marking or creating edges with flag until q's
// node is reached.
func InsertSegment(s *meshstore.Store, p, q geom.Point3, flag meshstore.ConstraintFlag, lineID int, avgEdgeLen, graze float64) error {
	snapRadius := avgEdgeLen / 2.5

	n1, err := locateOrInsertNode(s, p, snapRadius, graze)
	if err != nil {
		return err
	}
	target, err := locateOrInsertNode(s, q, snapRadius, graze)
	if err != nil {
		return err
	}
	if n1 == target {
		return nil
	}

	qPoint := s.Nodes[target].Point3()

	for step := 0; step < maxWalkSteps; step++ {
		n1Point := s.Nodes[n1].Point2()

		// (i) q already incident.
		if e, ok := findEdgeBetween(s, n1, target); ok {
			markConstraint(s, e, flag, lineID)
			return nil
		}

		// (ii) an incident edge's far node lies on (n1,q) within graze.
		if farEdge, farNode, ok := findOnSegmentNeighbour(s, n1, target, qPoint.XY(), graze); ok {
			markConstraint(s, farEdge, flag, lineID)
			n1 = farNode
			continue
		}

		// (iii) find the opposite edge of a triangle at n1 crossed by (n1,q).
		crossEdge, crossPt, ok := findCrossing(s, n1, qPoint.XY(), graze)
		if !ok {
			return ErrUnmatchedSegment
		}
		if s.Edges[crossEdge].Flag != meshstore.Undefined && s.Edges[crossEdge].Flag != flag {
			return ErrCrossesConstraint
		}

		z := interpolateZ(n1Point, qPoint.XY(), s.Nodes[n1].Z, qPoint.Z, crossPt)
		newNode := s.AddNode(crossPt.X, crossPt.Y, z, meshstore.Undefined)
		if _, err := meshops.SplitFromEdge(s, crossEdge, newNode); err != nil {
			return err
		}

		// The triangle we searched from has n1 as its third vertex, so
		// splitting crossEdge always creates an edge straight back to n1;
		// that hop lies on the constraint segment by construction and
		// gets tagged the same as every other matched hop.
		if hop, ok := findEdgeBetween(s, n1, newNode); ok {
			markConstraint(s, hop, flag, lineID)
		}
		n1 = newNode
	}

	return ErrUnmatchedSegment
}

// InsertPolyline walks every consecutive pair of a polyline (
// "finally projected onto the mesh"); vertices that fail to match are
// reported but do not stop the remaining segments from being attempted.
func InsertPolyline(s *meshstore.Store, pts []geom.Point3, flag meshstore.ConstraintFlag, lineID int, avgEdgeLen, graze float64) []error {
	var errs []error
	for i := 0; i+1 < len(pts); i++ {
		if err := InsertSegment(s, pts[i], pts[i+1], flag, lineID, avgEdgeLen, graze); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func findEdgeBetween(s *meshstore.Store, n1, n2 meshstore.NodeID) (meshstore.EdgeID, bool) {
	for _, e := range s.Nodes[n1].Edges() {
		edge := &s.Edges[e]
		if edge.OtherNode(n1) == n2 {
			return e, true
		}
	}
	return meshstore.NilEdge, false
}

func findOnSegmentNeighbour(s *meshstore.Store, n1, target meshstore.NodeID, q geom.Point2, graze float64) (meshstore.EdgeID, meshstore.NodeID, bool) {
	p := s.Nodes[n1].Point2()
	for _, e := range s.Nodes[n1].Edges() {
		edge := &s.Edges[e]
		far := edge.OtherNode(n1)
		if far == target {
			continue
		}
		farPt := s.Nodes[far].Point2()
		if geom.PointOnSegment(farPt, p, q, graze) {
			return e, far, true
		}
	}
	return meshstore.NilEdge, meshstore.NilNode, false
}

func findCrossing(s *meshstore.Store, n1 meshstore.NodeID, q geom.Point2, graze float64) (meshstore.EdgeID, geom.Point2, bool) {
	p := s.Nodes[n1].Point2()
	seen := map[meshstore.TriID]bool{}

	for _, e := range s.Nodes[n1].Edges() {
		edge := &s.Edges[e]
		for _, t := range [2]meshstore.TriID{edge.Tri1, edge.Tri2} {
			if !t.IsValid() || seen[t] {
				continue
			}
			seen[t] = true

			opp := s.OppositeEdge(t, n1)
			if !opp.IsValid() {
				continue
			}
			oppEdge := &s.Edges[opp]
			a := s.Nodes[oppEdge.Node1].Point2()
			b := s.Nodes[oppEdge.Node2].Point2()

			res, err := geom.SegmentIntersect(p, q, a, b, graze)
			if err != nil || res.Kind != geom.IntersectPoint {
				continue
			}
			const eps = 1e-9
			if res.U <= eps || res.U >= 1-eps {
				continue
			}
			return opp, res.P, true
		}
	}
	return meshstore.NilEdge, geom.Point2{}, false
}

func interpolateZ(a, b geom.Point2, za, zb float64, at geom.Point2) float64 {
	len2 := geom.Dist2(a, b)
	if len2 == 0 {
		return za
	}
	t := ((at.X-a.X)*(b.X-a.X) + (at.Y-a.Y)*(b.Y-a.Y)) / len2
	return za + t*(zb-za)
}

func markConstraint(s *meshstore.Store, e meshstore.EdgeID, flag meshstore.ConstraintFlag, lineID int) {
	edge := &s.Edges[e]
	edge.Flag = flag
	edge.IsConstraint = true
	edge.LineID = lineID
}
