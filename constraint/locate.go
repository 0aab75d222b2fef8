package constraint

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshops"
	"github.com/iceisfun/trimesh/meshstore"
)

// locateTriangle returns a live triangle containing (or grazing) p, scanning
// every live triangle. The constraint engine runs once per polyline import,
// not per frame, so a linear scan is acceptable; drape/clip's hotter path
// uses spatial.TriangleIndex instead.
func locateTriangle(s *meshstore.Store, p geom.Point2, graze float64) (meshstore.TriID, bool) {
	for i := range s.Triangles {
		if s.Triangles[i].Deleted {
			continue
		}
		t := meshstore.TriID(i)
		if pointInTriangle(s, t, p, graze) {
			return t, true
		}
	}
	return meshstore.NilTri, false
}

func pointInTriangle(s *meshstore.Store, t meshstore.TriID, p geom.Point2, graze float64) bool {
	nodes := s.TriangleNodes(t)
	a, b, c := s.Nodes[nodes[0]].Point2(), s.Nodes[nodes[1]].Point2(), s.Nodes[nodes[2]].Point2()
	o1 := geom.Orient(a, b, p, graze)
	o2 := geom.Orient(b, c, p, graze)
	o3 := geom.Orient(c, a, p, graze)
	return (o1 >= 0 && o2 >= 0 && o3 >= 0) || (o1 <= 0 && o2 <= 0 && o3 <= 0)
}

// nearestNodeWithin returns the id of the live node closest to p if it lies
// within snapRadius, matching step 1's "snapping to an existing
// node if within average_edge_length/2.5".
func nearestNodeWithin(s *meshstore.Store, p geom.Point2, snapRadius float64) (meshstore.NodeID, bool) {
	best := meshstore.NilNode
	bestD2 := snapRadius * snapRadius
	for i := range s.Nodes {
		if s.Nodes[i].Deleted {
			continue
		}
		d2 := geom.Dist2(p, s.Nodes[i].Point2())
		if d2 <= bestD2 {
			bestD2 = d2
			best = meshstore.NodeID(i)
		}
	}
	return best, best.IsValid()
}

// locateOrInsertNode finds the node a constraint vertex should bind to: an
// existing node within snap radius (subject to the locked-node competition
// in claimNode), or a freshly split-in node at the exact location if pt
// falls inside (or grazing) the mesh.
func locateOrInsertNode(s *meshstore.Store, pt geom.Point3, snapRadius, graze float64) (meshstore.NodeID, error) {
	p2 := pt.XY()
	if n, ok := nearestNodeWithin(s, p2, snapRadius); ok {
		return claimNode(s, n, pt, graze)
	}

	t, ok := locateTriangle(s, p2, graze)
	if !ok {
		return meshstore.NilNode, ErrOutsideMesh
	}

	n := s.AddNode(pt.X, pt.Y, pt.Z, meshstore.Undefined)
	if _, err := meshops.SplitTriangle(s, t, n, graze); err != nil {
		return meshstore.NilNode, err
	}
	lockNode(s, n, pt)
	return n, nil
}

// claimNode binds constraint vertex pt to the nearest existing node n. An
// unlocked node is simply shifted onto pt and locked. A node already
// locked by an earlier constraint vertex instead competes on original
// position (Xorig,Yorig): whichever candidate sits closer to n's pre-snap
// location keeps n; the other is inserted as its own node, chained back to
// n via AdjustingNode.
func claimNode(s *meshstore.Store, n meshstore.NodeID, pt geom.Point3, graze float64) (meshstore.NodeID, error) {
	node := &s.Nodes[n]
	if !node.IsLocked {
		lockNode(s, n, pt)
		return n, nil
	}

	orig := geom.Point2{X: node.Xorig, Y: node.Yorig}
	curDist := geom.Dist2(geom.Point2{X: node.X, Y: node.Y}, orig)
	newDist := geom.Dist2(pt.XY(), orig)
	if newDist >= curDist {
		// n's existing claim stays closer to its original position; pt
		// does not reclaim it and gets its own node instead.
		return insertAdjustingNode(s, n, pt, graze)
	}

	// pt sits closer to n's original position: n's previous claim is
	// displaced to a fresh node at the position it is vacating, and n
	// moves onto pt.
	prevPt := geom.Point3{X: node.X, Y: node.Y, Z: node.Z}
	node.X, node.Y, node.Z = pt.X, pt.Y, pt.Z
	node.Shifted = true
	return insertAdjustingNode(s, n, prevPt, graze)
}

// insertAdjustingNode splits a fresh node in at pt, recording adjustedFrom
// as the node whose move required it.
func insertAdjustingNode(s *meshstore.Store, adjustedFrom meshstore.NodeID, pt geom.Point3, graze float64) (meshstore.NodeID, error) {
	t, ok := locateTriangle(s, pt.XY(), graze)
	if !ok {
		return meshstore.NilNode, ErrOutsideMesh
	}
	n := s.AddNode(pt.X, pt.Y, pt.Z, meshstore.Undefined)
	if _, err := meshops.SplitTriangle(s, t, n, graze); err != nil {
		return meshstore.NilNode, err
	}
	lockNode(s, n, pt)
	s.Nodes[n].AdjustingNode = adjustedFrom
	return n, nil
}

// lockNode marks n as bound to a constraint vertex at pt, shifting its
// position onto pt if it wasn't already there.
func lockNode(s *meshstore.Store, n meshstore.NodeID, pt geom.Point3) {
	node := &s.Nodes[n]
	if node.X != pt.X || node.Y != pt.Y || node.Z != pt.Z {
		node.X, node.Y, node.Z = pt.X, pt.Y, pt.Z
		node.Shifted = true
	}
	node.IsLocked = true
}
