package drape

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

// KeepMode selects which side of a clip polygon survives.
type KeepMode int

const (
	KeepInside KeepMode = iota
	KeepOutside
)

// ClipMeshToPolygon deletes every edge whose midpoint falls on the
// discarded side of ring, cascading to the triangles that lose an edge,
// then deletes any now-isolated endpoint node that also falls on the
// discarded side.
func ClipMeshToPolygon(s *meshstore.Store, ring []geom.Point2, mode KeepMode, eps float64) {
	discard := func(pos geom.PointPosition) bool {
		if pos == geom.OnBoundary {
			return false
		}
		if mode == KeepInside {
			return pos == geom.Outside
		}
		return pos == geom.Inside
	}

	for i := range s.Edges {
		e := meshstore.EdgeID(i)
		edge := &s.Edges[i]
		if edge.Deleted {
			continue
		}
		a, b := s.Nodes[edge.Node1].Point2(), s.Nodes[edge.Node2].Point2()
		mid := geom.Point2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
		if discard(geom.PointInPolygon(mid, ring, eps)) {
			s.WhackEdge(e)
		}
	}

	for i := range s.Nodes {
		n := meshstore.NodeID(i)
		node := &s.Nodes[i]
		if node.Deleted || node.NumEdges() > 0 {
			continue
		}
		if discard(geom.PointInPolygon(node.Point2(), ring, eps)) {
			s.DeleteIsolatedNode(n)
		}
	}
}
