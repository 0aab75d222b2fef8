package triangulate

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

// PointInTriangle tests p against triangle t's current geometry, returning
// true if p is inside or grazing one of its edges.
func PointInTriangle(s *meshstore.Store, t meshstore.TriID, p geom.Point2, graze float64) bool {
	nodes := s.TriangleNodes(t)
	a, b, c := s.Nodes[nodes[0]].Point2(), s.Nodes[nodes[1]].Point2(), s.Nodes[nodes[2]].Point2()

	area := geom.Area2Abs(a, b, c)
	if area <= graze*graze {
		return false
	}

	o1 := geom.Orient(a, b, p, graze)
	o2 := geom.Orient(b, c, p, graze)
	o3 := geom.Orient(c, a, p, graze)

	return (o1 >= 0 && o2 >= 0 && o3 >= 0) || (o1 <= 0 && o2 <= 0 && o3 <= 0)
}

// TriangleBBox returns the bounding box of triangle t's current geometry.
func TriangleBBox(s *meshstore.Store, t meshstore.TriID) (minX, minY, maxX, maxY float64) {
	nodes := s.TriangleNodes(t)
	a, b, c := s.Nodes[nodes[0]], s.Nodes[nodes[1]], s.Nodes[nodes[2]]
	minX = min3(a.X, b.X, c.X)
	maxX = max3(a.X, b.X, c.X)
	minY = min3(a.Y, b.Y, c.Y)
	maxY = max3(a.Y, b.Y, c.Y)
	return
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
