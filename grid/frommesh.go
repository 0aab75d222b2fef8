package grid

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

// FromMesh rasterises every non-deleted triangle whose three z values are
// non-null onto g: for each triangle, fit its plane and set every grid
// node whose (x,y) lies inside or on the triangle to the plane's z.
func FromMesh(s *meshstore.Store, g *Grid) {
	for i := range s.Triangles {
		if s.Triangles[i].Deleted {
			continue
		}
		t := meshstore.TriID(i)
		nodes := s.TriangleNodes(t)
		n0, n1, n2 := s.Nodes[nodes[0]], s.Nodes[nodes[1]], s.Nodes[nodes[2]]
		if n0.IsNull() || n1.IsNull() || n2.IsNull() {
			continue
		}

		pl, err := geom.PlaneOfTriangle(n0.Point3(), n1.Point3(), n2.Point3())
		if err != nil {
			continue
		}

		ring := []geom.Point2{n0.Point2(), n1.Point2(), n2.Point2()}
		minX, minY, maxX, maxY := triBounds(ring)

		r0 := clampInt((minY-g.OriginY)/g.YSpace, 0, g.Rows-1)
		r1 := clampInt((maxY-g.OriginY)/g.YSpace+1, 0, g.Rows-1)
		c0 := clampInt((minX-g.OriginX)/g.XSpace, 0, g.Cols-1)
		c1 := clampInt((maxX-g.OriginX)/g.XSpace+1, 0, g.Cols-1)

		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				x, y := g.XY(r, c, 0)
				p := geom.Point2{X: x, Y: y}
				if geom.PointInPolygon(p, ring, 1e-9) == geom.Outside {
					continue
				}
				g.Set(r, c, pl.Eval(x, y))
			}
		}
	}
}

func triBounds(ring []geom.Point2) (minX, minY, maxX, maxY float64) {
	minX, maxX = ring[0].X, ring[0].X
	minY, maxY = ring[0].Y, ring[0].Y
	for _, p := range ring[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

func clampInt(v float64, lo, hi int) int {
	iv := int(v)
	if iv < lo {
		return lo
	}
	if iv > hi {
		return hi
	}
	return iv
}
