package drape

import (
	"sort"

	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

func boundaryEdges(s *meshstore.Store) []meshstore.EdgeID {
	var out []meshstore.EdgeID
	for i := range s.Edges {
		if !s.Edges[i].Deleted && s.Edges[i].IsBoundary() {
			out = append(out, meshstore.EdgeID(i))
		}
	}
	return out
}

// pointInMeshByCrossing tests containment against the mesh's outer/hole
// boundary edges using an even-odd ray cast, the same rule geom.
// PointInPolygon uses for a single ring, generalised to however many
// disjoint boundary rings the mesh currently has (holes included) without
// needing them walked into ordered rings first.
func pointInMeshByCrossing(s *meshstore.Store, p geom.Point2, boundary []meshstore.EdgeID) bool {
	inside := false
	for _, eid := range boundary {
		e := &s.Edges[eid]
		a, b := s.Nodes[e.Node1].Point2(), s.Nodes[e.Node2].Point2()
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// ClipPolylineToMesh intersects the polyline against every boundary edge,
// sorts the intersections along each segment, and emits the portions that
// fall inside the mesh as independent polylines.
func ClipPolylineToMesh(s *meshstore.Store, pts []geom.Point2, graze float64) [][]geom.Point2 {
	boundary := boundaryEdges(s)
	if len(boundary) == 0 || len(pts) < 2 {
		return nil
	}

	var result [][]geom.Point2
	var current []geom.Point2

	flush := func() {
		if len(current) >= 2 {
			result = append(result, current)
		}
		current = nil
	}

	for i := 0; i+1 < len(pts); i++ {
		p, q := pts[i], pts[i+1]
		ts := []float64{0, 1}
		for _, eid := range boundary {
			e := &s.Edges[eid]
			a, b := s.Nodes[e.Node1].Point2(), s.Nodes[e.Node2].Point2()
			res, err := geom.SegmentIntersect(p, q, a, b, graze)
			if err != nil || res.Kind != geom.IntersectPoint {
				continue
			}
			if res.T > 1e-9 && res.T < 1-1e-9 {
				ts = append(ts, res.T)
			}
		}
		sort.Float64s(ts)

		prevT := ts[0]
		for k := 1; k < len(ts); k++ {
			t := ts[k]
			mid := lerpPt(p, q, (prevT+t)/2)
			if pointInMeshByCrossing(s, mid, boundary) {
				if len(current) == 0 {
					current = append(current, lerpPt(p, q, prevT))
				}
				current = append(current, lerpPt(p, q, t))
			} else {
				flush()
			}
			prevT = t
		}
	}
	flush()
	return result
}

func lerpPt(a, b geom.Point2, t float64) geom.Point2 {
	return geom.Point2{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}
