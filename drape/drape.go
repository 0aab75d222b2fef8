package drape

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
	"github.com/iceisfun/trimesh/spatial"
)

const maxWalkSteps = 4096

// DrapePolyline drapes a polyline onto the mesh's surface: it clips the
// polyline to the mesh first, then walks each surviving
// segment triangle-to-triangle, emitting (x,y,z) at every triangle
// crossing and at the segment's end.
func DrapePolyline(s *meshstore.Store, idx *spatial.TriangleIndex, pts []geom.Point2, graze float64) ([]geom.Point3, error) {
	clipped := ClipPolylineToMesh(s, pts, graze)

	var out []geom.Point3
	for _, seg := range clipped {
		for i := 0; i+1 < len(seg); i++ {
			pts3, err := drapeSegment(s, idx, seg[i], seg[i+1], graze)
			if err != nil {
				return out, err
			}
			if i > 0 && len(pts3) > 0 {
				pts3 = pts3[1:] // drop duplicate shared endpoint
			}
			out = append(out, pts3...)
		}
	}
	return out, nil
}

// drapeSegment walks from p to q, which must already lie inside (or on
// the boundary of) the mesh.
func drapeSegment(s *meshstore.Store, idx *spatial.TriangleIndex, p, q geom.Point2, graze float64) ([]geom.Point3, error) {
	t, ok := LocateTriangle(s, idx, p, graze)
	if !ok {
		return nil, ErrOutsideMesh
	}

	z0, err := planeZ(s, t, p)
	if err != nil {
		return nil, err
	}
	out := []geom.Point3{{X: p.X, Y: p.Y, Z: z0}}

	cur := p
	entry := meshstore.NilEdge

	for step := 0; step < maxWalkSteps; step++ {
		tri := &s.Triangles[t]
		var crossEdge meshstore.EdgeID
		var crossPt geom.Point2
		found := false

		for _, eid := range tri.Edges() {
			if eid == entry {
				continue
			}
			edge := &s.Edges[eid]
			a, b := s.Nodes[edge.Node1].Point2(), s.Nodes[edge.Node2].Point2()
			res, err := geom.SegmentIntersect(cur, q, a, b, graze)
			if err != nil || res.Kind != geom.IntersectPoint {
				continue
			}
			const eps = 1e-9
			if res.T <= eps {
				continue
			}
			if res.T >= 1-eps {
				continue // q itself lies at/inside this edge; handled below
			}
			crossEdge, crossPt, found = eid, res.P, true
			break
		}

		if !found {
			zq, err := planeZ(s, t, q)
			if err != nil {
				return out, err
			}
			out = append(out, geom.Point3{X: q.X, Y: q.Y, Z: zq})
			return out, nil
		}

		zc, err := planeZ(s, t, crossPt)
		if err != nil {
			return out, err
		}
		out = append(out, geom.Point3{X: crossPt.X, Y: crossPt.Y, Z: zc})

		edge := &s.Edges[crossEdge]
		next := edge.OtherTri(t)
		if !next.IsValid() {
			return out, nil // exited the mesh through a boundary edge
		}
		t = next
		entry = crossEdge
		cur = crossPt
	}
	return out, nil
}
