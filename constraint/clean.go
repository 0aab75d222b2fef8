package constraint

import (
	"math"

	"github.com/iceisfun/trimesh/geom"
)

// CleanOptions controls the polyline pre-processing CleanPolyline applies
// before any segment is walked into the mesh.
type CleanOptions struct {
	// Polygonalize closes a polyline whose two endpoints already nearly
	// coincide into an explicit loop, treating it as a boundary polygon
	// rather than an open line.
	Polygonalize bool

	// Chop resamples every segment into sub-segments no longer than
	// TargetLen.
	Chop      bool
	TargetLen float64
}

// CleanPolyline implements the required polyline pre-processing: near-
// duplicate vertices are merged, small loops/strips are closed into
// polygons when requested, the result is exploded at every self-
// intersection into simple (non-crossing) pieces, and each piece is
// chopped into roughly-equal sub-segments when requested. The walk and
// exactness passes then run once per returned piece.
func CleanPolyline(pts []geom.Point3, opts CleanOptions, graze float64) [][]geom.Point3 {
	pts = dedupVertices(pts, graze)
	if len(pts) < 2 {
		return nil
	}
	if opts.Polygonalize {
		pts = polygonalizeLine(pts, graze)
	}

	pieces := explodeSelfIntersections(pts, graze)
	if opts.Chop && opts.TargetLen > 0 {
		for i := range pieces {
			pieces[i] = chopLine(pieces[i], opts.TargetLen)
		}
	}
	return pieces
}

// dedupVertices drops any vertex that lies within graze of the previous
// surviving vertex.
func dedupVertices(pts []geom.Point3, graze float64) []geom.Point3 {
	if len(pts) == 0 {
		return pts
	}
	out := make([]geom.Point3, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if geom.Dist(p.XY(), out[len(out)-1].XY()) <= graze {
			continue
		}
		out = append(out, p)
	}
	return out
}

// polygonalizeLine snaps a line's last vertex onto its first when the two
// already nearly coincide, closing a small loop or thin strip into an
// explicit polygon.
func polygonalizeLine(pts []geom.Point3, graze float64) []geom.Point3 {
	if len(pts) < 3 {
		return pts
	}
	first, last := pts[0], pts[len(pts)-1]
	if geom.Dist(first.XY(), last.XY()) > graze {
		return pts
	}
	out := make([]geom.Point3, len(pts))
	copy(out, pts)
	out[len(out)-1] = first
	return out
}

// explodeSelfIntersections splits pts at the first crossing it finds
// between two non-adjacent segments and recurses on each half, so every
// returned piece is a simple polyline. The shared closing vertex of an
// explicitly polygonalized loop is not treated as a crossing.
func explodeSelfIntersections(pts []geom.Point3, graze float64) [][]geom.Point3 {
	if len(pts) < 4 {
		return [][]geom.Point3{pts}
	}
	closed := geom.Dist(pts[0].XY(), pts[len(pts)-1].XY()) <= graze

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i].XY(), pts[i+1].XY()
		for j := i + 2; j+1 < len(pts); j++ {
			if closed && i == 0 && j+1 == len(pts)-1 {
				continue
			}
			c, d := pts[j].XY(), pts[j+1].XY()
			res, err := geom.SegmentIntersect(a, b, c, d, graze)
			if err != nil || res.Kind != geom.IntersectPoint {
				continue
			}
			const eps = 1e-9
			if res.T <= eps || res.T >= 1-eps {
				continue
			}

			split := geom.Point3{X: res.P.X, Y: res.P.Y, Z: lerpZ(pts[i], pts[i+1], res.T)}
			first := append(append([]geom.Point3{}, pts[:i+1]...), split)
			second := append([]geom.Point3{split}, pts[j+1:]...)
			return append(explodeSelfIntersections(first, graze), explodeSelfIntersections(second, graze)...)
		}
	}
	return [][]geom.Point3{pts}
}

func lerpZ(a, b geom.Point3, t float64) float64 { return a.Z + t*(b.Z-a.Z) }

// chopLine resamples every segment into sub-segments no longer than
// targetLen so a long run of constraint edges ends up commensurate with
// the ambient mesh's average edge length instead of one oversized edge.
func chopLine(pts []geom.Point3, targetLen float64) []geom.Point3 {
	if len(pts) < 2 {
		return pts
	}
	out := make([]geom.Point3, 0, len(pts))
	out = append(out, pts[0])
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		n := int(math.Ceil(geom.Dist(a.XY(), b.XY()) / targetLen))
		if n < 1 {
			n = 1
		}
		for k := 1; k <= n; k++ {
			t := float64(k) / float64(n)
			out = append(out, geom.Point3{
				X: a.X + t*(b.X-a.X),
				Y: a.Y + t*(b.Y-a.Y),
				Z: a.Z + t*(b.Z-a.Z),
			})
		}
	}
	return out
}
