package drape

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
	"github.com/iceisfun/trimesh/spatial"
)

func pointInTriangle(s *meshstore.Store, t meshstore.TriID, p geom.Point2, graze float64) bool {
	nodes := s.TriangleNodes(t)
	a, b, c := s.Nodes[nodes[0]].Point2(), s.Nodes[nodes[1]].Point2(), s.Nodes[nodes[2]].Point2()
	o1 := geom.Orient(a, b, p, graze)
	o2 := geom.Orient(b, c, p, graze)
	o3 := geom.Orient(c, a, p, graze)
	return (o1 >= 0 && o2 >= 0 && o3 >= 0) || (o1 <= 0 && o2 <= 0 && o3 <= 0)
}

// LocateTriangle finds the live triangle containing p using the spatial
// index's candidate cell, falling back to a small radius search when p
// grazes a cell boundary and the exact cell's candidates miss (
// "with a small nudge along the segment if the start grazes a node or
// edge" generalised to any lookup, not just a drape walk's start point).
func LocateTriangle(s *meshstore.Store, idx *spatial.TriangleIndex, p geom.Point2, graze float64) (meshstore.TriID, bool) {
	for _, t := range idx.CandidatesAt(p.X, p.Y) {
		if !s.Triangles[t].Deleted && pointInTriangle(s, t, p, graze) {
			return t, true
		}
	}
	for _, t := range idx.CandidatesNear(p.X, p.Y, graze*10) {
		if !s.Triangles[t].Deleted && pointInTriangle(s, t, p, graze) {
			return t, true
		}
	}
	return meshstore.NilTri, false
}

// planeZ interpolates z at p using triangle t's plane.
func planeZ(s *meshstore.Store, t meshstore.TriID, p geom.Point2) (float64, error) {
	nodes := s.TriangleNodes(t)
	a, b, c := s.Nodes[nodes[0]], s.Nodes[nodes[1]], s.Nodes[nodes[2]]
	pl, err := geom.PlaneOfTriangle(a.Point3(), b.Point3(), c.Point3())
	if err != nil {
		return 0, err
	}
	return pl.Eval(p.X, p.Y), nil
}

// DrapePoint locates the triangle under p and interpolates its z.
func DrapePoint(s *meshstore.Store, idx *spatial.TriangleIndex, p geom.Point2, graze float64) (geom.Point3, error) {
	t, ok := LocateTriangle(s, idx, p, graze)
	if !ok {
		return geom.Point3{}, ErrOutsideMesh
	}
	z, err := planeZ(s, t, p)
	if err != nil {
		return geom.Point3{}, err
	}
	return geom.Point3{X: p.X, Y: p.Y, Z: z}, nil
}

// DrapePoints drapes every point independently, collecting per-point
// errors rather than aborting on the first failure.
func DrapePoints(s *meshstore.Store, idx *spatial.TriangleIndex, pts []geom.Point2, graze float64) ([]geom.Point3, []error) {
	out := make([]geom.Point3, 0, len(pts))
	var errs []error
	for _, p := range pts {
		dp, err := DrapePoint(s, idx, p, graze)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, dp)
	}
	return out, errs
}
