package constraint

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshstore"
)

// Polyline is one constraint line or loop to be projected onto a mesh.
type Polyline struct {
	Points []geom.Point3
	Flag   meshstore.ConstraintFlag
	LineID int
}

// Options configures Insert.
type Options struct {
	Exact      bool
	CornerBias float64
	IsCorner   func(meshstore.NodeID) bool

	// Polygonalize and Chop drive each polyline's pre-processing; see
	// CleanOptions.
	Polygonalize bool
	Chop         bool
}

// Insert projects every polyline onto the mesh. Each polyline is first
// cleaned (CleanPolyline): near-duplicate vertices removed, small
// loops/strips closed into polygons if Polygonalize is set, self-
// intersecting input exploded into simple pieces, and each piece chopped
// to the ambient average edge length if Chop is set. Every resulting
// piece is then walked in; when Exact is requested that walk is bracketed
// by the pre-delete/untangle passes beforehand and the interior-node/
// close-apex cleanup passes afterward. A final re-equilibration swap and
// fault-polygon whacking run once, after every line has been inserted.
func Insert(s *meshstore.Store, lines []Polyline, opts Options) []error {
	var errs []error
	graze := geom.GrazeDistance(s.Perimeter())

	for _, line := range lines {
		avg := s.AverageEdgeLength()
		if avg <= 0 {
			avg = graze * 10
		}

		pieces := CleanPolyline(line.Points, CleanOptions{
			Polygonalize: opts.Polygonalize,
			Chop:         opts.Chop,
			TargetLen:    avg,
		}, graze)

		for _, pts := range pieces {
			if opts.Exact {
				for i := 0; i+1 < len(pts); i++ {
					p, q := pts[i].XY(), pts[i+1].XY()
					PreDeleteClose(s, p, q, opts.IsCorner, graze)
					UntangleCrossings(s, p, q, meshstore.SwapAny, ExactnessOptions{CornerBias: opts.CornerBias, IsCorner: opts.IsCorner}, graze)
				}
			}

			errs = append(errs, InsertPolyline(s, pts, line.Flag, line.LineID, avg, graze)...)

			if opts.Exact {
				for i := 0; i+1 < len(pts); i++ {
					p, q := pts[i].XY(), pts[i+1].XY()
					RemoveInteriorSegmentNodes(s, p, q, line.Flag, line.LineID, graze)
				}
				RemoveCloseConstraintApexes(s, line.LineID, opts.IsCorner, graze)
			}
		}
	}

	if opts.Exact {
		FinalReequilibrate(s, ExactnessOptions{CornerBias: opts.CornerBias, IsCorner: opts.IsCorner})
	}

	WhackFaultPolygons(s, graze)

	return errs
}
