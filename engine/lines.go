package engine

import (
	"sort"

	"github.com/iceisfun/trimesh/constraint"
	"github.com/iceisfun/trimesh/geom"
)

// organizeLines implements organize_lines_flag: process lines in a
// deterministic LineID order and normalise every closed loop to a
// counter-clockwise winding, so insertion order and loop orientation
// never depend on how the caller happened to assemble the batch.
func organizeLines(lines []constraint.Polyline, graze float64) []constraint.Polyline {
	out := make([]constraint.Polyline, len(lines))
	copy(out, lines)
	sort.SliceStable(out, func(i, j int) bool { return out[i].LineID < out[j].LineID })
	for i := range out {
		out[i].Points = orientCCW(out[i].Points, graze)
	}
	return out
}

// orientCCW reverses a closed polyline's point order if its signed area
// is negative (clockwise). Open polylines are left untouched.
func orientCCW(pts []geom.Point3, graze float64) []geom.Point3 {
	if len(pts) < 3 {
		return pts
	}
	first, last := pts[0], pts[len(pts)-1]
	if geom.Dist(first.XY(), last.XY()) > graze {
		return pts
	}

	area := 0.0
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		area += a.X*b.Y - b.X*a.Y
	}
	if area >= 0 {
		return pts
	}

	rev := make([]geom.Point3, len(pts))
	for i, p := range pts {
		rev[len(pts)-1-i] = p
	}
	return rev
}
