package grid

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshops"
	"github.com/iceisfun/trimesh/meshstore"
)

// RemoveNulls implements null removal's required step: edges
// crossing the null/non-null boundary are swapped toward the non-null
// side when convex (so the boundary follows triangle edges rather than
// cutting through a valid triangle), then every edge with a null endpoint
// is deleted; a triangle that loses an edge this way is removed with it
// (meshstore.WhackEdge's cascade).
func RemoveNulls(s *meshstore.Store) {
	for pass := 0; pass < 8; pass++ {
		swapped := false
		for i := range s.Edges {
			e := meshstore.EdgeID(i)
			if s.Edges[i].Deleted {
				continue
			}
			if _, ok := meshops.CanSwapEdge(s, e, meshstore.SwapNullRemoval); !ok {
				continue
			}
			if _, _, err := meshops.SwapEdge(s, e); err == nil {
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	for i := range s.Edges {
		e := meshstore.EdgeID(i)
		edge := &s.Edges[i]
		if edge.Deleted {
			continue
		}
		if s.Nodes[edge.Node1].IsNull() || s.Nodes[edge.Node2].IsNull() {
			s.WhackEdge(e)
		}
	}
}

// FillMode selects how FillNulls recovers a z value for a null node.
type FillMode int

const (
	// FillNudgeSample nudges the node a small distance along an
	// unconstrained incident edge and back-interpolates the original
	// (faulted) source grid at the nudged position.
	FillNudgeSample FillMode = iota
	// FillPlaneExtrapolate extends the plane of a valid
	// (all-corners-non-null) triangle, reached by stepping across one of
	// the node's incident edges, through the node.
	FillPlaneExtrapolate
)

// FillNulls assigns a z value to every remaining null node instead of
// deleting it, using mode as the primary strategy and falling back to the
// other when the primary one cannot resolve a value.
func FillNulls(s *meshstore.Store, source *Grid, mode FillMode) int {
	filled := 0
	for i := range s.Nodes {
		n := meshstore.NodeID(i)
		node := &s.Nodes[i]
		if node.Deleted || !node.IsNull() {
			continue
		}

		var z float64
		var ok bool
		if mode == FillNudgeSample {
			z, ok = nudgeAndSample(s, n, source)
			if !ok {
				z, ok = extrapolateFromNeighbour(s, n)
			}
		} else {
			z, ok = extrapolateFromNeighbour(s, n)
			if !ok {
				z, ok = nudgeAndSample(s, n, source)
			}
		}
		if ok {
			node.Z = z
			filled++
		}
	}
	return filled
}

// nudgeAndSample moves a small distance from n along its first
// unconstrained incident edge and samples the source grid there.
func nudgeAndSample(s *meshstore.Store, n meshstore.NodeID, source *Grid) (float64, bool) {
	node := &s.Nodes[n]
	for _, eid := range node.Edges() {
		edge := &s.Edges[eid]
		if edge.IsConstraint {
			continue
		}
		far := edge.OtherNode(n)
		farPt := s.Nodes[far]
		if farPt.IsNull() {
			continue
		}
		const nudge = 0.1
		x := node.X + nudge*(farPt.X-node.X)
		y := node.Y + nudge*(farPt.Y-node.Y)
		if z, ok := Sample(source, x, y); ok {
			return z, true
		}
	}
	return 0, false
}

// extrapolateFromNeighbour finds the nearest fully-valid triangle reached
// by stepping across one of n's incident edges, fits its plane and
// extrapolates it to n's (x,y).
func extrapolateFromNeighbour(s *meshstore.Store, n meshstore.NodeID) (float64, bool) {
	node := &s.Nodes[n]
	seen := map[meshstore.TriID]bool{}
	for _, eid := range node.Edges() {
		edge := &s.Edges[eid]
		far := edge.OtherNode(n)
		if s.Nodes[far].IsNull() {
			continue
		}
		// Triangles incident to n can't be fully valid (n itself is
		// null), so step one more hop out via far's own incident edges.
		for _, farEid := range s.Nodes[far].Edges() {
			farEdge := &s.Edges[farEid]
			for _, t := range [2]meshstore.TriID{farEdge.Tri1, farEdge.Tri2} {
				if !t.IsValid() || seen[t] {
					continue
				}
				seen[t] = true
				nodes := s.TriangleNodes(t)
				a, b, c := s.Nodes[nodes[0]], s.Nodes[nodes[1]], s.Nodes[nodes[2]]
				if a.IsNull() || b.IsNull() || c.IsNull() {
					continue
				}
				pl, err := geom.PlaneOfTriangle(a.Point3(), b.Point3(), c.Point3())
				if err != nil {
					continue
				}
				return pl.Eval(node.X, node.Y), true
			}
		}
	}
	return 0, false
}
