package repair

import (
	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/meshops"
	"github.com/iceisfun/trimesh/meshstore"
)

// longEdgeMult is how many multiples of the mesh's average edge length an
// edge must exceed before SplitLongEdges bisects it.
const longEdgeMult = 2.0

// maxLongEdgePasses bounds the repeated sweep; each split can leave one
// of its two halves still over the threshold on a very long original
// edge, so more than one pass is routine.
const maxLongEdgePasses = 8

// SplitLongEdges implements split_long_flag: any live, non-constraint
// edge longer than longEdgeMult times avg is bisected at its midpoint
// (z interpolated linearly) via meshops.SplitFromEdge, repeating until no
// edge qualifies or the pass cap is hit.
func SplitLongEdges(s *meshstore.Store, avg, graze float64) int {
	if avg <= 0 {
		return 0
	}
	threshold := longEdgeMult * avg
	total := 0
	for pass := 0; pass < maxLongEdgePasses; pass++ {
		split := 0
		for i := range s.Edges {
			e := meshstore.EdgeID(i)
			edge := &s.Edges[i]
			if edge.Deleted || edge.IsConstraint || edge.Length <= threshold {
				continue
			}
			n1, n2 := edge.Node1, edge.Node2
			a, b := s.Nodes[n1].Point3(), s.Nodes[n2].Point3()
			mid := geom.Point3{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: (a.Z + b.Z) / 2}
			p := s.AddNode(mid.X, mid.Y, mid.Z, meshstore.Undefined)
			if _, err := meshops.SplitFromEdge(s, e, p); err != nil {
				s.Nodes[p].Deleted = true
				continue
			}
			split++
		}
		total += split
		if split == 0 {
			break
		}
	}
	return total
}
