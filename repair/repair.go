package repair

import "github.com/iceisfun/trimesh/meshstore"

// Run applies the full cleanup pipeline in order: zero-length edge
// collapse, then zero-area triangle removal.
// Both passes can cascade (a collapse can create a new degenerate
// triangle), so each runs until it stops finding anything new or a
// generous iteration cap is hit.
func Run(s *meshstore.Store, perimeter float64) {
	const maxPasses = 32
	for pass := 0; pass < maxPasses; pass++ {
		n := CollapseZeroLengthEdges(s, perimeter)
		n += RemoveZeroAreaTriangles(s, perimeter)
		if n == 0 {
			break
		}
	}
}
