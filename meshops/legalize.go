package meshops

import "github.com/iceisfun/trimesh/meshstore"

// maxSwapPasses bounds the global swap loop even if the oscillation
// safeguard below somehow fails to trigger; calls this class of
// cap out explicitly ("MAX_CONNECT_EDGES_TRI, MaxNcall, etc. are fixed
// caps. When exceeded, the source silently returns partial results; the
// target should at minimum log").
const maxSwapPasses = 64

// GlobalSwapPass repeats an edge-swap sweep over every live edge until a
// pass makes no change, or until the number of swaps per pass stops
// decreasing — the minimax oscillation safeguard and
// call for verbatim, since certain near-colinear constraint configurations
// would otherwise flip the same diagonal back and forth forever.
//
// cornerBias > 1 penalises triangles still using a corner node, for the
// final swap pass; pass 1 for no bias.
func GlobalSwapPass(s *meshstore.Store, mode meshstore.SwapMode, cornerBias float64, isCorner func(meshstore.NodeID) bool) int {
	lastSwapCount := -1
	totalSwaps := 0

	for pass := 0; pass < maxSwapPasses; pass++ {
		swapsThisPass := 0

		for i := range s.Edges {
			e := meshstore.EdgeID(i)
			if s.Edges[i].Deleted {
				continue
			}
			q, ok := CanSwapEdge(s, e, mode)
			if !ok {
				continue
			}
			if !ShouldSwapQuality(s, q, cornerBias, isCorner) {
				continue
			}
			if _, _, err := SwapEdge(s, e); err == nil {
				swapsThisPass++
			}
		}

		totalSwaps += swapsThisPass
		if swapsThisPass == 0 {
			break
		}
		if lastSwapCount >= 0 && swapsThisPass >= lastSwapCount {
			// Swap count stopped decreasing: declare convergence to avoid
			// oscillating between two diagonals forever.
			break
		}
		lastSwapCount = swapsThisPass
	}

	return totalSwaps
}

// EdgeToLegalize names a single edge queued for re-examination after a
// split or swap touched a triangle using it (mirrors the teacher's
// cdt.EdgeToLegalize).
type EdgeToLegalize = meshstore.EdgeID

// LegalizeAround runs a BFS-style legalisation starting from a set of seed
// edges: each dequeued edge is swapped if illegal, and the edges of the
// two resulting triangles are requeued, until the queue drains. Used by
// the incremental triangulator right after a point split, where only
// the locally affected edges need re-checking, as opposed
// to GlobalSwapPass's full-mesh sweep.
func LegalizeAround(s *meshstore.Store, seeds []EdgeToLegalize, mode meshstore.SwapMode, cornerBias float64, isCorner func(meshstore.NodeID) bool) int {
	queue := append([]EdgeToLegalize(nil), seeds...)
	processed := make(map[meshstore.EdgeID]bool)
	swapped := 0

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		if processed[e] || int(e) >= len(s.Edges) || s.Edges[e].Deleted {
			continue
		}
		processed[e] = true

		q, ok := CanSwapEdge(s, e, mode)
		if !ok || !ShouldSwapQuality(s, q, cornerBias, isCorner) {
			continue
		}

		t1, t2, err := SwapEdge(s, e)
		if err != nil {
			continue
		}
		swapped++

		for _, t := range [2]meshstore.TriID{t1, t2} {
			for _, eid := range s.Triangles[t].Edges() {
				if eid != e && !processed[eid] {
					queue = append(queue, eid)
				}
			}
		}
	}

	return swapped
}
