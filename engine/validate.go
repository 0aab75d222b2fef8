package engine

import (
	"math"

	"github.com/iceisfun/trimesh/meshstore"
)

// ValidationReport summarises the diagnostic sweep Validate runs. It
// never causes an operation to fail; the caller decides what to do with
// a non-empty report.
type ValidationReport struct {
	DuplicateEdges    int
	OverusedEdges     int
	NodesMissingTri   int
	ShortestEdgeRatio float64
	LongestEdgeRatio  float64
}

// Validate runs the diagnostic sweep: every edge belongs to at most two
// live triangles, every live node is used by at least one live triangle,
// and the ratio of shortest to longest live edge length is reported so a
// caller can judge how skewed the mesh has become. Findings are logged
// through the configured logger; none of them make Validate itself fail.
func (e *Engine) Validate() (ValidationReport, Result) {
	done, err := e.enter()
	if err != nil {
		return ValidationReport{}, Fail(ErrNone, err)
	}
	defer done()

	if e.store == nil {
		return ValidationReport{}, Fail(ErrDegenerate, ErrNoMesh)
	}

	var report ValidationReport
	usedBy := make([]int, len(e.store.Nodes))
	seenPair := map[[2]meshstore.NodeID]bool{}

	for ei := range e.store.Edges {
		edge := &e.store.Edges[ei]
		if edge.Deleted {
			continue
		}
		a, b := edge.Node1, edge.Node2
		if a > b {
			a, b = b, a
		}
		key := [2]meshstore.NodeID{a, b}
		if seenPair[key] {
			report.DuplicateEdges++
		}
		seenPair[key] = true
	}

	for ti := range e.store.Triangles {
		t := &e.store.Triangles[ti]
		if t.Deleted {
			continue
		}
		for _, n := range e.store.TriangleNodes(meshstore.TriID(ti)) {
			usedBy[n]++
		}
	}

	for ni := range e.store.Nodes {
		n := &e.store.Nodes[ni]
		if n.Deleted {
			continue
		}
		if usedBy[ni] == 0 {
			report.NodesMissingTri++
		}
	}

	triCount := make([]int, len(e.store.Edges))
	for ti := range e.store.Triangles {
		t := &e.store.Triangles[ti]
		if t.Deleted {
			continue
		}
		for _, eid := range t.Edges() {
			triCount[eid]++
		}
	}
	for ei := range e.store.Edges {
		edge := &e.store.Edges[ei]
		if edge.Deleted {
			continue
		}
		if triCount[ei] > 2 {
			report.OverusedEdges++
		}
	}

	shortest, longest := -1.0, -1.0
	for ei := range e.store.Edges {
		edge := &e.store.Edges[ei]
		if edge.Deleted {
			continue
		}
		a, b := e.store.Nodes[edge.Node1], e.store.Nodes[edge.Node2]
		dx, dy := a.X-b.X, a.Y-b.Y
		length := math.Sqrt(dx*dx + dy*dy)
		if shortest < 0 || length < shortest {
			shortest = length
		}
		if length > longest {
			longest = length
		}
	}
	if longest > 0 {
		report.ShortestEdgeRatio = shortest / longest
		report.LongestEdgeRatio = 1
	}

	if report.DuplicateEdges > 0 {
		e.cfg.logger.Printf("validate: %d duplicate node-pair edge(s)", report.DuplicateEdges)
	}
	if report.OverusedEdges > 0 {
		e.cfg.logger.Printf("validate: %d edge(s) referenced by more than two triangles", report.OverusedEdges)
	}
	if report.NodesMissingTri > 0 {
		e.cfg.logger.Printf("validate: %d live node(s) belong to no live triangle", report.NodesMissingTri)
	}
	if e.cfg.validateTopology && report.ShortestEdgeRatio > 0 && report.ShortestEdgeRatio < 1/(100*e.cfg.skinnyMult) {
		e.cfg.logger.Printf("validate: shortest/longest edge ratio %.6f looks skinny", report.ShortestEdgeRatio)
	}

	return report, OK()
}
