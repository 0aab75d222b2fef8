package smooth

import (
	"errors"
	"math"

	"github.com/iceisfun/trimesh/grid"
	"github.com/iceisfun/trimesh/meshstore"
)

// ErrNoEdges is returned when a mesh has no live edges to derive a grid
// spacing from.
var ErrNoEdges = errors.New("smooth: mesh has no edges to derive grid spacing from")

// Options configures Run.
type Options struct {
	SmoothingFactor float64
	Iterations      int
}

// Run applies the full grid-mediated smoother pipeline of:
// rasterise to a grid at spacing ≈ average edge length, fill grid nulls,
// apply the grid smoother, back-interpolate at every non-fault node,
// recompute fault-adjacent z from incident normals, then re-coincide each
// zero-offset fault pair.
func Run(s *meshstore.Store, opts Options) error {
	spacing := s.AverageEdgeLength()
	if spacing <= 0 {
		return ErrNoEdges
	}

	minX, minY, maxX, maxY, ok := boundingBox(s)
	if !ok {
		return ErrNoEdges
	}
	rows := int((maxY-minY)/spacing) + 2
	cols := int((maxX-minX)/spacing) + 2

	g := grid.New(rows, cols, minX, minY, spacing, spacing)
	grid.FromMesh(s, g)
	grid.FillGridNulls(g, 64)
	grid.SmoothGrid(g, opts.SmoothingFactor, opts.Iterations)

	faultAdjacent := markFaultAdjacent(s)

	for i := range s.Nodes {
		n := meshstore.NodeID(i)
		node := &s.Nodes[i]
		if node.Deleted || faultAdjacent[n] {
			continue
		}
		if z, ok := grid.Sample(g, node.X, node.Y); ok {
			node.Z = z
		}
	}

	ComputeNormals(s)

	for n := range faultAdjacent {
		if !faultAdjacent[n] {
			continue
		}
		recomputeFromNeighbourNormals(s, n, faultAdjacent)
	}

	coincideZeroOffsetPairs(s)
	return nil
}

func boundingBox(s *meshstore.Store) (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	for i := range s.Nodes {
		if s.Nodes[i].Deleted {
			continue
		}
		x, y := s.Nodes[i].X, s.Nodes[i].Y
		if first {
			minX, maxX, minY, maxY = x, x, y, y
			first = false
			continue
		}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return minX, minY, maxX, maxY, !first
}

// markFaultAdjacent flags every node that touches a fault/discontinuity
// class edge, directly or as its other endpoint's neighbour.
func markFaultAdjacent(s *meshstore.Store) map[meshstore.NodeID]bool {
	out := map[meshstore.NodeID]bool{}
	for i := range s.Edges {
		e := &s.Edges[i]
		if e.Deleted || !e.Flag.IsFault() {
			continue
		}
		out[e.Node1] = true
		out[e.Node2] = true
	}
	return out
}

// recomputeFromNeighbourNormals implements smoother step v: a
// fault-adjacent node's z comes from the tangent planes of its non-fault
// neighbours rather than the smoothed grid, so the discontinuity the
// fault represents is preserved instead of blurred across it.
func recomputeFromNeighbourNormals(s *meshstore.Store, n meshstore.NodeID, faultAdjacent map[meshstore.NodeID]bool) {
	node := &s.Nodes[n]
	var sum float64
	var count int
	for _, eid := range node.Edges() {
		edge := &s.Edges[eid]
		if edge.Flag.IsFault() {
			continue
		}
		far := edge.OtherNode(n)
		if faultAdjacent[far] {
			continue
		}
		sum += tangentPlaneZ(s, far, node.X, node.Y)
		count++
	}
	if count > 0 {
		node.Z = sum / float64(count)
	}
}

// coincideZeroOffsetPairs implements smoother step vi: every
// pair of edges sharing a PairID gets its
// corresponding endpoints' z averaged so the two sides sit exactly
// coincident.
func coincideZeroOffsetPairs(s *meshstore.Store) {
	groups := map[int][]meshstore.EdgeID{}
	for i := range s.Edges {
		e := &s.Edges[i]
		if e.Deleted || e.PairID == 0 || !e.Flag.IsZeroOffset() {
			continue
		}
		groups[e.PairID] = append(groups[e.PairID], meshstore.EdgeID(i))
	}

	for _, edges := range groups {
		if len(edges) != 2 {
			continue
		}
		e1, e2 := &s.Edges[edges[0]], &s.Edges[edges[1]]
		pairNodes(s, e1.Node1, e2)
		pairNodes(s, e1.Node2, e2)
	}
}

// pairNodes finds whichever endpoint of e2 is nearest to n in (x,y) and
// averages their z values into both.
func pairNodes(s *meshstore.Store, n meshstore.NodeID, e2 *meshstore.Edge) {
	a, b := e2.Node1, e2.Node2
	na := &s.Nodes[n]
	da := dist2(na.X, na.Y, s.Nodes[a].X, s.Nodes[a].Y)
	db := dist2(na.X, na.Y, s.Nodes[b].X, s.Nodes[b].Y)
	match := a
	if db < da {
		match = b
	}
	nb := &s.Nodes[match]
	avg := (na.Z + nb.Z) / 2
	na.Z = avg
	nb.Z = avg
}

func dist2(ax, ay, bx, by float64) float64 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}
