package grid

import (
	"math"

	"github.com/iceisfun/trimesh/meshstore"
)

// ToMeshCellDiagonal builds a mesh with a node at every grid node, one
// diagonal per cell and two triangles per cell. Null cells
// become null-flagged nodes, left for a later null
// removal pass rather than stripped here.
func ToMeshCellDiagonal(g *Grid) *meshstore.Store {
	s := meshstore.New()

	nodeID := make([][]meshstore.NodeID, g.Rows)
	for r := 0; r < g.Rows; r++ {
		nodeID[r] = make([]meshstore.NodeID, g.Cols)
		for c := 0; c < g.Cols; c++ {
			x, y := g.XY(r, c, 0)
			nodeID[r][c] = s.AddNode(x, y, g.At(r, c), meshstore.Undefined)
		}
	}

	horiz := make([][]meshstore.EdgeID, g.Rows)
	for r := range horiz {
		horiz[r] = make([]meshstore.EdgeID, g.Cols-1)
		for c := range horiz[r] {
			horiz[r][c] = meshstore.NilEdge
		}
	}
	vert := make([][]meshstore.EdgeID, g.Rows-1)
	for r := range vert {
		vert[r] = make([]meshstore.EdgeID, g.Cols)
		for c := range vert[r] {
			vert[r][c] = meshstore.NilEdge
		}
	}

	getHoriz := func(r, c int) meshstore.EdgeID {
		if horiz[r][c] == meshstore.NilEdge {
			horiz[r][c] = s.AddEdge(nodeID[r][c], nodeID[r][c+1], meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
		}
		return horiz[r][c]
	}
	getVert := func(r, c int) meshstore.EdgeID {
		if vert[r][c] == meshstore.NilEdge {
			vert[r][c] = s.AddEdge(nodeID[r][c], nodeID[r+1][c], meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
		}
		return vert[r][c]
	}

	for r := 0; r < g.Rows-1; r++ {
		for c := 0; c < g.Cols-1; c++ {
			diag := s.AddEdge(nodeID[r][c], nodeID[r+1][c+1], meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)

			eBottom := getHoriz(r, c)
			eRight := getVert(r, c+1)
			triA := s.AddTriangle(eBottom, eRight, diag, 0)
			wireTriangle(s, triA, eBottom, eRight, diag)

			eLeft := getVert(r, c)
			eTop := getHoriz(r+1, c)
			triB := s.AddTriangle(eLeft, diag, eTop, 0)
			wireTriangle(s, triB, eLeft, diag, eTop)
		}
	}
	return s
}

// wireTriangle sets each edge's Tri1/Tri2 to reference t, preserving an
// existing reference in the other slot (shared grid edges get wired by
// both of the cells that touch them).
func wireTriangle(s *meshstore.Store, t meshstore.TriID, edges ...meshstore.EdgeID) {
	for _, eid := range edges {
		e := &s.Edges[eid]
		if e.Tri1 == meshstore.NilTri {
			e.Tri1 = t
		} else {
			e.Tri2 = t
		}
		e.OnBorder = e.Tri2 == meshstore.NilTri
	}
}

// ToMeshEquilateral builds a near-equilateral triangulation from g: rows
// are re-spaced at xspace*sqrt(3)/2, odd rows are shifted left by half a
// column with an extra column appended on the right to re-close the mesh,
// and the diagonal orientation alternates by row. Node z
// values are back-interpolated from g since none of the new rows align
// with the original grid lines except row 0.
func ToMeshEquilateral(g *Grid) *meshstore.Store {
	s := meshstore.New()
	yspace := g.XSpace * math.Sqrt(3) / 2
	shift := g.XSpace / 2

	ncols := func(row int) int {
		if row%2 == 1 {
			return g.Cols + 1
		}
		return g.Cols
	}

	nodeID := make([][]meshstore.NodeID, g.Rows)
	for r := 0; r < g.Rows; r++ {
		n := ncols(r)
		nodeID[r] = make([]meshstore.NodeID, n)
		y := g.OriginY + float64(r)*yspace
		rowShift := 0.0
		if r%2 == 1 {
			rowShift = shift
		}
		for c := 0; c < n; c++ {
			x := g.OriginX + float64(c)*g.XSpace - rowShift
			z, ok := Sample(g, x, y)
			if !ok {
				z = Null
			}
			nodeID[r][c] = s.AddNode(x, y, z, meshstore.Undefined)
		}
	}

	for r := 0; r < g.Rows-1; r++ {
		buildEquilateralStrip(s, nodeID[r], nodeID[r+1], r%2 == 0)
	}
	return s
}

// buildEquilateralStrip triangulates the strip between two adjacent
// equilateral rows. evenBelow is true when the lower row is the
// unshifted (even) row, which has one fewer node than the shifted row
// above it; the diagonal direction flips with it so the strip stays made
// of near-equilateral triangles.
func buildEquilateralStrip(s *meshstore.Store, lower, upper []meshstore.NodeID, evenBelow bool) {
	short, long := lower, upper
	if len(long) < len(short) {
		short, long = long, short
	}
	n := len(short)

	for i := 0; i < n; i++ {
		// Triangle using short[i], long[i], long[i+1].
		if i+1 < len(long) {
			addStripTriangle(s, short[i], long[i], long[i+1], evenBelow)
		}
		// Triangle using short[i], long[i+1], short[i+1].
		if i+1 < n && i+1 < len(long) {
			addStripTriangle(s, short[i], long[i+1], short[i+1], evenBelow)
		}
	}
}

func addStripTriangle(s *meshstore.Store, a, b, c meshstore.NodeID, flip bool) {
	if flip {
		a, c = c, a
	}
	e1 := edgeBetween(s, a, b)
	e2 := edgeBetween(s, b, c)
	e3 := edgeBetween(s, c, a)
	t := s.AddTriangle(e1, e2, e3, 0)
	wireTriangle(s, t, e1, e2, e3)
}

// edgeBetween returns the live edge already joining a and b, or creates
// one. The equilateral strip builder visits each shared side from exactly
// one of its two triangles at a time, so a linear scan of a's (short)
// incident list is cheap.
func edgeBetween(s *meshstore.Store, a, b meshstore.NodeID) meshstore.EdgeID {
	for _, e := range s.Nodes[a].Edges() {
		if s.Edges[e].OtherNode(a) == b {
			return e
		}
	}
	return s.AddEdge(a, b, meshstore.NilTri, meshstore.NilTri, meshstore.Undefined)
}
