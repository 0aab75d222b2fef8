package spatial

import "github.com/iceisfun/trimesh/meshstore"

// TriangleIndex covers the final mesh; each triangle is inserted into
// every cell its bounding box overlaps and is queried by drape/clip.
type TriangleIndex struct {
	grid *Grid[meshstore.TriID]
}

// TriBBox computes a triangle's axis-aligned bounding box from its three
// node positions.
func TriBBox(p1, p2, p3 [2]float64) (minX, minY, maxX, maxY float64) {
	minX, maxX = p1[0], p1[0]
	minY, maxY = p1[1], p1[1]
	for _, p := range [][2]float64{p2, p3} {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	return
}

// BuildTriangleIndex indexes every live triangle in the store.
func BuildTriangleIndex(s *meshstore.Store, minX, minY, maxX, maxY float64) *TriangleIndex {
	g := NewGrid[meshstore.TriID](minX, minY, maxX, maxY, s.NumLiveTriangles())
	ti := &TriangleIndex{grid: g}
	for i := range s.Triangles {
		if s.Triangles[i].Deleted {
			continue
		}
		t := meshstore.TriID(i)
		nodes := s.TriangleNodes(t)
		p1 := [2]float64{s.Nodes[nodes[0]].X, s.Nodes[nodes[0]].Y}
		p2 := [2]float64{s.Nodes[nodes[1]].X, s.Nodes[nodes[1]].Y}
		p3 := [2]float64{s.Nodes[nodes[2]].X, s.Nodes[nodes[2]].Y}
		bx0, by0, bx1, by1 := TriBBox(p1, p2, p3)
		g.InsertBBox(bx0, by0, bx1, by1, t)
	}
	return ti
}

// CandidatesAt returns every triangle whose bounding box overlaps the cell
// containing (x,y); callers still need a point-in-triangle test to confirm
// containment.
func (ti *TriangleIndex) CandidatesAt(x, y float64) []meshstore.TriID {
	col, row := ti.grid.CellOf(x, y)
	return ti.grid.Cell(col, row)
}

// CandidatesNear returns every triangle within radius of (x,y), used by
// the drape walk's small nudge-along-segment fallback.
func (ti *TriangleIndex) CandidatesNear(x, y, radius float64) []meshstore.TriID {
	return ti.grid.QueryRadius(x, y, radius)
}
