package spatial

// RawPointIndex covers the input/constraint point set; it is populated
// while building the seed mesh and used by the triangulator to find an
// unused point inside a given triangle via an expanding ring search
// centred on the triangle centroid, bounded by the triangle bounding box.
type RawPointIndex struct {
	grid *Grid[int]
}

// NewRawPointIndex builds an index over n raw points whose coordinates are
// supplied by coordAt, covering [minX,maxX] x [minY,maxY].
func NewRawPointIndex(minX, minY, maxX, maxY float64, n int, coordAt func(i int) (x, y float64)) *RawPointIndex {
	g := NewGrid[int](minX, minY, maxX, maxY, n)
	idx := &RawPointIndex{grid: g}
	for i := 0; i < n; i++ {
		x, y := coordAt(i)
		g.Insert(x, y, i)
	}
	return idx
}

// FindUnusedInBox searches an expanding ring of cells centred on (cx,cy)
// for a raw-point id for which used(id) is false, stopping once the ring
// radius would exceed the supplied bounding half-extents (so the search
// never looks outside the triangle's bounding box, per ).
func (idx *RawPointIndex) FindUnusedInBox(cx, cy, halfW, halfH float64, used func(id int) bool) (int, bool) {
	col, row := idx.grid.CellOf(cx, cy)
	maxRingCols := int(halfW/idx.grid.CellW) + 1
	maxRingRows := int(halfH/idx.grid.CellH) + 1
	maxRing := maxRingCols
	if maxRingRows > maxRing {
		maxRing = maxRingRows
	}

	found := -1
	idx.grid.ExpandingRing(col, row, maxRing, func(items []int) bool {
		for _, id := range items {
			if !used(id) {
				found = id
				return true
			}
		}
		return false
	})
	if found < 0 {
		return 0, false
	}
	return found, true
}
