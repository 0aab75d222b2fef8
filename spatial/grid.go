// Package spatial implements two uniform-grid spatial indices: a
// raw-point index used while building the seed mesh, and a triangle index
// used by drape/clip. Both share the same underlying Grid[T] structure,
// grounded on the teacher's spatial.HashGrid (a single map-keyed grid)
// generalised into a dense n_col x n_row array sized for 2-4 expected
// items per cell.
package spatial

import "math"

// Grid is a uniform spatial hash over an axis-aligned region, holding a
// dynamic list of item ids per cell.
type Grid[T any] struct {
	MinX, MinY float64
	Cols, Rows int
	CellW, CellH float64

	cells [][]T
}

// NewGrid creates a grid covering [minX,maxX] x [minY,maxY] sized so that
// the expected occupancy per cell is 2-4, given an estimated item count.
func NewGrid[T any](minX, minY, maxX, maxY float64, itemCount int) *Grid[T] {
	width := maxX - minX
	height := maxY - minY
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	targetCells := itemCount / 3
	if targetCells < 1 {
		targetCells = 1
	}
	aspect := width / height
	rows := int(math.Sqrt(float64(targetCells) / aspect))
	if rows < 1 {
		rows = 1
	}
	cols := targetCells / rows
	if cols < 1 {
		cols = 1
	}

	g := &Grid[T]{
		MinX: minX, MinY: minY,
		Cols: cols, Rows: rows,
		CellW: width / float64(cols),
		CellH: height / float64(rows),
		cells: make([][]T, cols*rows),
	}
	return g
}

// CellOf returns the (col,row) a point falls in, clamped to the grid.
func (g *Grid[T]) CellOf(x, y float64) (int, int) {
	col := int((x - g.MinX) / g.CellW)
	row := int((y - g.MinY) / g.CellH)
	if col < 0 {
		col = 0
	}
	if col >= g.Cols {
		col = g.Cols - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= g.Rows {
		row = g.Rows - 1
	}
	return col, row
}

func (g *Grid[T]) index(col, row int) int { return row*g.Cols + col }

// Insert adds an item to the cell containing (x,y).
func (g *Grid[T]) Insert(x, y float64, item T) {
	col, row := g.CellOf(x, y)
	idx := g.index(col, row)
	g.cells[idx] = append(g.cells[idx], item)
}

// InsertBBox adds an item to every cell its bounding box overlaps
// (: "each triangle is inserted into every cell its bounding box
// overlaps").
func (g *Grid[T]) InsertBBox(minX, minY, maxX, maxY float64, item T) {
	c0, r0 := g.CellOf(minX, minY)
	c1, r1 := g.CellOf(maxX, maxY)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			idx := g.index(col, row)
			g.cells[idx] = append(g.cells[idx], item)
		}
	}
}

// Cell returns the items stored in (col,row).
func (g *Grid[T]) Cell(col, row int) []T {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return nil
	}
	return g.cells[g.index(col, row)]
}

// QueryRadius returns every item in cells overlapping a circle of the given
// radius centred at (x,y).
func (g *Grid[T]) QueryRadius(x, y, radius float64) []T {
	c0, r0 := g.CellOf(x-radius, y-radius)
	c1, r1 := g.CellOf(x+radius, y+radius)
	var out []T
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			out = append(out, g.Cell(col, row)...)
		}
	}
	return out
}

// ExpandingRing yields the items in rings of cells of increasing radius
// centred on (col,row), starting at radius 0 (the centre cell itself) and
// growing until maxRing is reached. The raw-point index uses this to find
// an unused point inside a triangle, bounded by the caller's
// triangle bounding box via maxRing.
func (g *Grid[T]) ExpandingRing(col, row, maxRing int, visit func(items []T) (stop bool)) {
	if visit(g.Cell(col, row)) {
		return
	}
	for ring := 1; ring <= maxRing; ring++ {
		var items []T
		for c := col - ring; c <= col+ring; c++ {
			items = append(items, g.Cell(c, row-ring)...)
			items = append(items, g.Cell(c, row+ring)...)
		}
		for r := row - ring + 1; r <= row+ring-1; r++ {
			items = append(items, g.Cell(col-ring, r)...)
			items = append(items, g.Cell(col+ring, r)...)
		}
		if visit(items) {
			return
		}
	}
}
