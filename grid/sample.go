package grid

import "github.com/iceisfun/trimesh/geom"

// cellOf returns the grid cell containing (x,y) and the fractional
// position within it, or ok=false if (x,y) falls outside the grid.
func cellOf(g *Grid, x, y float64) (row, col int, fx, fy float64, ok bool) {
	fc := (x - g.OriginX) / g.XSpace
	fr := (y - g.OriginY) / g.YSpace
	col = int(fc)
	row = int(fr)
	fx = fc - float64(col)
	fy = fr - float64(row)
	if col < 0 || row < 0 || col >= g.Cols-1 || row >= g.Rows-1 {
		return 0, 0, 0, 0, false
	}
	return row, col, fx, fy, true
}

// Sample interpolates a z value at (x,y) by splitting the containing cell
// along its cell-diagonal style diagonal ((row,col)-(row+1,col+1)) and
// evaluating the plane of whichever of the two triangles (x,y) falls in.
// It reports ok=false if (x,y) is outside the grid or the containing cell
// has any null corner.
func Sample(g *Grid, x, y float64) (z float64, ok bool) {
	row, col, fx, fy, in := cellOf(g, x, y)
	if !in {
		return 0, false
	}

	z00, z10, z01, z11 := g.At(row, col), g.At(row, col+1), g.At(row+1, col), g.At(row+1, col+1)
	if IsNull(z00) || IsNull(z10) || IsNull(z01) || IsNull(z11) {
		return 0, false
	}

	x0, y0 := g.XY(row, col, 0)
	x1, y1 := g.XY(row, col+1, 0)
	x2, y2 := g.XY(row+1, col, 0)
	x3, y3 := g.XY(row+1, col+1, 0)

	// Triangle A: (row,col)-(row,col+1)-(row+1,col+1); triangle B shares
	// the diagonal with (row,col)-(row+1,col)-(row+1,col+1).
	var pl geom.Plane
	var err error
	if fy <= fx {
		pl, err = geom.PlaneOfTriangle(
			geom.Point3{X: x0, Y: y0, Z: z00},
			geom.Point3{X: x1, Y: y1, Z: z10},
			geom.Point3{X: x3, Y: y3, Z: z11},
		)
	} else {
		pl, err = geom.PlaneOfTriangle(
			geom.Point3{X: x0, Y: y0, Z: z00},
			geom.Point3{X: x3, Y: y3, Z: z11},
			geom.Point3{X: x2, Y: y2, Z: z01},
		)
	}
	if err != nil {
		return 0, false
	}
	return pl.Eval(x, y), true
}
