package geom

import "math"

// Plane holds the coefficients of z = A + B*x + C*y.
type Plane struct {
	A, B, C float64
}

// Eval evaluates the plane at (x,y).
func (p Plane) Eval(x, y float64) float64 {
	return p.A + p.B*x + p.C*y
}

// FitPlane fits z = A + B*x + C*y through >= 3 points by least squares
// (the normal-equations solve of a 3x3 system). An SVD-based fit would be
// more robust under near-colinearity, but no SVD routine appears anywhere
// in the retrieved example pack (no gonum, no x/... linear-algebra
// package), so this falls back to a direct 3x3 solve with partial
// pivoting, which is numerically adequate for the triangle- and
// small-point-set sizes the mesh engine fits (see DESIGN.md).
func FitPlane(pts []Point3) (Plane, error) {
	if len(pts) < 3 {
		return Plane{}, ErrDegenerate
	}

	// Normal equations for least squares fit of [1 x y] * [A B C]^T = z.
	var sx, sy, sz, sxx, syy, sxy, sxz, syz float64
	n := float64(len(pts))
	for _, p := range pts {
		sx += p.X
		sy += p.Y
		sz += p.Z
		sxx += p.X * p.X
		syy += p.Y * p.Y
		sxy += p.X * p.Y
		sxz += p.X * p.Z
		syz += p.Y * p.Z
	}

	// Solve the symmetric 3x3 system:
	// [ n   sx  sy ] [A]   [sz ]
	// [ sx  sxx sxy] [B] = [sxz]
	// [ sy  sxy syy] [C]   [syz]
	m := [3][4]float64{
		{n, sx, sy, sz},
		{sx, sxx, sxy, sxz},
		{sy, sxy, syy, syz},
	}

	if err := gaussSolve3(&m); err != nil {
		return Plane{}, err
	}
	return Plane{A: m[0][3], B: m[1][3], C: m[2][3]}, nil
}

func gaussSolve3(m *[3][4]float64) error {
	const pivotEps = 1e-14
	for col := 0; col < 3; col++ {
		// Partial pivot.
		best := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[best][col]) {
				best = row
			}
		}
		m[col], m[best] = m[best], m[col]
		if math.Abs(m[col][col]) < pivotEps {
			return ErrDegenerate
		}
		for row := 0; row < 3; row++ {
			if row == col {
				continue
			}
			factor := m[row][col] / m[col][col]
			for k := col; k < 4; k++ {
				m[row][k] -= factor * m[col][k]
			}
		}
	}
	for row := 0; row < 3; row++ {
		m[row][3] /= m[row][row]
	}
	return nil
}

// PlaneOfTriangle returns the exact plane through three non-colinear points.
func PlaneOfTriangle(a, b, c Point3) (Plane, error) {
	area := Area2(Point2{a.X, a.Y}, Point2{b.X, b.Y}, Point2{c.X, c.Y})
	if math.Abs(area) < 1e-12 {
		return Plane{}, ErrDegenerate
	}
	// Solve the same 3x3 system specialized to exactly 3 points.
	return FitPlane([]Point3{a, b, c})
}
