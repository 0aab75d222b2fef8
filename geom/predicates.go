package geom

import (
	"math"
	"math/big"
)

// The predicates in this file return booleans/enums and never fail; the
// constructions that cannot proceed on degenerate input (SegmentIntersect,
// PerpFoot, FitPlane, PlaneOfTriangle) return ErrDegenerate. What either
// means for the mesh is decided by meshstore/triangulate.

const orientFilter = 1e-15

// Orient2D returns the orientation of the triangle (a,b,c):
//
//	+1 counter-clockwise, -1 clockwise, 0 (near-)collinear.
//
// The fast path evaluates the determinant in float64 with an adaptive
// filter; when the result is too close to call it falls back to
// arbitrary-precision arithmetic via math/big. This mirrors the teacher's
// algorithm/robust.Orient2D filter-then-exact shape.
func Orient2D(a, b, c Point2) int {
	ax := b.X - a.X
	ay := b.Y - a.Y
	bx := c.X - a.X
	by := c.Y - a.Y
	det := ax*by - ay*bx

	maxMag := maxAbs(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	eps := maxMag * maxMag * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return orient2DExact(a, b, c)
	}
}

func orient2DExact(a, b, c Point2) int {
	ax := new(big.Float).Sub(bigFloat(b.X), bigFloat(a.X))
	ay := new(big.Float).Sub(bigFloat(b.Y), bigFloat(a.Y))
	bx := new(big.Float).Sub(bigFloat(c.X), bigFloat(a.X))
	by := new(big.Float).Sub(bigFloat(c.Y), bigFloat(a.Y))

	term1 := new(big.Float).Mul(ax, by)
	term2 := new(big.Float).Mul(ay, bx)
	det := new(big.Float).Sub(term1, term2)
	return det.Sign()
}

// InCircle tests whether point d lies inside (positive), on (zero), or
// outside (negative) the circumcircle of (a,b,c), assuming a,b,c are CCW.
func InCircle(a, b, c, d Point2) int {
	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	ad2 := adx*adx + ady*ady
	bd2 := bdx*bdx + bdy*bdy
	cd2 := cdx*cdx + cdy*cdy

	det := ad2*(bdx*cdy-bdy*cdx) -
		bd2*(adx*cdy-ady*cdx) +
		cd2*(adx*bdy-ady*bdx)

	maxMag := maxAbs(adx, ady, bdx, bdy, cdx, cdy)
	eps := math.Pow(maxMag, 3) * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return inCircleExact(a, b, c, d)
	}
}

func inCircleExact(a, b, c, d Point2) int {
	ax := new(big.Float).Sub(bigFloat(a.X), bigFloat(d.X))
	ay := new(big.Float).Sub(bigFloat(a.Y), bigFloat(d.Y))
	bx := new(big.Float).Sub(bigFloat(b.X), bigFloat(d.X))
	by := new(big.Float).Sub(bigFloat(b.Y), bigFloat(d.Y))
	cx := new(big.Float).Sub(bigFloat(c.X), bigFloat(d.X))
	cy := new(big.Float).Sub(bigFloat(c.Y), bigFloat(d.Y))

	sq := func(v *big.Float) *big.Float { return new(big.Float).Mul(v, v) }
	ad2 := new(big.Float).Add(sq(ax), sq(ay))
	bd2 := new(big.Float).Add(sq(bx), sq(by))
	cd2 := new(big.Float).Add(sq(cx), sq(cy))

	det2 := func(x1, y1, x2, y2 *big.Float) *big.Float {
		return new(big.Float).Sub(new(big.Float).Mul(x1, y2), new(big.Float).Mul(y1, x2))
	}

	term1 := new(big.Float).Mul(ad2, det2(bx, by, cx, cy))
	term2 := new(big.Float).Mul(bd2, det2(ax, ay, cx, cy))
	term3 := new(big.Float).Mul(cd2, det2(ax, ay, bx, by))

	det := new(big.Float).Add(term1, term3)
	det.Sub(det, term2)
	return det.Sign()
}

func bigFloat(f float64) *big.Float {
	return new(big.Float).SetPrec(200).SetFloat64(f)
}

func maxAbs(vals ...float64) float64 {
	m := 0.0
	for _, v := range vals {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// Area2 is twice the signed area of triangle (a,b,c).
func Area2(a, b, c Point2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Area2Abs is the absolute value of Area2.
func Area2Abs(a, b, c Point2) float64 {
	return math.Abs(Area2(a, b, c))
}

// Orient is the tolerant planar orientation test used outside the exact
// Delaunay predicates (polygon containment, grazing, equilateralness bias).
func Orient(a, b, c Point2, eps float64) int {
	area := Area2(a, b, c)
	if area > eps {
		return 1
	}
	if area < -eps {
		return -1
	}
	return 0
}
