package geom

import (
	"errors"
	"math"
)

// ErrDegenerate is returned when a segment has zero length or three points
// that were expected to form a triangle are colinear within the current
// grazing distance.
var ErrDegenerate = errors.New("geom: degenerate segment or colinear points")

// IntersectKind classifies the result of SegmentIntersect.
type IntersectKind int

const (
	IntersectDisjoint IntersectKind = iota
	IntersectPoint
	IntersectCollinearOverlap
	IntersectIdentical
)

// SegmentIntersection is the full result of intersecting two segments.
type SegmentIntersection struct {
	Kind IntersectKind
	P    Point2  // valid when Kind == IntersectPoint
	T, U float64 // parametric position along pq and rs, in [0,1], when Kind == IntersectPoint
}

// SegmentIntersect computes the intersection of closed segments (p,q) and
// (r,s). It returns ErrDegenerate if either segment has zero length.
func SegmentIntersect(p, q, r, s Point2, eps float64) (SegmentIntersection, error) {
	if Dist2(p, q) <= eps*eps || Dist2(r, s) <= eps*eps {
		return SegmentIntersection{}, ErrDegenerate
	}

	o1 := Orient(p, q, r, eps)
	o2 := Orient(p, q, s, eps)
	o3 := Orient(r, s, p, eps)
	o4 := Orient(r, s, q, eps)

	if o1*o2 < 0 && o3*o4 < 0 {
		t, u := intersectionParams(p, q, r, s)
		return SegmentIntersection{Kind: IntersectPoint, P: lerp(p, q, t), T: t, U: u}, nil
	}

	if o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0 {
		if segmentsIdentical(p, q, r, s, eps) {
			return SegmentIntersection{Kind: IntersectIdentical}, nil
		}
		if overlapLen, mid := collinearOverlap(p, q, r, s, eps); overlapLen > eps {
			return SegmentIntersection{Kind: IntersectCollinearOverlap, P: mid}, nil
		}
	}

	// Touching at an endpoint.
	if o1 == 0 && PointOnSegment(r, p, q, eps) {
		return SegmentIntersection{Kind: IntersectPoint, P: r, T: paramOf(p, q, r), U: 0}, nil
	}
	if o2 == 0 && PointOnSegment(s, p, q, eps) {
		return SegmentIntersection{Kind: IntersectPoint, P: s, T: paramOf(p, q, s), U: 1}, nil
	}
	if o3 == 0 && PointOnSegment(p, r, s, eps) {
		return SegmentIntersection{Kind: IntersectPoint, P: p, T: 0, U: paramOf(r, s, p)}, nil
	}
	if o4 == 0 && PointOnSegment(q, r, s, eps) {
		return SegmentIntersection{Kind: IntersectPoint, P: q, T: 1, U: paramOf(r, s, q)}, nil
	}

	return SegmentIntersection{Kind: IntersectDisjoint}, nil
}

// PointOnSegment reports whether p lies on closed segment (a,b) within eps.
func PointOnSegment(p, a, b Point2, eps float64) bool {
	segLen := Dist(a, b)
	if segLen == 0 {
		return Dist2(p, a) <= eps*eps
	}
	if Area2Abs(a, b, p) > segLen*eps {
		return false
	}
	minX, maxX := math.Min(a.X, b.X)-eps, math.Max(a.X, b.X)+eps
	minY, maxY := math.Min(a.Y, b.Y)-eps, math.Max(a.Y, b.Y)+eps
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

func segmentsIdentical(p, q, r, s Point2, eps float64) bool {
	same := func(a, b Point2) bool { return Dist2(a, b) <= eps*eps }
	return (same(p, r) && same(q, s)) || (same(p, s) && same(q, r))
}

func intersectionParams(p, q, r, s Point2) (float64, float64) {
	pq := Point2{X: q.X - p.X, Y: q.Y - p.Y}
	rs := Point2{X: s.X - r.X, Y: s.Y - r.Y}
	diff := Point2{X: r.X - p.X, Y: r.Y - p.Y}
	den := cross(pq, rs)
	if den == 0 {
		return math.NaN(), math.NaN()
	}
	t := cross(diff, rs) / den
	u := cross(diff, pq) / den
	return t, u
}

func paramOf(a, b, p Point2) float64 {
	len2 := Dist2(a, b)
	if len2 == 0 {
		return 0
	}
	return ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / len2
}

func collinearOverlap(p, q, r, s Point2, eps float64) (float64, Point2) {
	dx, dy := q.X-p.X, q.Y-p.Y
	useX := math.Abs(dx) >= math.Abs(dy)
	coord := func(pt Point2) float64 {
		if useX {
			return pt.X
		}
		return pt.Y
	}
	aMin, aMax := ordered(coord(p), coord(q))
	bMin, bMax := ordered(coord(r), coord(s))
	lo := math.Max(aMin, bMin)
	hi := math.Min(aMax, bMax)
	length := hi - lo
	if length <= 0 {
		return 0, Point2{}
	}
	mid := lo + length/2
	var t float64
	if useX {
		if math.Abs(dx) < eps {
			t = 0
		} else {
			t = (mid - p.X) / dx
		}
	} else {
		if math.Abs(dy) < eps {
			t = 0
		} else {
			t = (mid - p.Y) / dy
		}
	}
	return length, lerp(p, q, t)
}

func ordered(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func cross(a, b Point2) float64 { return a.X*b.Y - a.Y*b.X }

func lerp(a, b Point2, t float64) Point2 {
	return Point2{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// PerpFoot computes the perpendicular foot of point p onto the line through
// (a,b), returning the foot and the signed parameter t such that
// foot = a + t*(b-a). t outside [0,1] means the foot falls beyond the
// segment's endpoints.
func PerpFoot(p, a, b Point2) (foot Point2, t float64, err error) {
	len2 := Dist2(a, b)
	if len2 == 0 {
		return Point2{}, 0, ErrDegenerate
	}
	t = ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / len2
	return lerp(a, b, t), t, nil
}
