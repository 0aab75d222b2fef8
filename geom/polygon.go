package geom

// PointPosition classifies a point relative to a closed polygon.
type PointPosition int

const (
	Outside PointPosition = iota
	Inside
	OnBoundary
)

// PointInPolygon tests point p against the closed polygon ring (vertices in
// order, not repeating the first point), with grazing tolerance eps.
// Grounded on the teacher's predicates.PointInTriangle shape (orientation
// tests plus an explicit boundary case), generalised to an arbitrary ring
// using a winding-number-style crossing count.
func PointInPolygon(p Point2, ring []Point2, eps float64) PointPosition {
	n := len(ring)
	if n < 3 {
		return Outside
	}

	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		if PointOnSegment(p, a, b, eps) {
			return OnBoundary
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[j], ring[i]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	if inside {
		return Inside
	}
	return Outside
}

// PolygonPerimeter returns the sum of edge lengths of a closed ring.
func PolygonPerimeter(ring []Point2) float64 {
	n := len(ring)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += Dist(ring[i], ring[(i+1)%n])
	}
	return total
}

// BoundingBox computes the axis-aligned bounding box of a point set.
func BoundingBox(pts []Point2) (min, max Point2, ok bool) {
	if len(pts) == 0 {
		return Point2{}, Point2{}, false
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max, true
}
