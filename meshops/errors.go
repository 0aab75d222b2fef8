// Package meshops implements the shared triangle-mutation primitives that
// both the unconstrained triangulator and the constraint
// engine need: splitting a triangle at an interior point,
// splitting the two triangles either side of an edge at a point on that
// edge, and swapping an edge to its opposite diagonal. Grounded on the
// teacher's cdt/insert_point.go and cdt/legalize.go, adapted from gomesh's
// vertex-indexed Tri/neighbour model to the edge-indexed Node/Edge/Triangle
// model requires.
package meshops

import "errors"

var (
	// ErrPointOutsideTriangle is returned when SplitTriangle is asked to
	// split at a point that is not inside (or grazing) the triangle.
	ErrPointOutsideTriangle = errors.New("meshops: point not inside triangle")

	// ErrNotBoundaryEdgeCandidate signals an edge swap was requested on a
	// boundary edge (Tri2 == NilTri), which has no opposite diagonal.
	ErrNotBoundaryEdgeCandidate = errors.New("meshops: edge has no second triangle to swap across")

	// ErrConstraintEdge signals an edge swap was attempted on a
	// constraint edge outside SwapAsFlagged/SwapForce modes.
	ErrConstraintEdge = errors.New("meshops: edge is a constraint edge")

	// ErrConcaveQuad signals the quadrilateral formed by the two
	// triangles sharing an edge is concave, so swapping would create a
	// self-intersecting pair.
	ErrConcaveQuad = errors.New("meshops: quadrilateral is concave, cannot swap")
)
