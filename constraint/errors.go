// Package constraint implements the constraint engine of:
// projecting polyline constraints onto an existing mesh by walking each
// segment through the triangulation, splitting and swapping as it goes,
// and whacking fault polygons once every fault-class edge is in place.
// Grounded on the teacher's cdt/constraint.go Lawson-channel walk, adapted
// to the edge-indexed Node/Edge/Triangle model and to the node-locate /
// split primitives meshops and triangulate already provide.
package constraint

import "errors"

var (
	// ErrOutsideMesh is returned when a point being located for a
	// constraint segment (either endpoint, or an adjusting node) falls
	// outside every triangle and no enclosing triangle can be found.
	ErrOutsideMesh = errors.New("constraint: point lies outside the mesh")

	// ErrUnmatchedSegment signals a segment walk could not reach its
	// target node: the caller should treat the
	// segment as unmatched and remove it from its polyline.
	ErrUnmatchedSegment = errors.New("constraint: segment could not be matched into the mesh")

	// ErrCrossesConstraint signals the segment being walked would have to
	// cross an edge that is already a constraint of a different line
	// ((b) calls for recursive untangling; this package stops
	// short of that and reports the conflict instead).
	ErrCrossesConstraint = errors.New("constraint: segment crosses an existing constraint edge")

	// ErrOpenPolygon describes a fault chain that dead-ends instead of
	// closing. WhackFaultPolygons does not return it: it skips such a
	// chain and whacks nothing for it.
	ErrOpenPolygon = errors.New("constraint: fault chain does not close into a polygon")
)
