// Package drape projects polylines and points onto a mesh's surface and
// clips geometry against it: draping walks triangle to
// triangle along a segment, interpolating z from each triangle's plane;
// clipping intersects against boundary edges or an arbitrary polygon.
//
// Grounded on the constraint engine's locateTriangle/pointInTriangle
// pattern, but using spatial.TriangleIndex instead of a linear scan since
// draping runs once per rendered frame or query rather than once per
// import.
package drape

import "errors"

var (
	// ErrOutsideMesh is returned when a point to drape falls outside
	// every live triangle.
	ErrOutsideMesh = errors.New("drape: point outside mesh")
	// ErrNoBoundary describes a mesh with no boundary edges. MeshBoundary
	// does not return it: for such a mesh it returns no rings.
	ErrNoBoundary = errors.New("drape: mesh has no boundary edges")
)
