package meshstore

import "errors"

var (
	// ErrInvalidNodeID indicates a node id is out of range or negative.
	ErrInvalidNodeID = errors.New("meshstore: invalid node id")

	// ErrInvalidEdgeID indicates an edge id is out of range or negative.
	ErrInvalidEdgeID = errors.New("meshstore: invalid edge id")

	// ErrInvalidTriID indicates a triangle id is out of range or negative.
	ErrInvalidTriID = errors.New("meshstore: invalid triangle id")

	// ErrDegenerateTriangle indicates a triangle's three edges do not
	// share exactly three distinct nodes.
	ErrDegenerateTriangle = errors.New("meshstore: degenerate triangle")
)
