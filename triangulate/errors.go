package triangulate

import "errors"

var (
	// ErrNoPoints indicates an empty point set was supplied.
	ErrNoPoints = errors.New("triangulate: no points supplied")

	// ErrAllColinear indicates every point is colinear within graze
	// tolerance, so no seed quadrilateral (or triangle within it) can be
	// formed.
	ErrAllColinear = errors.New("triangulate: all points are colinear")
)
