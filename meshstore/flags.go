package meshstore

// ConstraintFlag classifies the semantic role of an edge, mirrored from the
// closed set in (external interfaces) and (Edge.flag).
type ConstraintFlag int

const (
	Undefined ConstraintFlag = iota
	Boundary
	Fault
	ZeroFault
	Discontinuity
	ZeroDiscontinuity
	Limit
	DontSwap
	// CornerPoint tags the four contrived seed nodes ("Corner node"). Not
	// part of the external flag set but carried on
	// Node.Flag the same way the teacher tags synthetic cover vertices.
	CornerPoint
)

// IsFault reports whether a flag denotes a fault/discontinuity class edge.
func (f ConstraintFlag) IsFault() bool {
	switch f {
	case Fault, ZeroFault, Discontinuity, ZeroDiscontinuity:
		return true
	}
	return false
}

// IsZeroOffset reports whether a flag is one half of a zero-offset pair.
func (f ConstraintFlag) IsZeroOffset() bool {
	return f == ZeroFault || f == ZeroDiscontinuity
}

// SwapMode selects the edge-swap behaviour for a global swap pass.
type SwapMode int

const (
	SwapNone SwapMode = iota
	SwapAny
	SwapAsFlagged
	SwapNullRemoval
	SwapForce
)
