package meshstore

import "github.com/iceisfun/trimesh/geom"

// Normal is a unit normal accumulated across the triangles using a node,
// plus the triangle count used to average incrementally.
type Normal struct {
	X, Y, Z float64
	Count   int
}

// Node is a mesh vertex: (x,y,z) plus the bookkeeping fields
// requires for constraint snapping, tombstoning and spatial provenance.
type Node struct {
	X, Y, Z float64

	// Xorig/Yorig/Zorig retain the pre-snap location of a node that has
	// been moved onto a constraint, so later candidates can still compete
	// for it.
	Xorig, Yorig, Zorig float64

	// RP/CRP index into the raw-point / constraint-raw-point tables
	// (-1 = none).
	RP, CRP int

	// AdjustingNode chains a shifted node back to the node whose move
	// created it.
	AdjustingNode NodeID

	Spillnum int
	Flag     ConstraintFlag

	Deleted   bool
	Shifted   bool
	Bflag     bool
	OnBorder  bool
	IsLocked  bool

	// ClientData is a non-owning weak reference; its lifecycle is the
	// caller's responsibility.
	ClientData any

	// Norm is populated only once bézier/normal smoothing has run.
	Norm *Normal

	// edges is the node's incident edge list, the cache the store owns
	// and keeps in sync with invariant (v) of.
	edges []EdgeID
}

func newNode(x, y, z float64, flag ConstraintFlag) Node {
	return Node{
		X: x, Y: y, Z: z,
		Xorig: x, Yorig: y, Zorig: z,
		RP: -1, CRP: -1,
		AdjustingNode: NilNode,
		Flag:          flag,
	}
}

// Edges returns the node's incident live edge ids.
func (n *Node) Edges() []EdgeID {
	out := make([]EdgeID, len(n.edges))
	copy(out, n.edges)
	return out
}

// NumEdges returns the number of incident edges tracked for the node.
func (n *Node) NumEdges() int { return len(n.edges) }

// AttachEdge appends e to the node's incident list. Exported for repair's
// edge-reassignment during zero-length collapse, which moves an edge's
// endpoint from one node to another outside the normal AddEdge path.
func (n *Node) AttachEdge(e EdgeID) { n.edges = append(n.edges, e) }

// Point2 returns the planar position of the node.
func (n *Node) Point2() geom.Point2 { return geom.Point2{X: n.X, Y: n.Y} }

// Point3 returns the full 2.5-D position of the node.
func (n *Node) Point3() geom.Point3 { return geom.Point3{X: n.X, Y: n.Y, Z: n.Z} }

// IsNull reports whether the node carries a null z attribute (used by
// grid/null removal). NaN is used as the null sentinel throughout this
// module.
func (n *Node) IsNull() bool { return n.Z != n.Z }
