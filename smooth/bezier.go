package smooth

import "github.com/iceisfun/trimesh/meshstore"

// BezierTriangle holds the 10 cubic triangular bézier control z-values
// for a triangle, indexed the way names them: three corners,
// six edge points (two per side, nearest to each endpoint), and one
// centre point.
type BezierTriangle struct {
	A, B, C meshstore.NodeID // corners, in the triangle's own winding order

	C300, C030, C003 float64 // corners
	C210, C120       float64 // side AB, nearest A then nearest B
	C021, C012       float64 // side BC, nearest B then nearest C
	C102, C201       float64 // side CA, nearest C then nearest A
	C111             float64 // centre
}

// tangentPlaneZ evaluates the tangent plane at node `at` (whose normal is
// norm) at position (x,y): the plane through `at` perpendicular to norm.
func tangentPlaneZ(s *meshstore.Store, at meshstore.NodeID, x, y float64) float64 {
	node := &s.Nodes[at]
	if node.Norm == nil || node.Norm.Z == 0 {
		return node.Z
	}
	return node.Z - (node.Norm.X*(x-node.X)+node.Norm.Y*(y-node.Y))/node.Norm.Z
}

// BuildBezierTriangle computes the 10 control values for triangle t
//: corners are copied
// directly, each edge's two control points sit 1/3 and 2/3 along the side
// in (x,y) with z taken from the tangent plane at whichever endpoint is
// closer, and the centre value is (sum of six edge controls)/4 - (sum of
// three corners)/6. Normals must already be populated via ComputeNormals.
func BuildBezierTriangle(s *meshstore.Store, t meshstore.TriID) BezierTriangle {
	nodes := s.TriangleNodes(t)
	a, b, c := nodes[0], nodes[1], nodes[2]
	na, nb, nc := s.Nodes[a], s.Nodes[b], s.Nodes[c]

	lerp := func(p1, p2 meshstore.Node, frac float64) (x, y float64) {
		return p1.X + frac*(p2.X-p1.X), p1.Y + frac*(p2.Y-p1.Y)
	}

	x, y := lerp(na, nb, 1.0/3)
	c210 := tangentPlaneZ(s, a, x, y)
	x, y = lerp(na, nb, 2.0/3)
	c120 := tangentPlaneZ(s, b, x, y)

	x, y = lerp(nb, nc, 1.0/3)
	c021 := tangentPlaneZ(s, b, x, y)
	x, y = lerp(nb, nc, 2.0/3)
	c012 := tangentPlaneZ(s, c, x, y)

	x, y = lerp(nc, na, 1.0/3)
	c102 := tangentPlaneZ(s, c, x, y)
	x, y = lerp(nc, na, 2.0/3)
	c201 := tangentPlaneZ(s, a, x, y)

	edgeSum := c210 + c120 + c021 + c012 + c102 + c201
	cornerSum := na.Z + nb.Z + nc.Z
	c111 := edgeSum/4 - cornerSum/6

	return BezierTriangle{
		A: a, B: b, C: c,
		C300: na.Z, C030: nb.Z, C003: nc.Z,
		C210: c210, C120: c120,
		C021: c021, C012: c012,
		C102: c102, C201: c201,
		C111: c111,
	}
}

// triIJK is a barycentric multi-index (i,j,k) with i+j+k constant within
// a layer of the de Casteljau pyramid.
type triIJK struct{ i, j, k int }

// Evaluate computes z at barycentric coordinates (u,v,w), u+v+w=1, via
// De Casteljau's algorithm for a degree-3 triangular patch: repeatedly
// blend each layer's neighbours with weights (u,v,w) until a single point
// remains, evaluating z at the given barycentric coordinates.
func (bt BezierTriangle) Evaluate(u, v, w float64) float64 {
	layer3 := map[triIJK]float64{
		{3, 0, 0}: bt.C300, {0, 3, 0}: bt.C030, {0, 0, 3}: bt.C003,
		{2, 1, 0}: bt.C210, {1, 2, 0}: bt.C120,
		{0, 2, 1}: bt.C021, {0, 1, 2}: bt.C012,
		{1, 0, 2}: bt.C102, {2, 0, 1}: bt.C201,
		{1, 1, 1}: bt.C111,
	}

	blendDown := func(layer map[triIJK]float64, degree int) map[triIJK]float64 {
		next := make(map[triIJK]float64)
		for i := 0; i <= degree-1; i++ {
			for j := 0; j <= degree-1-i; j++ {
				k := degree - 1 - i - j
				next[triIJK{i, j, k}] = u*layer[triIJK{i + 1, j, k}] +
					v*layer[triIJK{i, j + 1, k}] +
					w*layer[triIJK{i, j, k + 1}]
			}
		}
		return next
	}

	layer2 := blendDown(layer3, 3)
	layer1 := blendDown(layer2, 2)
	layer0 := blendDown(layer1, 1)
	return layer0[triIJK{0, 0, 0}]
}
