// Package smooth implements normal accumulation, bézier-triangle surface
// evaluation and the grid-mediated smoothing pipeline of.
package smooth

import (
	"math"

	"github.com/iceisfun/trimesh/meshstore"
)

// TriangleNormal computes the unit normal of triangle t, flipped so its
// z component is non-negative (unit (v1×v2) flipped to z≥0).
func TriangleNormal(s *meshstore.Store, t meshstore.TriID) (x, y, z float64) {
	nodes := s.TriangleNodes(t)
	a, b, c := s.Nodes[nodes[0]], s.Nodes[nodes[1]], s.Nodes[nodes[2]]

	v1x, v1y, v1z := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	v2x, v2y, v2z := c.X-a.X, c.Y-a.Y, c.Z-a.Z

	x = v1y*v2z - v1z*v2y
	y = v1z*v2x - v1x*v2z
	z = v1x*v2y - v1y*v2x

	if z < 0 {
		x, y, z = -x, -y, -z
	}
	length := math.Sqrt(x*x + y*y + z*z)
	if length == 0 {
		return 0, 0, 1
	}
	return x / length, y / length, z / length
}

// ComputeNormals recomputes every triangle normal and accumulates each
// node's normal as the arithmetic mean of the normals of the triangles
// using it, tracking the contributing count.
func ComputeNormals(s *meshstore.Store) {
	for i := range s.Nodes {
		if s.Nodes[i].Deleted {
			continue
		}
		s.Nodes[i].Norm = &meshstore.Normal{}
	}

	for i := range s.Triangles {
		if s.Triangles[i].Deleted {
			continue
		}
		t := meshstore.TriID(i)
		nx, ny, nz := TriangleNormal(s, t)
		s.Triangles[i].Norm = &meshstore.Normal{X: nx, Y: ny, Z: nz, Count: 1}

		for _, n := range s.TriangleNodes(t) {
			accumulateNormal(s.Nodes[n].Norm, nx, ny, nz)
		}
	}

	for i := range s.Nodes {
		if s.Nodes[i].Deleted || s.Nodes[i].Norm == nil {
			continue
		}
		normalizeInPlace(s.Nodes[i].Norm)
	}
}

// accumulateNormal folds (nx,ny,nz) into the running mean norm tracks,
// incrementing its contributing count to allow incremental recomputation.
func accumulateNormal(norm *meshstore.Normal, nx, ny, nz float64) {
	n := float64(norm.Count)
	norm.X = (norm.X*n + nx) / (n + 1)
	norm.Y = (norm.Y*n + ny) / (n + 1)
	norm.Z = (norm.Z*n + nz) / (n + 1)
	norm.Count++
}

func normalizeInPlace(norm *meshstore.Normal) {
	length := math.Sqrt(norm.X*norm.X + norm.Y*norm.Y + norm.Z*norm.Z)
	if length == 0 {
		norm.Z = 1
		return
	}
	norm.X /= length
	norm.Y /= length
	norm.Z /= length
}
