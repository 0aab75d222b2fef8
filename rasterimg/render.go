// Package rasterimg renders a mesh to an image.Image for debug
// snapshots, grounded on the teacher's rasterize package's layered
// back-to-front rendering structure (fill, then edges, then boundary
// highlights, then vertices), but filling and stroking with
// golang.org/x/image/vector's anti-aliased rasterizer instead of the
// teacher's hand-rolled scanline fill.
package rasterimg

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/iceisfun/trimesh/meshstore"
)

// Render draws s to a new RGBA image under opts.
func Render(s *meshstore.Store, opts ...Option) (*image.RGBA, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	fillBackground(img, cfg.Background)

	tr := computeTransform(s, cfg.Width, cfg.Height)

	if cfg.FillTriangles {
		renderTriangleFills(img, s, tr, cfg.TriangleColor)
	}
	if cfg.DrawEdges {
		renderEdges(img, s, tr, cfg.EdgeColor, func(e *meshstore.Edge) bool { return true })
	}
	if cfg.DrawFaults {
		renderEdges(img, s, tr, cfg.FaultColor, func(e *meshstore.Edge) bool { return e.Flag.IsFault() })
	}
	if cfg.DrawBoundary {
		renderEdges(img, s, tr, cfg.BoundaryColor, func(e *meshstore.Edge) bool { return e.IsBoundary() })
	}
	if cfg.DrawVertices {
		renderVertices(img, s, tr, cfg.VertexColor)
	}

	return img, nil
}

// transform maps mesh (x,y) to image pixel coordinates, fit to the
// mesh's bounding box with a 10% margin, the same convention the
// teacher's rasterize.computeTransform uses.
type transform struct {
	scale            float64
	offsetX, offsetY float64
}

func (t transform) apply(x, y float64) (float32, float32) {
	px := (x + t.offsetX) * t.scale
	py := (y + t.offsetY) * t.scale
	return float32(px), float32(py)
}

func computeTransform(s *meshstore.Store, width, height int) transform {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	any := false
	for i := range s.Nodes {
		n := &s.Nodes[i]
		if n.Deleted {
			continue
		}
		any = true
		if n.X < minX {
			minX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}
	if !any {
		return transform{scale: 1}
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	padX, padY := rangeX*0.1, rangeY*0.1
	minX, maxX = minX-padX, maxX+padX
	minY, maxY = minY-padY, maxY+padY

	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	scaleX := float64(width-1) / spanX
	scaleY := float64(height-1) / spanY
	scale := math.Min(scaleX, scaleY)
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}

	return transform{scale: scale, offsetX: -minX, offsetY: -minY}
}

func fillBackground(img *image.RGBA, col color.Color) {
	if col == nil {
		col = color.RGBA{}
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func renderTriangleFills(img *image.RGBA, s *meshstore.Store, tr transform, col color.Color) {
	if col == nil {
		return
	}
	bounds := img.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	src := image.NewUniform(col)

	any := false
	for i := range s.Triangles {
		t := &s.Triangles[i]
		if t.Deleted {
			continue
		}
		nodes := s.TriangleNodes(meshstore.TriID(i))
		ax, ay := tr.apply(s.Nodes[nodes[0]].X, s.Nodes[nodes[0]].Y)
		bx, by := tr.apply(s.Nodes[nodes[1]].X, s.Nodes[nodes[1]].Y)
		cx, cy := tr.apply(s.Nodes[nodes[2]].X, s.Nodes[nodes[2]].Y)

		r.MoveTo(ax, ay)
		r.LineTo(bx, by)
		r.LineTo(cx, cy)
		r.ClosePath()
		any = true
	}
	if !any {
		return
	}
	r.Draw(img, bounds, src, image.Point{})
}

func renderEdges(img *image.RGBA, s *meshstore.Store, tr transform, col color.Color, include func(*meshstore.Edge) bool) {
	if col == nil {
		return
	}
	bounds := img.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	src := image.NewUniform(col)

	const halfWidth = 0.6
	any := false
	for i := range s.Edges {
		e := &s.Edges[i]
		if e.Deleted || !include(e) {
			continue
		}
		ax, ay := tr.apply(s.Nodes[e.Node1].X, s.Nodes[e.Node1].Y)
		bx, by := tr.apply(s.Nodes[e.Node2].X, s.Nodes[e.Node2].Y)
		strokeSegment(r, ax, ay, bx, by, halfWidth)
		any = true
	}
	if !any {
		return
	}
	r.Draw(img, bounds, src, image.Point{})
}

// strokeSegment approximates a line stroke by filling the thin
// quadrilateral perpendicular to (a,b), since vector.Rasterizer fills
// closed paths rather than stroking open ones.
func strokeSegment(r *vector.Rasterizer, ax, ay, bx, by, halfWidth float32) {
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*halfWidth, dx/length*halfWidth

	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}

func renderVertices(img *image.RGBA, s *meshstore.Store, tr transform, col color.Color) {
	if col == nil {
		return
	}
	bounds := img.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	src := image.NewUniform(col)

	const radius = 1.5
	any := false
	for i := range s.Nodes {
		n := &s.Nodes[i]
		if n.Deleted {
			continue
		}
		x, y := tr.apply(n.X, n.Y)
		r.MoveTo(x-radius, y)
		r.LineTo(x, y-radius)
		r.LineTo(x+radius, y)
		r.LineTo(x, y+radius)
		r.ClosePath()
		any = true
	}
	if !any {
		return
	}
	r.Draw(img, bounds, src, image.Point{})
}
