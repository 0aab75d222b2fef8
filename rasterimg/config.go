package rasterimg

import "image/color"

// Config holds options for rendering a mesh to an image.
type Config struct {
	Width  int
	Height int

	Background    color.Color
	TriangleColor color.Color
	EdgeColor     color.Color
	FaultColor    color.Color
	BoundaryColor color.Color
	VertexColor   color.Color

	FillTriangles bool
	DrawEdges     bool
	DrawFaults    bool
	DrawBoundary  bool
	DrawVertices  bool
}

// DefaultConfig returns sensible default rendering settings.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,

		Background:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TriangleColor: color.RGBA{R: 100, G: 100, B: 255, A: 80},
		EdgeColor:     color.RGBA{R: 64, G: 64, B: 64, A: 255},
		FaultColor:    color.RGBA{R: 220, G: 0, B: 0, A: 255},
		BoundaryColor: color.RGBA{R: 0, G: 128, B: 0, A: 255},
		VertexColor:   color.RGBA{R: 0, G: 0, B: 0, A: 255},

		FillTriangles: true,
		DrawEdges:     true,
		DrawFaults:    true,
		DrawBoundary:  true,
		DrawVertices:  false,
	}
}

// Option configures rendering.
type Option func(*Config)

// WithDimensions sets the output image dimensions.
func WithDimensions(width, height int) Option {
	return func(c *Config) {
		if width > 0 {
			c.Width = width
		}
		if height > 0 {
			c.Height = height
		}
	}
}

// WithFillTriangles toggles the triangle-fill layer.
func WithFillTriangles(enable bool) Option {
	return func(c *Config) { c.FillTriangles = enable }
}

// WithDrawEdges toggles the plain-edge layer.
func WithDrawEdges(enable bool) Option {
	return func(c *Config) { c.DrawEdges = enable }
}

// WithDrawFaults toggles the fault/discontinuity edge highlight layer.
func WithDrawFaults(enable bool) Option {
	return func(c *Config) { c.DrawFaults = enable }
}

// WithDrawBoundary toggles the mesh boundary highlight layer.
func WithDrawBoundary(enable bool) Option {
	return func(c *Config) { c.DrawBoundary = enable }
}

// WithDrawVertices toggles the vertex-dot layer.
func WithDrawVertices(enable bool) Option {
	return func(c *Config) { c.DrawVertices = enable }
}
