package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/iceisfun/trimesh/rasterimg"
	"github.com/iceisfun/trimesh/tmeshio"
)

func runRasterize(args []string) error {
	fs := newFlagSet("rasterize")
	meshPath := fs.String("mesh", "", "mesh file to render")
	out := fs.String("out", "", "output PNG file")
	width := fs.Int("width", 800, "image width in pixels")
	height := fs.Int("height", 600, "image height in pixels")
	vertices := fs.Bool("vertices", false, "draw a marker at every node")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *meshPath == "" || *out == "" {
		return fmt.Errorf("rasterize: -mesh and -out are required")
	}

	store, _, err := tmeshio.Load(*meshPath)
	if err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}

	img, err := rasterimg.Render(store,
		rasterimg.WithDimensions(*width, *height),
		rasterimg.WithDrawVertices(*vertices))
	if err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}
	return nil
}
