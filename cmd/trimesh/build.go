package main

import (
	"fmt"

	"github.com/iceisfun/trimesh/engine"
	"github.com/iceisfun/trimesh/tmeshio"
)

func runBuildPoints(args []string) error {
	fs := newFlagSet("build-points")
	in := fs.String("in", "", "input point file (x y z per line)")
	out := fs.String("out", "", "output mesh file")
	dropCorners := fs.Bool("drop-corners", true, "remove the seed cover quad after building")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("build-points: -in and -out are required")
	}

	pts, err := readPoints3(*in)
	if err != nil {
		return err
	}

	e := engine.New()
	if res := e.BuildFromPoints(pts); res.Err != nil {
		return fmt.Errorf("build-points: %w", res.Err)
	}
	if *dropCorners {
		if res := e.RemoveSeedCorners(); res.Err != nil {
			return fmt.Errorf("build-points: remove seed corners: %w", res.Err)
		}
	}
	if res := e.Repair(); res.Err != nil {
		return fmt.Errorf("build-points: repair: %w", res.Err)
	}
	if res := e.Legalize(); res.Err != nil {
		return fmt.Errorf("build-points: legalize: %w", res.Err)
	}

	if err := tmeshio.Save(*out, e.Mesh(), tmeshio.Baseline{}); err != nil {
		return fmt.Errorf("build-points: %w", err)
	}
	return nil
}

func runBuildGrid(args []string) error {
	fs := newFlagSet("build-grid")
	in := fs.String("in", "", "input grid file")
	out := fs.String("out", "", "output mesh file")
	equilateral := fs.Bool("equilateral", true, "build equilateral-leaning triangles by spacing rows xspace*sqrt(3)/2 apart and shifting odd rows half a column, instead of splitting each grid cell on a fixed diagonal")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("build-grid: -in and -out are required")
	}

	g, err := readGrid(*in)
	if err != nil {
		return err
	}

	e := engine.New(engine.WithoutEquilateral(!*equilateral))
	if res := e.BuildFromGrid(g); res.Err != nil {
		return fmt.Errorf("build-grid: %w", res.Err)
	}

	if err := tmeshio.Save(*out, e.Mesh(), tmeshio.Baseline{}); err != nil {
		return fmt.Errorf("build-grid: %w", err)
	}
	return nil
}
