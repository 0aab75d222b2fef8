package main

import (
	"fmt"

	"github.com/iceisfun/trimesh/engine"
	"github.com/iceisfun/trimesh/tmeshio"
)

func runDrape(args []string) error {
	fs := newFlagSet("drape")
	meshPath := fs.String("mesh", "", "mesh file to drape over")
	in := fs.String("in", "", "input polyline file (x y per line)")
	out := fs.String("out", "", "output draped point file (x y z per line)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *meshPath == "" || *in == "" || *out == "" {
		return fmt.Errorf("drape: -mesh, -in and -out are required")
	}

	store, _, err := tmeshio.Load(*meshPath)
	if err != nil {
		return fmt.Errorf("drape: %w", err)
	}
	line, err := readPoints2(*in)
	if err != nil {
		return err
	}

	e := engine.New()
	e.LoadMesh(store)

	draped, res := e.Drape(line)
	if res.Err != nil {
		return fmt.Errorf("drape: %w", res.Err)
	}

	if err := writePoints3(*out, draped); err != nil {
		return fmt.Errorf("drape: %w", err)
	}
	return nil
}
