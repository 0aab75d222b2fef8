package main

import (
	"fmt"
	"log"
	"os"

	"github.com/iceisfun/trimesh/engine"
	"github.com/iceisfun/trimesh/tmeshio"
)

func runValidate(args []string) error {
	fs := newFlagSet("validate")
	meshPath := fs.String("mesh", "", "mesh file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *meshPath == "" {
		return fmt.Errorf("validate: -mesh is required")
	}

	store, _, err := tmeshio.Load(*meshPath)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	e := engine.New(engine.WithLogger(log.New(os.Stderr, "", 0)))
	if res := e.LoadMesh(store); res.Err != nil {
		return fmt.Errorf("validate: %w", res.Err)
	}

	report, res := e.Validate()
	if res.Err != nil {
		return fmt.Errorf("validate: %w", res.Err)
	}

	fmt.Printf("duplicate edges:     %d\n", report.DuplicateEdges)
	fmt.Printf("overused edges:      %d\n", report.OverusedEdges)
	fmt.Printf("nodes missing tri:   %d\n", report.NodesMissingTri)
	fmt.Printf("shortest/longest:    %.6f\n", report.ShortestEdgeRatio)
	return nil
}
