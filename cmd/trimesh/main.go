// Command trimesh is a command-line driver over the engine package:
// build a mesh from a scattered point file or a grid file, drape a
// polyline over it, validate its topology, or rasterize it to a PNG,
// grounded on the teacher's one-flag.FlagSet-per-program cmd/ layout
// (cmd/validate, cmd/cdt_example) generalised into subcommands.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "build-points":
		err = runBuildPoints(os.Args[2:])
	case "build-grid":
		err = runBuildGrid(os.Args[2:])
	case "drape":
		err = runDrape(os.Args[2:])
	case "validate":
		err = runValidate(os.Args[2:])
	case "rasterize":
		err = runRasterize(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "trimesh: unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "trimesh: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: trimesh <subcommand> [flags]

Subcommands:
  build-points -in points.txt -out mesh.tmesh      triangulate a scattered point set
  build-grid   -in grid.txt -out mesh.tmesh         convert a rectangular grid to a mesh
  drape        -mesh mesh.tmesh -in line.txt -out drape.txt   drape a polyline over a mesh
  validate     -mesh mesh.tmesh                     run the diagnostic topology sweep
  rasterize    -mesh mesh.tmesh -out snapshot.png    render a mesh to a PNG snapshot`)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs
}
