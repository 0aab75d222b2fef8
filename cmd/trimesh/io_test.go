package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/grid"
)

func TestReadWritePoints3RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.txt")

	in := []geom.Point3{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 2},
		{X: 0.5, Y: 1, Z: 3},
	}
	require.NoError(t, writePoints3(path, in))

	out, err := readPoints3(path)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestReadPoints3SkipsBlankAndComment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("# header\n\n1 2 3\n\n4 5 6\n"), 0o644))

	pts, err := readPoints3(path)
	require.NoError(t, err)
	require.Equal(t, []geom.Point3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}, pts)
}

func TestReadPoints2AllowsTwoFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "line.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n3 4\n"), 0o644))

	pts, err := readPoints2(path)
	require.NoError(t, err)
	require.Equal(t, []geom.Point2{{X: 1, Y: 2}, {X: 3, Y: 4}}, pts)
}

func TestReadGridParsesHeaderAndNulls(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte(
		"2 2 0 0 1 1\n"+
			"1 2\n"+
			"null 4\n"), 0o644))

	g, err := readGrid(path)
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows)
	require.Equal(t, 2, g.Cols)
	require.Equal(t, 1.0, g.At(0, 0))
	require.Equal(t, 2.0, g.At(0, 1))
	require.True(t, grid.IsNull(g.At(1, 0)))
	require.Equal(t, 4.0, g.At(1, 1))
}
