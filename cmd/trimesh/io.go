package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iceisfun/trimesh/geom"
	"github.com/iceisfun/trimesh/grid"
)

// readPoints3 reads whitespace-separated "x y z" lines, skipping blank
// lines and lines starting with '#'.
func readPoints3(path string) ([]geom.Point3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pts []geom.Point3
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 fields, got %d", path, lineNo, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: x: %w", path, lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: y: %w", path, lineNo, err)
		}
		z, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: z: %w", path, lineNo, err)
		}
		pts = append(pts, geom.Point3{X: x, Y: y, Z: z})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// readPoints2 reads whitespace-separated "x y" lines.
func readPoints2(path string) ([]geom.Point2, error) {
	pts3, err := readPointsAllowingTwoOrThreeFields(path)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Point2, len(pts3))
	for i, p := range pts3 {
		out[i] = geom.Point2{X: p.X, Y: p.Y}
	}
	return out, nil
}

func readPointsAllowingTwoOrThreeFields(path string) ([]geom.Point3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pts []geom.Point3
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: expected 2 or 3 fields, got %d", path, lineNo, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: x: %w", path, lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: y: %w", path, lineNo, err)
		}
		var z float64
		if len(fields) == 3 {
			z, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: z: %w", path, lineNo, err)
			}
		}
		pts = append(pts, geom.Point3{X: x, Y: y, Z: z})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// readGrid reads a grid file: a header line "rows cols originX originY
// xspace yspace" followed by rows*cols z values (row-major, one value
// per line or whitespace-separated across lines); "null" or "nan" marks
// a missing sample.
func readGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	nextInt := func(label string) (int, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("%s: expected %s", path, label)
		}
		return strconv.Atoi(sc.Text())
	}
	nextFloat := func(label string) (float64, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("%s: expected %s", path, label)
		}
		return strconv.ParseFloat(sc.Text(), 64)
	}

	rows, err := nextInt("rows")
	if err != nil {
		return nil, err
	}
	cols, err := nextInt("cols")
	if err != nil {
		return nil, err
	}
	originX, err := nextFloat("originX")
	if err != nil {
		return nil, err
	}
	originY, err := nextFloat("originY")
	if err != nil {
		return nil, err
	}
	xspace, err := nextFloat("xspace")
	if err != nil {
		return nil, err
	}
	yspace, err := nextFloat("yspace")
	if err != nil {
		return nil, err
	}

	g := grid.New(rows, cols, originX, originY, xspace, yspace)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !sc.Scan() {
				return nil, fmt.Errorf("%s: expected %d grid values, ran out at row %d col %d", path, rows*cols, r, c)
			}
			tok := sc.Text()
			if strings.EqualFold(tok, "null") || strings.EqualFold(tok, "nan") {
				g.Set(r, c, grid.Null)
				continue
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d col %d: %w", path, r, c, err)
			}
			g.Set(r, c, v)
		}
	}
	return g, nil
}

// writePoints3 writes "x y z" lines.
func writePoints3(path string, pts []geom.Point3) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range pts {
		if _, err := fmt.Fprintf(w, "%s %s %s\n",
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			strconv.FormatFloat(p.Z, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return w.Flush()
}
