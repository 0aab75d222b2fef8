package grid

// FillGridNulls repeatedly averages each null cell from its non-null
// 4-neighbours until no null cells remain or maxPasses is exhausted
//, a Jacobi relaxation
// grounded in the same neighbour-averaging idea as SmoothGrid below.
func FillGridNulls(g *Grid, maxPasses int) {
	for pass := 0; pass < maxPasses; pass++ {
		filledAny := false
		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				if !IsNull(g.At(r, c)) {
					continue
				}
				sum, n := 0.0, 0
				for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					v := g.At(r+d[0], c+d[1])
					if !IsNull(v) {
						sum += v
						n++
					}
				}
				if n > 0 {
					g.Set(r, c, sum/float64(n))
					filledAny = true
				}
			}
		}
		if !filledAny {
			break
		}
	}
}

// SmoothGrid applies iterations of explicit Laplacian smoothing with the
// given factor: each cell moves factor of the way toward its 4-neighbour
// average per iteration.
func SmoothGrid(g *Grid, factor float64, iterations int) {
	for it := 0; it < iterations; it++ {
		next := make([][]float64, g.Rows)
		for r := range next {
			next[r] = make([]float64, g.Cols)
			copy(next[r], g.Z[r])
		}
		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				z := g.At(r, c)
				if IsNull(z) {
					continue
				}
				sum, n := 0.0, 0
				for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					v := g.At(r+d[0], c+d[1])
					if !IsNull(v) {
						sum += v
						n++
					}
				}
				if n == 0 {
					continue
				}
				next[r][c] = z + factor*(sum/float64(n)-z)
			}
		}
		g.Z = next
	}
}
