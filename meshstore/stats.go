package meshstore

// AverageEdgeLength returns the arithmetic mean length of every live edge.
func (s *Store) AverageEdgeLength() float64 {
	var sum float64
	n := 0
	for i := range s.Edges {
		if s.Edges[i].Deleted {
			continue
		}
		sum += s.Edges[i].Length
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Perimeter sums the length of every boundary edge (Tri2 == NilTri),
// which is what graze distance and the zero-length/zero-area thresholds
// are scaled against.
func (s *Store) Perimeter() float64 {
	var sum float64
	for i := range s.Edges {
		if s.Edges[i].Deleted || !s.Edges[i].IsBoundary() {
			continue
		}
		sum += s.Edges[i].Length
	}
	return sum
}
