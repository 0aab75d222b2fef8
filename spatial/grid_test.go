package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridInsertAndQuery(t *testing.T) {
	pts := [][2]float64{{0.1, 0.1}, {0.9, 0.9}, {5, 5}}
	g := NewGrid[int](0, 0, 10, 10, len(pts))
	for i, p := range pts {
		g.Insert(p[0], p[1], i)
	}

	near := g.QueryRadius(0, 0, 1.5)
	require.Contains(t, near, 0)
}

func TestExpandingRingFindsFartherItems(t *testing.T) {
	g := NewGrid[int](0, 0, 100, 100, 9)
	g.Insert(95, 95, 42)

	col, row := g.CellOf(5, 5)
	found := -1
	g.ExpandingRing(col, row, 20, func(items []int) bool {
		for _, v := range items {
			if v == 42 {
				found = v
				return true
			}
		}
		return false
	})
	require.Equal(t, 42, found)
}

func TestCacheRoundTrip(t *testing.T) {
	c := NewCache()
	key := CacheKey{ID1: 1, ID2: 2}
	c.Put(key, "index-payload")

	v, ok := c.Get(key)
	require.True(t, ok)
	require.Equal(t, "index-payload", v)

	c.Release(key)
	_, ok = c.Get(key)
	require.False(t, ok)
}
