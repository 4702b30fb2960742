package astar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// openGrid returns a w×h grid made entirely of Floor.
func openGrid(t testing.TB, w, h int) *tilemap.Grid {
	t.Helper()
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	g, err := tilemap.Parse(rows...)
	require.NoError(t, err)

	return g
}

// parse wraps tilemap.Parse for fixtures.
func parse(t testing.TB, rows ...string) *tilemap.Grid {
	t.Helper()
	g, err := tilemap.Parse(rows...)
	require.NoError(t, err)

	return g
}

// ringGrid encloses (3,3) in a closed ring of walls.
func ringGrid(t testing.TB) *tilemap.Grid {
	return parse(t,
		".......",
		".#####.",
		".#...#.",
		".#...#.",
		".#...#.",
		".#####.",
		".......",
	)
}

func chebyshev(a, b tilemap.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return max(dx, dy)
}
