package tilemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// TestNew_Validation ensures non-positive dimensions are rejected up front.
func TestNew_Validation(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		_, err := tilemap.New(dims[0], dims[1])
		assert.ErrorIs(t, err, tilemap.ErrEmptyGrid, "dims %v", dims)
	}

	g, err := tilemap.New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 0, g.FloorCount(), "fresh grid is solid wall")
}

func TestFromTiles_CopiesInput(t *testing.T) {
	tiles := []tilemap.Tile{tilemap.Floor, tilemap.Wall, tilemap.Floor, tilemap.Floor}
	g, err := tilemap.FromTiles(2, 2, tiles)
	require.NoError(t, err)

	tiles[0] = tilemap.Wall
	got, err := g.TileAt(0)
	require.NoError(t, err)
	assert.Equal(t, tilemap.Floor, got, "grid must not alias caller slice")

	_, err = tilemap.FromTiles(2, 3, tiles)
	assert.ErrorIs(t, err, tilemap.ErrDimensionMismatch)
}

// TestIndexPointRoundTrip checks Index and Point are exact inverses on every cell.
func TestIndexPointRoundTrip(t *testing.T) {
	g, err := tilemap.New(7, 4)
	require.NoError(t, err)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := g.Index(x, y)
			assert.Equal(t, tilemap.Position(x+y*7), p)
			assert.Equal(t, tilemap.Point{X: x, Y: y}, g.Point(p))
		}
	}
	for p := tilemap.Position(0); int(p) < g.Len(); p++ {
		assert.Equal(t, p, g.IndexOf(g.Point(p)))
	}
}

func TestTileAt_OutOfBounds(t *testing.T) {
	g, err := tilemap.New(3, 3)
	require.NoError(t, err)

	for _, p := range []tilemap.Position{-1, tilemap.NoPosition, 9, 100} {
		_, err := g.TileAt(p)
		assert.ErrorIs(t, err, tilemap.ErrOutOfBounds, "position %d", p)
		assert.False(t, g.InBounds(p))
	}
	assert.True(t, g.InBounds(8))
	assert.Equal(t, tilemap.Wall, g.At(-1, 0), "off-grid coordinates read as wall")
}

func TestParse(t *testing.T) {
	g, err := tilemap.Parse(
		"#..",
		". #",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, tilemap.Wall, g.At(0, 0))
	assert.Equal(t, tilemap.Floor, g.At(1, 0))
	assert.Equal(t, tilemap.Floor, g.At(1, 1))
	assert.Equal(t, tilemap.Wall, g.At(2, 1))
	assert.Equal(t, "#..\n..#\n", g.String())

	_, err = tilemap.Parse("##", "#")
	assert.ErrorIs(t, err, tilemap.ErrDimensionMismatch)
	_, err = tilemap.Parse("#x")
	assert.ErrorIs(t, err, tilemap.ErrUnknownGlyph)
	_, err = tilemap.Parse()
	assert.ErrorIs(t, err, tilemap.ErrEmptyGrid)
}

// TestDirections_Unique asserts the neighbor table holds exactly the eight
// distinct non-zero offsets.
func TestDirections_Unique(t *testing.T) {
	dirs := tilemap.Directions()
	set := mapset.New[tilemap.Point]()
	for _, d := range dirs {
		assert.NotEqual(t, tilemap.Point{}, d)
		assert.LessOrEqual(t, d.X*d.X, 1)
		assert.LessOrEqual(t, d.Y*d.Y, 1)
		set.Put(d)
	}
	assert.Equal(t, 8, set.Size())
}

func TestNeighbor_NoRowWrap(t *testing.T) {
	g, err := tilemap.New(4, 3)
	require.NoError(t, err)

	// (0,1) stepping west must not land on (3,0).
	_, ok := g.Neighbor(g.Index(0, 1), tilemap.Point{X: -1, Y: 0})
	assert.False(t, ok)
	// (3,1) stepping east must not land on (0,2).
	_, ok = g.Neighbor(g.Index(3, 1), tilemap.Point{X: 1, Y: 0})
	assert.False(t, ok)

	n, ok := g.Neighbor(g.Index(1, 1), tilemap.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, g.Index(2, 2), n)

	assert.Len(t, g.Neighbors(nil, g.Index(0, 0)), 3, "corner")
	assert.Len(t, g.Neighbors(nil, g.Index(1, 0)), 5, "edge")
	assert.Len(t, g.Neighbors(nil, g.Index(1, 1)), 8, "interior")
}

func TestRect(t *testing.T) {
	a := tilemap.NewRect(1, 1, 3, 3) // (1,1)-(4,4)
	assert.Equal(t, tilemap.Rect{X1: 1, Y1: 1, X2: 4, Y2: 4}, a)
	assert.Equal(t, tilemap.Point{X: 2, Y: 2}, a.Center())

	touching := tilemap.NewRect(4, 1, 2, 2) // shares column x=4
	assert.True(t, a.Intersects(touching), "edge-touching rooms intersect")
	assert.True(t, touching.Intersects(a))

	apart := tilemap.NewRect(5, 1, 2, 2)
	assert.False(t, a.Intersects(apart))
	assert.True(t, a.Contains(tilemap.Point{X: 4, Y: 4}))
	assert.False(t, a.Contains(tilemap.Point{X: 5, Y: 4}))
}

func TestBuilder_CarveAndSnapshot(t *testing.T) {
	b, err := tilemap.NewBuilder(6, 5)
	require.NoError(t, err)

	require.NoError(t, b.Carve(tilemap.NewRect(1, 1, 2, 1)))
	snap := b.Grid()
	assert.Equal(t, 6, snap.FloorCount())

	require.NoError(t, b.CarveRow(4, 3, 3))
	require.NoError(t, b.CarveColumn(3, 1, 5))
	assert.Equal(t, 6, snap.FloorCount(), "snapshot must not observe later edits")
	assert.Equal(t, 6+2+3, b.Grid().FloorCount())

	assert.ErrorIs(t, b.Carve(tilemap.NewRect(4, 4, 3, 3)), tilemap.ErrOutOfBounds)
	assert.ErrorIs(t, b.Set(6, 0, tilemap.Floor), tilemap.ErrOutOfBounds)
}

func TestRegions(t *testing.T) {
	g, err := tilemap.Parse(
		"..#..",
		"..#..",
		"#####",
		"#...#",
	)
	require.NoError(t, err)

	regions := g.Regions()
	require.Len(t, regions, 3)
	assert.Len(t, regions[0], 4)
	assert.Len(t, regions[1], 4)
	assert.Len(t, regions[2], 3)

	assert.True(t, g.Connected(g.Index(0, 0), g.Index(1, 1)))
	assert.False(t, g.Connected(g.Index(0, 0), g.Index(3, 0)))
	assert.Nil(t, g.Region(g.Index(2, 0)), "wall has no region")

	// Diagonal contact joins regions under 8-connectivity.
	d, err := tilemap.Parse(
		".#",
		"#.",
	)
	require.NoError(t, err)
	assert.Len(t, d.Regions(), 1)
}

func TestEqual(t *testing.T) {
	a, _ := tilemap.Parse("#.", ".#")
	b, _ := tilemap.Parse("#.", ".#")
	c, _ := tilemap.Parse("#.", "..")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
