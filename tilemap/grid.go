package tilemap

import (
	"fmt"
	"strings"
)

// Grid is an immutable width×height array of tiles stored row-major.
// Invariant: len(tiles) == width*height.
type Grid struct {
	width, height int
	tiles         []Tile
}

// New returns a width×height grid filled with Wall.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}

	return &Grid{width: width, height: height, tiles: make([]Tile, width*height)}, nil
}

// FromTiles builds a grid from a row-major tile slice. The slice is copied,
// so later changes by the caller do not leak into the grid.
// Returns ErrEmptyGrid or ErrDimensionMismatch on malformed input.
func FromTiles(width, height int, tiles []Tile) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: %d tiles for %dx%d", ErrDimensionMismatch, len(tiles), width, height)
	}
	cp := make([]Tile, len(tiles))
	copy(cp, tiles)

	return &Grid{width: width, height: height, tiles: cp}, nil
}

// Parse builds a grid from text rows, one string per row.
// '#' is a wall; '.' and ' ' are floor. All rows must have equal length.
//
//	g, _ := tilemap.Parse(
//		"#####",
//		"#...#",
//		"#####",
//	)
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(rows[0]), len(rows)
	tiles := make([]Tile, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensionMismatch, y, len(row), w)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case WallGlyph:
				tiles = append(tiles, Wall)
			case FloorGlyph, ' ':
				tiles = append(tiles, Floor)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, row[x], x, y)
			}
		}
	}

	return &Grid{width: w, height: h, tiles: tiles}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns width×height, the number of valid positions.
func (g *Grid) Len() int { return len(g.tiles) }

// Tiles returns a copy of the row-major tile array.
func (g *Grid) Tiles() []Tile {
	cp := make([]Tile, len(g.tiles))
	copy(cp, g.tiles)

	return cp
}

// InBounds reports whether p is a valid linear index, i.e. 0 ≤ p < width×height.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p >= 0 && int(p) < len(g.tiles)
}

// InBoundsXY reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBoundsXY(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to its row-major position: x + y*width.
// The result is only meaningful when InBoundsXY(x, y) holds.
func (g *Grid) Index(x, y int) Position {
	return Position(x + y*g.width)
}

// IndexOf maps a Point to its row-major position.
func (g *Grid) IndexOf(pt Point) Position {
	return g.Index(pt.X, pt.Y)
}

// Point converts a row-major position back to its coordinate.
// Complexity: O(1).
func (g *Grid) Point(p Position) Point {
	return Point{X: int(p) % g.width, Y: int(p) / g.width}
}

// TileAt returns the tile at p, or ErrOutOfBounds.
func (g *Grid) TileAt(p Position) (Tile, error) {
	if !g.InBounds(p) {
		return Wall, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfBounds, p, len(g.tiles))
	}

	return g.tiles[p], nil
}

// At returns the tile at (x,y). Coordinates off the grid read as Wall.
func (g *Grid) At(x, y int) Tile {
	if !g.InBoundsXY(x, y) {
		return Wall
	}

	return g.tiles[x+y*g.width]
}

// IsFloor reports whether p is in bounds and open.
func (g *Grid) IsFloor(p Position) bool {
	return g.InBounds(p) && g.tiles[p] == Floor
}

// FloorCount returns the number of Floor tiles.
func (g *Grid) FloorCount() int {
	n := 0
	for _, t := range g.tiles {
		if t == Floor {
			n++
		}
	}

	return n
}

// Equal reports whether g and o have identical dimensions and tiles.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != o.tiles[i] {
			return false
		}
	}

	return true
}

// String renders the grid with one text row per grid row, using tile glyphs.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteString(g.tiles[x+y*g.width].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
