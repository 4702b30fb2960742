package tilemap

import "fmt"

// Tile is the classification of a single grid cell.
// The zero value is Wall, so a freshly allocated grid is solid rock.
type Tile uint8

const (
	// Wall is solid rock. Searches may still cross it at a penalty.
	Wall Tile = iota
	// Floor is open ground.
	Floor
)

// Glyphs used by Parse and by Tile.String.
const (
	WallGlyph  = '#'
	FloorGlyph = '.'
)

// String returns the single-character glyph of the tile.
func (t Tile) String() string {
	switch t {
	case Wall:
		return string(WallGlyph)
	case Floor:
		return string(FloorGlyph)
	default:
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
}

// Position is the row-major linear index of a cell: x + y*width.
type Position int

// NoPosition marks the absence of a position, e.g. the predecessor of a search start.
// It is never a valid grid index.
const NoPosition Position = -1

// Point is a 2D cell coordinate.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle with inclusive corners (X1,Y1) and (X2,Y2).
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds the rectangle anchored at (x,y) spanning w columns and h rows
// past the anchor: X2 = x+w, Y2 = y+h. Carving it covers (w+1)×(h+1) cells.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersects reports whether r and o overlap on both axes, counting shared edges.
// Rooms that merely touch therefore intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// Center returns the integer midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains reports whether p lies inside r, bounds included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}
