package tilemap

import "fmt"

// Builder is a mutable tile canvas. Generators carve into a Builder and then
// take an immutable snapshot with Grid; the snapshot never observes later edits.
type Builder struct {
	g Grid
}

// NewBuilder returns a width×height canvas filled with Wall.
// Returns ErrEmptyGrid if either dimension is not positive.
func NewBuilder(width, height int) (*Builder, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}

	return &Builder{g: *g}, nil
}

// Width returns the canvas width.
func (b *Builder) Width() int { return b.g.width }

// Height returns the canvas height.
func (b *Builder) Height() int { return b.g.height }

// Set stores t at (x,y). Returns ErrOutOfBounds for coordinates off the canvas.
func (b *Builder) Set(x, y int, t Tile) error {
	if !b.g.InBoundsXY(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, b.g.width, b.g.height)
	}
	b.g.tiles[x+y*b.g.width] = t

	return nil
}

// Carve sets every cell of r, bounds included, to Floor.
// Returns ErrOutOfBounds without touching the canvas if r does not fit.
func (b *Builder) Carve(r Rect) error {
	if !b.g.InBoundsXY(r.X1, r.Y1) || !b.g.InBoundsXY(r.X2, r.Y2) || r.X1 > r.X2 || r.Y1 > r.Y2 {
		return fmt.Errorf("%w: rect %+v on %dx%d", ErrOutOfBounds, r, b.g.width, b.g.height)
	}
	for y := r.Y1; y <= r.Y2; y++ {
		row := y * b.g.width
		for x := r.X1; x <= r.X2; x++ {
			b.g.tiles[row+x] = Floor
		}
	}

	return nil
}

// CarveRow opens the horizontal run x1..x2 (either order) on row y.
func (b *Builder) CarveRow(x1, x2, y int) error {
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	return b.Carve(Rect{X1: x1, Y1: y, X2: x2, Y2: y})
}

// CarveColumn opens the vertical run y1..y2 (either order) on column x.
func (b *Builder) CarveColumn(y1, y2, x int) error {
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	return b.Carve(Rect{X1: x, Y1: y1, X2: x, Y2: y2})
}

// Grid returns an immutable snapshot of the canvas.
func (b *Builder) Grid() *Grid {
	g, _ := FromTiles(b.g.width, b.g.height, b.g.tiles)

	return g
}
