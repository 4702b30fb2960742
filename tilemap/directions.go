package tilemap

// directions holds the eight compass offsets, built once by buildDirections.
var directions = buildDirections()

// buildDirections enumerates every (dx,dy) in {-1,0,1}² except (0,0),
// row by row (dy outer, dx inner), so each direction appears exactly once.
func buildDirections() [8]Point {
	var out [8]Point
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = Point{X: dx, Y: dy}
			i++
		}
	}

	return out
}

// Directions returns the eight neighbor offsets of 8-connectivity:
// NW, N, NE, W, E, SW, S, SE.
func Directions() [8]Point {
	return directions
}

// Neighbor returns the position one step from p along d, and whether that
// step stays on the grid. The check is done on the 2D coordinate, so a step
// west from column 0 never wraps onto the previous row.
// Complexity: O(1).
func (g *Grid) Neighbor(p Position, d Point) (Position, bool) {
	if !g.InBounds(p) {
		return NoPosition, false
	}
	pt := g.Point(p).Add(d)
	if !g.InBoundsXY(pt.X, pt.Y) {
		return NoPosition, false
	}

	return g.IndexOf(pt), true
}

// Neighbors appends to dst the in-bounds 8-neighbors of p in Directions order
// and returns the extended slice.
func (g *Grid) Neighbors(dst []Position, p Position) []Position {
	for _, d := range directions {
		if n, ok := g.Neighbor(p, d); ok {
			dst = append(dst, n)
		}
	}

	return dst
}
