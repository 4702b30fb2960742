package tilemap

// Region returns every Floor position 8-connected to p, in breadth-first
// order starting with p. It returns nil if p is out of bounds or a Wall.
//
// Time:   O(W·H·8) worst case.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Region(p Position) []Position {
	if !g.IsFloor(p) {
		return nil
	}
	seen := make([]bool, len(g.tiles))

	return g.flood(p, seen)
}

// Regions finds all connected Floor areas. Areas are listed in row-major
// order of their first cell; cells inside an area are in breadth-first order.
//
// Time:   O(W·H·8).
// Memory: O(W·H).
func (g *Grid) Regions() [][]Position {
	seen := make([]bool, len(g.tiles))
	var regions [][]Position
	for i, t := range g.tiles {
		if t != Floor || seen[i] {
			continue
		}
		regions = append(regions, g.flood(Position(i), seen))
	}

	return regions
}

// Connected reports whether a and b are Floor tiles in the same region.
func (g *Grid) Connected(a, b Position) bool {
	if !g.IsFloor(a) || !g.IsFloor(b) {
		return false
	}
	for _, p := range g.Region(a) {
		if p == b {
			return true
		}
	}

	return false
}

// flood collects the region containing start, marking cells in seen.
func (g *Grid) flood(start Position, seen []bool) []Position {
	queue := []Position{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range directions {
			v, ok := g.Neighbor(u, d)
			if !ok || seen[v] || g.tiles[v] != Floor {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return queue
}
