package astar

import (
	"fmt"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// runner holds the mutable state of a single search. It is created by Run
// and discarded afterwards, so no residue reaches a later query.
type runner[C Cost] struct {
	grid      *tilemap.Grid
	tileCost  func(tilemap.Tile) (C, bool)
	heuristic Heuristic
	scale     C // cheapest passable step cost; multiplies heuristic step counts
	start     tilemap.Position
	end       tilemap.Position
	endPoint  tilemap.Point

	frontier  *frontier[C]
	costSoFar map[tilemap.Position]C
	cameFrom  map[tilemap.Position]tilemap.Position
	expanded  int
	found     bool
}

// newRunner seeds the frontier with start at priority 0.
func (e *Engine[C]) newRunner(grid *tilemap.Grid, start, end tilemap.Position) (*runner[C], error) {
	scale, err := cheapestStep(e.opts.TileCost)
	if err != nil {
		return nil, err
	}

	r := &runner[C]{
		grid:      grid,
		tileCost:  e.opts.TileCost,
		heuristic: e.opts.Heuristic,
		scale:     scale,
		start:     start,
		end:       end,
		endPoint:  grid.Point(end),
		frontier:  newFrontier[C](),
		costSoFar: make(map[tilemap.Position]C),
		cameFrom:  make(map[tilemap.Position]tilemap.Position),
	}
	r.costSoFar[start] = 0
	r.cameFrom[start] = tilemap.NoPosition
	r.frontier.push(entry[C]{priority: 0, cost: 0, pos: start})

	return r, nil
}

// process pops entries until end is finalized or the frontier is empty.
func (r *runner[C]) process() error {
	for r.frontier.len() > 0 {
		cur, _ := r.frontier.pop()

		// A cheaper route to cur.pos was recorded after this entry was pushed.
		if cur.cost > r.costSoFar[cur.pos] {
			continue
		}
		r.expanded++

		if cur.pos == r.end {
			r.found = true
			return nil
		}

		if err := r.relax(cur); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every in-bounds neighbor of cur.
func (r *runner[C]) relax(cur entry[C]) error {
	for _, d := range tilemap.Directions() {
		n, ok := r.grid.Neighbor(cur.pos, d)
		if !ok {
			continue
		}
		t, err := r.grid.TileAt(n)
		if err != nil {
			return err
		}
		step, passable := r.tileCost(t)
		if !passable {
			continue
		}
		if !validCost(step) {
			return fmt.Errorf("%w: %v for %v", ErrInvalidCost, step, t)
		}

		candidate, ok := addCost(cur.cost, step)
		if !ok {
			return fmt.Errorf("%w: %v + %v overflows", ErrInvalidCost, cur.cost, step)
		}
		if old, seen := r.costSoFar[n]; seen && candidate >= old {
			continue
		}
		h, err := r.estimate(n)
		if err != nil {
			return err
		}
		priority, ok := addCost(candidate, h)
		if !ok {
			return fmt.Errorf("%w: priority %v + %v overflows", ErrInvalidCost, candidate, h)
		}
		r.costSoFar[n] = candidate
		r.cameFrom[n] = cur.pos
		r.frontier.push(entry[C]{
			priority: priority,
			cost:     candidate,
			pos:      n,
		})
	}

	return nil
}

// estimate converts the heuristic step count from p to end into cost units.
// A negative count, or one that does not fit C once scaled, is ErrInvalidCost.
func (r *runner[C]) estimate(p tilemap.Position) (C, error) {
	steps := r.heuristic(r.grid.Point(p), r.endPoint)
	c := C(steps)
	if steps < 0 || int(c) != steps {
		return 0, fmt.Errorf("%w: heuristic %d at %v", ErrInvalidCost, steps, r.grid.Point(p))
	}
	h, ok := mulCost(c, r.scale)
	if !ok {
		return 0, fmt.Errorf("%w: heuristic %d × %v overflows", ErrInvalidCost, steps, r.scale)
	}

	return h, nil
}

// cheapestStep returns the smallest passable step cost over all tile kinds,
// or 0 when nothing is passable.
func cheapestStep[C Cost](tileCost func(tilemap.Tile) (C, bool)) (C, error) {
	var best C
	first := true
	for _, t := range []tilemap.Tile{tilemap.Floor, tilemap.Wall} {
		c, ok := tileCost(t)
		if !ok {
			continue
		}
		if !validCost(c) {
			return 0, fmt.Errorf("%w: %v for %v", ErrInvalidCost, c, t)
		}
		if first || c < best {
			best, first = c, false
		}
	}

	return best, nil
}
