package astar

import (
	"fmt"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// Engine runs least-cost searches with a fixed configuration.
// It is immutable after New and safe for concurrent use.
type Engine[C Cost] struct {
	opts Options[C]
}

// New builds an Engine from DefaultOptions overridden by opts.
func New[C Cost](opts ...Option[C]) *Engine[C] {
	cfg := DefaultOptions[C]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine[C]{opts: cfg}
}

// Run searches grid for a least-cost path from start to end.
//
// The returned Result always carries the explored cost and predecessor maps.
// When end cannot be reached, Run returns that Result together with
// ErrUnreachable so callers can still inspect what was explored.
//
// Preconditions (checked in order, before any search work):
//  1. grid is non-nil (ErrNilGrid).
//  2. start and end lie in [0, width×height) (ErrOutOfBounds).
//
// Each call owns fresh state; nothing carries over between runs.
func (e *Engine[C]) Run(grid *tilemap.Grid, start, end tilemap.Position) (*Result[C], error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrOutOfBounds, start, grid.Len())
	}
	if !grid.InBounds(end) {
		return nil, fmt.Errorf("%w: end %d not in [0,%d)", ErrOutOfBounds, end, grid.Len())
	}

	r, err := e.newRunner(grid, start, end)
	if err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	res := &Result[C]{
		Start:     start,
		End:       end,
		CameFrom:  r.cameFrom,
		CostSoFar: r.costSoFar,
		Expanded:  r.expanded,
		Found:     r.found,
		limit:     grid.Len(),
	}

	e.opts.Logger.Debug("search finished",
		"start", grid.Point(start),
		"end", grid.Point(end),
		"found", r.found,
		"expanded", r.expanded,
		"reached", len(r.costSoFar))

	if !r.found {
		return res, fmt.Errorf("%w: %v to %v", ErrUnreachable, grid.Point(start), grid.Point(end))
	}

	return res, nil
}

// RunPath is Run followed by path reconstruction. It returns the positions
// from start to end inclusive and the total cost of entering them.
func (e *Engine[C]) RunPath(grid *tilemap.Grid, start, end tilemap.Position) ([]tilemap.Position, C, error) {
	res, err := e.Run(grid, start, end)
	if err != nil {
		return nil, 0, err
	}
	path, err := res.Path()
	if err != nil {
		return nil, 0, err
	}

	return path, res.CostSoFar[end], nil
}

// PathCost re-derives the cumulative cost of path under the engine's cost
// model: the sum of the step costs of every position after the first.
// Returns ErrBrokenPath for non-adjacent neighbors, ErrOutOfBounds for
// positions off the grid, ErrUnreachable for impassable tiles and
// ErrInvalidCost when the sum overflows C.
func (e *Engine[C]) PathCost(grid *tilemap.Grid, path []tilemap.Position) (C, error) {
	var total C
	if grid == nil {
		return total, ErrNilGrid
	}
	for i, p := range path {
		t, err := grid.TileAt(p)
		if err != nil {
			return total, err
		}
		if i == 0 {
			continue
		}
		if !adjacent(grid.Point(path[i-1]), grid.Point(p)) {
			return total, fmt.Errorf("%w: %v then %v", ErrBrokenPath, grid.Point(path[i-1]), grid.Point(p))
		}
		step, ok := e.opts.TileCost(t)
		if !ok {
			return total, fmt.Errorf("%w: %v is impassable", ErrUnreachable, grid.Point(p))
		}
		if !validCost(step) {
			return total, fmt.Errorf("%w: %v for %v", ErrInvalidCost, step, t)
		}
		sum, ok := addCost(total, step)
		if !ok {
			return total, fmt.Errorf("%w: %v + %v overflows", ErrInvalidCost, total, step)
		}
		total = sum
	}

	return total, nil
}

func adjacent(a, b tilemap.Point) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)

	return dx <= 1 && dy <= 1 && dx+dy > 0
}
