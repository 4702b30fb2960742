package astar

import "github.com/katalvlaran/dungeonpath/tilemap"

// Result is the raw output of a search.
//
// CameFrom maps each reached position to its best known predecessor;
// CameFrom[Start] is tilemap.NoPosition. CostSoFar maps each reached
// position to its best known cumulative cost. Both describe final values
// for every position popped before the search stopped.
type Result[C Cost] struct {
	Start, End tilemap.Position
	CameFrom   map[tilemap.Position]tilemap.Position
	CostSoFar  map[tilemap.Position]C
	Expanded   int  // non-stale frontier pops
	Found      bool // End was popped

	limit int // width×height, caps reconstruction
}

// Path reconstructs the route from Start to End inclusive.
// Returns ErrUnreachable when no path was found.
func (r *Result[C]) Path() ([]tilemap.Position, error) {
	if !r.Found {
		return nil, ErrUnreachable
	}

	return Reconstruct(r.CameFrom, r.Start, r.End, r.limit)
}

// Cost returns the cumulative cost recorded for End, or ErrUnreachable.
func (r *Result[C]) Cost() (C, error) {
	if !r.Found {
		return 0, ErrUnreachable
	}

	return r.CostSoFar[r.End], nil
}
