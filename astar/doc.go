// Package astar finds least-cost paths across a tilemap.Grid.
//
// The grid is treated as an implicit 8-connected graph: every cell links to
// the up to eight cells around it, and entering a cell costs the step cost of
// its tile (Floor: 1, Wall: 100 by default). Walls are expensive rather than
// solid unless WithImpassableWalls is set, so a path prefers open floor and
// only cuts through rock when there is no other way.
//
// The engine is a generalized Dijkstra/A*:
//
//  1. Push start at priority 0 with cost 0 and no predecessor.
//  2. Pop the lowest (priority, position) entry. Stop if it is end.
//     Skip it if a cheaper cost for the same position was recorded since it
//     was pushed (lazy decrease-key: stale entries stay in the heap).
//  3. Relax each in-bounds neighbor: if cost+step improves the best known cost,
//     record it, remember the predecessor and push cost+step+h(neighbor, end).
//  4. The frontier running dry means end is unreachable.
//
// Ties on priority are broken by the smaller position index, so identical
// inputs always explore nodes in the same order and return the same path.
//
// Cost types: Engine is generic over any integer or floating-point cost.
// Float costs are ordered with cmp.Compare and NaN step costs are rejected
// with ErrInvalidCost; integer costs never round, and a cumulative cost or
// priority that would wrap around the integer type fails the run with
// ErrInvalidCost instead of producing a wrong path.
//
// Heuristics: a Heuristic returns a step count which the engine scales by the
// cheapest step cost, keeping h and g in one unit system. Chebyshev (the
// default) is admissible and consistent for 8-connected moves; Manhattan can
// overestimate diagonal moves and is kept for compatibility; Zero turns the
// engine into plain Dijkstra.
//
// Complexity:
//
//   - Time:  O(N log N) for N = width×height (each cell pushes at most 8 entries per improvement).
//   - Space: O(N) for cost, predecessor and frontier storage.
//
// Concurrency: an Engine holds configuration only. Every Run allocates its own
// frontier and maps, so one Engine and one Grid may serve many goroutines at
// once; RunBatch does exactly that.
//
// Errors:
//
//   - ErrNilGrid:     the grid pointer is nil.
//   - ErrOutOfBounds: start or end is outside [0, width×height).
//   - ErrUnreachable: no chain of predecessors links start to end.
//   - ErrInvalidCost: a tile cost function produced a negative or NaN cost.
//   - ErrBrokenPath:  PathCost was given positions that are not neighbors.
package astar
