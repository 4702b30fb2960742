package astar

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGrid indicates a nil *tilemap.Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds is tilemap.ErrOutOfBounds; start and end are checked
	// against [0, width×height) before any search work.
	ErrOutOfBounds = tilemap.ErrOutOfBounds

	// ErrUnreachable indicates the frontier ran dry before reaching end, or a
	// predecessor chain does not lead back to start. It is a normal outcome
	// for disconnected regions.
	ErrUnreachable = errors.New("astar: end is unreachable from start")

	// ErrInvalidCost indicates a negative or NaN step cost, a negative
	// heuristic, or an integer cost or priority that overflows C.
	ErrInvalidCost = errors.New("astar: invalid step cost")

	// ErrBrokenPath indicates consecutive path positions that are not 8-neighbors.
	ErrBrokenPath = errors.New("astar: path positions are not adjacent")
)

// Cost is the numeric type of step costs, cumulative costs and priorities.
// Integer sums that would wrap are reported as ErrInvalidCost, so narrow
// types such as int8 only serve small grids or small costs.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Default step costs.
const (
	DefaultFloorCost = 1
	DefaultWallCost  = 100
)

// Heuristic estimates the number of steps from a to b. The engine multiplies
// it by the cheapest step cost, so it must not exceed the true step count of
// the best path for A* to stay optimal.
type Heuristic func(a, b tilemap.Point) int

// Manhattan returns |dx|+|dy|. It overestimates diagonal moves on an
// 8-connected grid, so paths it produces may be suboptimal around obstacles.
func Manhattan(a, b tilemap.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev returns max(|dx|,|dy|), the exact step count on an open
// 8-connected grid. Admissible and consistent.
func Chebyshev(a, b tilemap.Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// Zero always returns 0, reducing the search to Dijkstra's algorithm.
func Zero(_, _ tilemap.Point) int {
	return 0
}

// Options configures an Engine.
type Options[C Cost] struct {
	// TileCost maps a tile to the cost of stepping onto it; ok=false marks
	// the tile as impassable.
	TileCost  func(t tilemap.Tile) (cost C, ok bool)
	Heuristic Heuristic
	Logger    *slog.Logger
}

// Option is a functional option for New.
// Constructors panic on meaningless arguments; Run never panics.
type Option[C Cost] func(*Options[C])

// DefaultOptions returns Floor=1, Wall=100 (passable), Chebyshev and a discarding logger.
func DefaultOptions[C Cost]() Options[C] {
	return Options[C]{
		TileCost:  stepCosts[C](DefaultFloorCost, DefaultWallCost, true),
		Heuristic: Chebyshev,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithStepCosts sets the Floor and Wall step costs; walls stay passable.
// Panics on negative, NaN or infinite costs.
func WithStepCosts[C Cost](floor, wall C) Option[C] {
	mustCost("WithStepCosts(floor)", floor)
	mustCost("WithStepCosts(wall)", wall)
	return func(o *Options[C]) {
		o.TileCost = stepCosts(floor, wall, true)
	}
}

// WithImpassableWalls excludes Wall tiles from expansion: they are never
// entered, so a closed ring of walls makes its inside unreachable.
// floor is the Floor step cost. Panics on a negative, NaN or infinite cost.
func WithImpassableWalls[C Cost](floor C) Option[C] {
	mustCost("WithImpassableWalls", floor)
	return func(o *Options[C]) {
		o.TileCost = stepCosts(floor, 0, false)
	}
}

// WithTileCost installs a custom tile cost function. Its results are checked
// during the run; a negative or NaN cost aborts it with ErrInvalidCost.
// Panics on nil.
func WithTileCost[C Cost](fn func(tilemap.Tile) (C, bool)) Option[C] {
	if fn == nil {
		panic("astar: WithTileCost(nil)")
	}
	return func(o *Options[C]) {
		o.TileCost = fn
	}
}

// WithHeuristic replaces the default Chebyshev heuristic. Panics on nil.
func WithHeuristic[C Cost](h Heuristic) Option[C] {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options[C]) {
		o.Heuristic = h
	}
}

// WithLogger routes per-run debug records to l. Panics on nil.
func WithLogger[C Cost](l *slog.Logger) Option[C] {
	if l == nil {
		panic("astar: WithLogger(nil)")
	}
	return func(o *Options[C]) {
		o.Logger = l
	}
}

func stepCosts[C Cost](floor, wall C, wallsPassable bool) func(tilemap.Tile) (C, bool) {
	return func(t tilemap.Tile) (C, bool) {
		if t == tilemap.Floor {
			return floor, true
		}

		return wall, wallsPassable
	}
}

func mustCost[C Cost](name string, c C) {
	if !validCost(c) || math.IsInf(float64(c), 0) {
		panic("astar: " + name + ": cost must be finite and non-negative")
	}
}

// addCost returns a+b for non-negative a and b; ok is false when an integer
// sum wraps around.
func addCost[C Cost](a, b C) (sum C, ok bool) {
	sum = a + b

	return sum, sum >= a
}

// mulCost returns a×b for non-negative a and b; ok is false when an integer
// product wraps around.
func mulCost[C Cost](a, b C) (prod C, ok bool) {
	prod = a * b
	if isFloat[C]() || a == 0 {
		return prod, true
	}

	return prod, prod/a == b
}

// isFloat reports whether C is a floating-point type.
func isFloat[C Cost]() bool {
	return C(1)/C(2) != 0
}

// validCost reports whether c is usable as a step cost: not NaN, not negative.
func validCost[C Cost](c C) bool {
	return c == c && c >= 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
