package dungeon

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// MaxEndpointAttempts bounds the pair draws made by Endpoints.
const MaxEndpointAttempts = 1000

// NewRand returns the deterministic source used by this package for seed.
// Callers picking endpoints can share it to keep whole runs reproducible.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// RandomFloor picks a Floor position uniformly at random.
// Returns ErrNoFloor if the grid has none.
// Complexity: O(W×H).
func RandomFloor(g *tilemap.Grid, rng *rand.Rand) (tilemap.Position, error) {
	floors := floorPositions(g)
	if len(floors) == 0 {
		return tilemap.NoPosition, ErrNoFloor
	}

	return floors[rng.IntN(len(floors))], nil
}

// Endpoints picks two distinct Floor positions whose Manhattan distance is
// greater than minDistance. It draws at most MaxEndpointAttempts pairs and
// returns ErrNoEndpoints if none qualifies.
func Endpoints(g *tilemap.Grid, rng *rand.Rand, minDistance int) (start, end tilemap.Position, err error) {
	floors := floorPositions(g)
	if len(floors) == 0 {
		return tilemap.NoPosition, tilemap.NoPosition, ErrNoFloor
	}

	for i := 0; i < MaxEndpointAttempts; i++ {
		start = floors[rng.IntN(len(floors))]
		end = floors[rng.IntN(len(floors))]
		if start == end {
			continue
		}
		if manhattan(g.Point(start), g.Point(end)) > minDistance {
			return start, end, nil
		}
	}

	return tilemap.NoPosition, tilemap.NoPosition,
		fmt.Errorf("%w: %d attempts, min distance %d", ErrNoEndpoints, MaxEndpointAttempts, minDistance)
}

func floorPositions(g *tilemap.Grid) []tilemap.Position {
	out := make([]tilemap.Position, 0, g.Len()/2)
	for p := tilemap.Position(0); int(p) < g.Len(); p++ {
		if g.IsFloor(p) {
			out = append(out, p)
		}
	}

	return out
}

func manhattan(a, b tilemap.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}
