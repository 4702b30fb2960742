package astar

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// Reconstruct walks cameFrom from end back to start and returns the
// positions in start→end order, both inclusive. start == end yields [start].
//
// The walk is bounded two ways: it stops with ErrUnreachable after limit
// steps (limit ≤ 0 means len(cameFrom)), and it remembers every visited
// position so a cycle in a corrupted map is reported instead of looping.
// A missing entry or a NoPosition predecessor before reaching start is also
// ErrUnreachable.
//
// Complexity: O(L) time and memory for a path of length L.
func Reconstruct(cameFrom map[tilemap.Position]tilemap.Position, start, end tilemap.Position, limit int) ([]tilemap.Position, error) {
	if limit <= 0 {
		limit = len(cameFrom)
	}

	path := []tilemap.Position{end}
	seen := mapset.New[tilemap.Position]()
	seen.Put(end)

	for cur := end; cur != start; {
		if len(path) > limit {
			return nil, fmt.Errorf("%w: walk exceeded %d steps", ErrUnreachable, limit)
		}
		prev, ok := cameFrom[cur]
		if !ok || prev == tilemap.NoPosition {
			return nil, fmt.Errorf("%w: chain broken at %d", ErrUnreachable, cur)
		}
		if seen.Has(prev) {
			return nil, fmt.Errorf("%w: cycle at %d", ErrUnreachable, prev)
		}
		seen.Put(prev)
		path = append(path, prev)
		cur = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
