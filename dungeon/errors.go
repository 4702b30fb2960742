package dungeon

import "errors"

var (
	// ErrInvalidGridDimensions indicates width or height too small to hold a
	// MaxRoomSize room plus a one-tile border on each side. Reported before carving.
	ErrInvalidGridDimensions = errors.New("dungeon: grid too small for room size")

	// ErrNoFloor indicates a grid with no Floor tile to pick an endpoint from.
	ErrNoFloor = errors.New("dungeon: grid has no floor tiles")

	// ErrNoEndpoints indicates endpoint selection gave up before finding a
	// pair separated by more than the requested distance.
	ErrNoEndpoints = errors.New("dungeon: no endpoints satisfy the minimum distance")
)
