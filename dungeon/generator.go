package dungeon

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// Layout is the result of a generation run: the carved grid plus the rooms
// that were actually placed, in placement order.
type Layout struct {
	Grid     *tilemap.Grid
	Rooms    []tilemap.Rect
	Attempts int // placement attempts made (always Options.MaxRooms)
	Rejected int // candidates dropped because they intersected a placed room
}

// Generate returns a width×height room-and-corridor grid for seed.
// It is a pure function of its inputs: equal arguments give equal tiles.
// Returns ErrInvalidGridDimensions if a MaxRoomSize room cannot fit inside the border.
func Generate(width, height int, seed uint64, opts ...Option) (*tilemap.Grid, error) {
	l, err := Build(width, height, seed, opts...)
	if err != nil {
		return nil, err
	}

	return l.Grid, nil
}

// Build is Generate that also reports the placed rooms.
//
// Steps:
//  1. Validate that a MaxRoomSize room plus border fits on both axes.
//  2. For each of MaxRooms attempts draw a room size and an interior anchor.
//  3. Reject candidates intersecting a placed room; otherwise carve the room.
//  4. Join each accepted room after the first to its predecessor with an L corridor.
//
// Complexity: O(R² + R×S²) time for R attempts and room side S, O(W×H) memory.
func Build(width, height int, seed uint64, opts ...Option) (*Layout, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// A room spans size+1 cells and needs one wall cell on each side,
	// and the anchor range [1, dim-size-1) must not be empty.
	if width < cfg.MaxRoomSize+3 || height < cfg.MaxRoomSize+3 {
		return nil, fmt.Errorf("%w: %dx%d cannot hold a room of size %d",
			ErrInvalidGridDimensions, width, height, cfg.MaxRoomSize)
	}

	b, err := tilemap.NewBuilder(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGridDimensions, err)
	}

	g := &generator{
		cfg:    cfg,
		rng:    NewRand(seed),
		canvas: b,
		rooms:  make([]tilemap.Rect, 0, cfg.MaxRooms),
		w:      width,
		h:      height,
	}
	if err = g.run(); err != nil {
		return nil, err
	}

	grid := g.canvas.Grid()
	cfg.Logger.Debug("dungeon generated",
		"width", width,
		"height", height,
		"seed", seed,
		"rooms", len(g.rooms),
		"rejected", g.rejected,
		"floor", grid.FloorCount())

	return &Layout{
		Grid:     grid,
		Rooms:    g.rooms,
		Attempts: cfg.MaxRooms,
		Rejected: g.rejected,
	}, nil
}

// generator holds the mutable state of one Build call.
type generator struct {
	cfg      Options
	rng      *rand.Rand
	canvas   *tilemap.Builder
	rooms    []tilemap.Rect
	rejected int
	w, h     int
}

func (g *generator) run() error {
attempts:
	for i := 0; i < g.cfg.MaxRooms; i++ {
		room := g.candidate()
		for _, r := range g.rooms {
			if r.Intersects(room) {
				g.rejected++
				g.cfg.Logger.Debug("room rejected", "attempt", i, "room", room)
				continue attempts
			}
		}

		if err := g.canvas.Carve(room); err != nil {
			return fmt.Errorf("dungeon: carve room %+v: %w", room, err)
		}
		if n := len(g.rooms); n > 0 {
			if err := g.corridor(room, g.rooms[n-1]); err != nil {
				return err
			}
		}
		g.rooms = append(g.rooms, room)
		g.cfg.Logger.Debug("room placed", "attempt", i, "room", room, "center", room.Center())
	}

	return nil
}

// candidate draws a room whose anchor lies in [1, dim-size-1) on each axis,
// keeping the whole rectangle off the border.
func (g *generator) candidate() tilemap.Rect {
	span := g.cfg.MaxRoomSize - g.cfg.MinRoomSize + 1
	rw := g.cfg.MinRoomSize + g.rng.IntN(span)
	rh := g.cfg.MinRoomSize + g.rng.IntN(span)
	x := 1 + g.rng.IntN(g.w-rw-2)
	y := 1 + g.rng.IntN(g.h-rh-2)

	return tilemap.NewRect(x, y, rw, rh)
}

// corridor carves an L-shaped path between the centers of room and prev.
// The elbow sits either at (room.x, prev.y) or at (prev.x, room.y).
func (g *generator) corridor(room, prev tilemap.Rect) error {
	c, p := room.Center(), prev.Center()

	elbow := tilemap.Point{X: p.X, Y: c.Y}
	if g.rng.IntN(2) == 0 {
		elbow = tilemap.Point{X: c.X, Y: p.Y}
	}

	if err := g.canvas.CarveRow(p.X, c.X, elbow.Y); err != nil {
		return fmt.Errorf("dungeon: carve corridor row %d: %w", elbow.Y, err)
	}
	if err := g.canvas.CarveColumn(p.Y, c.Y, elbow.X); err != nil {
		return fmt.Errorf("dungeon: carve corridor column %d: %w", elbow.X, err)
	}

	return nil
}
