// Package config loads the settings of a generate-and-search run from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dungeonpath/astar"
	"github.com/katalvlaran/dungeonpath/dungeon"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Run holds everything the CLI needs for one generate → search → render cycle.
type Run struct {
	// Map
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Seed        uint64 `yaml:"seed"`
	MaxRooms    int    `yaml:"max_rooms"`
	MinRoomSize int    `yaml:"min_room_size"`
	MaxRoomSize int    `yaml:"max_room_size"`

	// Search
	WallCost        int    `yaml:"wall_cost"`
	ImpassableWalls bool   `yaml:"impassable_walls"`
	Heuristic       string `yaml:"heuristic"` // chebyshev, manhattan or zero

	// Endpoints
	MinDistance int `yaml:"min_distance"` // start/end Manhattan separation
	Queries     int `yaml:"queries"`      // number of random start/end pairs
	Workers     int `yaml:"workers"`      // 0 = one per CPU

	// Output
	Render   string `yaml:"render"` // overlay or numeric
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings of the reference run: a 60×60 map,
// 30 room attempts of size 4..8, wall cost 100.
func Default() Run {
	return Run{
		Width:       60,
		Height:      60,
		Seed:        2739832984732098742,
		MaxRooms:    dungeon.DefaultMaxRooms,
		MinRoomSize: dungeon.DefaultMinRoomSize,
		MaxRoomSize: dungeon.DefaultMaxRoomSize,
		WallCost:    astar.DefaultWallCost,
		Heuristic:   "chebyshev",
		MinDistance: 50,
		Queries:     1,
		Render:      "overlay",
		LogLevel:    "info",
	}
}

// Load reads a Run from a YAML file on top of Default.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Run, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges and names. Generator size constraints are left to
// dungeon.Generate, which reports them as dungeon.ErrInvalidGridDimensions.
func (r Run) Validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, r.Width, r.Height)
	case r.MaxRooms < 1:
		return fmt.Errorf("%w: max_rooms %d", ErrInvalid, r.MaxRooms)
	case r.MinRoomSize < 1 || r.MaxRoomSize < r.MinRoomSize:
		return fmt.Errorf("%w: room size %d..%d", ErrInvalid, r.MinRoomSize, r.MaxRoomSize)
	case r.WallCost < 0:
		return fmt.Errorf("%w: wall_cost %d", ErrInvalid, r.WallCost)
	case r.Queries < 1:
		return fmt.Errorf("%w: queries %d", ErrInvalid, r.Queries)
	case r.MinDistance < 0:
		return fmt.Errorf("%w: min_distance %d", ErrInvalid, r.MinDistance)
	}
	if _, err := r.HeuristicFunc(); err != nil {
		return err
	}
	if r.Render != "overlay" && r.Render != "numeric" {
		return fmt.Errorf("%w: render %q", ErrInvalid, r.Render)
	}
	if _, err := ParseLevel(r.LogLevel); err != nil {
		return err
	}

	return nil
}

// HeuristicFunc resolves the Heuristic name.
func (r Run) HeuristicFunc() (astar.Heuristic, error) {
	switch strings.ToLower(r.Heuristic) {
	case "", "chebyshev":
		return astar.Chebyshev, nil
	case "manhattan":
		return astar.Manhattan, nil
	case "zero", "dijkstra":
		return astar.Zero, nil
	default:
		return nil, fmt.Errorf("%w: heuristic %q", ErrInvalid, r.Heuristic)
	}
}

// GeneratorOptions converts the map section into dungeon options.
func (r Run) GeneratorOptions(logger *slog.Logger) []dungeon.Option {
	return []dungeon.Option{
		dungeon.WithMaxRooms(r.MaxRooms),
		dungeon.WithRoomSize(r.MinRoomSize, r.MaxRoomSize),
		dungeon.WithLogger(logger),
	}
}

// EngineOptions converts the search section into astar options.
// Call Validate first; an unknown heuristic falls back to Chebyshev.
func (r Run) EngineOptions(logger *slog.Logger) []astar.Option[int] {
	h, err := r.HeuristicFunc()
	if err != nil {
		h = astar.Chebyshev
	}
	opts := []astar.Option[int]{
		astar.WithHeuristic[int](h),
		astar.WithLogger[int](logger),
	}
	if r.ImpassableWalls {
		return append(opts, astar.WithImpassableWalls(astar.DefaultFloorCost))
	}

	return append(opts, astar.WithStepCosts(astar.DefaultFloorCost, r.WallCost))
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}
}
