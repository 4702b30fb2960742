package dungeon

import (
	"fmt"
	"io"
	"log/slog"
)

// Defaults for the generator tunables.
const (
	DefaultMaxRooms    = 30
	DefaultMinRoomSize = 4
	DefaultMaxRoomSize = 8
)

// Options holds generator tunables. Use DefaultOptions and Option funcs
// rather than filling the struct by hand.
type Options struct {
	MaxRooms    int // placement attempts, not a guaranteed room count
	MinRoomSize int // inclusive lower bound for room width and height
	MaxRoomSize int // inclusive upper bound for room width and height
	Logger      *slog.Logger
}

// Option mutates Options before generation begins.
// Option constructors panic on meaningless input; Generate itself never panics.
type Option func(*Options)

// DefaultOptions returns MaxRooms=30, room sizes in [4,8] and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxRooms:    DefaultMaxRooms,
		MinRoomSize: DefaultMinRoomSize,
		MaxRoomSize: DefaultMaxRoomSize,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxRooms sets the number of placement attempts. Panics if n < 1.
func WithMaxRooms(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("dungeon: WithMaxRooms(%d): must be at least 1", n))
	}
	return func(o *Options) {
		o.MaxRooms = n
	}
}

// WithRoomSize sets the inclusive room dimension range.
// Panics if min < 1 or max < min.
func WithRoomSize(min, max int) Option {
	if min < 1 || max < min {
		panic(fmt.Sprintf("dungeon: WithRoomSize(%d, %d): need 1 <= min <= max", min, max))
	}
	return func(o *Options) {
		o.MinRoomSize = min
		o.MaxRoomSize = max
	}
}

// WithLogger routes generator debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("dungeon: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}
