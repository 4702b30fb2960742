// Command dungeonpath generates a room-and-corridor map, picks random
// start/end pairs on its floor, finds least-cost paths between them and
// prints the map with each path drawn on top.
//
// Usage:
//
//	dungeonpath [-config run.yaml] [-width 60] [-height 60] [-seed N] [-queries 1] [-min-distance 50]
//	            [-heuristic chebyshev|manhattan|zero] [-impassable] [-render overlay|numeric]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/dungeonpath/astar"
	"github.com/katalvlaran/dungeonpath/config"
	"github.com/katalvlaran/dungeonpath/dungeon"
	"github.com/katalvlaran/dungeonpath/render"
	"github.com/katalvlaran/dungeonpath/tilemap"
)

// defaultConfigPath is read when neither -config nor DUNGEONPATH_CONFIG is given.
const defaultConfigPath = "dungeonpath.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	layout, err := dungeon.Build(cfg.Width, cfg.Height, cfg.Seed, cfg.GeneratorOptions(logger)...)
	if err != nil {
		return fmt.Errorf("generating map: %w", err)
	}
	grid := layout.Grid
	slog.Info("map generated",
		"width", grid.Width(),
		"height", grid.Height(),
		"seed", cfg.Seed,
		"rooms", len(layout.Rooms),
		"rejected", layout.Rejected)

	if cfg.Render == "numeric" {
		return render.Numeric(out, grid)
	}

	queries, err := pickQueries(grid, cfg)
	if err != nil {
		return err
	}

	engine := astar.New(cfg.EngineOptions(logger)...)
	answers, err := engine.RunBatch(ctx, grid, queries, cfg.Workers)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}

	for i, a := range answers {
		start, end := grid.Point(a.Start), grid.Point(a.End)
		if a.Err != nil {
			if errors.Is(a.Err, astar.ErrUnreachable) {
				slog.Warn("no path", "query", i, "start", start, "end", end)
				continue
			}
			return fmt.Errorf("query %d: %w", i, a.Err)
		}
		slog.Info("path found", "query", i, "start", start, "end", end, "cost", a.Cost, "length", len(a.Path))
		fmt.Fprintf(out, "query %d: %v -> %v cost %d\n", i, start, end, a.Cost)
		if err := render.Overlay(out, grid, a.Path); err != nil {
			return err
		}
	}

	return nil
}

// loadConfig reads the YAML file named by -config (or DUNGEONPATH_CONFIG)
// and overlays any flags given explicitly on the command line.
func loadConfig(args []string) (config.Run, error) {
	fs := flag.NewFlagSet("dungeonpath", flag.ContinueOnError)
	path := fs.String("config", defaultConfigPath, "YAML run configuration")
	width := fs.Int("width", 0, "map width")
	height := fs.Int("height", 0, "map height")
	seed := fs.Uint64("seed", 0, "generator seed")
	queries := fs.Int("queries", 0, "number of random start/end pairs")
	minDistance := fs.Int("min-distance", 0, "minimum Manhattan distance between start and end")
	heuristic := fs.String("heuristic", "", "chebyshev, manhattan or zero")
	impassable := fs.Bool("impassable", false, "treat walls as solid")
	mode := fs.String("render", "", "overlay or numeric")
	level := fs.String("log-level", "", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return config.Run{}, err
	}

	cfgPath := *path
	if p := os.Getenv("DUNGEONPATH_CONFIG"); p != "" && !isSet(fs, "config") {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "seed":
			cfg.Seed = *seed
		case "queries":
			cfg.Queries = *queries
		case "min-distance":
			cfg.MinDistance = *minDistance
		case "heuristic":
			cfg.Heuristic = *heuristic
		case "impassable":
			cfg.ImpassableWalls = *impassable
		case "render":
			cfg.Render = *mode
		case "log-level":
			cfg.LogLevel = *level
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// pickQueries draws cfg.Queries start/end pairs from the seeded source.
func pickQueries(grid *tilemap.Grid, cfg config.Run) ([]astar.Query, error) {
	rng := dungeon.NewRand(cfg.Seed)
	queries := make([]astar.Query, 0, cfg.Queries)
	for i := 0; i < cfg.Queries; i++ {
		start, end, err := dungeon.Endpoints(grid, rng, cfg.MinDistance)
		if err != nil {
			return nil, fmt.Errorf("picking endpoints: %w", err)
		}
		queries = append(queries, astar.Query{Start: start, End: end})
	}

	return queries, nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}
