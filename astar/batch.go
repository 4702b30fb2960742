package astar

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// Query is one start/end request for RunBatch.
type Query struct {
	Start, End tilemap.Position
}

// Answer is the outcome of one Query. Err holds per-query failures such as
// ErrUnreachable or ErrOutOfBounds; they do not stop the batch.
type Answer[C Cost] struct {
	Query
	Path []tilemap.Position
	Cost C
	Err  error
}

// RunBatch answers independent queries against one read-only grid using up
// to workers goroutines (workers ≤ 0 means runtime.NumCPU()). Answers are
// returned in query order.
//
// A single search is never interrupted; ctx is checked before each query
// starts, and a cancelled ctx makes RunBatch return ctx.Err() along with the
// answers completed so far. Queries skipped because of the cancellation carry
// the context error in Answer.Err.
func (e *Engine[C]) RunBatch(ctx context.Context, grid *tilemap.Grid, queries []Query, workers int) ([]Answer[C], error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	answers := make([]Answer[C], len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, q := range queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				answers[i] = Answer[C]{Query: q, Err: err}
				return err
			}
			path, cost, err := e.RunPath(grid, q.Start, q.End)
			answers[i] = Answer[C]{Query: q, Path: path, Cost: cost, Err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return answers, err
	}

	return answers, nil
}
