package statictree

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// batchChunk is the number of queries a single worker resolves at a time.
const batchChunk = 64

// Result is the outcome of a single lookup within a batch.
type Result[V any] struct {
	Value  V
	Status Status
}

// FindBatch resolves many queries concurrently, with at most GOMAXPROCS
// workers. Results are in query order. An empty query yields an error
// wrapping ErrEmptyKey; cancelling ctx stops outstanding work.
func (t *Tree[K, V]) FindBatch(ctx context.Context, queries [][]K) ([]Result[V], error) {
	results := make([]Result[V], len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < len(queries) && gctx.Err() == nil; lo += batchChunk {
		hi := min(lo+batchChunk, len(queries))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if len(queries[i]) == 0 {
					return fmt.Errorf("%w: query %d", ErrEmptyKey, i)
				}
				results[i].Value, results[i].Status = t.Lookup(queries[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
