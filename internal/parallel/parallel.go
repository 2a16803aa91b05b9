// Package parallel runs independent API calls concurrently.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the default concurrency limit. CloudFormation throttles
// read APIs per account, so the fan-out stays small.
const DefaultLimit = 4

// Result holds the outcome for one input.
type Result[T any] struct {
	Value T
	Err   error
}

// Map runs fn for every item concurrently and returns the results in input order.
// Individual errors are captured in Result.Err rather than failing the whole batch.
func Map[T any, R any](
	ctx context.Context,
	items []T,
	fn func(ctx context.Context, item T) (R, error),
) []Result[R] {
	return MapWithLimit(ctx, items, DefaultLimit, fn)
}

// MapWithLimit is like Map but with a custom concurrency limit.
// A limit below one means no limit.
func MapWithLimit[T any, R any](
	ctx context.Context,
	items []T,
	limit int,
	fn func(ctx context.Context, item T) (R, error),
) []Result[R] {
	results := make([]Result[R], len(items))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		g.Go(func() error {
			value, err := fn(gctx, item)
			results[i] = Result[R]{Value: value, Err: err}

			return nil // Don't fail the group on individual errors
		})
	}

	_ = g.Wait()

	return results
}
