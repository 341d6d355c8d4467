package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel3 runs three loaders concurrently and returns all results, or
// the first error. The context passed to the loaders is canceled as soon as
// any of them fails.
//
// Example:
//
//	services, portfolio, testimonials, err := Parallel3(ctx,
//	    store.ListServices, store.ListPortfolio, store.ListTestimonials)
func Parallel3[T1, T2, T3 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
	fn3 func(context.Context) (T3, error),
) (result1 T1, result2 T2, result3 T3, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var fnErr error

		result1, fnErr = fn1(gctx)

		return fnErr
	})

	g.Go(func() error {
		var fnErr error

		result2, fnErr = fn2(gctx)

		return fnErr
	})

	g.Go(func() error {
		var fnErr error

		result3, fnErr = fn3(gctx)

		return fnErr
	})

	if err = g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
			zero3 T3
		)

		return zero1, zero2, zero3, fmt.Errorf("parallel load failed: %w", err)
	}

	return result1, result2, result3, nil
}
