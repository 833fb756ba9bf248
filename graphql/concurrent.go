package graphql

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Gather runs every FieldFuture in futures concurrently and collects their
// results in the same order, for a host executor that chooses to resolve
// sibling selections in parallel (spec's "sibling resolvers may run
// concurrently" concurrency model). If any future returns an error, Gather
// cancels the remaining futures' shared context and returns the first
// error observed; results for futures that did not complete are nil.
func Gather(ctx context.Context, futures []FieldFuture) ([]*FieldValue, error) {
	results := make([]*FieldValue, len(futures))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range futures {
		i, f := i, f
		g.Go(func() error {
			v, err := f.Await(gctx)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
