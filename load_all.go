package wcap

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Loader func() Table

// LoadAll builds the tables in parallel. The result keeps the order of
// loaders. It fails only when ctx is done before every table was built.
func LoadAll(ctx context.Context, loaders ...Loader) ([]Table, error) {
	tables := make([]Table, len(loaders))
	g, ctx := errgroup.WithContext(ctx)
	for i, load := range loaders {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tables[i] = load()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}
