// Package payments contains payment listing and dashboard use cases.
package payments

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pos-payments/backend/internal/application/adapter"
	"github.com/pos-payments/backend/internal/domain/valueobject"
)

// fetchSources queries every named source concurrently and returns the
// collections in the given priority order. A source that fails to fetch is
// logged and replaced with an empty collection: a subset of sources being
// unavailable degrades the dashboard instead of erroring it.
func fetchSources(
	ctx context.Context,
	repo adapter.PaymentSourceRepository,
	names []string,
	window adapter.SourceWindow,
) []valueobject.NamedCollection {
	collections := make([]valueobject.NamedCollection, len(names))

	var wg sync.WaitGroup
	wg.Add(len(names))
	for i, name := range names {
		go func(i int, name string) {
			defer wg.Done()

			collection, err := repo.FetchCollection(ctx, name, window)
			if err != nil {
				slog.Warn("Source collection unavailable, continuing without it",
					"source", name,
					"error", err,
				)
				collections[i] = valueobject.NamedCollection{Name: name}
				return
			}
			collections[i] = collection
		}(i, name)
	}
	wg.Wait()

	return collections
}
