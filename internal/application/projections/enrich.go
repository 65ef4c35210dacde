package projections

import (
	"context"
	"sync"

	"personaltrainer/internal/domain/training"
)

// EnrichedTraining is a training plus its resolved customer display
// name. It is a transient read model: never persisted, recomputed on
// every fetch.
type EnrichedTraining struct {
	training.Training
	CustomerName string
}

// enrichTrainings resolves every row's customer name concurrently and
// returns a same-length slice in input order. Each resolution writes to
// its own slot, so completion order is irrelevant and no locking is
// needed. A failed resolution yields the fallback label for that row
// only; the batch always completes in full.
// PRE: resolver degrades to fallback internally, it never fails
// POST: len(result) == len(items), result[i].Training == items[i]
func enrichTrainings(ctx context.Context, items []training.Training, resolver NameResolver, fallback string) []EnrichedTraining {
	out := make([]EnrichedTraining, len(items))
	var wg sync.WaitGroup
	for i, t := range items {
		out[i].Training = t
		wg.Add(1)
		go func(i int, t training.Training) {
			defer wg.Done()
			out[i].CustomerName = resolver.ResolveCustomerName(ctx, t.CustomerRef, fallback)
		}(i, t)
	}
	wg.Wait()
	return out
}
