// Package fanout runs one function per item with bounded concurrency and
// returns the outcomes in input order. The registrar client uses it to issue
// one availability lookup per supported suffix.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// An item still waiting for a slot when ctx is canceled records ctx.Err()
// without calling fn; items already running are left to honor ctx themselves.
// Run blocks until every item has an outcome. Empty input yields an empty,
// non-nil slice, and a maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	slots := make(chan struct{}, maxWorkers)

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Collect unwraps results into their values. It fails on the first error in
// input order, naming the item's position so callers can map it back.
func Collect[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	for i, r := range results {
		if r.Err != nil {
			return nil, &ItemError{Index: i, Err: r.Err}
		}
		values = append(values, r.Value)
	}
	return values, nil
}

// ItemError reports which item of a fan-out failed.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
