// Package dispatch maps a function over many independent items in parallel
// while preserving input order in the results.
package dispatch

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultThreshold is the collection size below which Map runs sequentially
// in the calling goroutine. Fanning out a tiny workload costs more than it
// saves.
const DefaultThreshold = 2

// Result is the outcome of applying the mapped function to one item. Index
// is the 0-based position of Item in the original collection; results are
// always delivered in index order. Err carries the item's own failure and
// does not affect delivery of other items.
type Result[I, O any] struct {
	Value O
	Item  I
	Index int
	Err   error
}

// Pool owns the dispatch configuration for a batch run. It is constructed
// once by the caller and reused for every Map call of the run.
type Pool struct {
	workers   int
	threshold int
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers overrides the worker count. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithThreshold overrides the sequential-execution threshold.
func WithThreshold(n int) Option {
	return func(p *Pool) {
		p.threshold = n
	}
}

// NewPool creates a pool sized to the available processing units, minimum 1.
func NewPool(opts ...Option) *Pool {
	p := &Pool{
		workers:   runtime.GOMAXPROCS(0),
		threshold: DefaultThreshold,
	}
	if p.workers < 1 {
		p.workers = 1
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Map applies fn to every item and returns one Result per item, ordered by
// input position regardless of which worker finished first. Collections
// smaller than the pool threshold are processed sequentially in the calling
// goroutine. Larger ones are split into contiguous chunks of roughly
// ceil(n/workers) items, one goroutine per chunk, so dispatch overhead is
// amortized across the chunk. A failing item records its error in its own
// Result slot and never blocks or corrupts the others.
func Map[I, O any](p *Pool, items []I, fn func(I) (O, error)) []Result[I, O] {
	results := make([]Result[I, O], len(items))
	for i, item := range items {
		results[i] = Result[I, O]{Item: item, Index: i}
	}

	if len(items) < p.threshold {
		for i := range results {
			results[i].Value, results[i].Err = fn(items[i])
		}
		return results
	}

	chunk := (len(items) + p.workers - 1) / p.workers

	var g errgroup.Group
	for start := 0; start < len(items); start += chunk {
		start := start
		end := min(start+chunk, len(items))
		g.Go(func() error {
			for i := start; i < end; i++ {
				results[i].Value, results[i].Err = fn(items[i])
			}
			return nil
		})
	}
	// Workers never return an error; failures live in the result slots.
	_ = g.Wait()

	return results
}
