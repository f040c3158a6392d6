// Package anneal - independent multi-restart search.
package anneal

import (
	"sync"

	"github.com/mirkomiorelli/travelopt/costmodel"
)

// MultiRestart launches opts.Restarts independent annealing runs, each from
// a fresh uniformly random starting tour, and returns the minimum-cost final
// result with ties broken by restart index.
//
// Independence: restart r draws its starting tour and its acceptance stream
// from two SplitMix64 substreams of opts.Seed (stream ids 2r and 2r+1), so
// no restart's outcome depends on any other restart or on execution order.
// That is what makes the fork-join below safe: each goroutine writes only
// its own slot of the results slice, and the reduction happens after the
// join, single-threaded. opts.Workers caps concurrency; ≤ 1 runs the
// restarts sequentially on the calling goroutine with identical results.
//
// Errors: ErrNilTables, ErrDegenerateInstance, ErrBadRestarts, plus the
// per-run Options sentinels. The first failing restart (lowest index) wins
// error reporting.
//
// Complexity: O(Restarts · IterMax) work, O(Restarts · n) space.
func MultiRestart(t *costmodel.Tables, opts Options) (Result, error) {
	if t == nil {
		return Result{}, ErrNilTables
	}
	if t.Len() < 3 {
		return Result{}, ErrDegenerateInstance
	}
	if opts.Restarts <= 0 {
		return Result{}, ErrBadRestarts
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	var (
		results = make([]Result, opts.Restarts)
		errs    = make([]error, opts.Restarts)
	)

	if opts.Workers <= 1 {
		var r int
		for r = 0; r < opts.Restarts; r++ {
			results[r], errs[r] = runRestart(t, opts, r)
		}
	} else {
		var (
			wg  sync.WaitGroup
			sem = make(chan struct{}, opts.Workers) // bounds live goroutines
			r   int
		)
		for r = 0; r < opts.Restarts; r++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(r int) {
				defer wg.Done()
				defer func() { <-sem }()
				results[r], errs[r] = runRestart(t, opts, r)
			}(r)
		}
		wg.Wait()
	}

	// Surface the first failure deterministically.
	var r int
	for r = 0; r < opts.Restarts; r++ {
		if errs[r] != nil {
			return Result{}, errs[r]
		}
	}

	// Reduce: strict < keeps the first-seen result on ties.
	var best = 0
	for r = 1; r < opts.Restarts; r++ {
		if results[r].Cost < results[best].Cost {
			best = r
		}
	}
	out := results[best]
	out.Restart = best

	return out, nil
}

// runRestart executes one restart with its derived substreams. The tour
// stream and the optimizer stream are separated so the shuffle never
// overlaps the acceptance draws.
//
// Complexity: O(IterMax).
func runRestart(t *costmodel.Tables, opts Options, r int) (Result, error) {
	var (
		tourSeed = deriveSeed(opts.Seed, uint64(2*r))
		runSeed  = deriveSeed(opts.Seed, uint64(2*r+1))
	)

	start, err := RandomTour(t.Len(), rngFromSeed(tourSeed))
	if err != nil {
		return Result{}, err
	}

	runOpts := opts
	runOpts.Seed = runSeed

	o, err := New(t, start, runOpts)
	if err != nil {
		return Result{}, err
	}

	return o.Run()
}
