// Package anneal minimizes a blended travel objective over closed city tours
// by simulated annealing with independent multi-restart search.
//
// The objective for a tour is J = alpha·L + (1−alpha)·P, where L sums the
// normalized pairwise distances and P the normalized pairwise prices along
// consecutive tour edges (tables built by package costmodel). alpha==1 is
// pure distance minimization, alpha==0 pure price minimization.
//
// A tour over n cities is a slice of n+1 indices: the first n entries are a
// permutation of 0..n-1 and the last entry repeats the first, closing the
// loop. The optimizer perturbs only interior positions (1..n-1), so the
// starting city never moves.
//
// Per-iteration protocol (Optimizer.Run):
//
//  1. Cooling: every CoolingInterval iterations the temperature is multiplied
//     by CoolingFactor. Temperature is never clamped below; it may only decay
//     toward floating-point underflow.
//  2. Proposal: two distinct interior positions chosen uniformly at random;
//     the cities at those positions are swapped.
//  3. Evaluation: O(1) delta over the edges incident to the swap — identical
//     in value (within FP tolerance) to a full recomputation.
//  4. Acceptance: ΔJ ≤ 0 always accepted; ΔJ > 0 accepted with probability
//     exp(−ΔJ/T). Underflow of the exponential degrades to a plain reject.
//  5. Trace: every SampleInterval iterations the current cost is appended to
//     the trace; the initial cost is always the first entry.
//
// Determinism: all randomness flows from a caller-supplied seed through a
// component-local rand.Rand; the same seed, inputs and parameters reproduce
// bit-identical tours, costs and traces. MultiRestart derives one
// independent SplitMix64 substream per restart, which is what makes the
// restarts safe to run on separate goroutines.
//
// Errors (sentinel):
//
//	– ErrNilTables           if the cost tables are nil.
//	– ErrInvalidTour         if a starting tour breaks the closed-loop permutation invariant.
//	– ErrDegenerateInstance  if n < 3 (the interior swap is undefined).
//	– ErrBadAlpha, ErrBadTemperature, ErrBadIterations, ErrBadInterval,
//	  ErrBadCooling, ErrBadRestarts for malformed Options.
//
// Example usage:
//
//	tbl, _ := costmodel.Build(coords, prices)
//	opts := anneal.DefaultOptions()
//	opts.Alpha = 0.7
//	opts.Seed = 42
//	res, err := anneal.MultiRestart(tbl, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Tour, res.Cost)
package anneal
