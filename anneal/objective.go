// Package anneal - the blended tour objective.
//
// This file is the hot path: the optimizer calls into it once per proposed
// move. Full evaluation walks all n edges; swapDelta recomputes only the
// edges incident to a proposed interior swap, which is algebraically equal
// to full recomputation on the swapped tour.
package anneal

import (
	"math"
	"sync"

	"github.com/mirkomiorelli/travelopt/costmodel"
	"github.com/mirkomiorelli/travelopt/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// edgeWeight returns the blended weight of edge u→v. The unused table is
// never read when alpha is exactly 0 or 1 — callers may then hold sentinel
// garbage in the other table without poisoning the sum.
//
// Complexity: O(1).
func edgeWeight(dist, price *matrix.Dense, u, v int, alpha float64) float64 {
	switch alpha {
	case 1:
		return dist.AtUnchecked(u, v)
	case 0:
		return price.AtUnchecked(u, v)
	default:
		return alpha*dist.AtUnchecked(u, v) + (1-alpha)*price.AtUnchecked(u, v)
	}
}

// TourCost evaluates J = alpha·L + (1−alpha)·P over the n edges of a closed
// tour. Pure: no mutation, deterministic, validated at entry.
//
// Contract:
//   - t non-nil (ErrNilTables), alpha ∈ [0,1] (ErrBadAlpha),
//     tour a valid closed loop over t.Len() cities (ErrInvalidTour).
//
// Complexity: O(n) time, O(1) space.
func TourCost(t *costmodel.Tables, tour []int, alpha float64) (float64, error) {
	if t == nil {
		return 0, ErrNilTables
	}
	if alpha < 0 || alpha > 1 {
		return 0, ErrBadAlpha
	}
	if err := ValidateTour(tour, t.Len()); err != nil {
		return 0, err
	}

	return round1e9(tourCostRaw(t.Dist(), t.Price(), tour, alpha)), nil
}

// tourCostRaw is the unvalidated, unrounded edge-sum kernel shared by the
// public evaluators and the optimizer's initial evaluation.
//
// Complexity: O(n).
func tourCostRaw(dist, price *matrix.Dense, tour []int, alpha float64) float64 {
	var (
		sum float64
		i   int
		L   = len(tour) - 1
	)
	for i = 0; i < L; i++ {
		sum += edgeWeight(dist, price, tour[i], tour[i+1], alpha)
	}

	return sum
}

// TourCostParallel evaluates the same objective with a fan-out/fan-in
// partial-sum reduction: the edge range is split into contiguous chunks, one
// goroutine per chunk accumulates a private partial, and partials are merged
// in chunk order after all workers join. No shared mutable accumulator
// exists during the fan-out, so no synchronization beyond the join is
// needed. The merge order is fixed by chunk index, so the result is
// deterministic for a given workers count; it may differ from the serial
// sum by FP reassociation within the 1e-9 rounding grain.
//
// workers ≤ 1 (or a tour too short to split) falls back to the serial path.
//
// Complexity: O(n) work, O(n/workers) span, O(workers) space.
func TourCostParallel(t *costmodel.Tables, tour []int, alpha float64, workers int) (float64, error) {
	if t == nil {
		return 0, ErrNilTables
	}
	if alpha < 0 || alpha > 1 {
		return 0, ErrBadAlpha
	}
	if err := ValidateTour(tour, t.Len()); err != nil {
		return 0, err
	}

	var edges = len(tour) - 1
	if workers <= 1 || edges < 2*workers {
		return round1e9(tourCostRaw(t.Dist(), t.Price(), tour, alpha)), nil
	}

	var (
		dist     = t.Dist()
		price    = t.Price()
		partials = make([]float64, workers)
		chunk    = (edges + workers - 1) / workers
		wg       sync.WaitGroup
		w        int
	)
	for w = 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			var (
				lo  = w * chunk
				hi  = lo + chunk
				sum float64
				i   int
			)
			if hi > edges {
				hi = edges
			}
			for i = lo; i < hi; i++ {
				sum += edgeWeight(dist, price, tour[i], tour[i+1], alpha)
			}
			partials[w] = sum // exclusive slot per worker; no race
		}(w)
	}
	wg.Wait()

	// Reduce in fixed chunk order.
	var sum float64
	for w = 0; w < workers; w++ {
		sum += partials[w]
	}

	return round1e9(sum), nil
}

// swapDelta returns the objective change from swapping the cities at
// interior positions i and j. Only the edges incident to the two positions
// are recomputed: 4 edges in the general case, 3 when the positions are
// adjacent (the inner edge keeps its weight under a symmetric table, but it
// is re-read with swapped endpoints so asymmetric inputs would still be
// scored consistently).
//
// Contract (unchecked, internal): 1 ≤ i,j ≤ n−1, i != j, tour valid.
//
// Complexity: O(1).
func swapDelta(dist, price *matrix.Dense, tour []int, i, j int, alpha float64) float64 {
	if j < i {
		i, j = j, i
	}

	var (
		a = tour[i]
		b = tour[j]

		before float64
		after  float64
	)

	if j == i+1 {
		// Adjacent swap: edges (i−1,i), (i,j), (j,j+1).
		before = edgeWeight(dist, price, tour[i-1], a, alpha) +
			edgeWeight(dist, price, a, b, alpha) +
			edgeWeight(dist, price, b, tour[j+1], alpha)
		after = edgeWeight(dist, price, tour[i-1], b, alpha) +
			edgeWeight(dist, price, b, a, alpha) +
			edgeWeight(dist, price, a, tour[j+1], alpha)

		return after - before
	}

	// Disjoint swap: edges (i−1,i), (i,i+1), (j−1,j), (j,j+1).
	before = edgeWeight(dist, price, tour[i-1], a, alpha) +
		edgeWeight(dist, price, a, tour[i+1], alpha) +
		edgeWeight(dist, price, tour[j-1], b, alpha) +
		edgeWeight(dist, price, b, tour[j+1], alpha)
	after = edgeWeight(dist, price, tour[i-1], b, alpha) +
		edgeWeight(dist, price, b, tour[i+1], alpha) +
		edgeWeight(dist, price, tour[j-1], a, alpha) +
		edgeWeight(dist, price, a, tour[j+1], alpha)

	return after - before
}
