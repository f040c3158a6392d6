// Package anneal_test exercises the blended objective: linearity in alpha,
// single-table reads at the extremes, delta-vs-full agreement for every
// interior swap pair, and the parallel reduction.
package anneal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirkomiorelli/travelopt/anneal"
)

const costTol = 1e-9

func TestTourCost_KnownSquare(t *testing.T) {
	t.Parallel()

	// Normalized unit square: sides 1/√2, diagonals 1. Perimeter = 4/√2 = 2√2.
	tbl := squareTables(t)

	cost, err := anneal.TourCost(tbl, ringTour(4), 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.8284271247, cost, 1e-9)

	// Crossing tour: two sides + two diagonals.
	crossing := []int{0, 2, 1, 3, 0}
	crossCost, err := anneal.TourCost(tbl, crossing, 1)
	require.NoError(t, err)
	assert.Greater(t, crossCost, cost)
}

func TestTourCost_LinearInAlpha(t *testing.T) {
	t.Parallel()

	tbl := invertedPriceTables(t)
	tour := randomTour(t, tbl.Len(), seedDet)

	distOnly, err := anneal.TourCost(tbl, tour, 1)
	require.NoError(t, err)
	priceOnly, err := anneal.TourCost(tbl, tour, 0)
	require.NoError(t, err)

	for _, alpha := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		blended, berr := anneal.TourCost(tbl, tour, alpha)
		require.NoError(t, berr)
		assert.InDeltaf(t, alpha*distOnly+(1-alpha)*priceOnly, blended, costTol,
			"alpha=%v", alpha)
	}
}

func TestTourCost_ExtremesReadSingleTable(t *testing.T) {
	t.Parallel()

	// Same distances, very different prices: alpha=1 must not see prices.
	flat := squareTables(t)
	inv := invertedPriceTables(t)
	tour := ringTour(4)

	d1, err := anneal.TourCost(flat, tour, 1)
	require.NoError(t, err)
	d2, err := anneal.TourCost(inv, tour, 1)
	require.NoError(t, err)
	assert.Equal(t, d1, d2, "alpha=1 depends only on the distance table")

	// And alpha=0 must not see distances: price-only cost of the perimeter
	// under the inverted table is the price-maximal tour cost, not 0.
	p, err := anneal.TourCost(inv, tour, 0)
	require.NoError(t, err)
	assert.Greater(t, p, 0.0)
}

func TestTourCost_Validation(t *testing.T) {
	t.Parallel()

	tbl := squareTables(t)

	_, err := anneal.TourCost(nil, ringTour(4), 1)
	assert.ErrorIs(t, err, anneal.ErrNilTables)

	_, err = anneal.TourCost(tbl, ringTour(4), 1.5)
	assert.ErrorIs(t, err, anneal.ErrBadAlpha)

	_, err = anneal.TourCost(tbl, []int{0, 1, 2, 3}, 1)
	assert.ErrorIs(t, err, anneal.ErrInvalidTour)

	_, err = anneal.TourCost(tbl, ringTour(5), 1)
	assert.ErrorIs(t, err, anneal.ErrInvalidTour)
}

func TestSwapDelta_MatchesFullRecomputation(t *testing.T) {
	t.Parallel()

	// 8 cities on a bent line so every pair distance differs.
	coords := [][2]float64{
		{0, 0}, {1, 0.1}, {2, 0}, {3, 0.4}, {4, 0}, {5, 0.2}, {6, 0}, {7, 0.3},
	}
	tbl := buildTables(t, coords, zeroDense(t, 8))
	n := tbl.Len()

	for _, alpha := range []float64{0, 0.4, 1} {
		tour := randomTour(t, n, seedDet)
		base := anneal.TourCostRawForTest(tbl.Dist(), tbl.Price(), tour, alpha)

		// Every interior pair, both orders.
		for i := 1; i <= n-1; i++ {
			for j := 1; j <= n-1; j++ {
				if i == j {
					continue
				}
				delta := anneal.SwapDeltaForTest(tbl.Dist(), tbl.Price(), tour, i, j, alpha)

				swapped := anneal.CopyTour(tour)
				swapped[i], swapped[j] = swapped[j], swapped[i]
				full := anneal.TourCostRawForTest(tbl.Dist(), tbl.Price(), swapped, alpha)

				require.InDeltaf(t, full-base, delta, costTol,
					"alpha=%v i=%d j=%d", alpha, i, j)
			}
		}
	}
}

func TestTourCostParallel_MatchesSerial(t *testing.T) {
	t.Parallel()

	// 64 cities on a noisy circle.
	coords := make([][2]float64, 64)
	for i := range coords {
		theta := 2 * math.Pi * float64(i) / 64
		coords[i] = [2]float64{math.Cos(theta) * (1 + 0.01*float64(i%5)), math.Sin(theta)}
	}
	tbl := buildTables(t, coords, zeroDense(t, 64))
	tour := randomTour(t, 64, seedDet)

	serial, err := anneal.TourCost(tbl, tour, 1)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 4, 8} {
		par, perr := anneal.TourCostParallel(tbl, tour, 1, workers)
		require.NoError(t, perr)
		assert.InDeltaf(t, serial, par, costTol, "workers=%d", workers)
	}

	// Degenerate worker counts fall back to the serial path.
	par, err := anneal.TourCostParallel(tbl, tour, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, serial, par)
}
