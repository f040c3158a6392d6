// Package anneal_test shared fixtures.
//
// All fixtures are finite, symmetric and deterministic so numeric-policy
// checks never interfere with the property under test.
package anneal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirkomiorelli/travelopt/anneal"
	"github.com/mirkomiorelli/travelopt/costmodel"
	"github.com/mirkomiorelli/travelopt/matrix"
)

// seedDet is the seed used wherever determinism itself is not the property
// under test.
const seedDet int64 = 42

// unitSquare: perimeter tour length 4 (raw), crossing tours strictly longer.
var unitSquare = [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// zeroDense returns an n×n zero matrix or aborts the test.
func zeroDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	return m
}

// buildTables wraps costmodel.Build with test aborts.
func buildTables(t *testing.T, coords [][2]float64, prices *matrix.Dense) *costmodel.Tables {
	t.Helper()
	tbl, err := costmodel.Build(coords, prices)
	require.NoError(t, err)
	return tbl
}

// squareTables returns unit-square tables with an all-zero price table.
func squareTables(t *testing.T) *costmodel.Tables {
	t.Helper()
	return buildTables(t, unitSquare, zeroDense(t, 4))
}

// invertedPriceTables returns unit-square tables whose price table ranks
// pairs in the opposite order of their distance: price[i][j] = maxd − d[i][j]
// off-diagonal, 0 on the diagonal. Minimizing price then maximizes distance.
func invertedPriceTables(t *testing.T) *costmodel.Tables {
	t.Helper()

	n := len(unitSquare)
	raw := buildTables(t, unitSquare, zeroDense(t, n)) // for raw distances
	_, maxd := raw.DistBounds()

	dist, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := unitSquare[i][0] - unitSquare[j][0]
			dy := unitSquare[i][1] - unitSquare[j][1]
			require.NoError(t, dist.Set(i, j, math.Hypot(dx, dy)))
		}
	}

	price, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d, aerr := dist.At(i, j)
			require.NoError(t, aerr)
			require.NoError(t, price.Set(i, j, maxd-d))
		}
	}

	return buildTables(t, unitSquare, price)
}

// ringTour returns the trivial closed tour [0 1 … n−1 0].
func ringTour(n int) []int {
	tour := make([]int, n+1)
	for i := 0; i < n; i++ {
		tour[i] = i
	}
	tour[n] = 0
	return tour
}

// randomTour draws a closed tour from a throwaway deterministic stream.
func randomTour(t *testing.T, n int, seed int64) []int {
	t.Helper()
	tour, err := anneal.RandomTour(n, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return tour
}
