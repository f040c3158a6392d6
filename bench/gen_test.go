package bench_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirkomiorelli/travelopt/bench"
	"github.com/mirkomiorelli/travelopt/costmodel"
)

func TestRandomInstance_RejectsTinyInstance(t *testing.T) {
	t.Parallel()

	_, err := bench.RandomInstance(1, bench.DefaultGenConfig(), 7)
	require.ErrorIs(t, err, costmodel.ErrTooFewCities)
}

func TestRandomInstance_ShapeAndBounds(t *testing.T) {
	t.Parallel()

	const n = 12
	cfg := bench.DefaultGenConfig()

	inst, err := bench.RandomInstance(n, cfg, 7)
	require.NoError(t, err)
	require.Len(t, inst.Coords, n)
	require.Equal(t, n, inst.Prices.Rows())
	require.Equal(t, n, inst.Prices.Cols())

	for _, c := range inst.Coords {
		require.GreaterOrEqual(t, c[0], 0.0)
		require.Less(t, c[0], cfg.Side)
		require.GreaterOrEqual(t, c[1], 0.0)
		require.Less(t, c[1], cfg.Side)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p, err := inst.Prices.At(i, j)
			require.NoError(t, err)
			q, err := inst.Prices.At(j, i)
			require.NoError(t, err)
			require.Equal(t, p, q)
			require.False(t, math.IsNaN(p) || math.IsInf(p, 0))
			if i == j {
				require.Zero(t, p)
			} else {
				require.Greater(t, p, 0.0) // log-normal draws are strictly positive
			}
		}
	}
}

func TestRandomInstance_SeedDeterminism(t *testing.T) {
	t.Parallel()

	cfg := bench.DefaultGenConfig()

	a, err := bench.RandomInstance(9, cfg, 123)
	require.NoError(t, err)
	b, err := bench.RandomInstance(9, cfg, 123)
	require.NoError(t, err)
	require.Equal(t, a.Coords, b.Coords)
	require.Equal(t, a.Prices, b.Prices)

	c, err := bench.RandomInstance(9, cfg, 124)
	require.NoError(t, err)
	require.NotEqual(t, a.Coords, c.Coords)
}

func TestInstance_TablesBuilds(t *testing.T) {
	t.Parallel()

	inst, err := bench.RandomInstance(8, bench.DefaultGenConfig(), 5)
	require.NoError(t, err)

	tbl, err := inst.Tables()
	require.NoError(t, err)
	require.Equal(t, 8, tbl.Len())

	dmin, dmax := tbl.DistBounds()
	require.Less(t, dmin, dmax)
}
