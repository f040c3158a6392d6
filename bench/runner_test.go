package bench_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirkomiorelli/travelopt/anneal"
	"github.com/mirkomiorelli/travelopt/bench"
)

func quickRunner() bench.Runner {
	opts := anneal.DefaultOptions()
	opts.IterMax = 2_000
	opts.Restarts = 2
	opts.Workers = 1

	return bench.Runner{
		Runs:     3,
		BaseSeed: 1000,
		Gen:      bench.DefaultGenConfig(),
		Opts:     opts,
	}
}

func TestRunner_RejectsZeroRuns(t *testing.T) {
	t.Parallel()

	r := quickRunner()
	r.Runs = 0
	_, err := r.RunCase(bench.Case{Cities: 6, Alpha: 1.0, InstanceSeed: 777})
	require.Error(t, err)
}

func TestRunner_RunCaseAggregates(t *testing.T) {
	t.Parallel()

	r := quickRunner()
	c := bench.Case{Cities: 8, Alpha: 0.6, InstanceSeed: 777}

	rec, err := r.RunCase(c)
	require.NoError(t, err)

	require.Equal(t, c.Cities, rec.Cities)
	require.Equal(t, c.Alpha, rec.Alpha)
	require.Equal(t, r.Runs, rec.Runs)

	require.Greater(t, rec.CostBest, 0.0)
	require.LessOrEqual(t, rec.CostBest, rec.CostMean)
	require.GreaterOrEqual(t, rec.CostStd, 0.0)
	require.GreaterOrEqual(t, rec.CostP50, rec.CostBest)

	require.GreaterOrEqual(t, rec.TimeMeanMs, 0.0)
	require.GreaterOrEqual(t, rec.TimeP95Ms, 0.0)
}

func TestRunner_CostsDeterministic(t *testing.T) {
	t.Parallel()

	r := quickRunner()
	c := bench.Case{Cities: 7, Alpha: 1.0, InstanceSeed: 42}

	a, err := r.RunCase(c)
	require.NoError(t, err)
	b, err := r.RunCase(c)
	require.NoError(t, err)

	// Wall times vary between calls; the optimization outcome must not.
	require.Equal(t, a.CostBest, b.CostBest)
	require.Equal(t, a.CostMean, b.CostMean)
	require.Equal(t, a.CostStd, b.CostStd)
	require.Equal(t, a.CostP50, b.CostP50)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	records := []bench.Record{
		{Cities: 8, Alpha: 0.5, Runs: 3, CostBest: 1.5, CostMean: 1.7, CostStd: 0.1, CostP50: 1.65, TimeMeanMs: 12.5, TimeStdMs: 0.5, TimeP95Ms: 13.1},
		{Cities: 20, Alpha: 1.0, Runs: 3, CostBest: 4.2, CostMean: 4.4, CostStd: 0.2, CostP50: 4.35, TimeMeanMs: 80.0, TimeStdMs: 2.0, TimeP95Ms: 83.0},
	}

	path := filepath.Join(t.TempDir(), "out", "results.csv")
	require.NoError(t, bench.WriteCSV(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two records

	require.Equal(t, "cities", rows[0][0])
	require.Equal(t, "8", rows[1][0])
	require.Equal(t, "20", rows[2][0])
	require.Equal(t, "1.000000", rows[2][1])
}
