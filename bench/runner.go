package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/mirkomiorelli/travelopt/anneal"
)

// Case names one benchmark configuration: an instance size, the
// distance/price blend to optimize, and the seed the instance is drawn
// from (fixed per case so every run of the case sees the same cities).
type Case struct {
	Cities       int
	Alpha        float64
	InstanceSeed int64
}

// Record is one aggregated benchmark line, ready for CSV.
type Record struct {
	Cities int
	Alpha  float64
	Runs   int

	CostBest float64
	CostMean float64
	CostStd  float64
	CostP50  float64

	TimeMeanMs float64
	TimeStdMs  float64
	TimeP95Ms  float64
}

// Runner repeats the multi-restart search Runs times over a case, each run
// with its own base seed, and aggregates the outcomes.
type Runner struct {
	Runs     int
	BaseSeed int64
	Gen      GenConfig
	Opts     anneal.Options // Alpha and Seed are overwritten per case/run
}

// RunCase executes the runner policy over one case.
func (r Runner) RunCase(c Case) (Record, error) {
	if r.Runs <= 0 {
		return Record{}, fmt.Errorf("bench: runs must be positive, got %d", r.Runs)
	}

	inst, err := RandomInstance(c.Cities, r.Gen, c.InstanceSeed)
	if err != nil {
		return Record{}, fmt.Errorf("bench: generate instance: %w", err)
	}
	tbl, err := inst.Tables()
	if err != nil {
		return Record{}, fmt.Errorf("bench: build tables: %w", err)
	}

	opts := r.Opts
	opts.Alpha = c.Alpha

	costs := make([]float64, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)

	for i := 0; i < r.Runs; i++ {
		opts.Seed = r.BaseSeed + int64(i)

		start := time.Now()
		res, err := anneal.MultiRestart(tbl, opts)
		dur := time.Since(start)
		if err != nil {
			return Record{}, fmt.Errorf("bench: run %d: %w", i, err)
		}

		costs = append(costs, res.Cost)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	cs, err := summarize(costs)
	if err != nil {
		return Record{}, fmt.Errorf("bench: aggregate costs: %w", err)
	}
	ts, err := summarize(timesMs)
	if err != nil {
		return Record{}, fmt.Errorf("bench: aggregate times: %w", err)
	}

	return Record{
		Cities: c.Cities,
		Alpha:  c.Alpha,
		Runs:   r.Runs,

		CostBest: cs.min,
		CostMean: cs.mean,
		CostStd:  cs.std,
		CostP50:  cs.p50,

		TimeMeanMs: ts.mean,
		TimeStdMs:  ts.std,
		TimeP95Ms:  ts.p95,
	}, nil
}

type summary struct {
	min, mean, std, p50, p95 float64
}

func summarize(data []float64) (summary, error) {
	var s summary
	var err error

	if s.min, err = stats.Min(data); err != nil {
		return summary{}, err
	}
	if s.mean, err = stats.Mean(data); err != nil {
		return summary{}, err
	}
	if len(data) >= 2 {
		if s.std, err = stats.StandardDeviationSample(data); err != nil {
			return summary{}, err
		}
	}
	if s.p50, err = stats.Percentile(data, 50); err != nil {
		return summary{}, err
	}
	if s.p95, err = stats.Percentile(data, 95); err != nil {
		return summary{}, err
	}
	return s, nil
}

// WriteCSV writes records to path, creating parent directories as needed.
func WriteCSV(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"cities", "alpha", "runs",
		"cost_best", "cost_mean", "cost_std", "cost_p50",
		"time_mean_ms", "time_std_ms", "time_p95_ms",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Cities),
			ftoa(rec.Alpha),
			strconv.Itoa(rec.Runs),

			ftoa(rec.CostBest),
			ftoa(rec.CostMean),
			ftoa(rec.CostStd),
			ftoa(rec.CostP50),

			ftoa(rec.TimeMeanMs),
			ftoa(rec.TimeStdMs),
			ftoa(rec.TimeP95Ms),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
