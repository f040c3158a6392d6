// Command annealbench benchmarks the annealing search over synthetic
// instances and writes the aggregated results to CSV.
//
// Example:
//
//	annealbench -sizes 10,25,50 -alphas 0,0.5,1 -runs 20 -out results.csv
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mirkomiorelli/travelopt/anneal"
	"github.com/mirkomiorelli/travelopt/bench"
)

func main() {
	var (
		out          = flag.String("out", "artifacts/results.csv", "path of the output CSV file")
		sizes        = flag.String("sizes", "10,25,50", "instance sizes (number of cities, comma separated)")
		alphas       = flag.String("alphas", "0,0.5,1", "distance/price blend weights (comma separated)")
		runs         = flag.Int("runs", 20, "independent searches per case (distinct base seeds)")
		baseSeed     = flag.Int64("seed", 1000, "base seed for the searches")
		instanceSeed = flag.Int64("instance_seed", 777, "base seed for instance generation (fixed per case)")

		iterMax  = flag.Int("iter_max", 100_000, "iterations per annealing trajectory")
		t0       = flag.Float64("t0", 1.0, "initial temperature")
		coolEach = flag.Int("cool_each", 100, "iterations between cooling steps")
		coolBy   = flag.Float64("cool_by", 0.999, "multiplicative cooling factor")
		restarts = flag.Int("restarts", 8, "restarts per search")
		workers  = flag.Int("workers", 0, "concurrent restarts (0 = number of CPUs)")

		side  = flag.Float64("side", 100, "edge length of the square the cities are drawn from")
		mu    = flag.Float64("price_mu", 5.0, "log-normal mu of the fare distribution")
		sigma = flag.Float64("price_sigma", 0.5, "log-normal sigma of the fare distribution")
	)
	flag.Parse()

	ns, err := parseInts(*sizes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad -sizes:", err)
		os.Exit(2)
	}
	as, err := parseFloats(*alphas)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad -alphas:", err)
		os.Exit(2)
	}

	opts := anneal.DefaultOptions()
	opts.T0 = *t0
	opts.IterMax = *iterMax
	opts.CoolingInterval = *coolEach
	opts.CoolingFactor = *coolBy
	opts.Restarts = *restarts
	if *workers > 0 {
		opts.Workers = *workers
	}

	runner := bench.Runner{
		Runs:     *runs,
		BaseSeed: *baseSeed,
		Gen:      bench.GenConfig{Side: *side, PriceMu: *mu, PriceSigma: *sigma},
		Opts:     opts,
	}

	var records []bench.Record
	for i, n := range ns {
		for _, alpha := range as {
			c := bench.Case{
				Cities: n,
				Alpha:  alpha,
				// One instance per size; alpha sweeps reuse it so the
				// blends are compared on identical cities and fares.
				InstanceSeed: *instanceSeed + int64(i),
			}

			fmt.Printf("cities=%d alpha=%.2f (runs=%d, restarts=%d)...\n",
				c.Cities, c.Alpha, runner.Runs, opts.Restarts)

			rec, err := runner.RunCase(c)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			records = append(records, rec)

			fmt.Printf("  cost: best=%.6f mean=%.6f std=%.6f | time: mean=%.2fms p95=%.2fms\n",
				rec.CostBest, rec.CostMean, rec.CostStd,
				rec.TimeMeanMs, rec.TimeP95Ms)
		}
	}

	if err := bench.WriteCSV(*out, records); err != nil {
		fmt.Fprintln(os.Stderr, "write csv:", err)
		os.Exit(1)
	}
	fmt.Println("saved:", *out)
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, p := range splitCSV(s) {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		if v < 3 {
			return nil, fmt.Errorf("%q: need at least 3 cities", p)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, p := range splitCSV(s) {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("%q: alpha must be in [0,1]", p)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
