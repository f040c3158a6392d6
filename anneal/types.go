package anneal

import (
	"errors"
	"runtime"
)

// Sentinel errors returned by the annealing optimizer.
var (
	// ErrNilTables indicates that nil cost tables were passed in.
	ErrNilTables = errors.New("anneal: cost tables are nil")

	// ErrInvalidTour indicates a tour that is not a closed loop over a
	// permutation of 0..n-1 (wrong length, duplicate city, open loop, ...).
	ErrInvalidTour = errors.New("anneal: tour violates closed-loop permutation invariant")

	// ErrDegenerateInstance indicates n < 3: there are fewer than two
	// distinct interior positions, so the swap proposal is undefined.
	ErrDegenerateInstance = errors.New("anneal: fewer than 3 cities")

	// ErrBadAlpha indicates a mixing weight outside [0,1].
	ErrBadAlpha = errors.New("anneal: alpha must be in [0,1]")

	// ErrBadTemperature indicates a non-positive initial temperature.
	ErrBadTemperature = errors.New("anneal: initial temperature must be > 0")

	// ErrBadIterations indicates a non-positive iteration budget.
	ErrBadIterations = errors.New("anneal: iteration budget must be > 0")

	// ErrBadInterval indicates a non-positive cooling or sampling interval.
	ErrBadInterval = errors.New("anneal: interval must be > 0")

	// ErrBadCooling indicates a cooling factor outside (0,1].
	ErrBadCooling = errors.New("anneal: cooling factor must be in (0,1]")

	// ErrBadRestarts indicates a non-positive restart count.
	ErrBadRestarts = errors.New("anneal: restart count must be > 0")
)

// State tracks the optimizer lifecycle: Initialized → Running → Converged|Exhausted.
type State int

const (
	// StateInitialized — constructed, Run not yet called.
	StateInitialized State = iota

	// StateRunning — inside the iteration loop.
	StateRunning

	// StateConverged — stopped early by the optional stall probe
	// (StallSamples > 0 and the trace stopped improving).
	StateConverged

	// StateExhausted — the full iteration budget was spent. This is the
	// normal terminal state; low temperature makes further acceptance
	// vanishingly unlikely, but the core never infers convergence on its own.
	StateExhausted
)

// String implements fmt.Stringer for test failure messages.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "Initialized"
	case StateRunning:
		return "Running"
	case StateConverged:
		return "Converged"
	case StateExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// Options configures a single annealing run and the multi-restart search.
//
//   - Alpha: mixing weight, J = Alpha·distance + (1−Alpha)·price.
//   - T0: initial temperature, must be > 0.
//   - IterMax: iteration budget per run, must be > 0.
//   - CoolingInterval: iterations between cooling steps. Independent from
//     SampleInterval so a run can trace coarsely while cooling finely.
//   - CoolingFactor: geometric decay multiplier in (0,1].
//   - SampleInterval: iterations between trace samples.
//   - Seed: base seed; 0 selects a fixed default stream so runs stay
//     reproducible even when the caller does not care.
//   - StallSamples: optional convergence probe, stop once the trace has not
//     improved over this many consecutive samples. 0 disables the probe and
//     the run always exhausts IterMax.
//   - Restarts: number of independent runs (MultiRestart only).
//   - Workers: max concurrent restarts; ≤ 1 runs them sequentially.
type Options struct {
	Alpha           float64
	T0              float64
	IterMax         int
	CoolingInterval int
	CoolingFactor   float64
	SampleInterval  int
	Seed            int64
	StallSamples    int
	Restarts        int
	Workers         int
}

// DefaultOptions returns the parameter set used throughout the examples:
// pure distance objective, geometric cooling by 0.999 every 100 iterations,
// trace sampled every 100 iterations, 8 restarts fanned out over the CPUs.
func DefaultOptions() Options {
	return Options{
		Alpha:           1.0,
		T0:              1.0,
		IterMax:         100_000,
		CoolingInterval: 100,
		CoolingFactor:   0.999,
		SampleInterval:  100,
		Seed:            0,
		StallSamples:    0,
		Restarts:        8,
		Workers:         runtime.NumCPU(),
	}
}

// validate checks the per-run fields. Restart fields are checked separately
// by MultiRestart so single-run callers are not forced to populate them.
// Complexity: O(1).
func (o Options) validate() error {
	if o.Alpha < 0 || o.Alpha > 1 {
		return ErrBadAlpha
	}
	if o.T0 <= 0 {
		return ErrBadTemperature
	}
	if o.IterMax <= 0 {
		return ErrBadIterations
	}
	if o.CoolingInterval <= 0 || o.SampleInterval <= 0 {
		return ErrBadInterval
	}
	if o.CoolingFactor <= 0 || o.CoolingFactor > 1 {
		return ErrBadCooling
	}
	if o.StallSamples < 0 {
		return ErrBadIterations
	}

	return nil
}

// RunStats carries the bookkeeping of a finished run.
type RunStats struct {
	Accepted   int     // accepted proposals
	Rejected   int     // rejected proposals
	Iterations int     // iterations actually executed
	FinalTemp  float64 // temperature at termination
	State      State   // Converged or Exhausted
}

// Result is the outcome of a run (or of the whole multi-restart search).
// Tour is a fresh slice owned by the caller; Trace holds the sampled costs,
// with the initial cost always at index 0. Restart is the index of the
// winning restart (0 for a single run).
type Result struct {
	Tour    []int
	Cost    float64
	Trace   []float64
	Stats   RunStats
	Restart int
}
