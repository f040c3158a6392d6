// Package anneal - the simulated-annealing state machine.
package anneal

import (
	"math"
	"math/rand"

	"github.com/mirkomiorelli/travelopt/costmodel"
	"github.com/mirkomiorelli/travelopt/matrix"
)

// Optimizer runs one annealing trajectory over a fixed instance. It is
// strictly sequential internally — iteration k+1 depends on the accepted or
// rejected outcome of iteration k — and must not be shared across
// goroutines. Run it once; construct a fresh Optimizer per trajectory.
type Optimizer struct {
	dist  *matrix.Dense
	price *matrix.Dense
	n     int
	opts  Options
	rng   *rand.Rand

	state    State
	tour     []int
	cost     float64 // unrounded running objective
	temp     float64
	iter     int
	accepted int
	rejected int
	trace    []float64
}

// New constructs an Optimizer over tables with a caller-supplied starting
// tour. The tour must already satisfy the closed-loop permutation invariant;
// it is copied, never aliased.
//
// Errors: ErrNilTables, ErrDegenerateInstance (n < 3), ErrInvalidTour, and
// the Options sentinels.
//
// Complexity: O(n) time (validation + copy).
func New(t *costmodel.Tables, start []int, opts Options) (*Optimizer, error) {
	if t == nil {
		return nil, ErrNilTables
	}
	var n = t.Len()
	if n < 3 {
		return nil, ErrDegenerateInstance
	}
	if err := ValidateTour(start, n); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Optimizer{
		dist:  t.Dist(),
		price: t.Price(),
		n:     n,
		opts:  opts,
		rng:   rngFromSeed(opts.Seed),
		state: StateInitialized,
		tour:  CopyTour(start),
		temp:  opts.T0,
	}, nil
}

// State reports the current lifecycle state.
// Complexity: O(1).
func (o *Optimizer) State() State { return o.state }

// Run executes the annealing loop to completion and returns the finalized
// result. Calling Run again on a finished Optimizer returns the same
// terminal snapshot without re-running.
//
// Per-iteration protocol is documented in the package comment; the order is
// cooling → proposal → delta evaluation → acceptance → trace sampling.
//
// Complexity: O(IterMax) time, O(IterMax/SampleInterval) space for the trace.
func (o *Optimizer) Run() (Result, error) {
	if o.state == StateConverged || o.state == StateExhausted {
		return o.snapshot(), nil
	}

	o.state = StateRunning
	o.cost = tourCostRaw(o.dist, o.price, o.tour, o.opts.Alpha)

	// The trace always opens with the initial cost.
	o.trace = append(o.trace, round1e9(o.cost))

	var (
		bestSample     = o.trace[0] // best sampled cost so far (stall probe)
		samplesStalled int          // consecutive samples without improvement
		i, j           int          // proposed interior positions
		delta          float64
		terminal       = StateExhausted
	)

	for o.iter = 1; o.iter <= o.opts.IterMax; o.iter++ {
		// 1. Cooling on schedule. No lower clamp: T may only decay, down to
		// floating-point underflow, and stays strictly positive.
		if o.iter%o.opts.CoolingInterval == 0 {
			o.temp *= o.opts.CoolingFactor
		}

		// 2. Proposal: two distinct interior positions, uniform over
		// 1..n-1. Positions 0 and n pin the closing city and are never
		// touched, which is what preserves the closed-loop invariant
		// without re-validation.
		i = 1 + o.rng.Intn(o.n-1)
		j = 1 + o.rng.Intn(o.n-2)
		if j >= i {
			j++
		}

		// 3. Delta evaluation over the incident edges only.
		delta = swapDelta(o.dist, o.price, o.tour, i, j, o.opts.Alpha)

		// 4. Metropolis acceptance. exp underflows to exactly 0 for large
		// delta/T, which compares false against Float64() ∈ [0,1) — a plain
		// reject, never a NaN.
		if delta <= 0 || o.rng.Float64() < math.Exp(-delta/o.temp) {
			o.tour[i], o.tour[j] = o.tour[j], o.tour[i]
			o.cost += delta
			o.accepted++
		} else {
			o.rejected++
		}

		// 5. Trace sampling, plus the optional stall probe.
		if o.iter%o.opts.SampleInterval == 0 {
			sample := round1e9(o.cost)
			o.trace = append(o.trace, sample)

			if o.opts.StallSamples > 0 {
				if sample < bestSample {
					bestSample = sample
					samplesStalled = 0
				} else {
					samplesStalled++
					if samplesStalled >= o.opts.StallSamples {
						terminal = StateConverged
						break
					}
				}
			}
		}
	}
	if o.iter > o.opts.IterMax {
		o.iter = o.opts.IterMax // loop ran out; counter overshot by one
	}

	o.state = terminal

	return o.snapshot(), nil
}

// snapshot packages the terminal state into an immutable Result.
// Complexity: O(n + len(trace)).
func (o *Optimizer) snapshot() Result {
	trace := make([]float64, len(o.trace))
	copy(trace, o.trace)

	return Result{
		Tour:  CopyTour(o.tour),
		Cost:  round1e9(o.cost),
		Trace: trace,
		Stats: RunStats{
			Accepted:   o.accepted,
			Rejected:   o.rejected,
			Iterations: o.iter,
			FinalTemp:  o.temp,
			State:      o.state,
		},
	}
}
