// Package costmodel builds the immutable pairwise cost tables consumed by
// the annealing optimizer.
//
// A travel instance is a set of N cities (2D coordinates) plus a pairwise
// price table. Build derives the Euclidean distance table, verifies the
// price table, and min-max normalizes both over the whole matrix (global
// min/max, not per-row) so the two objectives become commensurable in [0,1].
// Normalization constants are computed once and frozen inside Tables.
//
// Errors (sentinel):
//
//	– ErrTooFewCities   if fewer than 2 coordinates are supplied.
//	– ErrNonFinite      if a coordinate or price is NaN or ±Inf.
//	– ErrNilPrices      if the price table is nil.
//	– ErrShapeMismatch  if the price table is not N×N.
//	– ErrPriceAsymmetry if price[i][j] and price[j][i] differ beyond tolerance.
//	– ErrNegativePrice  if any price is negative.
//	– ErrNonZeroSelfPrice if price[i][i] is not ~0.
//
// Example usage:
//
//	tbl, err := costmodel.Build(coords, prices)
//	if err != nil {
//	    // handle ErrTooFewCities, ErrPriceAsymmetry, ...
//	}
//	res, err := anneal.MultiRestart(tbl, anneal.DefaultOptions())
package costmodel

import (
	"errors"

	"github.com/mirkomiorelli/travelopt/matrix"
)

// symTol is the structural tolerance for price-table symmetry and diagonal
// checks. Looser than matrix-internal tolerances on purpose: real price data
// arrives from float parsing and round-trips through currencies.
const symTol = 1e-9

// Sentinel errors returned by the cost model.
var (
	// ErrTooFewCities indicates fewer than 2 cities: no tour exists.
	ErrTooFewCities = errors.New("costmodel: need at least 2 cities")

	// ErrNonFinite indicates a NaN or ±Inf coordinate or price.
	ErrNonFinite = errors.New("costmodel: non-finite value in input")

	// ErrNilPrices indicates a nil price table was supplied.
	ErrNilPrices = errors.New("costmodel: price table is nil")

	// ErrShapeMismatch indicates the price table is not N×N for N cities.
	ErrShapeMismatch = errors.New("costmodel: price table shape mismatch")

	// ErrPriceAsymmetry indicates price[i][j] != price[j][i] beyond tolerance.
	ErrPriceAsymmetry = errors.New("costmodel: price table is not symmetric")

	// ErrNegativePrice indicates a negative pairwise price.
	ErrNegativePrice = errors.New("costmodel: negative price")

	// ErrNonZeroSelfPrice indicates price[i][i] deviates from zero.
	ErrNonZeroSelfPrice = errors.New("costmodel: non-zero price on diagonal")

	// ErrBadTriple indicates an origin-destination triple references a city
	// index outside [0..N-1], or repeats a pair with a conflicting price.
	ErrBadTriple = errors.New("costmodel: invalid origin-destination triple")
)

// Triple is one origin-destination price observation. Triples are mirrored
// across the diagonal when assembled into a table; a pair given twice must
// carry the same price within tolerance.
type Triple struct {
	From  int
	To    int
	Price float64
}

// Tables holds the two normalized cost tables plus the frozen normalization
// constants. All fields are private; the struct is read-only after Build.
type Tables struct {
	n     int
	dist  *matrix.Dense // normalized distances in [0,1]
	price *matrix.Dense // normalized prices in [0,1]

	distMin, distMax   float64 // raw distance bounds used for normalization
	priceMin, priceMax float64 // raw price bounds used for normalization
}

// Len returns the number of cities N.
// Complexity: O(1).
func (t *Tables) Len() int { return t.n }

// Dist returns the normalized distance table. Callers must treat it as
// read-only; the optimizer shares it across concurrent restarts.
// Complexity: O(1).
func (t *Tables) Dist() *matrix.Dense { return t.dist }

// Price returns the normalized price table. Read-only, same contract as Dist.
// Complexity: O(1).
func (t *Tables) Price() *matrix.Dense { return t.price }

// DistBounds returns the raw (pre-normalization) distance min and max.
// Useful for rendering de-normalized tour lengths in reports.
// Complexity: O(1).
func (t *Tables) DistBounds() (min, max float64) { return t.distMin, t.distMax }

// PriceBounds returns the raw (pre-normalization) price min and max.
// Complexity: O(1).
func (t *Tables) PriceBounds() (min, max float64) { return t.priceMin, t.priceMax }
