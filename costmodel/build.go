// Package costmodel - table construction and normalization.
//
// Build is the only entry point that produces Tables; everything downstream
// (tour cost, annealing, restarts) assumes its output invariants:
// symmetric, zero-diagonal, finite, values in [0,1].
package costmodel

import (
	"math"

	"github.com/mirkomiorelli/travelopt/matrix"
)

// Build validates the inputs and produces the normalized cost tables.
//
// Stage 1 (Validate): N ≥ 2, finite coordinates, price table non-nil, N×N,
// finite, non-negative, zero-diagonal, symmetric within tolerance.
// Stage 2 (Distances): Euclidean distance for every pair; symmetric by
// construction, zero diagonal by construction.
// Stage 3 (Normalize): min-max over each whole matrix independently, using
// its own global min and max; constants frozen in the returned Tables.
//
// Contract:
//   - prices is copied, never aliased: mutating the argument after Build has
//     no effect on the returned Tables.
//   - A constant matrix (max == min) normalizes to all zeros; that metric
//     then contributes nothing to the blended objective.
//
// Complexity: O(n²) time, O(n²) space.
func Build(coords [][2]float64, prices *matrix.Dense) (*Tables, error) {
	var n = len(coords)
	if n < 2 {
		return nil, ErrTooFewCities
	}

	// Coordinates must be finite before any distance math.
	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(coords[i][0]) || !isFinite(coords[i][1]) {
			return nil, ErrNonFinite
		}
	}

	if err := validatePrices(prices, n); err != nil {
		return nil, err
	}

	// Euclidean distance table. Fill the upper triangle and mirror.
	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, ErrShapeMismatch
	}
	var dx, dy, d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = coords[i][0] - coords[j][0]
			dy = coords[i][1] - coords[j][1]
			d = math.Hypot(dx, dy)
			if err = dist.Set(i, j, d); err != nil {
				return nil, ErrShapeMismatch
			}
			if err = dist.Set(j, i, d); err != nil {
				return nil, ErrShapeMismatch
			}
		}
	}

	// Private copy of the price table: Tables owns its storage.
	priceCopy, ok := prices.Clone().(*matrix.Dense)
	if !ok {
		return nil, ErrShapeMismatch
	}

	t := &Tables{n: n}

	t.dist, t.distMin, t.distMax, err = normalize(dist)
	if err != nil {
		return nil, err
	}
	t.price, t.priceMin, t.priceMax, err = normalize(priceCopy)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// validatePrices runs the full structural check sequence on the price table.
// Sequence is fixed (nil → shape → finite → sign → diagonal → symmetry) so
// callers get stable error priority.
// Complexity: O(n²).
func validatePrices(p *matrix.Dense, n int) error {
	if p == nil {
		return ErrNilPrices
	}
	if p.Rows() != n || p.Cols() != n {
		return ErrShapeMismatch
	}
	if err := matrix.ValidateFinite(p); err != nil {
		return ErrNonFinite
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = p.At(i, j)
			if err != nil {
				return ErrShapeMismatch
			}
			if v < 0 {
				return ErrNegativePrice
			}
		}
	}

	if err = matrix.ValidateZeroDiagonal(p, symTol); err != nil {
		return ErrNonZeroSelfPrice
	}
	if err = matrix.ValidateSymmetric(p, symTol); err != nil {
		return ErrPriceAsymmetry
	}

	return nil
}

// normalize rescales m in place to [0,1] using its global min and max and
// returns the matrix together with the raw bounds. max==min degenerates to
// an all-zero table (no spread, metric carries no signal).
// Complexity: O(n²).
func normalize(m *matrix.Dense) (*matrix.Dense, float64, float64, error) {
	min, max, err := m.Bounds()
	if err != nil {
		return nil, 0, 0, ErrNonFinite
	}

	var (
		span = max - min
		n    = m.Rows()
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = m.AtUnchecked(i, j)
			if span > 0 {
				v = (v - min) / span
			} else {
				v = 0
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, 0, 0, ErrShapeMismatch
			}
		}
	}

	return m, min, max, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
// Complexity: O(1).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
