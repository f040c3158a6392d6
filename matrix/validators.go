// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the structural checks a
//    cost table must pass before the optimizer may touch it.
//  - Keep downstream packages minimal by delegating nil/shape/symmetry/
//    diagonal/finiteness checks here.
//  - Return plain sentinel errors (tagged, not re-invented) so call sites can
//    match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateSquare – Ensures the matrix is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Returns ErrNonSquare on violation.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Returns ErrDimensionMismatch on violation.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite – Ensures every entry is finite (no NaN, no ±Inf).
//
// Cost tables feed an exp()-based acceptance rule; a single NaN would
// silently poison every downstream comparison, so ingestion rejects it.
// Returns ErrNaNInf on the first offending entry.
// Complexity: O(n·m).
func ValidateFinite(m Matrix) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", ErrOutOfRange)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal – Ensures |a_ii| ≤ tol for every diagonal entry.
//
// A pairwise cost table must charge nothing for staying put.
// Returns ErrNonZeroDiagonal on violation, ErrNaNInf on a NaN diagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	var (
		i   int
		v   float64
		abs float64
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		v, err = m.At(i, i)
		if err != nil {
			return validatorErrorf("ValidateZeroDiagonal", ErrOutOfRange)
		}
		if math.IsNaN(v) {
			return validatorErrorf("ValidateZeroDiagonal", ErrNaNInf)
		}
		abs = v
		if abs < 0 {
			abs = -abs // |a_ii| without a math.Abs call in the loop
		}
		if abs > tol {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric – Ensures |a_ij − a_ji| ≤ tol over the upper triangle.
//
// Implementation: Assumes m is square (call ValidateSquare first).
// Returns ErrAsymmetry on violation, ErrNaNInf if a compared pair holds NaN.
// Complexity: O(n²) on the upper triangle only.
func ValidateSymmetric(m Matrix, tol float64) error {
	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		diff     float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // upper triangle; avoid double work
			aij, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateSymmetric", ErrOutOfRange)
			}
			aji, err = m.At(j, i)
			if err != nil {
				return validatorErrorf("ValidateSymmetric", ErrOutOfRange)
			}
			if math.IsNaN(aij) || math.IsNaN(aji) {
				return validatorErrorf("ValidateSymmetric", ErrNaNInf)
			}
			diff = aij - aji
			if diff < 0 {
				diff = -diff // |a_ij − a_ji|
			}
			if diff > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Fixed sequence so callers get stable error priority.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}
