package costmodel

import "github.com/mirkomiorelli/travelopt/matrix"

// PricesFromTriples assembles a symmetric N×N price table from
// origin-destination observations. Each triple is mirrored across the
// diagonal; a pair observed twice must agree within tolerance. Pairs never
// observed default to price 0, which keeps sparse datasets usable (the
// normalization step treats the zeros like any other value).
//
// Contract:
//   - 0 ≤ From,To < n and From != To for every triple (ErrBadTriple).
//   - Prices finite (ErrNonFinite) and non-negative (ErrNegativePrice).
//   - Conflicting duplicates fail with ErrBadTriple.
//
// Complexity: O(n² + len(triples)) time, O(n²) space.
func PricesFromTriples(n int, triples []Triple) (*matrix.Dense, error) {
	if n < 2 {
		return nil, ErrTooFewCities
	}

	p, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, ErrShapeMismatch
	}

	// seen marks pairs already assigned so conflicting repeats are caught.
	seen := make([]bool, n*n)

	var (
		k    int
		tr   Triple
		prev float64
		diff float64
	)
	for k = 0; k < len(triples); k++ {
		tr = triples[k]
		if tr.From < 0 || tr.From >= n || tr.To < 0 || tr.To >= n || tr.From == tr.To {
			return nil, ErrBadTriple
		}
		if !isFinite(tr.Price) {
			return nil, ErrNonFinite
		}
		if tr.Price < 0 {
			return nil, ErrNegativePrice
		}

		if seen[tr.From*n+tr.To] {
			prev, err = p.At(tr.From, tr.To)
			if err != nil {
				return nil, ErrShapeMismatch
			}
			diff = prev - tr.Price
			if diff < 0 {
				diff = -diff
			}
			if diff > symTol {
				return nil, ErrBadTriple
			}
			continue
		}

		if err = p.Set(tr.From, tr.To, tr.Price); err != nil {
			return nil, ErrShapeMismatch
		}
		if err = p.Set(tr.To, tr.From, tr.Price); err != nil {
			return nil, ErrShapeMismatch
		}
		seen[tr.From*n+tr.To] = true
		seen[tr.To*n+tr.From] = true
	}

	return p, nil
}
