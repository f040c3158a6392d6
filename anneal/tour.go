// Package anneal - tour structure utilities.
//
// These helpers operate purely on index sequences, independent of any cost
// table. A valid tour over n cities has length n+1: positions 0..n-1 hold a
// permutation of 0..n-1 and position n repeats position 0.
package anneal

import "math/rand"

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n, using a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces the closed-loop invariant:
//
//	len(tour) == n+1, tour[0] == tour[n],
//	positions 0..n-1 hold each city exactly once.
//
// Any starting city is allowed — only the closure and the permutation
// structure are checked.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrInvalidTour
	}
	if tour[0] != tour[n] {
		return ErrInvalidTour
	}

	return ValidatePermutation(tour[:n], n)
}

// MakeTourFromPermutation builds a closed tour from a permutation by
// appending the closing repeat. The permutation is validated first and
// copied — the caller's slice is never aliased.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}

	tour := make([]int, n+1)
	copy(tour, perm)
	tour[n] = perm[0]

	return tour, nil
}

// RandomTour returns a uniformly random closed tour over n cities, drawn
// from rng via an in-place Fisher-Yates shuffle. rng must be non-nil; the
// caller owns the stream (this package never touches the global source).
//
// Complexity: O(n) time, O(n) space.
func RandomTour(n int, rng *rand.Rand) ([]int, error) {
	if n <= 0 {
		return nil, ErrInvalidTour
	}

	perm := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		perm[i] = i
	}
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return MakeTourFromPermutation(perm, n)
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
