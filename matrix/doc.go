// Package matrix provides the dense float64 matrix primitive used by the
// travelopt cost model and optimizer.
//
// What & Why:
//
//	Pairwise travel costs (distance, price) are square symmetric tables. This
//	package supplies a row-major Dense implementation behind a small Matrix
//	interface, together with the structural validators the optimizer relies
//	on: squareness, symmetry within a tolerance, a zero diagonal, and
//	finiteness of every entry. Downstream packages treat validated tables as
//	read-only; Clone exists for callers that need an independent copy.
//
// Design principles:
//   - Strict sentinels: every failure maps to a package-level error matched
//     via errors.Is; validators never panic on user input.
//   - Hot-path discipline: AtUnchecked skips bounds checks on paths that were
//     validated up front (tour-cost loops), At stays safe for everyone else.
//   - Deterministic: no randomness, no logging, no hidden allocations.
//
// Complexity:
//
//	Element access is O(1); validators are O(n²) worst case; Bounds is O(n²).
package matrix
