// Test bridge: expose the private objective kernels to anneal_test without
// widening the production API. _test.go files never ship in builds.
package anneal

// SwapDeltaForTest exposes swapDelta for white-box delta-vs-full checks.
var SwapDeltaForTest = swapDelta

// TourCostRawForTest exposes the unrounded edge-sum kernel.
var TourCostRawForTest = tourCostRaw

// DeriveSeedForTest exposes the SplitMix64 seed mixer.
var DeriveSeedForTest = deriveSeed
