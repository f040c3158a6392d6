// Package travelopt plans round trips that trade travel distance against
// ticket price.
//
// 🚀 What is travelopt?
//
//	A small, deterministic optimization library that brings together:
//		• Cost tables: Euclidean distances + fare tables, min-max normalized
//		• A blended objective: J = alpha·distance + (1−alpha)·price
//		• Simulated annealing with geometric cooling and swap proposals
//		• Multi-restart search with independent, reproducible seed streams
//		• A benchmark harness for synthetic instances and CSV reporting
//
// ✨ Why choose travelopt?
//
//   - Deterministic – every run is replayable from a single seed
//   - Rock-solid guarantees – validated inputs, sentinel errors, no panics
//   - Pure Go core – the hot loop touches nothing but dense float slices
//
// Everything is organized under four subpackages:
//
//	matrix/    — dense square matrices, validators & bounds scans
//	costmodel/ — normalized distance/price tables from coordinates & fares
//	anneal/    — the annealing optimizer and multi-restart search
//	bench/     — synthetic instance generation and repeated-run benchmarks
//
// Quick start:
//
//	tbl, _ := costmodel.Build(coords, prices)
//	opts := anneal.DefaultOptions()
//	opts.Alpha, opts.Seed = 0.7, 42
//	res, _ := anneal.MultiRestart(tbl, opts)
//
//	go get github.com/mirkomiorelli/travelopt
package travelopt
