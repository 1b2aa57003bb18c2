// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for the converter's hot paths:
//   - single-character conversion and classification
//   - report and chart rendering
//   - CUE configuration loading
//   - a scripted interactive session end to end
//
// Run them with:
//
//	go test -bench=. -benchmem ./internal/benchmark/
package benchmark
