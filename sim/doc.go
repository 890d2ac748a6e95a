// Package sim provides the shared building blocks for the experiment
// generator: the error taxonomy and deterministic RNG partitioning.
//
// # Reading Guide
//
// Start with these files to understand the generation pipeline:
//   - errors.go: DecodeError / ResolutionError classes propagated by every stage
//   - rng.go: seed-derived, per-subsystem RNG isolation
//
// # Architecture
//
// The sim package defines cross-cutting types; the pipeline lives in
// sub-packages:
//   - sim/experiment/: experiment spec decoding, scenario expansion, provenance log
//   - sim/topology/: topology spec decoding and host-model construction
//   - sim/power/: power-model bindings attached to built hosts
//   - sim/failure/: failure-model descriptors and their factory
//   - sim/export/: export-model descriptors
//
// Expansion is single-threaded and fail-fast: the caller receives either the
// complete scenario list or the first error, never a partial result.
package sim
