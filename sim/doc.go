// Package sim provides the discrete-time CPU scheduling engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (not-arrived → ready → running → finished)
//   - scheduler.go: the Discipline interface and its FCFS, SJF and Round Robin implementations
//   - simulator.go: the tick-by-tick event loop
//
// # Architecture
//
// A Config is validated once and turned into a Simulator that owns the
// process records for one run. Simulator.Events produces the trace lazily;
// after it is drained, Simulator.Summary derives the per-process metrics.
// Formatting lives outside this package:
//   - sim/workload/: loading process descriptions (plain text and YAML)
//   - sim/trace/: trace recording, summaries, CSV and SQLite export
//
// # Determinism
//
// The engine is single-threaded. Every tie-break is a total order (arrival,
// then declaration order; admission order for equal remaining bursts), so
// identical inputs always produce identical traces.
package sim
