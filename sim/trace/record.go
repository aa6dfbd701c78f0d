// Package trace provides scheduling-trace recording, summaries and export sinks.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventRecord captures a single scheduling event.
type EventRecord struct {
	Tick      int64  `json:"tick"`
	Kind      string `json:"kind"`
	Process   string `json:"process,omitempty"`   // empty for idle ticks
	Remaining int64  `json:"remaining,omitempty"` // remaining burst, selection events only
}

// RunInfo describes the run a trace belongs to.
type RunInfo struct {
	Algorithm    string `json:"algorithm"`
	Quantum      int64  `json:"quantum,omitempty"`
	RunFor       int64  `json:"runfor"`
	ProcessCount int    `json:"process_count"`
}
