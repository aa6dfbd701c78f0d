// Defines the Process struct that models one schedulable unit of work in the simulation.
// Tracks the static workload (arrival, burst) and the mutable progress (remaining burst, start/finish ticks).

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNotArrived ProcessState = "not-arrived"
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateFinished   ProcessState = "finished"
)

// unset marks StartTime/FinishTime that have not been recorded yet.
const unset int64 = -1

// Process models a single process's lifecycle in the simulation.
// Name, Arrival and Burst never change after construction; the engine
// mutates Remaining, State, StartTime and FinishTime while the process is scheduled.
type Process struct {
	Index   int    // Declaration position; the identity used for membership checks
	Name    string // Unique name, used for trace and report lines
	Arrival int64  // Tick at which the process becomes eligible
	Burst   int64  // Total CPU ticks required

	State      ProcessState // not-arrived, ready, running, finished
	Remaining  int64        // Ticks of burst still to execute; 0 <= Remaining <= Burst
	StartTime  int64        // First tick the process was dispatched (-1 until then)
	FinishTime int64        // Tick at which Remaining reached 0 (-1 until then)
}

// NewProcess creates a Process in the not-arrived state with its full burst remaining.
func NewProcess(index int, name string, arrival, burst int64) *Process {
	return &Process{
		Index:      index,
		Name:       name,
		Arrival:    arrival,
		Burst:      burst,
		State:      StateNotArrived,
		Remaining:  burst,
		StartTime:  unset,
		FinishTime: unset,
	}
}

// Started reports whether the process has ever been dispatched.
func (p *Process) Started() bool {
	return p.StartTime != unset
}

// Finished reports whether the process ran to completion.
func (p *Process) Finished() bool {
	return p.FinishTime != unset
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (Name: %s, State: %s, Remaining: %d, Arrival: %d)", p.Name, p.State, p.Remaining, p.Arrival)
}
