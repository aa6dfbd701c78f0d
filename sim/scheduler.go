package sim

import (
	"fmt"
	"strings"
)

// Algorithm selects the ready queue discipline for a run.
type Algorithm string

const (
	AlgorithmFCFS Algorithm = "fcfs"
	AlgorithmSJF  Algorithm = "sjf"
	AlgorithmRR   Algorithm = "rr"
)

// validAlgorithms maps accepted algorithm tokens.
var validAlgorithms = map[Algorithm]bool{
	AlgorithmFCFS: true,
	AlgorithmSJF:  true,
	AlgorithmRR:   true,
}

// IsValidAlgorithm returns true if name is a recognized algorithm token.
func IsValidAlgorithm(name string) bool {
	return validAlgorithms[Algorithm(name)]
}

// Label returns the name printed in the run summary header.
func (a Algorithm) Label() string {
	switch a {
	case AlgorithmRR:
		return "Round Robin"
	default:
		s := string(a)
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// Discipline decides which admitted process occupies the CPU.
// The simulator calls Admit when a process arrives, Select before every
// dispatch decision, Release when the selected process finishes, and
// Requeue when a time slice expires with work left.
// Quantum returns the slice length for time-sliced disciplines; 0 means the
// discipline is consulted again after every tick.
type Discipline interface {
	Admit(p *Process)
	Select(running *Process) *Process
	Release(p *Process)
	Requeue(p *Process)
	Quantum() int64
}

// FCFSDiscipline runs the head of the admission-ordered queue to completion.
// The head is removed only when it finishes, so it is never displaced.
type FCFSDiscipline struct {
	ready *ReadyQueue
}

func (f *FCFSDiscipline) Admit(p *Process) { f.ready.Enqueue(p) }

func (f *FCFSDiscipline) Select(_ *Process) *Process { return f.ready.Peek() }

func (f *FCFSDiscipline) Release(p *Process) { f.ready.Remove(p) }

// Requeue is a no-op: an unfinished FCFS process never leaves the queue.
func (f *FCFSDiscipline) Requeue(_ *Process) {}

func (f *FCFSDiscipline) Quantum() int64 { return 0 }

// SJFDiscipline is preemptive Shortest-Job-First: every tick it picks the
// ready process with the smallest remaining burst, ties going to the
// earliest admitted.
type SJFDiscipline struct {
	ready *ReadyQueue
}

func (s *SJFDiscipline) Admit(p *Process) { s.ready.Enqueue(p) }

// Select scans in admission order and keeps the first strict minimum, which
// makes the tie-break by admission order total.
func (s *SJFDiscipline) Select(_ *Process) *Process {
	var best *Process
	for _, p := range s.ready.Items() {
		if best == nil || p.Remaining < best.Remaining {
			best = p
		}
	}
	return best
}

func (s *SJFDiscipline) Release(p *Process) { s.ready.Remove(p) }

// Requeue is a no-op: unfinished SJF processes stay in the ready set.
func (s *SJFDiscipline) Requeue(_ *Process) {}

func (s *SJFDiscipline) Quantum() int64 { return 0 }

// RRDiscipline is Round Robin: the head is dequeued for up to one quantum
// and, if unfinished, re-appended behind everything admitted meanwhile.
type RRDiscipline struct {
	ready   *ReadyQueue
	quantum int64
}

func (r *RRDiscipline) Admit(p *Process) { r.ready.Enqueue(p) }

func (r *RRDiscipline) Select(_ *Process) *Process { return r.ready.Dequeue() }

// Release is a no-op: the running process was dequeued on dispatch.
func (r *RRDiscipline) Release(_ *Process) {}

func (r *RRDiscipline) Requeue(p *Process) { r.ready.Enqueue(p) }

func (r *RRDiscipline) Quantum() int64 { return r.quantum }

// NewDiscipline creates a Discipline for the given algorithm.
// Panics on unrecognized algorithms or a non-positive Round Robin quantum;
// Config.Validate rejects both before a simulator is built.
func NewDiscipline(algorithm Algorithm, quantum int64) Discipline {
	switch algorithm {
	case AlgorithmFCFS:
		return &FCFSDiscipline{ready: NewReadyQueue()}
	case AlgorithmSJF:
		return &SJFDiscipline{ready: NewReadyQueue()}
	case AlgorithmRR:
		if quantum <= 0 {
			panic(fmt.Sprintf("round robin quantum must be positive, got %d", quantum))
		}
		return &RRDiscipline{ready: NewReadyQueue(), quantum: quantum}
	default:
		panic(fmt.Sprintf("unknown algorithm %q", algorithm))
	}
}
