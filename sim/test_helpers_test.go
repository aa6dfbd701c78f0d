package sim

import (
	"math/rand/v2"
	"strconv"
	"testing"
)

// mustSimulator builds a Simulator or fails the test.
func mustSimulator(t *testing.T, cfg Config) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return s
}

// runConfig runs cfg to the horizon and returns the trace and summary.
func runConfig(t *testing.T, cfg Config) ([]Event, *Summary) {
	t.Helper()
	s := mustSimulator(t, cfg)
	events := s.Run()
	return events, s.Summary()
}

func procs(specs ...ProcessSpec) []ProcessSpec {
	return specs
}

func ps(name string, arrival, burst int64) ProcessSpec {
	return ProcessSpec{Name: name, Arrival: arrival, Burst: burst}
}

// timeline reconstructs which process ran at each tick from a trace:
// a process selected at tick t runs until the next selection, idle tick,
// or its own preemption/finish event, or the horizon.
// Idle ticks are reported as "".
func timeline(events []Event, horizon int64) []string {
	ticks := make([]string, horizon)
	running := ""
	var since int64
	flush := func(until int64) {
		if running == "" {
			return
		}
		for t := since; t < until && t < horizon; t++ {
			ticks[t] = running
		}
		running = ""
	}
	for _, e := range events {
		switch e.Kind {
		case EventSelected:
			flush(e.Tick)
			running, since = e.Process, e.Tick
		case EventIdle:
			flush(e.Tick)
		case EventPreempted, EventFinished:
			if e.Process == running {
				flush(e.Tick)
			}
		}
	}
	flush(horizon)
	return ticks
}

// randomConfig draws a small workload from rng; the same rng state always
// yields the same config.
func randomConfig(rng *rand.Rand, algorithm Algorithm) Config {
	n := 1 + rng.IntN(6)
	cfg := Config{
		RunFor:    int64(5 + rng.IntN(36)),
		Algorithm: algorithm,
	}
	if algorithm == AlgorithmRR {
		cfg.Quantum = int64(1 + rng.IntN(4))
	}
	for i := range n {
		cfg.Processes = append(cfg.Processes, ps(
			"P"+strconv.Itoa(i),
			int64(rng.IntN(11)),
			int64(1+rng.IntN(6)),
		))
	}
	return cfg
}

var allAlgorithms = []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmRR}
