// sim/simulator.go
package sim

import (
	"cmp"
	"iter"
	"slices"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, the process records and the event loop.
// A Simulator is built for exactly one run and discarded afterwards.
type Simulator struct {
	Clock     int64
	Horizon   int64
	Algorithm Algorithm
	Quantum   int64
	// Processes in declaration order. The simulator owns these records for the run.
	Processes []*Process
	// Discipline picks the process that occupies the CPU.
	Discipline Discipline
	// Running is the process holding the CPU, nil when idle or between Round Robin slices.
	Running *Process
	// BusyTicks counts ticks spent executing a process (Horizon - BusyTicks ticks were idle).
	BusyTicks int64

	// arrivals holds the processes stably sorted by arrival; nextArrival is
	// the first one not yet admitted.
	arrivals    []*Process
	nextArrival int
	started     bool
	done        bool
}

// NewSimulator validates cfg and builds a Simulator ready to run.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	procs := make([]*Process, len(cfg.Processes))
	for i, ps := range cfg.Processes {
		procs[i] = NewProcess(i, ps.Name, ps.Arrival, ps.Burst)
	}
	arrivals := slices.Clone(procs)
	slices.SortStableFunc(arrivals, func(a, b *Process) int {
		return cmp.Compare(a.Arrival, b.Arrival)
	})
	quantum := int64(0)
	if cfg.Algorithm == AlgorithmRR {
		quantum = cfg.Quantum
	}
	return &Simulator{
		Clock:      0,
		Horizon:    cfg.RunFor,
		Algorithm:  cfg.Algorithm,
		Quantum:    quantum,
		Processes:  procs,
		Discipline: NewDiscipline(cfg.Algorithm, quantum),
		arrivals:   arrivals,
	}, nil
}

// Done reports whether the event loop reached the horizon.
func (sim *Simulator) Done() bool {
	return sim.done
}

// Run drains Events and returns the full trace.
func (sim *Simulator) Run() []Event {
	return slices.Collect(sim.Events())
}

// Events returns the scheduling trace as a lazy, one-pass sequence. The
// event loop advances only as the caller consumes events; a second call
// yields nothing. If the caller stops early the run is abandoned and
// Summary must not be called.
func (sim *Simulator) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if sim.started {
			return
		}
		sim.started = true
		logrus.Infof("Starting %s simulation with %d processes, horizon=%d ticks, quantum=%d",
			sim.Algorithm, len(sim.Processes), sim.Horizon, sim.Quantum)

		for sim.Clock < sim.Horizon {
			if !sim.admitDue(yield) {
				return
			}

			next := sim.Discipline.Select(sim.Running)
			if next == nil {
				logrus.Debugf("[tick %07d] CPU idle", sim.Clock)
				if !yield(idleEvent(sim.Clock)) {
					return
				}
				sim.Clock++
				continue
			}

			if next != sim.Running {
				if prev := sim.Running; prev != nil {
					prev.State = StateReady
					logrus.Debugf("[tick %07d] %s preempted by %s (remaining %d vs %d)",
						sim.Clock, prev.Name, next.Name, prev.Remaining, next.Remaining)
					if !yield(processEvent(sim.Clock, EventPreempted, prev)) {
						return
					}
				}
				sim.dispatch(next)
				if !yield(selectedEvent(sim.Clock, next)) {
					return
				}
			}

			if !sim.execute(next, yield) {
				return
			}

			if next.Remaining == 0 {
				sim.finish(next)
				if !yield(processEvent(sim.Clock, EventFinished, next)) {
					return
				}
			} else if sim.Discipline.Quantum() > 0 {
				// time slice expired with work left
				next.State = StateReady
				sim.Discipline.Requeue(next)
				sim.Running = nil
			}
		}
		sim.done = true
		logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
	}
}

// admitDue hands every process with Arrival <= Clock that has not been
// admitted yet to the discipline, in arrival then declaration order.
func (sim *Simulator) admitDue(yield func(Event) bool) bool {
	for sim.nextArrival < len(sim.arrivals) && sim.arrivals[sim.nextArrival].Arrival <= sim.Clock {
		p := sim.arrivals[sim.nextArrival]
		sim.nextArrival++
		p.State = StateReady
		sim.Discipline.Admit(p)
		logrus.Debugf("[tick %07d] %s arrived", sim.Clock, p.Name)
		if !yield(processEvent(sim.Clock, EventArrived, p)) {
			return false
		}
	}
	return true
}

func (sim *Simulator) dispatch(p *Process) {
	p.State = StateRunning
	if !p.Started() {
		p.StartTime = sim.Clock
	}
	sim.Running = p
	logrus.Debugf("[tick %07d] %s selected (burst %d)", sim.Clock, p.Name, p.Remaining)
}

// execute runs p for one tick, or for one time slice under a time-sliced
// discipline, never past the horizon. Arrivals that fall inside a slice are
// admitted tick by tick so they queue ahead of p.
func (sim *Simulator) execute(p *Process, yield func(Event) bool) bool {
	quantum := sim.Discipline.Quantum()
	span := int64(1)
	if quantum > 0 {
		span = min(quantum, p.Remaining)
	}
	span = min(span, sim.Horizon-sim.Clock)

	for range span {
		p.Remaining--
		sim.Clock++
		sim.BusyTicks++
		if quantum > 0 && sim.Clock < sim.Horizon {
			if !sim.admitDue(yield) {
				return false
			}
		}
	}
	return true
}

func (sim *Simulator) finish(p *Process) {
	p.FinishTime = sim.Clock
	p.State = StateFinished
	sim.Discipline.Release(p)
	sim.Running = nil
	logrus.Debugf("[tick %07d] %s finished", sim.Clock, p.Name)
}
