package sim

import "fmt"

// EventKind identifies what happened at a tick of the simulation.
type EventKind string

const (
	EventIdle      EventKind = "idle"
	EventArrived   EventKind = "arrived"
	EventSelected  EventKind = "selected"
	EventPreempted EventKind = "preempted"
	EventFinished  EventKind = "finished"
)

// Event is a single entry of the scheduling trace produced by Simulator.Events.
// Process is empty for EventIdle. Remaining is only meaningful for
// EventSelected, where it holds the process's remaining burst at dispatch.
type Event struct {
	Tick      int64     // Simulation time of the event (in ticks)
	Kind      EventKind // What happened
	Process   string    // Name of the process involved
	Remaining int64     // Remaining burst at selection
}

func (e Event) String() string {
	switch e.Kind {
	case EventIdle:
		return fmt.Sprintf("[tick %03d] idle", e.Tick)
	case EventSelected:
		return fmt.Sprintf("[tick %03d] %s selected (burst %d)", e.Tick, e.Process, e.Remaining)
	default:
		return fmt.Sprintf("[tick %03d] %s %s", e.Tick, e.Process, e.Kind)
	}
}

func idleEvent(tick int64) Event {
	return Event{Tick: tick, Kind: EventIdle}
}

func processEvent(tick int64, kind EventKind, p *Process) Event {
	return Event{Tick: tick, Kind: kind, Process: p.Name}
}

func selectedEvent(tick int64, p *Process) Event {
	return Event{Tick: tick, Kind: EventSelected, Process: p.Name, Remaining: p.Remaining}
}
