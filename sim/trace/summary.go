package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents  int
	IdleTicks    int
	Arrivals     int
	Dispatches   int
	Preemptions  int
	Completions  int
	DispatchDist map[string]int // process name → number of times selected
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchDist: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	for _, e := range st.Events {
		switch e.Kind {
		case KindIdle:
			summary.IdleTicks++
		case KindArrived:
			summary.Arrivals++
		case KindSelected:
			summary.Dispatches++
			summary.DispatchDist[e.Process]++
		case KindPreempted:
			summary.Preemptions++
		case KindFinished:
			summary.Completions++
		}
	}
	return summary
}
