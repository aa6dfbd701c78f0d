// Derives per-process timing metrics (wait, turnaround, response) once a run has ended.

package sim

// ProcessMetrics holds the derived timings of one process.
// Wait, Turnaround and Response are only meaningful when Finished is true;
// an unfinished process is reported as "did not finish".
type ProcessMetrics struct {
	Name       string `json:"name"`
	Arrival    int64  `json:"arrival"`
	Burst      int64  `json:"burst"`
	Finished   bool   `json:"finished"`
	Wait       int64  `json:"wait"`
	Turnaround int64  `json:"turnaround"`
	Response   int64  `json:"response"`
	FinishTime int64  `json:"finish_time"`
}

// Summary aggregates the outcome of a run for final reporting.
type Summary struct {
	ProcessCount int              `json:"process_count"`
	Algorithm    Algorithm        `json:"algorithm"`
	Quantum      int64            `json:"quantum,omitempty"` // set for round robin only
	RunFor       int64            `json:"runfor"`
	BusyTicks    int64            `json:"busy_ticks"`
	Processes    []ProcessMetrics `json:"processes"` // declaration order
}

// Summary computes the metrics of every process. It must only be called
// after Events has been drained to the horizon; it panics otherwise.
func (sim *Simulator) Summary() *Summary {
	if !sim.done {
		panic("Summary: simulation has not reached its horizon")
	}
	s := &Summary{
		ProcessCount: len(sim.Processes),
		Algorithm:    sim.Algorithm,
		Quantum:      sim.Quantum,
		RunFor:       sim.Horizon,
		BusyTicks:    sim.BusyTicks,
		Processes:    make([]ProcessMetrics, 0, len(sim.Processes)),
	}
	for _, p := range sim.Processes {
		s.Processes = append(s.Processes, ComputeMetrics(p))
	}
	return s
}

// ComputeMetrics derives wait, turnaround and response time for p.
func ComputeMetrics(p *Process) ProcessMetrics {
	m := ProcessMetrics{Name: p.Name, Arrival: p.Arrival, Burst: p.Burst}
	if !p.Finished() {
		return m
	}
	m.Finished = true
	m.FinishTime = p.FinishTime
	m.Turnaround = p.FinishTime - p.Arrival
	m.Wait = m.Turnaround - p.Burst
	m.Response = p.StartTime - p.Arrival
	return m
}

// FinishedCount returns the number of processes that ran to completion.
func (s *Summary) FinishedCount() int {
	n := 0
	for _, m := range s.Processes {
		if m.Finished {
			n++
		}
	}
	return n
}

// Averages returns mean wait, turnaround and response over finished processes.
// All three are 0 when nothing finished.
func (s *Summary) Averages() (wait, turnaround, response float64) {
	n := s.FinishedCount()
	if n == 0 {
		return 0, 0, 0
	}
	for _, m := range s.Processes {
		if !m.Finished {
			continue
		}
		wait += float64(m.Wait)
		turnaround += float64(m.Turnaround)
		response += float64(m.Response)
	}
	return wait / float64(n), turnaround / float64(n), response / float64(n)
}

// Utilization returns the fraction of the horizon the CPU spent executing.
func (s *Summary) Utilization() float64 {
	if s.RunFor == 0 {
		return 0
	}
	return float64(s.BusyTicks) / float64(s.RunFor)
}

// Throughput returns finished processes per tick over the horizon.
func (s *Summary) Throughput() float64 {
	if s.RunFor == 0 {
		return 0
	}
	return float64(s.FinishedCount()) / float64(s.RunFor)
}
