package trace

// Event kinds as recorded in EventRecord.Kind.
const (
	KindIdle      = "idle"
	KindArrived   = "arrived"
	KindSelected  = "selected"
	KindPreempted = "preempted"
	KindFinished  = "finished"
)

// validKinds maps accepted event kind strings.
var validKinds = map[string]bool{
	KindIdle:      true,
	KindArrived:   true,
	KindSelected:  true,
	KindPreempted: true,
	KindFinished:  true,
}

// IsValidKind returns true if the given string is a recognized event kind.
func IsValidKind(kind string) bool {
	return validKinds[kind]
}

// SimulationTrace collects the event records of one run.
type SimulationTrace struct {
	Run    RunInfo       `json:"run"`
	Events []EventRecord `json:"events"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(run RunInfo) *SimulationTrace {
	return &SimulationTrace{
		Run:    run,
		Events: make([]EventRecord, 0),
	}
}

// Record appends an event record.
func (st *SimulationTrace) Record(record EventRecord) {
	st.Events = append(st.Events, record)
}
