package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

// runResult is everything a renderer or trace sink needs from one run.
type runResult struct {
	Description *workload.Description
	Events      []sim.Event
	Summary     *sim.Summary
}

// loadDescription reads a description file and checks it against the
// simulator's own config rules.
func loadDescription(path string) (*workload.Description, error) {
	desc, err := workload.Load(path)
	if err != nil {
		return nil, err
	}
	cfg := desc.Config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.Debugf("Loaded %s: %d processes, use=%s, runfor=%d, quantum=%d",
		path, desc.ProcessCount, desc.Algorithm, desc.RunFor, desc.Quantum)
	return desc, nil
}

// simulate loads the description at path and runs it to the horizon.
// Every error is an input error reported before any event is produced.
func simulate(path string) (*runResult, error) {
	desc, err := loadDescription(path)
	if err != nil {
		return nil, err
	}
	s, err := sim.NewSimulator(desc.Config())
	if err != nil {
		return nil, err
	}
	events := s.Run()
	return &runResult{
		Description: desc,
		Events:      events,
		Summary:     s.Summary(),
	}, nil
}

// recordTrace converts the run's events into trace records.
func recordTrace(res *runResult) *trace.SimulationTrace {
	st := trace.NewSimulationTrace(trace.RunInfo{
		Algorithm:    string(res.Summary.Algorithm),
		Quantum:      res.Summary.Quantum,
		RunFor:       res.Summary.RunFor,
		ProcessCount: res.Summary.ProcessCount,
	})
	for _, e := range res.Events {
		st.Record(trace.EventRecord{
			Tick:      e.Tick,
			Kind:      string(e.Kind),
			Process:   e.Process,
			Remaining: e.Remaining,
		})
	}
	return st
}

// writeTraces exports the trace to the optional CSV file and SQLite database.
// It returns the ID of the stored run, or "" when no database was given.
func writeTraces(res *runResult, csvPath, dbPath string) (string, error) {
	if csvPath == "" && dbPath == "" {
		return "", nil
	}
	st := recordTrace(res)
	if csvPath != "" {
		if err := trace.ExportCSV(st, csvPath); err != nil {
			return "", fmt.Errorf("exporting trace CSV: %w", err)
		}
		logrus.Infof("Trace written to %s (%d events)", csvPath, len(st.Events))
	}
	if dbPath == "" {
		return "", nil
	}
	w, err := trace.NewSQLiteWriter(dbPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = w.Close() }()
	return w.Write(st)
}
