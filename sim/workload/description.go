// Package workload loads process descriptions from disk.
// Two formats are accepted: the line-oriented text format
// (processcount / runfor / use / quantum / process ... / end) and an
// equivalent YAML document. Both produce a Description.
package workload

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/schedsim/schedsim/sim"
)

// Sentinel errors wrapped by the loaders. Use errors.Is to classify.
var (
	ErrMalformed        = errors.New("malformed description")
	ErrMissingParameter = errors.New("missing parameter")
	ErrProcessCount     = errors.New("missing or invalid processcount")
	ErrUnknownAlgorithm = errors.New("invalid scheduling algorithm")
	ErrDuplicateName    = errors.New("duplicate process name")
)

// Description is a parsed, validated process description.
type Description struct {
	ProcessCount int
	RunFor       int64
	Algorithm    sim.Algorithm
	Quantum      int64 // 0 when not given
	Processes    []sim.ProcessSpec
}

// Config converts the description into the simulator's input.
func (d *Description) Config() sim.Config {
	return sim.Config{
		Processes: d.Processes,
		RunFor:    d.RunFor,
		Algorithm: d.Algorithm,
		Quantum:   d.Quantum,
	}
}

// Load reads a description file, choosing the YAML loader for .yaml/.yml
// files and the text parser otherwise.
func Load(path string) (*Description, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return LoadText(path)
	}
}

// rawDescription holds directive values as read, before validation.
// Pointer fields are nil when the directive never appeared.
type rawDescription struct {
	processCount *int
	runFor       *int64
	algorithm    *string
	quantum      *int64
	processes    []sim.ProcessSpec
}

// validate applies the checks shared by both formats.
func (r *rawDescription) validate() (*Description, error) {
	if r.algorithm == nil {
		return nil, fmt.Errorf("%w 'use'", ErrMissingParameter)
	}
	alg := sim.Algorithm(*r.algorithm)
	if !sim.IsValidAlgorithm(*r.algorithm) {
		return nil, fmt.Errorf("%w: %q (valid: fcfs, sjf, rr)", ErrUnknownAlgorithm, *r.algorithm)
	}
	if r.runFor == nil {
		return nil, fmt.Errorf("%w 'runfor'", ErrMissingParameter)
	}
	if alg == sim.AlgorithmRR && r.quantum == nil {
		return nil, fmt.Errorf("%w 'quantum' (required when use is 'rr')", ErrMissingParameter)
	}
	if alg == sim.AlgorithmRR && *r.quantum <= 0 {
		return nil, fmt.Errorf("%w: quantum must be positive, got %d", ErrMalformed, *r.quantum)
	}
	if r.processCount == nil {
		return nil, fmt.Errorf("%w: processcount not given", ErrProcessCount)
	}
	if *r.processCount != len(r.processes) {
		return nil, fmt.Errorf("%w: processcount is %d but %d processes are declared",
			ErrProcessCount, *r.processCount, len(r.processes))
	}
	seen := make(map[string]bool, len(r.processes))
	for _, p := range r.processes {
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		seen[p.Name] = true
	}

	d := &Description{
		ProcessCount: *r.processCount,
		RunFor:       *r.runFor,
		Algorithm:    alg,
		Processes:    r.processes,
	}
	if r.quantum != nil {
		d.Quantum = *r.quantum
	}
	return d, nil
}
