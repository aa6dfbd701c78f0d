package workload

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// DescriptionSpec is the YAML form of a description.
// processcount is optional; when present it must match len(processes).
type DescriptionSpec struct {
	ProcessCount *int              `yaml:"processcount,omitempty"`
	RunFor       *int64            `yaml:"runfor"`
	Use          *string           `yaml:"use"`
	Quantum      *int64            `yaml:"quantum,omitempty"`
	Processes    []sim.ProcessSpec `yaml:"processes"`
}

// LoadYAML reads and parses a YAML description file.
func LoadYAML(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading description: %w", err)
	}
	return ParseYAML(bytes.NewReader(data))
}

// ParseYAML parses a YAML description.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func ParseYAML(r io.Reader) (*Description, error) {
	var spec DescriptionSpec
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%w: parsing YAML: %v", ErrMalformed, err)
	}
	raw := rawDescription{
		processCount: spec.ProcessCount,
		runFor:       spec.RunFor,
		algorithm:    spec.Use,
		quantum:      spec.Quantum,
		processes:    spec.Processes,
	}
	if raw.processCount == nil {
		n := len(spec.Processes)
		raw.processCount = &n
	}
	return raw.validate()
}

// WriteYAML renders d as a YAML description.
func WriteYAML(d *Description, w io.Writer) error {
	alg := string(d.Algorithm)
	count := d.ProcessCount
	runFor := d.RunFor
	spec := DescriptionSpec{
		ProcessCount: &count,
		RunFor:       &runFor,
		Use:          &alg,
		Processes:    d.Processes,
	}
	if d.Algorithm == sim.AlgorithmRR {
		q := d.Quantum
		spec.Quantum = &q
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&spec); err != nil {
		return fmt.Errorf("encoding description: %w", err)
	}
	return enc.Close()
}
