package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid simulation config")

// ProcessSpec is the static workload description of one process.
type ProcessSpec struct {
	Name    string `json:"name" yaml:"name"`
	Arrival int64  `json:"arrival" yaml:"arrival"`
	Burst   int64  `json:"burst" yaml:"burst"`
}

// Config groups everything a run needs. Processes are kept in declaration
// order, which is also the tie-break order for equal arrivals.
type Config struct {
	Processes []ProcessSpec
	RunFor    int64     // run horizon in ticks (must be > 0)
	Algorithm Algorithm // fcfs, sjf or rr
	Quantum   int64     // round robin slice length; 0 = not given
}

// Validate checks the config before a simulation is built. The simulation
// core raises no errors once Validate passes.
func (c *Config) Validate() error {
	if !validAlgorithms[c.Algorithm] {
		return fmt.Errorf("%w: unknown algorithm %q; valid: fcfs, sjf, rr", ErrInvalidConfig, c.Algorithm)
	}
	if c.RunFor <= 0 {
		return fmt.Errorf("%w: runfor must be positive, got %d", ErrInvalidConfig, c.RunFor)
	}
	if c.Quantum < 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidConfig, c.Quantum)
	}
	if c.Algorithm == AlgorithmRR && c.Quantum == 0 {
		return fmt.Errorf("%w: missing quantum parameter when use is %q", ErrInvalidConfig, AlgorithmRR)
	}
	seen := make(map[string]int, len(c.Processes))
	for i, p := range c.Processes {
		prefix := fmt.Sprintf("process[%d]", i)
		if p.Name == "" {
			return fmt.Errorf("%w: %s: name must not be empty", ErrInvalidConfig, prefix)
		}
		if j, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: %s: duplicate name %q (first declared at process[%d])", ErrInvalidConfig, prefix, p.Name, j)
		}
		seen[p.Name] = i
		if p.Arrival < 0 {
			return fmt.Errorf("%w: %s (%s): arrival must be non-negative, got %d", ErrInvalidConfig, prefix, p.Name, p.Arrival)
		}
		if p.Burst < 1 {
			return fmt.Errorf("%w: %s (%s): burst must be at least 1, got %d", ErrInvalidConfig, prefix, p.Name, p.Burst)
		}
	}
	return nil
}
