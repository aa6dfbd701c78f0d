package workload

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// GeneratorSpec describes a synthetic workload. The same spec and seed
// always produce the same description.
type GeneratorSpec struct {
	Seed  int64
	Count int // number of processes
	// RunFor, Algorithm and Quantum are copied into the description.
	// Quantum is only used for rr.
	RunFor    int64
	Algorithm sim.Algorithm
	Quantum   int64
	// Rate is the mean number of arrivals per tick (Poisson).
	Rate  float64
	Burst DistSpec
}

// Generate draws Count processes with Poisson arrivals starting at tick 0
// and bursts from spec.Burst. Processes are named P0, P1, ... in arrival order.
func Generate(spec GeneratorSpec) (*Description, error) {
	if spec.Count < 0 {
		return nil, fmt.Errorf("%w: process count must be non-negative, got %d", ErrProcessCount, spec.Count)
	}
	if spec.Rate <= 0 {
		return nil, fmt.Errorf("arrival rate must be positive, got %g", spec.Rate)
	}
	bursts, err := NewBurstSampler(spec.Burst)
	if err != nil {
		return nil, fmt.Errorf("burst distribution: %w", err)
	}

	rng := newRandFromSeed(spec.Seed)
	d := &Description{
		ProcessCount: spec.Count,
		RunFor:       spec.RunFor,
		Algorithm:    spec.Algorithm,
		Processes:    make([]sim.ProcessSpec, 0, spec.Count),
	}
	if spec.Algorithm == sim.AlgorithmRR {
		d.Quantum = spec.Quantum
	}

	var arrival float64
	for i := range spec.Count {
		if i > 0 {
			arrival += rng.ExpFloat64() / spec.Rate
		}
		d.Processes = append(d.Processes, sim.ProcessSpec{
			Name:    "P" + strconv.Itoa(i),
			Arrival: int64(arrival),
			Burst:   bursts.Sample(rng),
		})
	}

	cfg := d.Config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.Debugf("Generated %d processes (seed=%d, rate=%g/tick)", spec.Count, spec.Seed, spec.Rate)
	return d, nil
}

// newRandFromSeed creates a new *rand.Rand from a seed.
func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
