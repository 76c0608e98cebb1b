package scheduler

import (
	"fmt"
	"math/rand"
)

// WorkloadConfig controls random workload generation. Generation is
// deterministic for a fixed seed, so generated workloads can be replayed.
type WorkloadConfig struct {
	Count       int   `json:"count"`       // number of processes
	MaxArrival  int   `json:"maxArrival"`  // arrivals drawn from [0, MaxArrival]
	MaxBurst    int   `json:"maxBurst"`    // bursts drawn from [1, MaxBurst]
	MaxPriority int   `json:"maxPriority"` // priorities drawn from [1, MaxPriority]
	Seed        int64 `json:"seed"`
}

// DefaultWorkloadConfig returns a small mixed workload.
func DefaultWorkloadConfig() WorkloadConfig {
	return WorkloadConfig{
		Count:       8,
		MaxArrival:  20,
		MaxBurst:    10,
		MaxPriority: 5,
		Seed:        1,
	}
}

// Validate checks the generation parameters.
func (c WorkloadConfig) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("invalid workload: count %d must be positive", c.Count)
	}
	if c.MaxArrival < 0 {
		return fmt.Errorf("invalid workload: maxArrival %d must be >= 0", c.MaxArrival)
	}
	if c.MaxBurst <= 0 {
		return fmt.Errorf("invalid workload: maxBurst %d must be positive", c.MaxBurst)
	}
	if c.MaxPriority <= 0 {
		return fmt.Errorf("invalid workload: maxPriority %d must be positive", c.MaxPriority)
	}
	return nil
}

// GenerateWorkload produces a valid request with Count processes. Process
// ids are 1..Count, so the result always passes request validation.
func GenerateWorkload(c WorkloadConfig) (Request, error) {
	if err := c.Validate(); err != nil {
		return Request{}, err
	}
	rng := rand.New(rand.NewSource(c.Seed))
	specs := make([]ProcessSpec, 0, c.Count)
	for i := 0; i < c.Count; i++ {
		specs = append(specs, ProcessSpec{
			ID:       i + 1,
			Arrival:  rng.Intn(c.MaxArrival + 1),
			Burst:    1 + rng.Intn(c.MaxBurst),
			Priority: 1 + rng.Intn(c.MaxPriority),
		})
	}
	return Request{Processes: specs}, nil
}
