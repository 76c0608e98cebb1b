package scheduler

// Schedule runs one scheduling request to completion and returns the
// assembled result. It is a pure function of its input: the same request
// always yields the same result, and concurrent calls share no state.
func Schedule(algo Algorithm, req Request) (*Result, error) {
	if err := req.Validate(algo); err != nil {
		return nil, err
	}
	procs, err := req.buildProcesses()
	if err != nil {
		return nil, err
	}
	sim, err := NewSimulator(procs, algo, req.Quantum)
	if err != nil {
		return nil, err
	}
	segments := sim.Run()
	result := assembleResult(segments)
	result.Metrics = computeMetrics(procs, segments)
	return result, nil
}
