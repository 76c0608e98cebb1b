package scheduler

// strategy is the per-algorithm selection policy the simulator consults at
// each decision point. The simulator owns the clock and the arrival queue;
// the strategy owns the ready set.
//
// admit hands the strategy a process whose arrival time has been reached.
// next selects the process to dispatch and the slice length to run it for;
// ok is false when the ready set is empty (CPU idle). requeue returns a
// preempted process to the strategy; non-preemptive strategies never see it
// because they always select the full remaining burst.
type strategy interface {
	admit(p *Process)
	next(clock int) (p *Process, slice int, ok bool)
	requeue(p *Process)
}

// newStrategy builds the selection policy for the given algorithm. The
// quantum is only consulted by Round Robin.
func newStrategy(algo Algorithm, quantum int) (strategy, error) {
	switch algo {
	case AlgorithmFCFS:
		return &fcfsStrategy{}, nil
	case AlgorithmSJF:
		return &sjfStrategy{}, nil
	case AlgorithmPriority:
		return &priorityStrategy{}, nil
	case AlgorithmRoundRobin:
		return newRoundRobinStrategy(quantum)
	default:
		return nil, ErrUnsupportedAlgorithm(algo.String())
	}
}

// takeBest removes and returns the minimum of ready under less, or nil when
// the ready set is empty. Used by the non-preemptive strategies; less must
// be a strict ordering so selection is deterministic.
func takeBest(ready *[]*Process, less func(a, b *Process) bool) *Process {
	if len(*ready) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(*ready); i++ {
		if less((*ready)[i], (*ready)[best]) {
			best = i
		}
	}
	p := (*ready)[best]
	*ready = append((*ready)[:best], (*ready)[best+1:]...)
	return p
}

// arrivalThenID is the shared tie-break: earlier arrival wins, then the
// smaller process id.
func arrivalThenID(a, b *Process) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.ID < b.ID
}
