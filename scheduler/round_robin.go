package scheduler

// roundRobinStrategy dispatches from an explicit FIFO ready queue, granting
// each process at most one quantum per dispatch.
//
// Queue ordering contract: the simulator admits every process that arrived
// during a slice before handing the preempted process back via requeue, so
// new arrivals always sit ahead of the process they preempted. This ordering
// is load-bearing; round_robin_test.go pins it.
type roundRobinStrategy struct {
	quantum int
	queue   []*Process
}

func newRoundRobinStrategy(quantum int) (*roundRobinStrategy, error) {
	if quantum <= 0 {
		return nil, ErrInvalidQuantum(quantum)
	}
	return &roundRobinStrategy{quantum: quantum}, nil
}

func (r *roundRobinStrategy) admit(p *Process) {
	r.queue = append(r.queue, p)
}

func (r *roundRobinStrategy) next(clock int) (*Process, int, bool) {
	if len(r.queue) == 0 {
		return nil, 0, false
	}
	p := r.queue[0]
	r.queue = r.queue[1:]
	slice := r.quantum
	if p.Remaining() < slice {
		slice = p.Remaining()
	}
	return p, slice, true
}

func (r *roundRobinStrategy) requeue(p *Process) {
	r.queue = append(r.queue, p)
}
