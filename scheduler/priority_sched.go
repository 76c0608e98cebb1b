package scheduler

// priorityStrategy selects the ready process with the smallest priority
// value (lower value = higher priority) and runs it to completion.
type priorityStrategy struct {
	ready []*Process
}

func (s *priorityStrategy) admit(p *Process) {
	s.ready = append(s.ready, p)
}

func (s *priorityStrategy) next(clock int) (*Process, int, bool) {
	p := takeBest(&s.ready, func(a, b *Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return arrivalThenID(a, b)
	})
	if p == nil {
		return nil, 0, false
	}
	return p, p.Remaining(), true
}

func (s *priorityStrategy) requeue(p *Process) {
	// non-preemptive: slices always run to completion
	s.ready = append(s.ready, p)
}
