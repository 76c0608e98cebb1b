package scheduler

// sjfStrategy selects the ready process with the smallest remaining burst
// and runs it to completion. Because selection only happens between bursts,
// a shorter job arriving mid-burst never interrupts the running one.
type sjfStrategy struct {
	ready []*Process
}

func (s *sjfStrategy) admit(p *Process) {
	s.ready = append(s.ready, p)
}

func (s *sjfStrategy) next(clock int) (*Process, int, bool) {
	p := takeBest(&s.ready, func(a, b *Process) bool {
		if a.Remaining() != b.Remaining() {
			return a.Remaining() < b.Remaining()
		}
		return arrivalThenID(a, b)
	})
	if p == nil {
		return nil, 0, false
	}
	return p, p.Remaining(), true
}

func (s *sjfStrategy) requeue(p *Process) {
	// non-preemptive: slices always run to completion
	s.ready = append(s.ready, p)
}
