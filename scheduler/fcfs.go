package scheduler

// fcfsStrategy selects the earliest-arrived ready process and runs it to
// completion.
type fcfsStrategy struct {
	ready []*Process
}

func (f *fcfsStrategy) admit(p *Process) {
	f.ready = append(f.ready, p)
}

func (f *fcfsStrategy) next(clock int) (*Process, int, bool) {
	p := takeBest(&f.ready, arrivalThenID)
	if p == nil {
		return nil, 0, false
	}
	return p, p.Remaining(), true
}

func (f *fcfsStrategy) requeue(p *Process) {
	// non-preemptive: slices always run to completion
	f.ready = append(f.ready, p)
}
