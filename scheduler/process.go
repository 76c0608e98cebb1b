package scheduler

import "fmt"

// Process is one schedulable unit. Identity and static attributes are fixed
// at construction; only the remaining burst changes during a simulation.
type Process struct {
	ID       int // unique within one request, > 0
	Arrival  int // clock value at which the process becomes ready, >= 0
	Burst    int // total CPU time required, > 0
	Priority int // lower value = higher priority

	remaining int
}

// NewProcess validates the static attributes and returns a process ready for
// simulation.
func NewProcess(id, arrival, burst, priority int) (*Process, error) {
	if id <= 0 {
		return nil, ErrInvalidProcess(fmt.Sprintf("id %d must be positive", id))
	}
	if arrival < 0 {
		return nil, ErrInvalidProcess(fmt.Sprintf("process %d: negative arrival time %d", id, arrival))
	}
	if burst <= 0 {
		return nil, ErrInvalidProcess(fmt.Sprintf("process %d: non-positive burst time %d", id, burst))
	}
	return &Process{
		ID:        id,
		Arrival:   arrival,
		Burst:     burst,
		Priority:  priority,
		remaining: burst,
	}, nil
}

// Remaining returns the CPU time the process still needs.
func (p *Process) Remaining() int { return p.remaining }

// Finished reports whether the process has consumed its full burst.
func (p *Process) Finished() bool { return p.remaining == 0 }

// run consumes up to n units of remaining burst and returns the amount
// actually consumed. The remaining burst never goes negative.
func (p *Process) run(n int) int {
	if n > p.remaining {
		n = p.remaining
	}
	p.remaining -= n
	return n
}

func (p *Process) String() string {
	return fmt.Sprintf("P%d(arrival=%d, burst=%d, priority=%d, remaining=%d)",
		p.ID, p.Arrival, p.Burst, p.Priority, p.remaining)
}
