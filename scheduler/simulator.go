package scheduler

import "fmt"

// simState tracks where the simulation loop is between steps.
type simState int

const (
	stateDispatching simState = iota // strategy is about to select the next process
	stateIdle                        // ready set empty, clock jumped to the next arrival
	stateRunning                     // a slice was just executed
	stateCompleted                   // every process reached zero remaining burst
)

func (s simState) String() string {
	switch s {
	case stateDispatching:
		return "dispatching"
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	case stateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Segment is one contiguous interval [Start, End) during which PID occupied
// the CPU. Segments never overlap; gaps between them are idle time.
type Segment struct {
	PID   int `json:"pid"`
	Start int `json:"start"`
	End   int `json:"end"`
}

func (seg Segment) String() string {
	return fmt.Sprintf("P%d[%d,%d)", seg.PID, seg.Start, seg.End)
}

// Simulator is a pure single-threaded discrete simulation of one scheduling
// request. It has no concurrency primitives; callers that serve requests in
// parallel give each request its own Simulator.
type Simulator struct {
	procs    []*Process
	strat    strategy
	pending  *arrivalQueue
	clock    int
	state    simState
	finished int
	segments []Segment
	finishAt map[int]int
}

// NewSimulator validates the process set and builds a simulator for the
// given algorithm. The quantum is only consulted for Round Robin.
func NewSimulator(procs []*Process, algo Algorithm, quantum int) (*Simulator, error) {
	if len(procs) == 0 {
		return nil, ErrEmptyInput()
	}
	seen := make(map[int]bool, len(procs))
	for _, p := range procs {
		if seen[p.ID] {
			return nil, ErrDuplicateProcessID(p.ID)
		}
		seen[p.ID] = true
	}
	strat, err := newStrategy(algo, quantum)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		procs:    procs,
		strat:    strat,
		pending:  newArrivalQueue(procs),
		state:    stateDispatching,
		segments: make([]Segment, 0, len(procs)),
		finishAt: make(map[int]int, len(procs)),
	}, nil
}

// Run drives the simulation to completion and returns the execution
// segments in chronological order. All validation happened at construction;
// Run cannot fail.
func (s *Simulator) Run() []Segment {
	for s.state != stateCompleted {
		s.step()
	}
	return s.segments
}

// step performs one transition: either executes one slice, jumps the clock
// over an idle gap, or detects completion.
func (s *Simulator) step() {
	s.admitArrived()

	p, slice, ok := s.strat.next(s.clock)
	if !ok {
		if s.pending.IsEmpty() {
			s.state = stateCompleted
			return
		}
		// Idle: jump straight to the next arrival instead of ticking,
		// keeping total work independent of the timeline length.
		s.state = stateIdle
		s.clock = s.pending.Peek().Arrival
		return
	}

	s.state = stateRunning
	start := s.clock
	ran := p.run(slice)
	s.clock = start + ran
	s.segments = append(s.segments, Segment{PID: p.ID, Start: start, End: s.clock})

	// Processes that arrived during the slice enter the ready set before a
	// preempted process is handed back, so under Round Robin they queue
	// ahead of it.
	s.admitArrived()

	if p.Finished() {
		s.finishAt[p.ID] = s.clock
		s.finished++
	} else {
		s.strat.requeue(p)
	}

	if s.finished == len(s.procs) {
		s.state = stateCompleted
	} else {
		s.state = stateDispatching
	}
}

// admitArrived moves every process with Arrival <= clock from the pending
// queue into the strategy's ready set, in (arrival, id) order.
func (s *Simulator) admitArrived() {
	for !s.pending.IsEmpty() && s.pending.Peek().Arrival <= s.clock {
		s.strat.admit(s.pending.Pop())
	}
}

// VirtualTime returns the current clock value.
func (s *Simulator) VirtualTime() int { return s.clock }

// Completed reports whether every process has finished.
func (s *Simulator) Completed() bool { return s.state == stateCompleted }

// Segments returns the segments recorded so far.
func (s *Simulator) Segments() []Segment { return s.segments }

// FinishTime returns the completion time of a finished process.
func (s *Simulator) FinishTime(pid int) (int, bool) {
	t, ok := s.finishAt[pid]
	return t, ok
}
