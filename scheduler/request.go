package scheduler

import "fmt"

// ProcessSpec is the wire shape of one process definition.
type ProcessSpec struct {
	ID       int `json:"id"`
	Arrival  int `json:"arrival"`
	Burst    int `json:"burst"`
	Priority int `json:"priority"`
}

// Request is one scheduling request. The algorithm is not part of the
// payload: routing selects it out of band, one entry point per algorithm.
// Quantum is only consulted when the algorithm is Round Robin.
type Request struct {
	Processes []ProcessSpec `json:"processes"`
	Quantum   int           `json:"quantum,omitempty"`
}

// Validate performs the boundary validation on behalf of the core: empty
// input, invalid process attributes, duplicate ids, and (for Round Robin) a
// non-positive quantum. The simulator re-checks duplicates and the quantum
// at construction, so the core never sees malformed data regardless of the
// path a request took to reach it.
func (r Request) Validate(algo Algorithm) error {
	if len(r.Processes) == 0 {
		return ErrEmptyInput()
	}
	seen := make(map[int]bool, len(r.Processes))
	for _, spec := range r.Processes {
		if spec.ID <= 0 {
			return ErrInvalidProcess(fmt.Sprintf("id %d must be positive", spec.ID))
		}
		if spec.Arrival < 0 {
			return ErrInvalidProcess(fmt.Sprintf("process %d: negative arrival time %d", spec.ID, spec.Arrival))
		}
		if spec.Burst <= 0 {
			return ErrInvalidProcess(fmt.Sprintf("process %d: non-positive burst time %d", spec.ID, spec.Burst))
		}
		if seen[spec.ID] {
			return ErrDuplicateProcessID(spec.ID)
		}
		seen[spec.ID] = true
	}
	if algo == AlgorithmRoundRobin && r.Quantum <= 0 {
		return ErrInvalidQuantum(r.Quantum)
	}
	return nil
}

// buildProcesses constructs the simulation-time processes for the request.
func (r Request) buildProcesses() ([]*Process, error) {
	procs := make([]*Process, 0, len(r.Processes))
	for _, spec := range r.Processes {
		p, err := NewProcess(spec.ID, spec.Arrival, spec.Burst, spec.Priority)
		if err != nil {
			return nil, err
		}
		procs = append(procs, p)
	}
	return procs, nil
}
