package scheduler

import "encoding/json"

// Algorithm selects the scheduling discipline for one request. The set is
// closed: every request is routed to exactly one of these four.
type Algorithm int

const (
	AlgorithmFCFS       Algorithm = iota // First-Come-First-Served, non-preemptive
	AlgorithmSJF                         // Shortest-Job-First, non-preemptive
	AlgorithmPriority                    // smallest priority value first, non-preemptive
	AlgorithmRoundRobin                  // preemptive, fixed time quantum
)

// String returns the string representation of Algorithm
func (a Algorithm) String() string {
	switch a {
	case AlgorithmFCFS:
		return "fcfs"
	case AlgorithmSJF:
		return "sjf"
	case AlgorithmPriority:
		return "priority"
	case AlgorithmRoundRobin:
		return "rr"
	default:
		return "unknown"
	}
}

// ParseAlgorithm parses a string into Algorithm
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "fcfs":
		return AlgorithmFCFS, nil
	case "sjf":
		return AlgorithmSJF, nil
	case "priority":
		return AlgorithmPriority, nil
	case "rr":
		return AlgorithmRoundRobin, nil
	default:
		return AlgorithmFCFS, ErrUnsupportedAlgorithm(s)
	}
}

// MarshalJSON implements json.Marshaler for Algorithm
func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler for Algorithm
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
