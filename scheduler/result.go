package scheduler

// Result pairs the dispatch order with per-dispatch finish times. For the
// non-preemptive algorithms each process appears exactly once; under Round
// Robin a process appears once per dispatch, and its true completion time is
// the finish value of its last occurrence. The multiplicity is deliberate:
// it carries the preemption timeline.
type Result struct {
	Order    []int     `json:"order"`
	Finish   []int     `json:"finish"`
	Segments []Segment `json:"segments"`
	Metrics  *Metrics  `json:"metrics"`
}

// assembleResult reduces the segment list of a completed run to the
// order/finish pair. One entry per segment: order is the dispatched pid,
// finish is the clock value when that slice ended.
func assembleResult(segments []Segment) *Result {
	order := make([]int, len(segments))
	finish := make([]int, len(segments))
	for i, seg := range segments {
		order[i] = seg.PID
		finish[i] = seg.End
	}
	return &Result{
		Order:    order,
		Finish:   finish,
		Segments: segments,
	}
}
