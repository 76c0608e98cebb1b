package scheduler

import "container/heap"

// arrivalQueue is a priority queue of not-yet-arrived processes, ordered by
// arrival time with ties broken by ascending process id. The simulator pops
// from it as the virtual clock advances.
type arrivalQueue struct {
	procs procHeap
}

func newArrivalQueue(procs []*Process) *arrivalQueue {
	q := &arrivalQueue{
		procs: make(procHeap, 0, len(procs)),
	}
	for _, p := range procs {
		q.procs = append(q.procs, p)
	}
	heap.Init(&q.procs)
	return q
}

// Pop removes and returns the earliest-arriving process
func (q *arrivalQueue) Pop() *Process {
	if q.IsEmpty() {
		return nil
	}
	return heap.Pop(&q.procs).(*Process)
}

// Peek returns the earliest-arriving process without removing it
func (q *arrivalQueue) Peek() *Process {
	if q.IsEmpty() {
		return nil
	}
	return q.procs[0]
}

// IsEmpty returns true if the queue is empty
func (q *arrivalQueue) IsEmpty() bool {
	return q.procs.Len() == 0
}

// Len returns the number of pending processes
func (q *arrivalQueue) Len() int {
	return q.procs.Len()
}

// procHeap implements heap.Interface for *Process
type procHeap []*Process

func (h procHeap) Len() int { return len(h) }
func (h procHeap) Less(i, j int) bool {
	if h[i].Arrival != h[j].Arrival {
		return h[i].Arrival < h[j].Arrival
	}
	return h[i].ID < h[j].ID
}
func (h procHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *procHeap) Push(x interface{}) {
	*h = append(*h, x.(*Process))
}

func (h *procHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}
