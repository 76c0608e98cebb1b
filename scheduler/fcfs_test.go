package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// runSchedule is the shared test harness: build a request, schedule it, and
// return the result.
func runSchedule(t *testing.T, algo Algorithm, quantum int, specs ...ProcessSpec) *Result {
	t.Helper()
	res, err := Schedule(algo, Request{Processes: specs, Quantum: quantum})
	require.NoError(t, err)
	require.NotEmpty(t, res.Order)
	require.Len(t, res.Finish, len(res.Order), "order and finish must be parallel")
	return res
}

func TestFCFSArrivalOrder(t *testing.T) {
	res := runSchedule(t, AlgorithmFCFS, 0,
		ProcessSpec{ID: 1, Arrival: 0, Burst: 5},
		ProcessSpec{ID: 2, Arrival: 1, Burst: 3},
	)
	require.Equal(t, []int{1, 2}, res.Order)
	require.Equal(t, []int{5, 8}, res.Finish)
	require.Equal(t, []Segment{
		{PID: 1, Start: 0, End: 5},
		{PID: 2, Start: 5, End: 8},
	}, res.Segments)
}

func TestFCFSTiesBreakByID(t *testing.T) {
	res := runSchedule(t, AlgorithmFCFS, 0,
		ProcessSpec{ID: 3, Arrival: 2, Burst: 1},
		ProcessSpec{ID: 1, Arrival: 2, Burst: 1},
		ProcessSpec{ID: 2, Arrival: 2, Burst: 1},
	)
	require.Equal(t, []int{1, 2, 3}, res.Order)
	require.Equal(t, []int{3, 4, 5}, res.Finish)
}

func TestFCFSIdleGapJumpsToNextArrival(t *testing.T) {
	res := runSchedule(t, AlgorithmFCFS, 0,
		ProcessSpec{ID: 1, Arrival: 2, Burst: 3},
		ProcessSpec{ID: 2, Arrival: 10, Burst: 2},
	)
	require.Equal(t, []int{1, 2}, res.Order)
	require.Equal(t, []int{5, 12}, res.Finish)
	require.Equal(t, []Segment{
		{PID: 1, Start: 2, End: 5},
		{PID: 2, Start: 10, End: 12},
	}, res.Segments, "gaps in the segment list are idle time")
}

func TestFCFSIgnoresBurstAndPriority(t *testing.T) {
	// A long early arrival runs before a short, high-priority late one.
	res := runSchedule(t, AlgorithmFCFS, 0,
		ProcessSpec{ID: 1, Arrival: 0, Burst: 9, Priority: 5},
		ProcessSpec{ID: 2, Arrival: 1, Burst: 1, Priority: 1},
	)
	require.Equal(t, []int{1, 2}, res.Order)
	require.Equal(t, []int{9, 10}, res.Finish)
}
