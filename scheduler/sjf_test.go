package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSJFDoesNotPreempt(t *testing.T) {
	// P2 is shorter but arrives after P1 has started: it must wait.
	res := runSchedule(t, AlgorithmSJF, 0,
		ProcessSpec{ID: 1, Arrival: 0, Burst: 8},
		ProcessSpec{ID: 2, Arrival: 1, Burst: 4},
	)
	require.Equal(t, []int{1, 2}, res.Order)
	require.Equal(t, []int{8, 12}, res.Finish)
}

func TestSJFPicksShortestAmongReady(t *testing.T) {
	res := runSchedule(t, AlgorithmSJF, 0,
		ProcessSpec{ID: 1, Arrival: 0, Burst: 8},
		ProcessSpec{ID: 2, Arrival: 1, Burst: 4},
		ProcessSpec{ID: 3, Arrival: 2, Burst: 1},
	)
	// At t=8 both P2 and P3 are ready; P3 has the shorter burst.
	require.Equal(t, []int{1, 3, 2}, res.Order)
	require.Equal(t, []int{8, 9, 13}, res.Finish)
}

func TestSJFTiesBreakByArrivalThenID(t *testing.T) {
	res := runSchedule(t, AlgorithmSJF, 0,
		ProcessSpec{ID: 1, Arrival: 0, Burst: 2},
		ProcessSpec{ID: 3, Arrival: 1, Burst: 3},
		ProcessSpec{ID: 2, Arrival: 0, Burst: 3},
	)
	// Equal bursts for P2 and P3: P2 arrived first.
	require.Equal(t, []int{1, 2, 3}, res.Order)
	require.Equal(t, []int{2, 5, 8}, res.Finish)

	res = runSchedule(t, AlgorithmSJF, 0,
		ProcessSpec{ID: 4, Arrival: 0, Burst: 3},
		ProcessSpec{ID: 2, Arrival: 0, Burst: 3},
	)
	// Equal burst and arrival: smaller id first.
	require.Equal(t, []int{2, 4}, res.Order)
	require.Equal(t, []int{3, 6}, res.Finish)
}
