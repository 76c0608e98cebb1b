package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimulatorRejectsEmptyInput(t *testing.T) {
	_, err := NewSimulator(nil, AlgorithmFCFS, 0)
	require.Error(t, err)
	require.True(t, IsKind(err, KindEmptyInput))

	_, err = Schedule(AlgorithmSJF, Request{})
	require.True(t, IsKind(err, KindEmptyInput))
}

func TestSimulatorRejectsDuplicateID(t *testing.T) {
	procs := []*Process{
		mustProcess(t, 1, 0, 3, 0),
		mustProcess(t, 2, 1, 2, 0),
		mustProcess(t, 1, 2, 4, 0),
	}
	_, err := NewSimulator(procs, AlgorithmFCFS, 0)
	require.Error(t, err)
	require.True(t, IsKind(err, KindDuplicateProcessID))
}

func TestSimulatorSingleProcess(t *testing.T) {
	procs := []*Process{mustProcess(t, 7, 3, 4, 0)}
	sim, err := NewSimulator(procs, AlgorithmFCFS, 0)
	require.NoError(t, err)
	require.False(t, sim.Completed())

	segments := sim.Run()
	require.True(t, sim.Completed())
	require.Equal(t, []Segment{{PID: 7, Start: 3, End: 7}}, segments)
	require.Equal(t, 7, sim.VirtualTime())

	finish, ok := sim.FinishTime(7)
	require.True(t, ok)
	require.Equal(t, 7, finish)
}

// Segments must cover the timeline chronologically with no overlaps, and
// each process's slice durations must sum to its original burst.
func requireWellFormedSchedule(t *testing.T, specs []ProcessSpec, res *Result) {
	t.Helper()

	ran := make(map[int]int)
	prevEnd := -1
	for _, seg := range res.Segments {
		require.Greater(t, seg.End, seg.Start, "segment %v must have positive length", seg)
		require.GreaterOrEqual(t, seg.Start, prevEnd, "segment %v overlaps its predecessor", seg)
		prevEnd = seg.End
		ran[seg.PID] += seg.End - seg.Start
	}

	require.Len(t, ran, len(specs), "every process must run")
	for _, spec := range specs {
		require.Equal(t, spec.Burst, ran[spec.ID], "process %d must run exactly its burst", spec.ID)
		require.GreaterOrEqual(t, firstStartOf(res.Segments, spec.ID), spec.Arrival,
			"process %d dispatched before arrival", spec.ID)
	}
}

func firstStartOf(segments []Segment, pid int) int {
	for _, seg := range segments {
		if seg.PID == pid {
			return seg.Start
		}
	}
	return -1
}

func TestScheduleInvariantsAcrossAlgorithms(t *testing.T) {
	specs := []ProcessSpec{
		{ID: 1, Arrival: 0, Burst: 7, Priority: 3},
		{ID: 2, Arrival: 2, Burst: 4, Priority: 1},
		{ID: 3, Arrival: 4, Burst: 1, Priority: 4},
		{ID: 4, Arrival: 12, Burst: 5, Priority: 2},
		{ID: 5, Arrival: 12, Burst: 2, Priority: 2},
	}

	for _, algo := range []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin} {
		t.Run(algo.String(), func(t *testing.T) {
			res := runSchedule(t, algo, 3, specs...)
			requireWellFormedSchedule(t, specs, res)

			// The last occurrence of each pid in order carries its true
			// completion time.
			last := make(map[int]int)
			for i, pid := range res.Order {
				last[pid] = res.Finish[i]
			}
			for _, pm := range res.Metrics.PerProcess {
				require.Equal(t, pm.Completion, last[pm.PID])
			}
		})
	}
}

func TestScheduleIsDeterministic(t *testing.T) {
	req, err := GenerateWorkload(WorkloadConfig{
		Count: 20, MaxArrival: 30, MaxBurst: 9, MaxPriority: 4, Seed: 42,
	})
	require.NoError(t, err)
	req.Quantum = 3

	for _, algo := range []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin} {
		first, err := Schedule(algo, req)
		require.NoError(t, err)
		second, err := Schedule(algo, req)
		require.NoError(t, err)
		require.Equal(t, first.Order, second.Order, "%s: order must be reproducible", algo)
		require.Equal(t, first.Finish, second.Finish, "%s: finish must be reproducible", algo)
	}
}
