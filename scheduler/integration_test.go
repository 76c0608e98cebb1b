package scheduler

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// End-to-end sweeps over generated workloads: every algorithm must produce a
// well-formed schedule regardless of arrival pattern.

func TestAllAlgorithmsOnGeneratedWorkloads(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 17, 99} {
		req, err := GenerateWorkload(WorkloadConfig{
			Count:       25,
			MaxArrival:  40,
			MaxBurst:    12,
			MaxPriority: 6,
			Seed:        seed,
		})
		require.NoError(t, err)
		req.Quantum = 4

		for _, algo := range []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin} {
			res, err := Schedule(algo, req)
			require.NoError(t, err, "%s seed=%d", algo, seed)
			requireWellFormedSchedule(t, req.Processes, res)

			if algo != AlgorithmRoundRobin {
				require.Len(t, res.Order, len(req.Processes),
					"%s: non-preemptive algorithms dispatch each process once", algo)
			} else {
				require.GreaterOrEqual(t, len(res.Order), len(req.Processes))
			}
		}
	}
}

func TestFCFSOrderIsArrivalSorted(t *testing.T) {
	req, err := GenerateWorkload(WorkloadConfig{
		Count: 30, MaxArrival: 50, MaxBurst: 8, MaxPriority: 4, Seed: 5,
	})
	require.NoError(t, err)

	res, err := Schedule(AlgorithmFCFS, req)
	require.NoError(t, err)

	specs := append([]ProcessSpec(nil), req.Processes...)
	sort.Slice(specs, func(i, j int) bool {
		if specs[i].Arrival != specs[j].Arrival {
			return specs[i].Arrival < specs[j].Arrival
		}
		return specs[i].ID < specs[j].ID
	})
	want := make([]int, len(specs))
	for i, spec := range specs {
		want[i] = spec.ID
	}
	require.Equal(t, want, res.Order)
}

func TestNonPreemptiveAlgorithmsShareBusyTime(t *testing.T) {
	// Non-preemptive disciplines reorder work but never change total busy
	// time, so utilization only differs through idle gaps at the edges of
	// the timeline.
	req, err := GenerateWorkload(WorkloadConfig{
		Count: 15, MaxArrival: 10, MaxBurst: 6, MaxPriority: 3, Seed: 11,
	})
	require.NoError(t, err)

	totalBurst := 0
	for _, spec := range req.Processes {
		totalBurst += spec.Burst
	}

	for _, algo := range []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority} {
		res, err := Schedule(algo, req)
		require.NoError(t, err)
		busy := res.Metrics.Makespan - res.Metrics.IdleTime
		require.Equal(t, totalBurst, busy, "%s: busy time equals total burst", algo)
	}
}
