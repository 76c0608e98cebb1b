package scheduler

import "sort"

// ProcessMetrics holds the per-process timing statistics derived from a
// completed run.
type ProcessMetrics struct {
	PID            int `json:"pid"`
	Completion     int `json:"completion"`     // clock value when remaining burst reached 0
	TurnaroundTime int `json:"turnaroundTime"` // completion - arrival
	WaitingTime    int `json:"waitingTime"`    // turnaround - burst
	ResponseTime   int `json:"responseTime"`   // first dispatch - arrival
}

// Metrics aggregates timing statistics for one run. Everything here is
// derived from the segment list; it adds no information to the schedule
// itself, only the usual summary numbers.
type Metrics struct {
	Makespan              int     `json:"makespan"`   // end of the last segment
	IdleTime              int     `json:"idleTime"`   // makespan minus busy time
	CPUUtilization        float64 `json:"cpuUtilization"`
	Throughput            float64 `json:"throughput"` // processes completed per time unit
	AverageWaitingTime    float64 `json:"averageWaitingTime"`
	AverageTurnaroundTime float64 `json:"averageTurnaroundTime"`
	AverageResponseTime   float64 `json:"averageResponseTime"`

	PerProcess []ProcessMetrics `json:"perProcess"`
}

// computeMetrics derives run statistics from the chronological segment list
// and the static process attributes.
func computeMetrics(procs []*Process, segments []Segment) *Metrics {
	firstStart := make(map[int]int, len(procs))
	completion := make(map[int]int, len(procs))
	busy := 0
	for _, seg := range segments {
		if _, ok := firstStart[seg.PID]; !ok {
			firstStart[seg.PID] = seg.Start
		}
		completion[seg.PID] = seg.End
		busy += seg.End - seg.Start
	}

	m := &Metrics{
		PerProcess: make([]ProcessMetrics, 0, len(procs)),
	}
	if len(segments) > 0 {
		m.Makespan = segments[len(segments)-1].End
	}

	var totalWait, totalTurnaround, totalResponse float64
	for _, p := range procs {
		pm := ProcessMetrics{
			PID:            p.ID,
			Completion:     completion[p.ID],
			TurnaroundTime: completion[p.ID] - p.Arrival,
			WaitingTime:    completion[p.ID] - p.Arrival - p.Burst,
			ResponseTime:   firstStart[p.ID] - p.Arrival,
		}
		totalWait += float64(pm.WaitingTime)
		totalTurnaround += float64(pm.TurnaroundTime)
		totalResponse += float64(pm.ResponseTime)
		m.PerProcess = append(m.PerProcess, pm)
	}
	sort.Slice(m.PerProcess, func(i, j int) bool {
		return m.PerProcess[i].PID < m.PerProcess[j].PID
	})

	count := float64(len(procs))
	m.AverageWaitingTime = totalWait / count
	m.AverageTurnaroundTime = totalTurnaround / count
	m.AverageResponseTime = totalResponse / count
	if m.Makespan > 0 {
		m.IdleTime = m.Makespan - busy
		m.CPUUtilization = float64(busy) / float64(m.Makespan)
		m.Throughput = count / float64(m.Makespan)
	}
	return m
}
