package schedulers

import (
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/core"
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/util"
)

// generateProcessResults derives the per-process metrics from a completed
// timeline. The derivation is policy-independent: completion time is the end
// of the process's last segment, response time comes from its first segment.
// Results are returned in the order the specs were supplied.
func generateProcessResults(specs []core.ProcessSpec, timeline core.Timeline) []core.ProcessResult {
	firstStart := make(map[int]int, len(specs))
	lastEnd := make(map[int]int, len(specs))
	for _, segment := range timeline {
		if segment.Idle() {
			continue
		}
		if _, seen := firstStart[segment.ProcessID]; !seen {
			firstStart[segment.ProcessID] = segment.Start
		}
		lastEnd[segment.ProcessID] = segment.End
	}

	results := make([]core.ProcessResult, 0, len(specs))
	for _, s := range specs {
		turnaround := lastEnd[s.ID] - s.ArrivalTime
		results = append(results, core.ProcessResult{
			ID:             s.ID,
			CompletionTime: lastEnd[s.ID],
			TurnAroundTime: turnaround,
			WaitingTime:    turnaround - s.BurstTime,
			ResponseTime:   firstStart[s.ID] - s.ArrivalTime,
		})
	}
	return results
}

// generateAggregateMetrics summarizes one run. CPU utilization is measured
// from the earliest arrival (a leading idle gap before any process exists is
// not counted against the CPU); throughput spans the whole timeline.
func generateAggregateMetrics(specs []core.ProcessSpec, timeline core.Timeline, results []core.ProcessResult) core.AggregateMetrics {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(results)

	earliestArrival := specs[0].ArrivalTime
	for _, s := range specs[1:] {
		if s.ArrivalTime < earliestArrival {
			earliestArrival = s.ArrivalTime
		}
	}
	lastEnd := timeline[len(timeline)-1].End

	return core.AggregateMetrics{
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CPUUtilization:        float64(timeline.BusyTime()) / float64(lastEnd-earliestArrival),
		Throughput:            float64(len(specs)) / float64(timeline.TotalTime()),
	}
}
