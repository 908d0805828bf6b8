package schedulers

import (
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/core"
)

// shortestJobLess orders the ready set by burst time (equal to remaining time
// under a non-preemptive policy), then arrival time, then id.
func shortestJobLess(a, b core.ProcessSpec) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return firstComeLess(a, b)
}

// ScheduleShortestJobFirst simulates the non-preemptive SJF policy.
func ScheduleShortestJobFirst(specs []core.ProcessSpec) (core.Timeline, []core.ProcessResult, core.AggregateMetrics, error) {
	return Simulate(specs, core.PolicyConfig{Policy: core.ShortestJobFirst})
}
