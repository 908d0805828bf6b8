package schedulers

import (
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/core"
)

// firstComeLess orders the ready set by arrival time, id as tie-break.
func firstComeLess(a, b core.ProcessSpec) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

// ScheduleFirstComeFirstServe simulates the FCFS policy.
func ScheduleFirstComeFirstServe(specs []core.ProcessSpec) (core.Timeline, []core.ProcessResult, core.AggregateMetrics, error) {
	return Simulate(specs, core.PolicyConfig{Policy: core.FirstComeFirstServe})
}
