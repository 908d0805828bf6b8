package schedulers

import (
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/core"
)

// priorityLess orders the ready set by priority value (lower wins), then
// arrival time, then id.
func priorityLess(a, b core.ProcessSpec) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return firstComeLess(a, b)
}

// SchedulePriority simulates the non-preemptive priority policy.
func SchedulePriority(specs []core.ProcessSpec) (core.Timeline, []core.ProcessResult, core.AggregateMetrics, error) {
	return Simulate(specs, core.PolicyConfig{Policy: core.PriorityScheduling})
}
