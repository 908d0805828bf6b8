package schedulers

import (
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/core"
)

// Simulate runs one scheduling policy over the given process specs and returns
// the execution timeline plus the metrics derived from it. It is a pure
// function: all simulation state is local to the call, so concurrent
// invocations are independent and repeated calls with the same input produce
// identical output.
func Simulate(specs []core.ProcessSpec, policy core.PolicyConfig) (core.Timeline, []core.ProcessResult, core.AggregateMetrics, error) {
	if len(specs) == 0 {
		return nil, nil, core.AggregateMetrics{}, core.ErrEmptyInput
	}
	if err := core.ValidateSpecs(specs); err != nil {
		return nil, nil, core.AggregateMetrics{}, err
	}
	if err := policy.Validate(); err != nil {
		return nil, nil, core.AggregateMetrics{}, err
	}

	var timeline core.Timeline
	if policy.Policy == core.RoundRobin {
		timeline = runRoundRobin(specs, policy.Quantum)
	} else {
		timeline = runNonPreemptive(specs, readyLess(policy.Policy))
	}

	results := generateProcessResults(specs, timeline)
	aggregate := generateAggregateMetrics(specs, timeline, results)
	return timeline, results, aggregate, nil
}

// readyLess returns the ready-set ordering for a non-preemptive policy. The
// three policies differ only in this comparator; the simulation loop is shared.
func readyLess(policy core.Policy) func(a, b core.ProcessSpec) bool {
	switch policy {
	case core.ShortestJobFirst:
		return shortestJobLess
	case core.PriorityScheduling:
		return priorityLess
	default:
		return firstComeLess
	}
}

// runNonPreemptive drives FCFS, SJF and Priority: at every decision point the
// best ready process (per the comparator) runs its whole burst as one segment.
// An empty ready set emits an idle segment up to the next arrival. The clock
// starts at 0, so a late first arrival yields a leading idle segment.
func runNonPreemptive(specs []core.ProcessSpec, less func(a, b core.ProcessSpec) bool) core.Timeline {
	pending := append([]core.ProcessSpec(nil), specs...)

	now := 0
	timeline := make(core.Timeline, 0, len(specs))
	for len(pending) > 0 {
		best := -1
		for i, s := range pending {
			if s.ArrivalTime > now {
				continue
			}
			if best == -1 || less(s, pending[best]) {
				best = i
			}
		}

		if best == -1 {
			next := nextArrival(pending)
			timeline = append(timeline, core.Segment{ProcessID: core.IdleID, Start: now, End: next})
			now = next
			continue
		}

		selected := pending[best]
		pending = append(pending[:best], pending[best+1:]...)
		timeline = append(timeline, core.Segment{
			ProcessID: selected.ID,
			Start:     now,
			End:       now + selected.BurstTime,
		})
		now += selected.BurstTime
	}
	return timeline
}

// nextArrival is the earliest arrival time among the still-pending processes.
// Only called with a non-empty slice whose arrivals all lie in the future.
func nextArrival(pending []core.ProcessSpec) int {
	next := pending[0].ArrivalTime
	for _, s := range pending[1:] {
		if s.ArrivalTime < next {
			next = s.ArrivalTime
		}
	}
	return next
}
