package schedulers

import (
	"sort"

	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/core"
)

// ScheduleRoundRobin simulates the Round-Robin policy with the given quantum.
func ScheduleRoundRobin(specs []core.ProcessSpec, timeQuantum int) (core.Timeline, []core.ProcessResult, core.AggregateMetrics, error) {
	return Simulate(specs, core.PolicyConfig{Policy: core.RoundRobin, Quantum: timeQuantum})
}

// runRoundRobin drives the FIFO time-slicing loop. Each selection runs for
// min(quantum, remaining); processes that arrive during a slice are admitted
// to the queue before the preempted process is re-enqueued at the tail.
func runRoundRobin(specs []core.ProcessSpec, quantum int) core.Timeline {
	// Admission order: arrival time, id as tie-break.
	arrivals := append([]core.ProcessSpec(nil), specs...)
	sort.SliceStable(arrivals, func(i, j int) bool {
		return firstComeLess(arrivals[i], arrivals[j])
	})

	remaining := make(map[int]int, len(arrivals))
	for _, s := range arrivals {
		remaining[s.ID] = s.BurstTime
	}

	var queue []core.ProcessSpec
	unadmitted := 0
	admit := func(now int) {
		for unadmitted < len(arrivals) && arrivals[unadmitted].ArrivalTime <= now {
			queue = append(queue, arrivals[unadmitted])
			unadmitted++
		}
	}

	now := 0
	completed := 0
	var timeline core.Timeline
	for completed < len(arrivals) {
		admit(now)
		if len(queue) == 0 {
			next := arrivals[unadmitted].ArrivalTime
			timeline = append(timeline, core.Segment{ProcessID: core.IdleID, Start: now, End: next})
			now = next
			continue
		}

		selected := queue[0]
		queue = queue[1:]
		slice := min(quantum, remaining[selected.ID])
		timeline = append(timeline, core.Segment{
			ProcessID: selected.ID,
			Start:     now,
			End:       now + slice,
		})
		now += slice
		remaining[selected.ID] -= slice

		// New arrivals during the slice go ahead of the preempted process.
		admit(now)
		if remaining[selected.ID] > 0 {
			queue = append(queue, selected)
		} else {
			completed++
		}
	}
	return timeline
}
