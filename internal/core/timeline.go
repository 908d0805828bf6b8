package core

// IdleID marks a segment during which no process was runnable. ValidateSpecs
// rejects negative process ids, so the sentinel never collides with a real one.
const IdleID = -1

// Segment is one contiguous slot of the schedule: either a run of one process
// or an idle gap. End is exclusive and always greater than Start.
type Segment struct {
	ProcessID int
	Start     int
	End       int
}

func (s Segment) Idle() bool { return s.ProcessID == IdleID }

func (s Segment) Duration() int { return s.End - s.Start }

// Timeline is the ordered, contiguous sequence of segments produced by one
// simulation run. Segment i's End equals segment i+1's Start.
type Timeline []Segment

// TotalTime is the elapsed span covered by the timeline.
func (t Timeline) TotalTime() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End - t[0].Start
}

// BusyTime is the sum of non-idle segment durations.
func (t Timeline) BusyTime() int {
	busy := 0
	for _, s := range t {
		if !s.Idle() {
			busy += s.Duration()
		}
	}
	return busy
}

// IdleTime is the sum of idle segment durations.
func (t Timeline) IdleTime() int { return t.TotalTime() - t.BusyTime() }

// AggregateMetrics summarizes one simulation run across all processes.
type AggregateMetrics struct {
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	AverageResponseTime   float64
	CPUUtilization        float64 // busy time / (last end - earliest arrival)
	Throughput            float64 // processes completed per unit of elapsed time
}
