package requests

import "github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/core"

// Job is the wire shape of one process specification.
type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

// ScheduleRequest carries a batch of jobs plus the Round-Robin quantum.
// TimeQuantum 0 means "use the configured default".
type ScheduleRequest struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum"`
}

// Specs converts the wire jobs into engine process specs, preserving order.
// Validation happens inside the engine, not here.
func (r *ScheduleRequest) Specs() []core.ProcessSpec {
	specs := make([]core.ProcessSpec, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		specs = append(specs, core.ProcessSpec{
			ID:          job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		})
	}
	return specs
}
