package responses

import "github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/core"

// SegmentResponse is one Gantt-chart entry. ProcessId is -1 for idle gaps.
type SegmentResponse struct {
	ProcessId int  `json:"process_id"`
	Idle      bool `json:"idle,omitempty"`
	StartTime int  `json:"start_time"`
	EndTime   int  `json:"end_time"`
}

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	GanttChart            []SegmentResponse `json:"gantt_chart"`
	Details               []ProcessResponse `json:"details"`
}

// FromSimulation maps one engine run onto the wire shape.
func FromSimulation(algorithm string, timeline core.Timeline, results []core.ProcessResult, aggregate core.AggregateMetrics) ScheduleResponse {
	gantt := make([]SegmentResponse, 0, len(timeline))
	for _, segment := range timeline {
		gantt = append(gantt, SegmentResponse{
			ProcessId: segment.ProcessID,
			Idle:      segment.Idle(),
			StartTime: segment.Start,
			EndTime:   segment.End,
		})
	}

	details := make([]ProcessResponse, 0, len(results))
	for _, result := range results {
		details = append(details, ProcessResponse{
			ProcessId:      result.ID,
			CompletionTime: result.CompletionTime,
			ResponseTime:   result.ResponseTime,
			TurnAroundTime: result.TurnAroundTime,
			WaitingTime:    result.WaitingTime,
		})
	}

	return ScheduleResponse{
		Algorithm:             algorithm,
		TotalTime:             timeline.TotalTime(),
		IdleTime:              timeline.IdleTime(),
		AverageWaitingTime:    aggregate.AverageWaitingTime,
		AverageResponseTime:   aggregate.AverageResponseTime,
		AverageTurnAroundTime: aggregate.AverageTurnAroundTime,
		CpuUtilization:        aggregate.CPUUtilization,
		CpuThroughput:         aggregate.Throughput,
		GanttChart:            gantt,
		Details:               details,
	}
}
