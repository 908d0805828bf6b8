package util

import "github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/core"

// CalculateAverage computes the arithmetic means of the waiting, response and
// turnaround times over a run's process results.
func CalculateAverage(results []core.ProcessResult) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, result := range results {
		waitingTimeSum += float64(result.WaitingTime)
		responseTimeSum += float64(result.ResponseTime)
		turnAroundTimeSum += float64(result.TurnAroundTime)
	}

	processCount := float64(len(results))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}
