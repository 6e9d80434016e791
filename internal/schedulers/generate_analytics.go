package schedulers

import (
	"scheduler-project/internal/responses"
)

// GenerateResponse converts a run result into the wire response, deriving
// total time, idle time, utilization and throughput from the timeline.
func GenerateResponse(result Result) responses.ScheduleResponse {
	start, end := result.Timeline.Span()
	totalTime := end - start
	idleTime := result.Timeline.IdleTime()

	var utilization, throughput float64
	if totalTime > 0 {
		utilization = 1 - float64(idleTime)/float64(totalTime)
		throughput = float64(len(result.Processes)) / float64(totalTime)
	}

	gantt := make([]responses.SegmentResponse, 0, result.Timeline.Len())
	for _, segment := range result.Timeline.Segments() {
		gantt = append(gantt, responses.SegmentResponse{
			ProcessId: segment.Pid,
			StartTime: segment.Start,
			EndTime:   segment.End,
		})
	}

	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, responses.ProcessResponse{
			ProcessId:      p.Pid,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			CompletionTime: p.CompletionTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
		})
	}

	return responses.ScheduleResponse{
		Algorithm:             string(result.Algorithm),
		TotalTime:             totalTime,
		IdleTime:              idleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageTurnAroundTime: result.AverageTurnAroundTime,
		Gantt:                 gantt,
		Details:               details,
	}
}
