package util

import "scheduler-project/internal/core"

// ComputeMetrics recomputes turnaround and waiting time for every process
// from its completion time and returns the averages over the set. The
// recomputation makes repeated calls idempotent.
//
// Every process must already be completed with a valid completion time;
// otherwise the derived values are meaningless. Callers must not average an
// empty set — for len(processes) == 0 both averages are returned as 0.
func ComputeMetrics(processes []core.Process) (averageWaitingTime, averageTurnAroundTime float64) {
	if len(processes) == 0 {
		return 0, 0
	}

	var waitingTimeSum int
	var turnAroundTimeSum int
	for i := range processes {
		p := &processes[i]
		p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
		p.WaitingTime = p.TurnaroundTime - p.BurstTime
		waitingTimeSum += p.WaitingTime
		turnAroundTimeSum += p.TurnaroundTime
	}

	processCount := float64(len(processes))
	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / processCount
	return averageWaitingTime, averageTurnAroundTime
}
