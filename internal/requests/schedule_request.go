package requests

import (
	"errors"
	"fmt"

	"scheduler-project/internal/core"
)

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequest struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum only applies to Round Robin; zero means "use the configured
	// default".
	TimeQuantum int `json:"time_quantum,omitempty"`
}

var ErrInvalidJob = errors.New("invalid job")

// Validate rejects jobs the scheduling core is not defined over: non-positive
// burst time, negative arrival time, and duplicate process ids.
func (r *ScheduleRequest) Validate() error {
	seen := make(map[int]bool, len(r.Jobs))
	for _, job := range r.Jobs {
		if job.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d has burst time %d, want > 0", ErrInvalidJob, job.ProcessId, job.BurstTime)
		}
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d has arrival time %d, want >= 0", ErrInvalidJob, job.ProcessId, job.ArrivalTime)
		}
		if seen[job.ProcessId] {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidJob, job.ProcessId)
		}
		seen[job.ProcessId] = true
	}
	return nil
}

// Processes converts the request jobs into core process records.
func (r *ScheduleRequest) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.Process{
			Pid:         job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		}
	}
	return processes
}
