package schedulers

import (
	"errors"
	"fmt"

	"scheduler-project/internal/core"
	"scheduler-project/internal/util"
)

// Algorithm selects a scheduling policy.
type Algorithm string

const (
	RoundRobin       Algorithm = "round_robin"
	AgingFCFS        Algorithm = "aging_fcfs"
	ShortestJobFirst Algorithm = "sjf"
)

// Algorithms lists every policy, in the order run-all reports them.
var Algorithms = []Algorithm{RoundRobin, AgingFCFS, ShortestJobFirst}

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Options carries per-policy parameters. Zero values select the defaults:
// quantum 1 and the reference aging weights.
type Options struct {
	TimeQuantum int
	Weights     AgingWeights
}

// Result is the outcome of one simulation run: the working copy of the
// process set with derived metrics filled in, the timeline, and the averages.
type Result struct {
	Algorithm             Algorithm
	Processes             []core.Process
	Timeline              core.Timeline
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
}

// Run executes one policy over an independent working copy of processes and
// returns the populated result. The caller's slice is never mutated, so the
// same input can be re-run under every policy from identical conditions.
func Run(algorithm Algorithm, opts Options, processes []core.Process) (Result, error) {
	working := core.CloneProcesses(processes)
	core.ResetProcesses(working)

	var tl core.Timeline
	switch algorithm {
	case RoundRobin:
		ScheduleRoundRobin(working, opts.TimeQuantum, &tl)
	case AgingFCFS:
		weights := opts.Weights
		if weights == (AgingWeights{}) {
			weights = DefaultAgingWeights()
		}
		ScheduleAgingFCFS(working, weights, &tl)
	case ShortestJobFirst:
		ScheduleShortestJobFirst(working, &tl)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	averageWaitingTime, averageTurnAroundTime := util.ComputeMetrics(working)
	return Result{
		Algorithm:             algorithm,
		Processes:             working,
		Timeline:              tl,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
	}, nil
}

// RunAll executes every policy over independent copies of the same input.
func RunAll(opts Options, processes []core.Process) ([]Result, error) {
	results := make([]Result, 0, len(Algorithms))
	for _, algorithm := range Algorithms {
		result, err := Run(algorithm, opts, processes)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
