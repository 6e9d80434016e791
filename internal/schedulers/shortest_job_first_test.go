package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scheduler-project/internal/core"
)

func TestShortestJobFirstDispatchOrder(t *testing.T) {
	// At t=0 only P1 has arrived and runs to 5; then P3's burst of 1 beats
	// P2's burst of 3.
	processes := []core.Process{
		{Pid: 1, ArrivalTime: 0, BurstTime: 5, RemainingTime: 5},
		{Pid: 2, ArrivalTime: 1, BurstTime: 3, RemainingTime: 3},
		{Pid: 3, ArrivalTime: 2, BurstTime: 1, RemainingTime: 1},
	}
	var tl core.Timeline
	ScheduleShortestJobFirst(processes, &tl)

	assert.Equal(t, []core.Segment{
		{Pid: 1, Start: 0, End: 5},
		{Pid: 3, Start: 5, End: 6},
		{Pid: 2, Start: 6, End: 9},
	}, tl.Segments())

	assert.Equal(t, 5, processes[0].CompletionTime)
	assert.Equal(t, 9, processes[1].CompletionTime)
	assert.Equal(t, 6, processes[2].CompletionTime)
}

func TestShortestJobFirstLeadingIdleSegment(t *testing.T) {
	processes := []core.Process{{Pid: 1, ArrivalTime: 3, BurstTime: 2, RemainingTime: 2}}
	var tl core.Timeline
	ScheduleShortestJobFirst(processes, &tl)

	assert.Equal(t, []core.Segment{
		{Pid: core.IdlePid, Start: 0, End: 3},
		{Pid: 1, Start: 3, End: 5},
	}, tl.Segments())
}

func TestShortestJobFirstTieBreaksByArrival(t *testing.T) {
	// Equal bursts: earlier arrival wins; priority is never consulted.
	processes := []core.Process{
		{Pid: 1, ArrivalTime: 2, BurstTime: 4, Priority: 0, RemainingTime: 4},
		{Pid: 2, ArrivalTime: 1, BurstTime: 4, Priority: 9, RemainingTime: 4},
	}
	var tl core.Timeline
	ScheduleShortestJobFirst(processes, &tl)

	segs := tl.Segments()
	assert.Equal(t, 2, segs[1].Pid)
	assert.Equal(t, 1, segs[2].Pid)
}

func TestShortestJobFirstIgnoresLateShortJob(t *testing.T) {
	// Non-preemptive: a short job arriving mid-execution waits for the
	// running process to finish.
	processes := []core.Process{
		{Pid: 1, ArrivalTime: 0, BurstTime: 10, RemainingTime: 10},
		{Pid: 2, ArrivalTime: 1, BurstTime: 1, RemainingTime: 1},
	}
	var tl core.Timeline
	ScheduleShortestJobFirst(processes, &tl)

	assert.Equal(t, []core.Segment{
		{Pid: 1, Start: 0, End: 10},
		{Pid: 2, Start: 10, End: 11},
	}, tl.Segments())
}
