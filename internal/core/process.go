package core

import "sort"

// Process holds the static inputs of a simulated process together with the
// mutable state an algorithm run works on. ArrivalTime, BurstTime and Priority
// are fixed once loaded; everything else is reset before each run.
// Lower Priority values mean more urgent.
type Process struct {
	Pid         int
	ArrivalTime int
	BurstTime   int
	Priority    int

	RemainingTime  int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	Started        bool
	Completed      bool
}

// CloneProcesses returns an independent working copy of the set. Mutating the
// copy never affects the source; every run must operate on its own clone.
func CloneProcesses(processes []Process) []Process {
	clone := make([]Process, len(processes))
	copy(clone, processes)
	return clone
}

// ResetProcesses restores every record's mutable and derived fields to their
// pre-run defaults without touching the static inputs.
func ResetProcesses(processes []Process) {
	for i := range processes {
		processes[i].RemainingTime = processes[i].BurstTime
		processes[i].CompletionTime = 0
		processes[i].TurnaroundTime = 0
		processes[i].WaitingTime = 0
		processes[i].Started = false
		processes[i].Completed = false
	}
}

// SortByArrival returns a new slice ordered by ascending arrival time.
func SortByArrival(processes []Process) []Process {
	sorted := CloneProcesses(processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})
	return sorted
}

// SortByBurst returns a new slice ordered by ascending burst time.
func SortByBurst(processes []Process) []Process {
	sorted := CloneProcesses(processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BurstTime < sorted[j].BurstTime
	})
	return sorted
}

// SortByPriority returns a new slice ordered by ascending priority value,
// most urgent first.
func SortByPriority(processes []Process) []Process {
	sorted := CloneProcesses(processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return sorted
}

// MinArrival returns the smallest arrival time in the set, or 0 for an empty
// set.
func MinArrival(processes []Process) int {
	if len(processes) == 0 {
		return 0
	}
	min := processes[0].ArrivalTime
	for _, p := range processes[1:] {
		if p.ArrivalTime < min {
			min = p.ArrivalTime
		}
	}
	return min
}

// NextArrival returns the earliest arrival time strictly after now among
// not-completed processes, and whether such a process exists.
func NextArrival(processes []Process, now int) (int, bool) {
	next := 0
	found := false
	for _, p := range processes {
		if p.Completed || p.ArrivalTime <= now {
			continue
		}
		if !found || p.ArrivalTime < next {
			next = p.ArrivalTime
			found = true
		}
	}
	return next, found
}
