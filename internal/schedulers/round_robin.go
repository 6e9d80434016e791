package schedulers

import (
	"log"

	"scheduler-project/internal/core"
)

// ScheduleRoundRobin runs the preemptive Round Robin policy over processes,
// mutating them in place and appending execution and idle segments to tl.
//
// The clock starts at the minimum arrival time, so a late first arrival does
// not produce a leading idle block. After each slice, processes that arrived
// during the slice are queued before the preempted process re-joins the back
// of the queue; that ordering is the fairness rule of this variant.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int, tl *core.Timeline) {
	if timeQuantum <= 0 {
		log.Println("round robin: non-positive time quantum, defaulting to 1")
		timeQuantum = 1
	}
	if len(processes) == 0 {
		return
	}
	log.Println("running round robin algorithm with timeQuantum =", timeQuantum)

	now := core.MinArrival(processes)
	queue := core.NewReadyQueue()
	completed := 0

	for completed < len(processes) {
		// Admit everything that has arrived by now.
		for i := range processes {
			if !processes[i].Completed && processes[i].ArrivalTime <= now && !queue.Contains(i) {
				queue.Push(i)
			}
		}

		index, ok := queue.Pop()
		if !ok {
			next, found := core.NextArrival(processes, now)
			if !found {
				break
			}
			tl.AppendOrMerge(core.IdlePid, now, next)
			now = next
			continue
		}

		p := &processes[index]
		sliceStart := now
		run := p.RemainingTime
		if run > timeQuantum {
			run = timeQuantum
		}
		now += run
		p.RemainingTime -= run
		p.Started = true
		tl.AppendOrMerge(p.Pid, sliceStart, now)

		// Anything that arrived during the slice goes in ahead of the
		// preempted process, in arrival order.
		for _, i := range arrivedDuring(processes, sliceStart, now) {
			if i != index && !queue.Contains(i) {
				queue.Push(i)
			}
		}

		if p.RemainingTime == 0 {
			p.Completed = true
			p.CompletionTime = now
			completed++
		} else {
			queue.Push(index)
		}
	}
}

// arrivedDuring returns the indices of not-completed processes with arrival
// time in (sliceStart, sliceEnd], ordered by arrival time.
func arrivedDuring(processes []core.Process, sliceStart, sliceEnd int) []int {
	var arrived []int
	for i := range processes {
		if !processes[i].Completed && processes[i].ArrivalTime > sliceStart && processes[i].ArrivalTime <= sliceEnd {
			arrived = append(arrived, i)
		}
	}
	for a := 1; a < len(arrived); a++ {
		for b := a; b > 0 && processes[arrived[b]].ArrivalTime < processes[arrived[b-1]].ArrivalTime; b-- {
			arrived[b], arrived[b-1] = arrived[b-1], arrived[b]
		}
	}
	return arrived
}
