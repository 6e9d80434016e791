package schedulers

import (
	"log"

	"scheduler-project/internal/core"
)

// ScheduleShortestJobFirst runs the non-preemptive SJF policy: at every
// dispatch point the arrived process with the smallest burst time runs to
// completion in a single segment, ties broken by earlier arrival. Priority is
// never consulted. Like aging FCFS, the clock starts at 0.
func ScheduleShortestJobFirst(processes []core.Process, tl *core.Timeline) {
	log.Println("running sjf algorithm")
	now := 0
	completed := 0

	for completed < len(processes) {
		best := -1
		for i := range processes {
			p := &processes[i]
			if p.Completed || p.ArrivalTime > now {
				continue
			}
			if best < 0 ||
				p.BurstTime < processes[best].BurstTime ||
				(p.BurstTime == processes[best].BurstTime && p.ArrivalTime < processes[best].ArrivalTime) {
				best = i
			}
		}

		if best < 0 {
			next, found := core.NextArrival(processes, now)
			if !found {
				break
			}
			tl.AppendOrMerge(core.IdlePid, now, next)
			now = next
			continue
		}

		p := &processes[best]
		p.Started = true
		tl.AppendOrMerge(p.Pid, now, now+p.BurstTime)
		now += p.BurstTime
		p.RemainingTime = 0
		p.Completed = true
		p.CompletionTime = now
		completed++
	}
}
