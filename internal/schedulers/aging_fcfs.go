package schedulers

import (
	"log"
	"math"

	"scheduler-project/internal/core"
)

// AgingWeights tunes the aging-weighted FCFS selection score. The score of an
// arrived process is
//
//	wait*Aging - burst*Burst - priority*Priority
//
// so long waits raise a process's claim on the CPU while long bursts and high
// (numerically large, less urgent) priority values lower it.
type AgingWeights struct {
	Aging    float64
	Burst    float64
	Priority float64
	// Tolerance is the minimum score improvement that counts as strictly
	// better; score differences within it are ties, broken by arrival time.
	Tolerance float64
}

// DefaultAgingWeights returns the reference weight set.
func DefaultAgingWeights() AgingWeights {
	return AgingWeights{Aging: 2.0, Burst: 0.5, Priority: 3.0, Tolerance: 0.001}
}

func (w AgingWeights) score(p *core.Process, now int) float64 {
	wait := float64(now - p.ArrivalTime)
	return wait*w.Aging - float64(p.BurstTime)*w.Burst - float64(p.Priority)*w.Priority
}

// ScheduleAgingFCFS runs the non-preemptive aging-weighted FCFS policy:
// at every dispatch point the arrived process with the best score runs to
// completion in a single segment. The aging term prevents starvation.
//
// Unlike Round Robin the clock starts at 0, so a late first arrival produces
// a leading idle segment.
func ScheduleAgingFCFS(processes []core.Process, weights AgingWeights, tl *core.Timeline) {
	log.Println("running aging-weighted fcfs algorithm")
	now := 0
	completed := 0

	for completed < len(processes) {
		best := -1
		var bestScore float64
		for i := range processes {
			p := &processes[i]
			if p.Completed || p.ArrivalTime > now {
				continue
			}
			score := weights.score(p, now)
			switch {
			case best < 0:
				best = i
				bestScore = score
			case score > bestScore+weights.Tolerance:
				best = i
				bestScore = score
			case math.Abs(score-bestScore) <= weights.Tolerance && p.ArrivalTime < processes[best].ArrivalTime:
				// Tied within tolerance: earlier arrival wins, the
				// reference score stays put.
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
