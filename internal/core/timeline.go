package core

// IdlePid marks a timeline segment during which no process runs.
const IdlePid = -1

// Segment is one block of the Gantt chart: a process (or IdlePid) occupying
// the CPU from Start up to but not including End.
type Segment struct {
	Pid   int
	Start int
	End   int
}

// Duration returns the length of the segment.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// Idle reports whether the segment is an idle gap.
func (s Segment) Idle() bool {
	return s.Pid == IdlePid
}

// Timeline is an append-only sequence of execution and idle segments.
// Callers must append with monotonically advancing start times equal to their
// simulated-time cursor; adjacent segments with the same subject are merged.
type Timeline struct {
	segments []Segment
}

// AppendOrMerge records that pid occupied the CPU over [start, end). If the
// last segment belongs to the same pid and touches start, it is extended
// instead of appending a new segment. A zero-length interval is a no-op.
func (t *Timeline) AppendOrMerge(pid, start, end int) {
	if start >= end {
		return
	}
	if n := len(t.segments); n > 0 {
		last := &t.segments[n-1]
		if last.Pid == pid && last.End == start {
			last.End = end
			return
		}
	}
	t.segments = append(t.segments, Segment{Pid: pid, Start: start, End: end})
}

// Segments returns the recorded segments in order.
func (t *Timeline) Segments() []Segment {
	return t.segments
}

// Len returns the number of recorded segments.
func (t *Timeline) Len() int {
	return len(t.segments)
}

// Span returns the start of the first segment and the end of the last one.
// Both are 0 for an empty timeline.
func (t *Timeline) Span() (start, end int) {
	if len(t.segments) == 0 {
		return 0, 0
	}
	return t.segments[0].Start, t.segments[len(t.segments)-1].End
}

// IdleTime returns the total duration of idle segments.
func (t *Timeline) IdleTime() int {
	total := 0
	for _, s := range t.segments {
		if s.Idle() {
			total += s.Duration()
		}
	}
	return total
}
