package core

// ReadyQueue is a FIFO of process indices with constant-time membership
// lookup, so an index is never queued twice.
type ReadyQueue struct {
	items  []int
	queued map[int]bool
}

func NewReadyQueue() *ReadyQueue {
	return &ReadyQueue{queued: make(map[int]bool)}
}

// Push appends index to the back of the queue. Pushing an index that is
// already queued is a no-op.
func (q *ReadyQueue) Push(index int) {
	if q.queued[index] {
		return
	}
	q.items = append(q.items, index)
	q.queued[index] = true
}

// Pop removes and returns the index at the front of the queue. The second
// return value is false when the queue is empty.
func (q *ReadyQueue) Pop() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	index := q.items[0]
	q.items = q.items[1:]
	delete(q.queued, index)
	return index, true
}

// Contains reports whether index is currently queued.
func (q *ReadyQueue) Contains(index int) bool {
	return q.queued[index]
}

// Len returns the number of queued indices.
func (q *ReadyQueue) Len() int {
	return len(q.items)
}

// Empty reports whether the queue holds no indices.
func (q *ReadyQueue) Empty() bool {
	return len(q.items) == 0
}
