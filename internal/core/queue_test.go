package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadyQueueFIFO(t *testing.T) {
	q := NewReadyQueue()
	q.Push(2)
	q.Push(0)
	q.Push(1)

	for _, want := range []int{2, 0, 1} {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestReadyQueueNoDuplicates(t *testing.T) {
	q := NewReadyQueue()
	q.Push(3)
	q.Push(3)
	assert.Equal(t, 1, q.Len())
	assert.True(t, q.Contains(3))

	got, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, got)
	assert.False(t, q.Contains(3))

	// Popped indices may be queued again.
	q.Push(3)
	assert.Equal(t, 1, q.Len())
}

func TestReadyQueueEmpty(t *testing.T) {
	q := NewReadyQueue()
	assert.True(t, q.Empty())
	q.Push(0)
	assert.False(t, q.Empty())
}
