package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendOrMergeExtendsSameSubject(t *testing.T) {
	var tl Timeline
	tl.AppendOrMerge(1, 0, 2)
	tl.AppendOrMerge(1, 2, 5)

	require.Equal(t, 1, tl.Len())
	assert.Equal(t, Segment{Pid: 1, Start: 0, End: 5}, tl.Segments()[0])
}

func TestAppendOrMergeNewSubject(t *testing.T) {
	var tl Timeline
	tl.AppendOrMerge(1, 0, 2)
	tl.AppendOrMerge(2, 2, 4)
	tl.AppendOrMerge(1, 4, 6)

	require.Equal(t, 3, tl.Len())
	assert.Equal(t, []Segment{
		{Pid: 1, Start: 0, End: 2},
		{Pid: 2, Start: 2, End: 4},
		{Pid: 1, Start: 4, End: 6},
	}, tl.Segments())
}

func TestAppendOrMergeIdleRuns(t *testing.T) {
	var tl Timeline
	tl.AppendOrMerge(IdlePid, 0, 2)
	tl.AppendOrMerge(IdlePid, 2, 3)

	require.Equal(t, 1, tl.Len())
	assert.True(t, tl.Segments()[0].Idle())
	assert.Equal(t, 3, tl.Segments()[0].Duration())
}

func TestAppendOrMergeZeroLengthIsNoop(t *testing.T) {
	var tl Timeline
	tl.AppendOrMerge(1, 3, 3)
	assert.Zero(t, tl.Len())

	tl.AppendOrMerge(1, 0, 2)
	tl.AppendOrMerge(1, 2, 2)
	require.Equal(t, 1, tl.Len())
	assert.Equal(t, 2, tl.Segments()[0].End)
}

func TestAppendOrMergeNoMergeAcrossGap(t *testing.T) {
	var tl Timeline
	tl.AppendOrMerge(1, 0, 2)
	tl.AppendOrMerge(1, 5, 6)
	assert.Equal(t, 2, tl.Len())
}

func TestTimelineSpanAndIdleTime(t *testing.T) {
	var tl Timeline
	start, end := tl.Span()
	assert.Zero(t, start)
	assert.Zero(t, end)
	assert.Zero(t, tl.IdleTime())

	tl.AppendOrMerge(IdlePid, 0, 3)
	tl.AppendOrMerge(1, 3, 5)
	tl.AppendOrMerge(IdlePid, 5, 6)
	tl.AppendOrMerge(2, 6, 9)

	start, end = tl.Span()
	assert.Zero(t, start)
	assert.Equal(t, 9, end)
	assert.Equal(t, 4, tl.IdleTime())
}
