package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduler-project/internal/core"
	"scheduler-project/internal/schedulers"
)

func TestWriteGanttChart(t *testing.T) {
	var tl core.Timeline
	tl.AppendOrMerge(core.IdlePid, 0, 3)
	tl.AppendOrMerge(1, 3, 5)
	tl.AppendOrMerge(2, 5, 9)

	var buf bytes.Buffer
	WriteGanttChart(&buf, &tl)
	out := buf.String()

	assert.Contains(t, out, "IDLE")
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P2")
	assert.Contains(t, out, "9", "ruler shows the final boundary")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "+"))
	assert.True(t, strings.HasPrefix(lines[1], "|"))
}

func TestWriteGanttChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteGanttChart(&buf, &core.Timeline{})
	assert.Contains(t, buf.String(), "No Gantt chart data")
}

func TestWriteProcessTable(t *testing.T) {
	var buf bytes.Buffer
	WriteProcessTable(&buf, []core.Process{
		{Pid: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{Pid: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
	})
	out := buf.String()

	assert.Contains(t, out, "PID")
	assert.Contains(t, out, "Total: 2 processes")
}

func TestWriteResult(t *testing.T) {
	result, err := schedulers.Run(schedulers.ShortestJobFirst, schedulers.Options{}, []core.Process{
		{Pid: 1, ArrivalTime: 0, BurstTime: 5},
		{Pid: 2, ArrivalTime: 1, BurstTime: 3},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteResult(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "SJF")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "avg")
}
