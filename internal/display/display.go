package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"scheduler-project/internal/core"
	"scheduler-project/internal/schedulers"
)

// WriteProcessTable renders the loaded process set.
func WriteProcessTable(w io.Writer, processes []core.Process) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority"})
	for _, p := range processes {
		table.Append([]string{
			fmt.Sprint(p.Pid),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Priority),
		})
	}
	table.Render()
	fmt.Fprintf(w, "Total: %d processes\n", len(processes))
}

// WriteResult renders one run: the Gantt chart followed by the per-process
// metrics table with average footers.
func WriteResult(w io.Writer, result schedulers.Result) {
	fmt.Fprintf(w, "===== %s =====\n\n", strings.ToUpper(string(result.Algorithm)))
	WriteGanttChart(w, &result.Timeline)

	rows := make([][]string, 0, len(result.Processes))
	for _, p := range result.Processes {
		rows = append(rows, []string{
			fmt.Sprint(p.Pid),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.WaitingTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("avg %.2f", result.AverageTurnAroundTime),
		fmt.Sprintf("avg %.2f", result.AverageWaitingTime)})
	table.Render()
	fmt.Fprintln(w)
}

// WriteGanttChart renders the timeline as an ASCII chart with a time ruler,
// idle gaps shown as IDLE blocks.
func WriteGanttChart(w io.Writer, tl *core.Timeline) {
	segments := tl.Segments()
	if len(segments) == 0 {
		fmt.Fprintln(w, "No Gantt chart data to display.")
		return
	}

	labels := make([]string, len(segments))
	widths := make([]int, len(segments))
	for i, s := range segments {
		if s.Idle() {
			labels[i] = "IDLE"
		} else {
			labels[i] = fmt.Sprintf("P%d", s.Pid)
		}
		widths[i] = 2 * s.Duration()
		if widths[i] < len(labels[i])+2 {
			widths[i] = len(labels[i]) + 2
		}
	}

	var border strings.Builder
	border.WriteByte('+')
	for _, width := range widths {
		border.WriteString(strings.Repeat("-", width))
		border.WriteByte('+')
	}

	fmt.Fprintln(w, border.String())
	fmt.Fprint(w, "|")
	for i, label := range labels {
		pad := widths[i] - len(label)
		left := pad / 2
		fmt.Fprint(w, strings.Repeat(" ", left), label, strings.Repeat(" ", pad-left), "|")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, border.String())

	// Ruler: each segment boundary gets its time stamp.
	fmt.Fprint(w, segments[0].Start)
	cursor := len(fmt.Sprint(segments[0].Start))
	edge := 0
	for i, s := range segments {
		edge += widths[i] + 1
		stamp := fmt.Sprint(s.End)
		if pad := edge - cursor - len(stamp) + 1; pad > 0 {
			fmt.Fprint(w, strings.Repeat(" ", pad))
			cursor += pad
		}
		fmt.Fprint(w, stamp)
		cursor += len(stamp)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)
}
