// Package report renders simulation results for a terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

var (
	bold     = color.New(color.Bold).SprintFunc()
	dim      = color.New(color.Faint).SprintFunc()
	boldCyan = color.New(color.Bold, color.FgCyan).SprintFunc()
	green    = color.New(color.FgGreen).SprintFunc()
	yellow   = color.New(color.FgYellow).SprintFunc()
)

// PrintResult writes the Gantt chart, the per-process table and the metrics
// of one run. With showTimeline the raw intervals are listed as well.
func PrintResult(w io.Writer, res responses.ScheduleResponse, showTimeline bool) {
	title := res.Algorithm
	if res.Quantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, res.Quantum)
	}
	printTitle(w, title)

	fmt.Fprintln(w, bold("Gantt chart"))
	fmt.Fprintln(w, GanttChart(res.Timeline))

	rows := make([][]string, 0, len(res.Details))
	for _, d := range res.Details {
		rows = append(rows, []string{
			d.ProcessId,
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.ResponseTime),
			strconv.Itoa(d.CompletionTime),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "Average",
		fmt.Sprintf("%.2f", res.Metrics.AverageWaitingTime),
		fmt.Sprintf("%.2f", res.Metrics.AverageTurnAroundTime),
		fmt.Sprintf("%.2f", res.Metrics.AverageResponseTime),
		""})
	table.Render()

	fmt.Fprintf(w, "%s %s   %s %s   %s %s   %s %d   %s %d\n",
		dim("utilization"), green(fmt.Sprintf("%.2f%%", res.Metrics.CpuUtilization)),
		dim("throughput"), green(fmt.Sprintf("%.4f/t", res.Metrics.CpuThroughput)),
		dim("makespan"), green(strconv.Itoa(res.TotalTime)),
		dim("idle"), res.IdleTime,
		dim("context switches"), res.ContextSwitches)

	if showTimeline {
		fmt.Fprintln(w)
		fmt.Fprintln(w, bold("Timeline"))
		timeline := tablewriter.NewWriter(w)
		timeline.SetHeader([]string{"#", "Process", "Start", "End", "Duration"})
		for i, iv := range res.Timeline {
			timeline.Append([]string{
				strconv.Itoa(i + 1),
				iv.ProcessId,
				strconv.Itoa(iv.Start),
				strconv.Itoa(iv.End),
				strconv.Itoa(iv.End - iv.Start),
			})
		}
		timeline.Render()
	}
	fmt.Fprintln(w)
}

// PrintComparison writes one row per run so policies can be compared.
func PrintComparison(w io.Writer, results []responses.ScheduleResponse) {
	printTitle(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg wait", "Avg turnaround", "Avg response", "Utilization", "Throughput", "Switches"})
	best := bestByWaiting(results)
	for i, res := range results {
		name := res.Algorithm
		if i == best {
			name += " *"
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f", res.Metrics.AverageWaitingTime),
			fmt.Sprintf("%.2f", res.Metrics.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", res.Metrics.AverageResponseTime),
			fmt.Sprintf("%.2f%%", res.Metrics.CpuUtilization),
			fmt.Sprintf("%.4f", res.Metrics.CpuThroughput),
			strconv.Itoa(res.ContextSwitches),
		})
	}
	table.Render()
	fmt.Fprintln(w, dim("* lowest average waiting time"))
}

func PrintRecommendation(w io.Writer, rec responses.RecommendResponse) {
	label := green(rec.Algorithm)
	if rec.Fallback {
		label = yellow(rec.Algorithm + " (fallback)")
	}
	fmt.Fprintf(w, "%s %s\n", bold("Recommended algorithm:"), label)
	if rec.Reason != "" {
		fmt.Fprintf(w, "%s %s\n", dim("reason:"), rec.Reason)
	}
}

// GanttChart draws the timeline as a single bar with the time axis below.
// Gaps between intervals are drawn as idle cells.
func GanttChart(timeline []responses.IntervalResponse) string {
	if len(timeline) == 0 {
		return "(empty timeline)\n"
	}

	type cell struct {
		label      string
		start, end int
	}
	cells := make([]cell, 0, len(timeline))
	prev := 0
	for _, iv := range timeline {
		if iv.Start > prev {
			cells = append(cells, cell{label: "idle", start: prev, end: iv.Start})
		}
		cells = append(cells, cell{label: iv.ProcessId, start: iv.Start, end: iv.End})
		prev = iv.End
	}

	var bar, axis strings.Builder
	bar.WriteString("|")
	for _, c := range cells {
		width := len(c.label) + 2
		if n := len(strconv.Itoa(c.start)) + 1; n > width {
			width = n
		}
		bar.WriteString(center(c.label, width))
		bar.WriteString("|")
		axis.WriteString(fmt.Sprintf("%-*d", width+1, c.start))
	}
	axis.WriteString(strconv.Itoa(cells[len(cells)-1].end))

	return bar.String() + "\n" + axis.String() + "\n"
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, boldCyan(title))
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
}

func bestByWaiting(results []responses.ScheduleResponse) int {
	best := -1
	for i, res := range results {
		if best == -1 || res.Metrics.AverageWaitingTime < results[best].Metrics.AverageWaitingTime {
			best = i
		}
	}
	return best
}
