package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
)

var validFormats = []string{formatText, formatTable, formatJSON}

func isValidFormat(name string) bool {
	return slices.Contains(validFormats, name)
}

func validFormatNames() string {
	return strings.Join(validFormats, ", ")
}

// render writes res to w in the named format.
func render(w io.Writer, format string, res *runResult) error {
	switch format {
	case formatText:
		return printText(w, res)
	case formatTable:
		return printTable(w, res)
	case formatJSON:
		return printJSON(w, res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// algorithmLabel is the "Using ..." wording of the text report.
func algorithmLabel(alg sim.Algorithm, quantum int64) string {
	if alg == sim.AlgorithmRR {
		return fmt.Sprintf("%s with quantum %d", alg.Label(), quantum)
	}
	return alg.Label()
}

// formatEvent renders one trace line as "Time %3d : ...".
func formatEvent(e sim.Event) string {
	switch e.Kind {
	case sim.EventIdle:
		return fmt.Sprintf("Time %3d : Idle", e.Tick)
	case sim.EventSelected:
		return fmt.Sprintf("Time %3d : %s selected (burst %d)", e.Tick, e.Process, e.Remaining)
	default:
		return fmt.Sprintf("Time %3d : %s %s", e.Tick, e.Process, e.Kind)
	}
}

// printText writes the trace followed by the summary block.
func printText(w io.Writer, res *runResult) error {
	var b strings.Builder
	for _, e := range res.Events {
		b.WriteString(formatEvent(e))
		b.WriteByte('\n')
	}
	sum := res.Summary
	fmt.Fprintf(&b, "%d processes\n", sum.ProcessCount)
	fmt.Fprintf(&b, "Using %s\n", algorithmLabel(sum.Algorithm, sum.Quantum))
	fmt.Fprintf(&b, "Finished at time %d\n", sum.RunFor)
	for _, m := range sum.Processes {
		if !m.Finished {
			fmt.Fprintf(&b, "%s did not finish\n", m.Name)
			continue
		}
		fmt.Fprintf(&b, "%s wait %d turnaround %d response %d\n", m.Name, m.Wait, m.Turnaround, m.Response)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// printTable writes the per-process summary as a table with averages in the footer.
func printTable(w io.Writer, res *runResult) error {
	sum := res.Summary
	fmt.Fprintf(w, "%d processes, using %s, runfor %d\n\n",
		sum.ProcessCount, algorithmLabel(sum.Algorithm, sum.Quantum), sum.RunFor)

	rows := make([][]string, 0, len(sum.Processes))
	for _, m := range sum.Processes {
		row := []string{m.Name, strconv.FormatInt(m.Arrival, 10), strconv.FormatInt(m.Burst, 10)}
		if m.Finished {
			row = append(row,
				strconv.FormatInt(m.Wait, 10),
				strconv.FormatInt(m.Turnaround, 10),
				strconv.FormatInt(m.Response, 10),
				strconv.FormatInt(m.FinishTime, 10))
		} else {
			row = append(row, "-", "-", "-", "did not finish")
		}
		rows = append(rows, row)
	}

	wait, turnaround, response := sum.Averages()
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Arrival", "Burst", "Wait", "Turnaround", "Response", "Finish"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", wait),
		fmt.Sprintf("Average\n%.2f", turnaround),
		fmt.Sprintf("Average\n%.2f", response),
		fmt.Sprintf("Throughput\n%.2f/t", sum.Throughput())})
	table.Render()

	ts := trace.Summarize(recordTrace(res))
	_, err := fmt.Fprintf(w, "CPU utilization %.1f%% (%d idle ticks), %d dispatches, %d preemptions\n",
		100*sum.Utilization(), ts.IdleTicks, ts.Dispatches, ts.Preemptions)
	return err
}

// jsonReport is the document written by the json format.
type jsonReport struct {
	Run     trace.RunInfo       `json:"run"`
	Events  []trace.EventRecord `json:"events"`
	Summary *sim.Summary        `json:"summary"`
}

func printJSON(w io.Writer, res *runResult) error {
	st := recordTrace(res)
	data, err := json.MarshalIndent(jsonReport{Run: st.Run, Events: st.Events, Summary: res.Summary}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
