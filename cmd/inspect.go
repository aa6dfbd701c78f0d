package cmd

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim/trace"
)

var (
	inspectDBPath string
	inspectRunID  string
)

// inspectCmd summarizes a stored trace: a CSV file written by --trace-csv,
// or one run of a database written by --trace-db (the latest unless --run is given).
var inspectCmd = &cobra.Command{
	Use:   "inspect [trace.csv] | --db <file> [--run <id>]",
	Short: "Summarize a stored scheduling trace",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		st, err := loadStoredTrace(args, inspectDBPath, inspectRunID)
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}
		if err := printTraceSummary(cmd.OutOrStdout(), trace.Summarize(st)); err != nil {
			logrus.Fatalf("Writing output failed: %v", err)
		}
	},
}

func loadStoredTrace(args []string, dbPath, runID string) (*trace.SimulationTrace, error) {
	st := &trace.SimulationTrace{}
	switch {
	case dbPath != "":
		r, err := trace.OpenSQLiteReadOnly(dbPath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = r.Close() }()
		if runID == "" {
			if runID, err = r.LatestRun(); err != nil {
				return nil, err
			}
			logrus.Infof("Inspecting latest run %s", runID)
		}
		if st.Events, err = r.ReadRun(runID); err != nil {
			return nil, err
		}
		if len(st.Events) == 0 {
			return nil, fmt.Errorf("run %q not found in %s", runID, dbPath)
		}
	case len(args) == 1:
		records, err := trace.LoadCSV(args[0])
		if err != nil {
			return nil, err
		}
		st.Events = records
	default:
		return nil, errors.New("give a trace CSV file or --db")
	}
	return st, nil
}

func printTraceSummary(w io.Writer, ts *trace.TraceSummary) error {
	if _, err := fmt.Fprintf(w, "%d events: %d arrivals, %d dispatches, %d preemptions, %d completions, %d idle ticks\n\n",
		ts.TotalEvents, ts.Arrivals, ts.Dispatches, ts.Preemptions, ts.Completions, ts.IdleTicks); err != nil {
		return err
	}

	names := make([]string, 0, len(ts.DispatchDist))
	for name := range ts.DispatchDist {
		names = append(names, name)
	}
	slices.Sort(names)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, strconv.Itoa(ts.DispatchDist[name])})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Dispatches"})
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func init() {
	inspectCmd.Flags().StringVar(&inspectDBPath, "db", "", "SQLite trace database written by run --trace-db")
	inspectCmd.Flags().StringVar(&inspectRunID, "run", "", "Run ID inside the database (default: the latest run)")
	rootCmd.AddCommand(inspectCmd)
}
