package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

func TestPrintText_RoundRobin_MatchesReportFormat(t *testing.T) {
	// GIVEN a finished round robin run
	res, err := simulate(scenarioPath("rr_two.in"))
	require.NoError(t, err)

	// WHEN rendered as text
	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatText, res))

	// THEN the output is the trace followed by the summary block
	want := strings.Join([]string{
		"Time   0 : A arrived",
		"Time   0 : A selected (burst 5)",
		"Time   1 : B arrived",
		"Time   2 : B selected (burst 3)",
		"Time   4 : A selected (burst 3)",
		"Time   6 : B selected (burst 1)",
		"Time   7 : B finished",
		"Time   7 : A selected (burst 1)",
		"Time   8 : A finished",
		"Time   8 : Idle",
		"Time   9 : Idle",
		"2 processes",
		"Using Round Robin with quantum 2",
		"Finished at time 10",
		"A wait 3 turnaround 8 response 0",
		"B wait 3 turnaround 6 response 1",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintText_SJF_PreemptionAndLabel(t *testing.T) {
	res, err := simulate(scenarioPath("sjf_preempt.in"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printText(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "Time   2 : A preempted\nTime   2 : B selected (burst 2)\n")
	assert.Contains(t, out, "Using Sjf\n")
	assert.Contains(t, out, "C wait 1 turnaround 2 response 1\n")
}

func TestPrintText_UnfinishedProcesses(t *testing.T) {
	res, err := simulate(scenarioPath("rr_unfinished.yaml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printText(&buf, res))

	out := buf.String()
	for _, name := range []string{"A", "B", "C"} {
		assert.Contains(t, out, name+" did not finish\n")
	}
	assert.Contains(t, out, "Finished at time 6\n")
}

func TestPrintTable_ContainsRowsAndAverages(t *testing.T) {
	res, err := simulate(scenarioPath("fcfs_late.in"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatTable, res))

	out := buf.String()
	assert.Contains(t, out, "3 processes, using Fcfs, runfor 20")
	assert.Contains(t, out, "TURNAROUND")
	// mean wait over A, B, C = (6 + 0 + 6) / 3
	assert.Contains(t, out, "4.00")
	assert.Contains(t, out, "CPU utilization 55.0% (9 idle ticks), 3 dispatches, 0 preemptions")
}

func TestPrintJSON_DecodesToTraceAndSummary(t *testing.T) {
	res, err := simulate(scenarioPath("sjf_preempt.in"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatJSON, res))

	var report jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "sjf", report.Run.Algorithm)
	assert.Len(t, report.Events, len(res.Events))
	assert.Equal(t, "preempted", report.Events[3].Kind)
	require.NotNil(t, report.Summary)
	assert.Equal(t, res.Summary.Processes, report.Summary.Processes)
}

func TestRender_UnknownFormat(t *testing.T) {
	res, err := simulate(scenarioPath("fcfs_single.in"))
	require.NoError(t, err)
	assert.Error(t, render(&bytes.Buffer{}, "xml", res))
	assert.False(t, isValidFormat("xml"))
	assert.True(t, isValidFormat(formatTable))
}

func TestSimulate_InputErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "unknown directive",
			path:    write("typo.in", "processcount 1\nruntfor 5\nuse rr\nprocess name A arrival 0 burst 2\nend\n"),
			wantErr: workload.ErrMalformed,
		},
		{
			name:    "missing quantum",
			path:    write("rr.in", "processcount 1\nrunfor 5\nuse rr\nprocess name A arrival 0 burst 2\nend\n"),
			wantErr: workload.ErrMissingParameter,
		},
		{
			name:    "zero burst",
			path:    write("burst.in", "processcount 1\nrunfor 5\nuse fcfs\nprocess name A arrival 0 burst 0\nend\n"),
			wantErr: sim.ErrInvalidConfig,
		},
		{
			name:    "unknown algorithm",
			path:    write("alg.in", "processcount 1\nrunfor 5\nuse lottery\nprocess name A arrival 0 burst 1\nend\n"),
			wantErr: workload.ErrUnknownAlgorithm,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := simulate(tc.path)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestSimulate_MissingFile(t *testing.T) {
	_, err := simulate(filepath.Join(t.TempDir(), "absent.in"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading description")
}

func TestAlgorithmLabel(t *testing.T) {
	assert.Equal(t, "Fcfs", algorithmLabel(sim.AlgorithmFCFS, 0))
	assert.Equal(t, "Sjf", algorithmLabel(sim.AlgorithmSJF, 0))
	assert.Equal(t, "Round Robin with quantum 3", algorithmLabel(sim.AlgorithmRR, 3))
}
