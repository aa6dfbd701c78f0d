package workload

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

const rrDescription = `processcount 2   # Read 2 processes
runfor 15        # Run for 15 time units
use rr           # Can be fcfs, sjf, or rr
quantum 2        # Time quantum - only if using rr

process name A arrival 0 burst 5
process name B arrival 1 burst 4
end
`

func TestParseText_ValidDescription_ParsesAllFields(t *testing.T) {
	// WHEN a complete rr description is parsed
	d, err := ParseText(strings.NewReader(rrDescription))

	// THEN every directive is captured
	require.NoError(t, err)
	assert.Equal(t, 2, d.ProcessCount)
	assert.Equal(t, int64(15), d.RunFor)
	assert.Equal(t, sim.AlgorithmRR, d.Algorithm)
	assert.Equal(t, int64(2), d.Quantum)
	assert.Equal(t, []sim.ProcessSpec{
		{Name: "A", Arrival: 0, Burst: 5},
		{Name: "B", Arrival: 1, Burst: 4},
	}, d.Processes)
}

func TestParseText_IgnoresLinesAfterEnd(t *testing.T) {
	input := "processcount 1\nruntime\nrunfor 5\nuse fcfs\nprocess name A arrival 0 burst 1\nend\ngarbage here\n"
	// "runtime" is an unknown directive before end, so it must fail...
	_, err := ParseText(strings.NewReader(input))
	require.ErrorIs(t, err, ErrMalformed)

	// ...while anything after end is never read.
	input = "processcount 1\nrunfor 5\nuse fcfs\nprocess name A arrival 0 burst 1\nend\ngarbage here\n"
	d, err := ParseText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, d.Processes, 1)
}

func TestParseText_FCFS_QuantumOptional(t *testing.T) {
	input := "processcount 1\nrunfor 5\nuse fcfs\nprocess name A arrival 0 burst 1\nend\n"
	d, err := ParseText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, int64(0), d.Quantum)
	assert.Equal(t, sim.AlgorithmFCFS, d.Algorithm)
}

func TestParseText_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "rr without quantum",
			input:   "processcount 1\nrunfor 5\nuse rr\nprocess name A arrival 0 burst 1\nend\n",
			wantErr: ErrMissingParameter,
			wantMsg: "quantum",
		},
		{
			name:    "rr with zero quantum",
			input:   "processcount 1\nrunfor 5\nuse rr\nquantum 0\nprocess name A arrival 0 burst 1\nend\n",
			wantErr: ErrMalformed,
			wantMsg: "quantum must be positive, got 0",
		},
		{
			name:    "rr with negative quantum",
			input:   "processcount 1\nrunfor 5\nuse rr\nquantum -2\nprocess name A arrival 0 burst 1\nend\n",
			wantErr: ErrMalformed,
			wantMsg: "quantum must be positive, got -2",
		},
		{
			name:    "missing use",
			input:   "processcount 1\nrunfor 5\nprocess name A arrival 0 burst 1\nend\n",
			wantErr: ErrMissingParameter,
			wantMsg: "use",
		},
		{
			name:    "missing runfor",
			input:   "processcount 1\nuse sjf\nprocess name A arrival 0 burst 1\nend\n",
			wantErr: ErrMissingParameter,
			wantMsg: "runfor",
		},
		{
			name:    "count mismatch",
			input:   "processcount 3\nrunfor 5\nuse sjf\nprocess name A arrival 0 burst 1\nend\n",
			wantErr: ErrProcessCount,
			wantMsg: "processcount is 3 but 1",
		},
		{
			name:    "missing processcount",
			input:   "runfor 5\nuse sjf\nprocess name A arrival 0 burst 1\nend\n",
			wantErr: ErrProcessCount,
		},
		{
			name:    "unknown algorithm",
			input:   "processcount 1\nrunfor 5\nuse lottery\nprocess name A arrival 0 burst 1\nend\n",
			wantErr: ErrUnknownAlgorithm,
			wantMsg: "lottery",
		},
		{
			name:    "process line wrong field count",
			input:   "processcount 1\nrunfor 5\nuse sjf\nprocess name A arrival 0\nend\n",
			wantErr: ErrMalformed,
			wantMsg: "line 4",
		},
		{
			name:    "process line wrong keyword",
			input:   "processcount 1\nrunfor 5\nuse sjf\nprocess id A arrival 0 burst 1\nend\n",
			wantErr: ErrMalformed,
		},
		{
			name:    "non-integer burst",
			input:   "processcount 1\nrunfor 5\nuse sjf\nprocess name A arrival 0 burst x\nend\n",
			wantErr: ErrMalformed,
			wantMsg: "burst",
		},
		{
			name:    "non-integer runfor",
			input:   "processcount 1\nrunfor five\nuse sjf\nprocess name A arrival 0 burst 1\nend\n",
			wantErr: ErrMalformed,
		},
		{
			name:    "duplicate names",
			input:   "processcount 2\nrunfor 5\nuse sjf\nprocess name A arrival 0 burst 1\nprocess name A arrival 1 burst 1\nend\n",
			wantErr: ErrDuplicateName,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseText(strings.NewReader(tc.input))
			assert.Nil(t, d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestLoadText_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadText(filepath.Join(t.TempDir(), "nope.in"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading description")
}

func TestWriteText_RoundTrips(t *testing.T) {
	d, err := ParseText(strings.NewReader(rrDescription))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(d, &buf))
	again, err := ParseText(&buf)
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "input.in")
	yamlPath := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(textPath, []byte(rrDescription), 0644))
	require.NoError(t, os.WriteFile(yamlPath, []byte(rrYAML), 0644))

	fromText, err := Load(textPath)
	require.NoError(t, err)
	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, fromText, fromYAML)
}

func TestDescription_Config_CarriesFields(t *testing.T) {
	d, err := ParseText(strings.NewReader(rrDescription))
	require.NoError(t, err)
	cfg := d.Config()
	assert.Equal(t, sim.AlgorithmRR, cfg.Algorithm)
	assert.Equal(t, int64(15), cfg.RunFor)
	assert.Equal(t, int64(2), cfg.Quantum)
	assert.Len(t, cfg.Processes, 2)
	assert.NoError(t, cfg.Validate())
}
