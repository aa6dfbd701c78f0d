// Package testutil provides shared test infrastructure for the scheduling
// simulator. It holds the golden scenario types and the helpers that locate
// testdata/ from any package under sim/.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one scenario: an input description file and the exact
// trace and metrics it must produce.
type GoldenTestCase struct {
	Name    string         `json:"name"`
	Input   string         `json:"input"` // relative to testdata/
	Trace   []string       `json:"trace"` // Event.String() lines, in order
	Metrics []GoldenMetric `json:"metrics"`
}

// GoldenMetric is the expected outcome of one process, in declaration order.
type GoldenMetric struct {
	Name       string `json:"name"`
	Finished   bool   `json:"finished"`
	Wait       int64  `json:"wait"`
	Turnaround int64  `json:"turnaround"`
	Response   int64  `json:"response"`
}

// TestdataPath resolves name inside the repository's testdata/ directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func TestdataPath(t *testing.T, name string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name)
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	data, err := os.ReadFile(TestdataPath(t, "goldendataset.json"))
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("golden dataset has no test cases")
	}
	return &dataset
}

// AssertLinesEqual compares two line slices and reports the first mismatch.
func AssertLinesEqual(t *testing.T, name string, want, got []string) {
	t.Helper()
	n := min(len(want), len(got))
	for i := range n {
		if want[i] != got[i] {
			t.Errorf("%s: line %d: got %q, want %q", name, i, got[i], want[i])
			return
		}
	}
	if len(want) != len(got) {
		t.Errorf("%s: got %d lines, want %d", name, len(got), len(want))
	}
}
