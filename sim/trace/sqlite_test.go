package trace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteWriter_Write_RoundTripsEvents(t *testing.T) {
	// GIVEN a fresh trace database
	w, err := NewSQLiteWriter(filepath.Join(t.TempDir(), "trace.sqlite3"))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	// WHEN a trace is written
	st := sampleTrace()
	runID, err := w.Write(st)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	// THEN the run row and its events are stored
	var algorithm string
	var quantum, runfor int64
	row := w.QueryRow(`SELECT algorithm, quantum, runfor FROM runs WHERE id = ?`, runID)
	require.NoError(t, row.Scan(&algorithm, &quantum, &runfor))
	assert.Equal(t, "rr", algorithm)
	assert.Equal(t, int64(2), quantum)
	assert.Equal(t, int64(6), runfor)

	records, err := w.ReadRun(runID)
	require.NoError(t, err)
	assert.Equal(t, st.Events, records)
}

func TestSQLiteWriter_MultipleRuns_DistinctIDs(t *testing.T) {
	w, err := NewSQLiteWriter(filepath.Join(t.TempDir(), "trace.sqlite3"))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	id1, err := w.Write(sampleTrace())
	require.NoError(t, err)
	id2, err := w.Write(sampleTrace())
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	var n int
	require.NoError(t, w.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n))
	assert.Equal(t, 2*len(sampleTrace().Events), n)
}

func TestSQLiteWriter_LatestRun_ReturnsLastWritten(t *testing.T) {
	// GIVEN an empty database
	w, err := NewSQLiteWriter(filepath.Join(t.TempDir(), "trace.sqlite3"))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	// THEN there is no latest run yet
	_, err = w.LatestRun()
	assert.ErrorIs(t, err, ErrNoRuns)

	// WHEN two runs are stored
	_, err = w.Write(sampleTrace())
	require.NoError(t, err)
	id2, err := w.Write(sampleTrace())
	require.NoError(t, err)

	// THEN the second one is the latest
	latest, err := w.LatestRun()
	require.NoError(t, err)
	assert.Equal(t, id2, latest)
}

func TestOpenSQLiteReadOnly_MissingFile_NotCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.sqlite3")

	_, err := OpenSQLiteReadOnly(path)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "read-only open must not create %s", path)
}

func TestOpenSQLiteReadOnly_ReadsStoredRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.sqlite3")
	w, err := NewSQLiteWriter(path)
	require.NoError(t, err)
	runID, err := w.Write(sampleTrace())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenSQLiteReadOnly(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	records, err := r.ReadRun(runID)
	require.NoError(t, err)
	assert.Equal(t, sampleTrace().Events, records)

	// writes are refused
	_, err = r.Write(sampleTrace())
	assert.Error(t, err)
}
