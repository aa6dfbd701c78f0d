package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var csvColumns = []string{"tick", "kind", "process", "remaining"}

// ExportCSV writes the trace events to path, one row per event.
func ExportCSV(st *SimulationTrace, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := WriteCSV(st, file); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes the trace events as CSV with a header row.
func WriteCSV(st *SimulationTrace, w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, e := range st.Events {
		row := []string{
			strconv.FormatInt(e.Tick, 10),
			e.Kind,
			e.Process,
			strconv.FormatInt(e.Remaining, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// LoadCSV reads event records written by ExportCSV.
func LoadCSV(path string) ([]EventRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(csvColumns)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var records []EventRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		r, err := parseEventRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func parseEventRecord(row []string) (EventRecord, error) {
	tick, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return EventRecord{}, fmt.Errorf("parsing tick %q: %w", row[0], err)
	}
	if !IsValidKind(row[1]) {
		return EventRecord{}, fmt.Errorf("unknown event kind %q", row[1])
	}
	remaining, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil {
		return EventRecord{}, fmt.Errorf("parsing remaining %q: %w", row[3], err)
	}
	return EventRecord{Tick: tick, Kind: row[1], Process: row[2], Remaining: remaining}, nil
}
