package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// LoadText reads and parses a text description file.
func LoadText(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading description: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseText(f)
}

// ParseText parses the line-oriented description format:
//
//	processcount 2      # number of process lines that follow
//	runfor 15
//	use rr              # fcfs, sjf or rr
//	quantum 2           # required for rr only
//	process name A arrival 0 burst 5
//	process name B arrival 1 burst 4
//	end
//
// Blank lines are skipped, '#' starts a comment and parsing stops at "end".
func ParseText(r io.Reader) (*Description, error) {
	var raw rawDescription
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "end" {
			break
		}
		if err := raw.applyDirective(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading description: %w", err)
	}
	d, err := raw.validate()
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Parsed description: %d processes, use=%s, runfor=%d, quantum=%d",
		d.ProcessCount, d.Algorithm, d.RunFor, d.Quantum)
	return d, nil
}

func (r *rawDescription) applyDirective(fields []string) error {
	switch fields[0] {
	case "processcount":
		n, err := intArg(fields)
		if err != nil {
			return err
		}
		count := int(n)
		r.processCount = &count
	case "runfor":
		n, err := intArg(fields)
		if err != nil {
			return err
		}
		r.runFor = &n
	case "quantum":
		n, err := intArg(fields)
		if err != nil {
			return err
		}
		r.quantum = &n
	case "use":
		if len(fields) != 2 {
			return fmt.Errorf("%w: %q expects one value", ErrMalformed, strings.Join(fields, " "))
		}
		alg := fields[1]
		r.algorithm = &alg
	case "process":
		p, err := parseProcessLine(fields)
		if err != nil {
			return err
		}
		r.processes = append(r.processes, p)
	default:
		return fmt.Errorf("%w: unknown directive %q", ErrMalformed, fields[0])
	}
	return nil
}

func intArg(fields []string) (int64, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q expects one value", ErrMalformed, strings.Join(fields, " "))
	}
	n, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s value %q is not an integer", ErrMalformed, fields[0], fields[1])
	}
	return n, nil
}

// parseProcessLine parses "process name <name> arrival <n> burst <n>".
func parseProcessLine(fields []string) (sim.ProcessSpec, error) {
	if len(fields) != 7 || fields[1] != "name" || fields[3] != "arrival" || fields[5] != "burst" {
		return sim.ProcessSpec{}, fmt.Errorf("%w: invalid process line format: %q", ErrMalformed, strings.Join(fields, " "))
	}
	arrival, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return sim.ProcessSpec{}, fmt.Errorf("%w: process %s: arrival %q is not an integer", ErrMalformed, fields[2], fields[4])
	}
	burst, err := strconv.ParseInt(fields[6], 10, 64)
	if err != nil {
		return sim.ProcessSpec{}, fmt.Errorf("%w: process %s: burst %q is not an integer", ErrMalformed, fields[2], fields[6])
	}
	return sim.ProcessSpec{Name: fields[2], Arrival: arrival, Burst: burst}, nil
}

// WriteText renders d in the line-oriented text format accepted by ParseText.
func WriteText(d *Description, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "processcount %d\n", d.ProcessCount)
	fmt.Fprintf(bw, "runfor %d\n", d.RunFor)
	fmt.Fprintf(bw, "use %s\n", d.Algorithm)
	if d.Algorithm == sim.AlgorithmRR {
		fmt.Fprintf(bw, "quantum %d\n", d.Quantum)
	}
	for _, p := range d.Processes {
		fmt.Fprintf(bw, "process name %s arrival %d burst %d\n", p.Name, p.Arrival, p.Burst)
	}
	fmt.Fprintln(bw, "end")
	return bw.Flush()
}
