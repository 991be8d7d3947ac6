package bench

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/fibbench/internal/format"
)

// Stage names, in run order.
const (
	StageNaive     = "Naive Recursion"
	StageTailRec   = "Tail Recursion"
	StageIterative = "Iterative"
)

// ControlOutputLines is the number of lines printed by WriteControlOutput.
const ControlOutputLines = 6

// StageResult is the outcome of one timed stage.
type StageResult struct {
	// Name is the stage name (one of the Stage* constants).
	Name string
	// Elapsed is the wall-clock time spent in the stage.
	Elapsed time.Duration
	// Value is F(n) for the naive stage and the checksum for the others.
	Value uint64
}

// Report holds the three stage results of a single harness run.
type Report struct {
	N             uint64
	M             uint64
	Naive         StageResult
	TailRecursive StageResult
	Iterative     StageResult
}

// Stages returns the stage results in run order.
func (r Report) Stages() []StageResult {
	return []StageResult{r.Naive, r.TailRecursive, r.Iterative}
}

// Total returns the sum of the three stage durations.
func (r Report) Total() time.Duration {
	return r.Naive.Elapsed + r.TailRecursive.Elapsed + r.Iterative.Elapsed
}

// WriteControlOutput prints the three stage durations in seconds, then the
// naive result and the two checksums, one value per line.
func (r Report) WriteControlOutput(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range r.Stages() {
		fmt.Fprintln(bw, format.FormatSeconds(s.Elapsed))
	}
	for _, s := range r.Stages() {
		fmt.Fprintln(bw, s.Value)
	}
	return bw.Flush()
}

// ControlOutput is the parsed form of the six control lines.
type ControlOutput struct {
	// Seconds holds the three stage durations in run order.
	Seconds [3]float64
	// NaiveResult is F(n) from the naive stage.
	NaiveResult uint64
	// TailRecChecksum and IterativeChecksum are the stage checksums.
	TailRecChecksum   uint64
	IterativeChecksum uint64
}

// Durations converts Seconds to time.Duration values, rounding to the
// nearest nanosecond so that written durations read back unchanged.
func (c ControlOutput) Durations() [3]time.Duration {
	var d [3]time.Duration
	for i, s := range c.Seconds {
		d[i] = time.Duration(math.Round(s * float64(time.Second)))
	}
	return d
}

// ParseControlOutput reads the six control lines produced by
// WriteControlOutput. Blank lines are skipped; anything else that does not
// parse is an error.
func ParseControlOutput(r io.Reader) (ControlOutput, error) {
	var out ControlOutput
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("reading control output: %w", err)
	}
	if len(lines) != ControlOutputLines {
		return out, fmt.Errorf("control output has %d lines, want %d", len(lines), ControlOutputLines)
	}

	for i := range 3 {
		s, err := strconv.ParseFloat(lines[i], 64)
		if err != nil {
			return out, fmt.Errorf("line %d: %w", i+1, err)
		}
		out.Seconds[i] = s
	}
	values := []*uint64{&out.NaiveResult, &out.TailRecChecksum, &out.IterativeChecksum}
	for i, dst := range values {
		v, err := strconv.ParseUint(lines[3+i], 10, 64)
		if err != nil {
			return out, fmt.Errorf("line %d: %w", 4+i, err)
		}
		*dst = v
	}
	return out, nil
}
