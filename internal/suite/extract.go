package suite

import (
	"io"
	"time"

	"github.com/agbru/fibbench/internal/bench"
)

// StageTotal is the synthetic stage summing the three measured stages.
const StageTotal = "Total"

// StageRuntime is one stage's duration as read back from control output.
type StageRuntime struct {
	Stage   string
	Elapsed time.Duration
	// Value is the naive result or checksum; HasValue is false for Total.
	Value    uint64
	HasValue bool
}

// ExtractStageRuntimes parses control output and returns the Total stage
// followed by the three measured stages in run order.
func ExtractStageRuntimes(r io.Reader) ([]StageRuntime, error) {
	out, err := bench.ParseControlOutput(r)
	if err != nil {
		return nil, err
	}
	d := out.Durations()
	return []StageRuntime{
		{Stage: StageTotal, Elapsed: d[0] + d[1] + d[2]},
		{Stage: bench.StageNaive, Elapsed: d[0], Value: out.NaiveResult, HasValue: true},
		{Stage: bench.StageTailRec, Elapsed: d[1], Value: out.TailRecChecksum, HasValue: true},
		{Stage: bench.StageIterative, Elapsed: d[2], Value: out.IterativeChecksum, HasValue: true},
	}, nil
}
