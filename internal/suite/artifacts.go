package suite

import (
	"encoding/csv"
	"io"
	"strconv"

	"go.yaml.in/yaml/v2"

	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/sysmon"
)

// Artifact file names inside the results directory.
const (
	StageSummaryFile = "stage_summary.csv"
	SystemSpecsFile  = "system_specs.yml"
)

// StageSummaryHeader is the header row of the stage summary.
var StageSummaryHeader = []string{"size", "run", "n", "m", "stage", "seconds", "value"}

// WriteStageSummary writes one ';'-separated row per size, run and stage,
// with the Total stage first. Total rows leave the value column empty.
func WriteStageSummary(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(StageSummaryHeader); err != nil {
		return err
	}
	for _, res := range results {
		for _, rt := range res.Runtimes {
			value := ""
			if rt.HasValue {
				value = strconv.FormatUint(rt.Value, 10)
			}
			row := []string{
				res.Size.Name,
				strconv.Itoa(res.Run),
				strconv.FormatUint(res.Size.N, 10),
				strconv.FormatUint(res.Size.M, 10),
				rt.Stage,
				format.FormatSeconds(rt.Elapsed),
				value,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

type systemSpecsDoc struct {
	Benchmark string        `yaml:"benchmark"`
	Sizes     []Size        `yaml:"sizes"`
	Runs      int           `yaml:"runs"`
	System    []sysmon.Spec `yaml:"system"`
}

// WriteSystemSpecs writes the benchmark title, sizes, runs per size and
// system description as YAML.
func WriteSystemSpecs(w io.Writer, meta Meta, runs int, specs []sysmon.Spec) error {
	doc := systemSpecsDoc{Benchmark: meta.Title, Sizes: meta.Sizes, Runs: runs, System: specs}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
