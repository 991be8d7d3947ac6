package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/suite"
	"github.com/agbru/fibbench/internal/sysmon"
	"github.com/agbru/fibbench/internal/ui"
)

// SuiteReporter implements suite.Reporter for the terminal. Progress goes to
// errOut behind a spinner; the summary tables go to out.
type SuiteReporter struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
	runs   int
	total  int
	done   int
	spin   Spinner
}

var _ suite.Reporter = (*SuiteReporter)(nil)

// NewSuiteReporter creates a reporter for sizes measured runs times each.
// In quiet mode it prints nothing at all.
func NewSuiteReporter(out, errOut io.Writer, quiet bool, sizes, runs int) *SuiteReporter {
	runs = max(runs, 1)
	return &SuiteReporter{out: out, errOut: errOut, quiet: quiet, runs: runs, total: sizes * runs}
}

// SizeStarted starts a spinner naming the size and run being measured.
func (r *SuiteReporter) SizeStarted(size suite.Size, run int) {
	if r.quiet {
		return
	}
	if run == 1 {
		r.warnRange(size)
	}
	r.spin = newSpinner(spinnerOutput(r.errOut))
	r.spin.UpdateSuffix(fmt.Sprintf(" Running size %s run %d/%d (n=%d, m=%d) [%d/%d]",
		size.Name, run, r.runs, size.N, size.M, r.done+1, r.total))
	r.spin.Start()
}

// warnRange flags sizes whose results wrap or whose naive stage is slow.
func (r *SuiteReporter) warnRange(size suite.Size) {
	if size.N > fibonacci.MaxExactIndex {
		fmt.Fprintf(r.errOut, "%s!%s Size %s: F(%d) exceeds uint64, results wrap modulo 2^64\n",
			ui.ColorWarning(), ui.ColorReset(), size.Name, size.N)
	}
	if size.N > fibonacci.NaivePracticalLimit {
		fmt.Fprintf(r.errOut, "%s!%s Size %s: naive recursion on n=%d may take very long\n",
			ui.ColorWarning(), ui.ColorReset(), size.Name, size.N)
	}
}

// spinnerOutput directs the spinner to w. The spinner only animates when
// its file is a terminal, so *os.File writers are passed as files.
func spinnerOutput(w io.Writer) spinner.Option {
	if f, ok := w.(*os.File); ok {
		return spinner.WithWriterFile(f)
	}
	return spinner.WithWriter(w)
}

// SizeFinished stops the spinner and prints a one-line completion notice.
func (r *SuiteReporter) SizeFinished(res suite.Result) {
	r.done++
	if r.quiet {
		return
	}
	if r.spin != nil {
		r.spin.Stop()
		r.spin = nil
	}
	fmt.Fprintf(r.errOut, "%s✓%s Size %s run %d done in %s\n",
		ui.ColorSuccess(), ui.ColorReset(), res.Size.Name, res.Run,
		format.FormatExecutionDuration(res.Report.Total()))
}

// Summary prints the stage table followed by the system description.
func (r *SuiteReporter) Summary(meta suite.Meta, results []suite.Result, specs []sysmon.Spec) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "\n%s%s%s\n", ui.ColorBold(), meta.Title, ui.ColorReset())
	fmt.Fprintln(r.out, RenderStageTable(results))
	fmt.Fprintln(r.out, RenderSpecsTable(specs))
}

func tableStyles() (border, header, accent, dim lipgloss.Style) {
	t := ui.GetCurrentTheme()
	border = lipgloss.NewStyle().Foreground(t.Border)
	header = lipgloss.NewStyle().Bold(true).Foreground(t.Header).Padding(0, 1)
	accent = lipgloss.NewStyle().Foreground(t.Accent).Padding(0, 1)
	dim = lipgloss.NewStyle().Foreground(t.Dim).Padding(0, 1)
	return border, header, accent, dim
}

// RenderStageTable renders one row per size, run and stage, Total first.
func RenderStageTable(results []suite.Result) string {
	border, header, accent, dim := tableStyles()
	plain := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers("Size", "Run", "N", "M", "Stage", "Duration", "Value").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 4:
				return accent
			case col == 6:
				return dim
			default:
				return plain
			}
		})

	for _, res := range results {
		for _, rt := range res.Runtimes {
			value := ""
			if rt.HasValue {
				value = strconv.FormatUint(rt.Value, 10)
			}
			t.Row(
				res.Size.Name,
				strconv.Itoa(res.Run),
				strconv.FormatUint(res.Size.N, 10),
				strconv.FormatUint(res.Size.M, 10),
				rt.Stage,
				format.FormatExecutionDuration(rt.Elapsed),
				value,
			)
		}
	}
	return t.String()
}

// RenderSpecsTable renders the system description as a two-column table.
func RenderSpecsTable(specs []sysmon.Spec) string {
	border, header, accent, _ := tableStyles()
	plain := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers("System", "").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return accent
			default:
				return plain
			}
		})
	for _, s := range specs {
		t.Row(s.Label, s.Value)
	}
	return t.String()
}
