package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/agbru/fibbench/internal/bench"
	"github.com/agbru/fibbench/internal/config"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/logging"
)

// Application represents the fibbench harness instance.
type Application struct {
	Args      config.HarnessArgs
	Driver    *bench.Driver
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithDriver sets a custom benchmark driver for the application.
func WithDriver(d *bench.Driver) AppOption {
	return func(a *Application) { a.Driver = d }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application by parsing the process arguments. args
// includes the program name, as in os.Args.
//
// A wrong argument count prints a usage line; a malformed number prints the
// parse error. Either way the error is returned and nothing reaches stdout.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		level := logging.ParseLevel(config.LogLevel(), zerolog.WarnLevel)
		app.Logger = logging.NewConsoleLogger(errWriter, "fibbench", level)
	}
	if app.Driver == nil {
		app.Driver = bench.NewDriver(bench.WithLogger(app.Logger))
	}

	programName := "fibbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	parsed, err := config.ParseArgs(cmdArgs)
	if err != nil {
		switch apperrors.ExitCodeFor(err) {
		case apperrors.ExitErrorUsage:
			fmt.Fprintf(errWriter, "Usage: %s <n> <m>\n", programName)
		default:
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}

	app.Args = parsed
	return app, nil
}

// Run executes the three benchmark stages and writes the six control lines
// to out. It returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.Logger.Debug("starting benchmark",
		logging.Uint64("n", a.Args.N),
		logging.Uint64("m", a.Args.M),
	)

	report := a.Driver.Run(ctx, a.Args.N, a.Args.M)

	if err := report.WriteControlOutput(out); err != nil {
		a.Logger.Error("writing control output", err)
		return apperrors.ExitErrorIO
	}
	return apperrors.ExitSuccess
}

// Main is the harness entry point shared by cmd/fibbench and the
// end-to-end tests. It returns the exit code instead of exiting.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	application, err := New(args, stderr)
	if err != nil {
		return apperrors.ExitCodeFor(err)
	}
	return application.Run(ctx, stdout)
}
