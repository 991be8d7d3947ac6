package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/agbru/fibbench/internal/bench"
	"github.com/agbru/fibbench/internal/cli"
	"github.com/agbru/fibbench/internal/config"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/suite"
	"github.com/agbru/fibbench/internal/ui"
)

// SuiteMain is the entry point of cmd/fibbench-suite. It runs every
// requested size preset, stores the artifacts and prints a summary.
// It returns the exit code instead of exiting.
func SuiteMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	programName := "fibbench-suite"
	var cmdArgs []string
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseSuiteConfig(programName, cmdArgs, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	ui.InitTheme(cfg.NoColor)
	logger := logging.NewConsoleLogger(stderr, "suite", logging.ParseLevel(cfg.LogLevel, zerolog.WarnLevel))

	meta, err := suite.LoadMeta(cfg.MetaFile)
	if err != nil {
		return reportSuiteError(stderr, logger, err)
	}
	sizes, err := suite.Resolve(cfg.Sizes, meta.Sizes)
	if err != nil {
		return reportSuiteError(stderr, logger, err)
	}
	gcMode, err := suite.ParseGCMode(cfg.GCMode)
	if err != nil {
		return reportSuiteError(stderr, logger, err)
	}

	runner := suite.NewRunner(meta,
		suite.Options{Sizes: sizes, ResultsDir: cfg.ResultsDir, MetricsFile: cfg.MetricsFile, GC: gcMode, Runs: cfg.Runs},
		suite.WithLogger(logger),
		suite.WithDriver(bench.NewDriver(bench.WithLogger(logger))),
		suite.WithReporter(cli.NewSuiteReporter(stdout, stderr, cfg.Quiet, len(sizes), cfg.Runs)),
	)
	if _, err := runner.Run(ctx); err != nil {
		return reportSuiteError(stderr, logger, err)
	}
	logger.Info("suite finished", logging.String("results", cfg.ResultsDir))
	return apperrors.ExitSuccess
}

func reportSuiteError(stderr io.Writer, logger logging.Logger, err error) int {
	code := apperrors.ExitCodeFor(err)
	logger.Debug("suite failed", logging.Err(err), logging.Int("exit_code", code))
	fmt.Fprintf(stderr, "%sError:%s %v\n", ui.ColorError(), ui.ColorReset(), err)
	return code
}
