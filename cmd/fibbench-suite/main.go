package main

import (
	"context"
	"os"

	"github.com/agbru/fibbench/internal/app"
)

func main() {
	exitCode := app.SuiteMain(context.Background(), os.Args, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}
