package main

import (
	"context"
	"os"

	"github.com/agbru/fibbench/internal/app"
)

func main() {
	exitCode := app.Main(context.Background(), os.Args, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}
