// Package main is the entry point for the skilltrend CLI
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spektr-org/skilltrend/internal/cli"
	"github.com/spektr-org/skilltrend/internal/output"
)

// Set at build time via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.SetBuildInfo(version, commit, buildTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		output.NewPrinter(output.ResolveColors(false, true)).FormatError(err)
		os.Exit(output.ExitCodeFor(err))
	}
}
