package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/google/subcommands"
)

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run the materializer on its daily schedule" }
func (*runCmd) Usage() string {
	return `recurring-worker run

  Processes due installments immediately, then on every tick of
  RECURRING_SCHEDULE until interrupted.
`
}

func (*runCmd) SetFlags(*flag.FlagSet) {}

func (*runCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	injector, cleanup, err := bootstrap(ctx)
	if err != nil {
		slog.Error("Failed to start recurring worker", "error", err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	if err := injector.RecurringWorker.Start(ctx); err != nil {
		slog.Error("Recurring worker failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
