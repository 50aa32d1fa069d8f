package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/wealth-planner/backend/internal/application/usecase/recurring"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

type processCmd struct {
	date string
}

func (*processCmd) Name() string     { return "process" }
func (*processCmd) Synopsis() string { return "process due installments once" }
func (*processCmd) Usage() string {
	return `recurring-worker process [-date YYYY-MM-DD]

  Processes the installments due on the given date (defaults to today, UTC)
  and prints one line per recurring entry.
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Processing date in YYYY-MM-DD (defaults to today)")
}

func (c *processCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now := time.Now().UTC()
	if c.date != "" {
		parsed, err := valueobject.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -date %q: %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
		now = parsed
	}

	injector, cleanup, err := bootstrap(ctx)
	if err != nil {
		slog.Error("Failed to start recurring worker", "error", err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	output, err := injector.RecurringWorker.RunOnce(ctx, now)
	if output != nil {
		printOutcomes(output)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if output.Failed > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printOutcomes(output *recurring.ProcessDueInstallmentsOutput) {
	for _, o := range output.Outcomes {
		switch o.Status {
		case recurring.OutcomeCreated:
			fmt.Printf("%s created installment %d (entry %s, completed=%t)\n",
				o.RecurringEntryID, o.InstallmentNumber, o.EntryID, o.Completed)
		case recurring.OutcomeSkipped:
			fmt.Printf("%s skipped: %s\n", o.RecurringEntryID, o.SkipReason)
		case recurring.OutcomeFailed:
			fmt.Printf("%s failed: %v\n", o.RecurringEntryID, o.Err)
		}
	}
	fmt.Printf("created=%d skipped=%d failed=%d\n", output.Created, output.Skipped, output.Failed)
}
