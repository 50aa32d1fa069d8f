// Package worker runs the recurring entry materializer on a schedule.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wealth-planner/backend/internal/application/usecase/recurring"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// DefaultSchedule runs the materializer once a day shortly after midnight UTC.
const DefaultSchedule = "5 0 * * *"

// Processor materializes due installments.
type Processor interface {
	Execute(ctx context.Context, input recurring.ProcessDueInstallmentsInput) (*recurring.ProcessDueInstallmentsOutput, error)
}

// RunNotifier is told about every finished run.
type RunNotifier interface {
	NotifyRun(ctx context.Context, runDate time.Time, output *recurring.ProcessDueInstallmentsOutput) error
}

// Config holds the recurring worker settings.
type Config struct {
	Schedule   string        // Standard five-field cron expression, evaluated in UTC
	RunTimeout time.Duration // Upper bound for a single run; zero means no bound
}

// RecurringWorker triggers materialization runs on a cron schedule.
type RecurringWorker struct {
	processor Processor
	notifier  RunNotifier
	schedule  cron.Schedule
	spec      string
	timeout   time.Duration
	clock     func() time.Time
}

// NewRecurringWorker creates a worker. notifier may be nil.
func NewRecurringWorker(processor Processor, notifier RunNotifier, cfg Config) (*RecurringWorker, error) {
	spec := cfg.Schedule
	if spec == "" {
		spec = DefaultSchedule
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid recurring schedule %q: %w", spec, err)
	}

	return &RecurringWorker{
		processor: processor,
		notifier:  notifier,
		schedule:  schedule,
		spec:      spec,
		timeout:   cfg.RunTimeout,
		clock:     time.Now,
	}, nil
}

// RunOnce performs a single materialization run for the day of now.
func (w *RecurringWorker) RunOnce(ctx context.Context, now time.Time) (*recurring.ProcessDueInstallmentsOutput, error) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	runDate := valueobject.Day(now)
	logger := slog.With("run_date", runDate.Format(valueobject.DateLayout))
	started := time.Now()

	output, err := w.processor.Execute(ctx, recurring.ProcessDueInstallmentsInput{Now: now})
	if err != nil && output == nil {
		logger.ErrorContext(ctx, "Recurring run failed", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Recurring run finished",
		"created", output.Created,
		"skipped", output.Skipped,
		"failed", output.Failed,
		"duration", time.Since(started),
	)

	if w.notifier != nil {
		// The run is over; report it even when its context was cancelled.
		if notifyErr := w.notifier.NotifyRun(context.WithoutCancel(ctx), runDate, output); notifyErr != nil {
			logger.WarnContext(ctx, "Failed to notify run report", "error", notifyErr)
		}
	}

	return output, err
}

// Start runs once immediately, then on every scheduled tick until ctx is done.
// It returns after the in-flight run, if any, has finished.
func (w *RecurringWorker) Start(ctx context.Context) error {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{})),
	)
	c.Schedule(w.schedule, cron.FuncJob(func() {
		w.run(ctx)
	}))

	slog.Info("Recurring worker started", "schedule", w.spec)
	w.run(ctx)

	c.Start()
	<-ctx.Done()

	<-c.Stop().Done()
	slog.Info("Recurring worker stopped")
	return nil
}

func (w *RecurringWorker) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := w.RunOnce(ctx, w.clock()); err != nil {
		slog.Error("Scheduled recurring run ended with error", "error", err)
	}
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
