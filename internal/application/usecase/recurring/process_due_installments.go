// Package recurring contains recurring entry use cases, including the
// materialization of due installments into ledger entries.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// OutcomeStatus is the result of processing one recurring entry.
type OutcomeStatus string

const (
	OutcomeCreated OutcomeStatus = "created"
	OutcomeSkipped OutcomeStatus = "skipped"
	OutcomeFailed  OutcomeStatus = "failed"
)

// SkipReason explains why no installment was generated for a recurring entry.
type SkipReason string

const (
	SkipNotDue           SkipReason = "not_due"
	SkipExhausted        SkipReason = "exhausted"
	SkipAlreadyGenerated SkipReason = "already_generated"
	SkipLocked           SkipReason = "locked"
)

const (
	defaultConcurrency = 4
	defaultLockTTL     = 30 * time.Second
	lockKeyPrefix      = "recurring:lock:"
)

// ProcessDueInstallmentsInput represents the input for a materialization run.
type ProcessDueInstallmentsInput struct {
	Now time.Time
}

// InstallmentOutcome reports what happened to a single recurring entry.
type InstallmentOutcome struct {
	RecurringEntryID  uuid.UUID
	UserID            uuid.UUID
	Status            OutcomeStatus
	EntryID           uuid.UUID // Set when Status is created
	InstallmentNumber int       // Set when Status is created
	Completed         bool      // True when the created installment was the last one
	SkipReason        SkipReason
	Err               error // A *domainerror.RecurringError when Status is failed
}

// ProcessDueInstallmentsOutput represents the output of a materialization run.
type ProcessDueInstallmentsOutput struct {
	Outcomes []InstallmentOutcome
	Created  int
	Skipped  int
	Failed   int
}

// Failures returns the outcomes that ended in an error.
func (o *ProcessDueInstallmentsOutput) Failures() []InstallmentOutcome {
	var failed []InstallmentOutcome
	for _, outcome := range o.Outcomes {
		if outcome.Status == OutcomeFailed {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// ProcessOptions tunes a ProcessDueInstallmentsUseCase.
type ProcessOptions struct {
	Concurrency int           // Recurring entries processed in parallel
	LockTTL     time.Duration // Expiry of the per-entry lock
}

// ProcessDueInstallmentsUseCase generates, at most once per calendar month, the
// ledger entry of every active recurring entry whose installment is due.
type ProcessDueInstallmentsUseCase struct {
	recurringRepo adapter.RecurringEntryRepository
	entryRepo     adapter.EntryRepository
	locker        adapter.Locker
	publisher     adapter.EventPublisher
	concurrency   int
	lockTTL       time.Duration
}

// NewProcessDueInstallmentsUseCase creates a new ProcessDueInstallmentsUseCase instance.
// publisher may be nil, in which case no events are published.
func NewProcessDueInstallmentsUseCase(
	recurringRepo adapter.RecurringEntryRepository,
	entryRepo adapter.EntryRepository,
	locker adapter.Locker,
	publisher adapter.EventPublisher,
	opts ProcessOptions,
) *ProcessDueInstallmentsUseCase {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = defaultLockTTL
	}
	return &ProcessDueInstallmentsUseCase{
		recurringRepo: recurringRepo,
		entryRepo:     entryRepo,
		locker:        locker,
		publisher:     publisher,
		concurrency:   opts.Concurrency,
		lockTTL:       opts.LockTTL,
	}
}

// Execute processes every active recurring entry against input.Now.
//
// A failure on one recurring entry never stops the others; it is reported in
// its outcome. Cancellation is honoured between recurring entries only: once
// processing of an entry has started it runs to completion. When ctx is
// cancelled Execute returns the outcomes gathered so far together with ctx.Err().
func (uc *ProcessDueInstallmentsUseCase) Execute(ctx context.Context, input ProcessDueInstallmentsInput) (*ProcessDueInstallmentsOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	// Definitions and ledger dates are UTC days.
	now = valueobject.Day(now.UTC())

	definitions, err := uc.recurringRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active recurring entries: %w", err)
	}

	outcomes := make([]InstallmentOutcome, len(definitions))
	started := 0

	// Work already started must not observe cancellation.
	workCtx := context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(uc.concurrency)

	var cancelErr error
	for i, definition := range definitions {
		if err := ctx.Err(); err != nil {
			cancelErr = err
			break
		}
		started++
		i, definition := i, definition
		g.Go(func() error {
			outcomes[i] = uc.processOne(workCtx, definition, now)
			return nil
		})
	}
	_ = g.Wait()

	output := summarize(outcomes[:started])

	slog.InfoContext(ctx, "Recurring installments processed",
		"now", now.Format(valueobject.DateLayout),
		"definitions", len(definitions),
		"processed", started,
		"created", output.Created,
		"skipped", output.Skipped,
		"failed", output.Failed,
	)

	if cancelErr != nil {
		slog.WarnContext(ctx, "Recurring installment run cancelled",
			"remaining", len(definitions)-started,
		)
		return output, cancelErr
	}

	return output, nil
}

// processOne runs the check, insert and progress update sequence for one recurring entry.
func (uc *ProcessDueInstallmentsUseCase) processOne(ctx context.Context, definition *entity.RecurringEntry, now time.Time) InstallmentOutcome {
	outcome := InstallmentOutcome{
		RecurringEntryID: definition.ID,
		UserID:           definition.UserID,
	}
	logger := slog.With(
		"recurring_entry_id", definition.ID,
		"user_id", definition.UserID,
	)

	if err := validateDefinition(definition); err != nil {
		logger.Warn("Invalid recurring entry", "error", err)
		return failed(outcome, err)
	}

	if definition.PeriodsElapsed(now) < definition.GeneratedInstallments {
		return skipped(outcome, SkipNotDue)
	}
	if definition.IsExhausted() {
		return skipped(outcome, SkipExhausted)
	}

	dueDate := definition.DueDate(now)

	unlock, ok, err := uc.locker.TryLock(ctx, lockKeyPrefix+definition.ID.String(), uc.lockTTL)
	if err != nil {
		logger.Error("Failed to acquire recurring entry lock", "error", err)
		return failed(outcome, domainerror.NewRecurringError(
			domainerror.ErrCodeLockFailed,
			"failed to acquire recurring entry lock",
			err,
		))
	}
	if !ok {
		return skipped(outcome, SkipLocked)
	}
	defer func() {
		if err := unlock(ctx); err != nil {
			logger.Warn("Failed to release recurring entry lock", "error", err)
		}
	}()

	exists, err := uc.entryRepo.ExistsInstallment(ctx, definition.ID, dueDate)
	if err != nil {
		logger.Error("Failed to look up existing installment", "error", err)
		return failed(outcome, domainerror.NewRecurringError(
			domainerror.ErrCodeInstallmentLookupFailed,
			"failed to look up existing installment",
			err,
		))
	}
	if exists {
		return skipped(outcome, SkipAlreadyGenerated)
	}

	entry := entity.NewInstallmentEntry(definition, dueDate)
	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, domainerror.ErrDuplicateInstallment) {
			return skipped(outcome, SkipAlreadyGenerated)
		}
		logger.Error("Failed to insert installment entry",
			"due_date", dueDate.Format(valueobject.DateLayout),
			"error", err,
		)
		return failed(outcome, domainerror.NewRecurringError(
			domainerror.ErrCodeInstallmentInsertFailed,
			"failed to insert installment entry",
			err,
		))
	}

	installment := definition.RecordInstallment()
	if err := uc.recurringRepo.UpdateProgress(ctx, definition); err != nil {
		// The entry exists but the counter did not move. The next run re-processes
		// this definition and the existing-installment check absorbs it.
		logger.Error("Installment created but progress update failed",
			"entry_id", entry.ID,
			"installment", installment,
			"error", err,
		)
		return failed(outcome, domainerror.NewRecurringError(
			domainerror.ErrCodeProgressUpdateFailed,
			"installment created but failed to update recurring entry progress",
			err,
		))
	}

	outcome.Status = OutcomeCreated
	outcome.EntryID = entry.ID
	outcome.InstallmentNumber = installment
	outcome.Completed = !definition.Active

	logger.Info("Installment generated",
		"entry_id", entry.ID,
		"due_date", dueDate.Format(valueobject.DateLayout),
		"installment", installment,
		"total", definition.TotalInstallments,
		"completed", outcome.Completed,
	)

	uc.publish(ctx, definition, entry, outcome)

	return outcome
}

// publish emits the installment.generated event. Failures are logged and ignored.
func (uc *ProcessDueInstallmentsUseCase) publish(ctx context.Context, definition *entity.RecurringEntry, entry *entity.Entry, outcome InstallmentOutcome) {
	if uc.publisher == nil {
		return
	}
	event := adapter.InstallmentGeneratedEvent{
		RecurringEntryID:  definition.ID,
		EntryID:           entry.ID,
		UserID:            definition.UserID,
		Kind:              string(entry.Kind),
		Amount:            entry.Amount,
		Date:              entry.Date.Format(valueobject.DateLayout),
		InstallmentNumber: outcome.InstallmentNumber,
		TotalInstallments: definition.TotalInstallments,
		Completed:         outcome.Completed,
		OccurredAt:        time.Now().UTC(),
	}
	if err := uc.publisher.PublishInstallmentGenerated(ctx, event); err != nil {
		slog.Warn("Failed to publish installment event",
			"recurring_entry_id", definition.ID,
			"entry_id", entry.ID,
			"error", err,
		)
	}
}

// validateDefinition rejects definitions the materializer cannot process safely.
func validateDefinition(definition *entity.RecurringEntry) error {
	if !definition.Amount.IsPositive() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"recurring entry amount must be greater than zero",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	if !definition.Kind.IsValid() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringKind,
			"recurring entry kind must be income or expense",
			domainerror.ErrInvalidEntryKind,
		)
	}
	if definition.TotalInstallments <= 0 {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"total installments must be greater than zero",
			domainerror.ErrInvalidInstallmentCount,
		)
	}
	if definition.GeneratedInstallments < 0 || definition.GeneratedInstallments > definition.TotalInstallments {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidProgress,
			fmt.Sprintf("generated installments %d out of range 0..%d",
				definition.GeneratedInstallments, definition.TotalInstallments),
			domainerror.ErrInvalidProgress,
		)
	}
	return nil
}

func skipped(outcome InstallmentOutcome, reason SkipReason) InstallmentOutcome {
	outcome.Status = OutcomeSkipped
	outcome.SkipReason = reason
	return outcome
}

func failed(outcome InstallmentOutcome, err error) InstallmentOutcome {
	outcome.Status = OutcomeFailed
	outcome.Err = err
	return outcome
}

func summarize(outcomes []InstallmentOutcome) *ProcessDueInstallmentsOutput {
	output := &ProcessDueInstallmentsOutput{Outcomes: outcomes}
	for _, outcome := range outcomes {
		switch outcome.Status {
		case OutcomeCreated:
			output.Created++
		case OutcomeSkipped:
			output.Skipped++
		case OutcomeFailed:
			output.Failed++
		}
	}
	return output
}
