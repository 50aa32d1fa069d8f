package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

// CancelRecurringEntryInput represents the input for cancelling a recurring entry.
type CancelRecurringEntryInput struct {
	RecurringEntryID uuid.UUID
	UserID           uuid.UUID
}

// CancelRecurringEntryOutput represents the output of cancelling a recurring entry.
type CancelRecurringEntryOutput struct {
	RecurringEntry *entity.RecurringEntry
}

// CancelRecurringEntryUseCase stops a recurring entry from generating further installments.
// Installments already generated stay in the ledger.
type CancelRecurringEntryUseCase struct {
	recurringRepo adapter.RecurringEntryRepository
}

// NewCancelRecurringEntryUseCase creates a new CancelRecurringEntryUseCase instance.
func NewCancelRecurringEntryUseCase(recurringRepo adapter.RecurringEntryRepository) *CancelRecurringEntryUseCase {
	return &CancelRecurringEntryUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the cancellation.
func (uc *CancelRecurringEntryUseCase) Execute(ctx context.Context, input CancelRecurringEntryInput) (*CancelRecurringEntryOutput, error) {
	recurring, err := uc.recurringRepo.FindByID(ctx, input.RecurringEntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringEntryNotFound) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringEntryNotFound,
				"recurring entry not found",
				domainerror.ErrRecurringEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find recurring entry: %w", err)
	}

	if recurring.UserID != input.UserID {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeUnauthorizedRecurringAccess,
			"not authorized to modify this recurring entry",
			domainerror.ErrUnauthorizedRecurringAccess,
		)
	}

	if !recurring.Active {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringEntryInactive,
			"recurring entry is already inactive",
			domainerror.ErrRecurringEntryInactive,
		)
	}

	recurring.Cancel()
	if err := uc.recurringRepo.Deactivate(ctx, recurring.ID); err != nil {
		return nil, fmt.Errorf("failed to cancel recurring entry: %w", err)
	}

	return &CancelRecurringEntryOutput{
		RecurringEntry: recurring,
	}, nil
}
