package recurring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

const (
	minDescriptionLength = 3
	maxDescriptionLength = 200
	maxInstallments      = 360
)

var minAmount = decimal.RequireFromString("0.01")

// CreateRecurringEntryInput represents the input for recurring entry creation.
type CreateRecurringEntryInput struct {
	UserID            uuid.UUID
	Kind              entity.EntryKind
	Category          string
	Description       string
	Amount            decimal.Decimal
	StartDate         time.Time
	TotalInstallments int
}

// CreateRecurringEntryOutput represents the output of recurring entry creation.
type CreateRecurringEntryOutput struct {
	RecurringEntry *entity.RecurringEntry
}

// CreateRecurringEntryUseCase handles recurring entry creation logic.
type CreateRecurringEntryUseCase struct {
	recurringRepo adapter.RecurringEntryRepository
}

// NewCreateRecurringEntryUseCase creates a new CreateRecurringEntryUseCase instance.
func NewCreateRecurringEntryUseCase(recurringRepo adapter.RecurringEntryRepository) *CreateRecurringEntryUseCase {
	return &CreateRecurringEntryUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the recurring entry creation.
func (uc *CreateRecurringEntryUseCase) Execute(ctx context.Context, input CreateRecurringEntryInput) (*CreateRecurringEntryOutput, error) {
	if err := validateCreateInput(&input); err != nil {
		return nil, err
	}

	recurring := entity.NewRecurringEntry(
		input.UserID,
		input.Kind,
		input.Category,
		input.Description,
		input.Amount,
		input.StartDate,
		input.TotalInstallments,
	)

	if err := uc.recurringRepo.Create(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to create recurring entry: %w", err)
	}

	return &CreateRecurringEntryOutput{
		RecurringEntry: recurring,
	}, nil
}

func validateCreateInput(input *CreateRecurringEntryInput) error {
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)

	if !input.Kind.IsValid() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringKind,
			"kind must be 'income' or 'expense'",
			domainerror.ErrInvalidEntryKind,
		)
	}
	if input.Amount.LessThan(minAmount) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"amount must be at least 0.01",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	if n := len([]rune(input.Description)); n < minDescriptionLength || n > maxDescriptionLength {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringDescription,
			"description must be between 3 and 200 characters",
			domainerror.ErrInvalidEntryDescription,
		)
	}
	if input.Category == "" || input.StartDate.IsZero() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringFields,
			"category and start date are required",
			nil,
		)
	}
	if input.TotalInstallments < 1 || input.TotalInstallments > maxInstallments {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"total installments must be between 1 and 360",
			domainerror.ErrInvalidInstallmentCount,
		)
	}
	return nil
}
