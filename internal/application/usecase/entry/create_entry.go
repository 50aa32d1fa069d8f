package entry

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

// CreateEntryInput represents the input for entry creation.
type CreateEntryInput struct {
	UserID      uuid.UUID
	Kind        entity.EntryKind
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// CreateEntryOutput represents the output of entry creation.
type CreateEntryOutput struct {
	Entry *entity.Entry
}

// CreateEntryUseCase handles manual entry creation.
type CreateEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(entryRepo adapter.EntryRepository) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"date is required",
			nil,
		)
	}

	entry := entity.NewEntry(
		input.UserID,
		input.Kind,
		strings.TrimSpace(input.Category),
		input.Amount,
		input.Date,
		strings.TrimSpace(input.Description),
	)

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return &CreateEntryOutput{
		Entry: entry,
	}, nil
}
