package entry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// UpdateEntryInput represents the input for entry update. Nil fields are left unchanged.
type UpdateEntryInput struct {
	EntryID     uuid.UUID
	UserID      uuid.UUID
	Kind        *entity.EntryKind
	Category    *string
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
}

// UpdateEntryOutput represents the output of entry update.
type UpdateEntryOutput struct {
	Entry *entity.Entry
}

// UpdateEntryUseCase handles entry update logic.
type UpdateEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(entryRepo adapter.EntryRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := findOwnedEntry(ctx, uc.entryRepo, input.EntryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Kind != nil {
		if err := validateKind(*input.Kind); err != nil {
			return nil, err
		}
		entry.Kind = *input.Kind
	}
	if input.Category != nil {
		if err := validateCategory(*input.Category); err != nil {
			return nil, err
		}
		entry.Category = strings.TrimSpace(*input.Category)
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		entry.Amount = *input.Amount
	}
	if input.Date != nil {
		entry.Date = valueobject.Day(*input.Date)
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		entry.Description = strings.TrimSpace(*input.Description)
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &UpdateEntryOutput{
		Entry: entry,
	}, nil
}

// findOwnedEntry loads an entry and checks it belongs to userID.
func findOwnedEntry(ctx context.Context, repo adapter.EntryRepository, entryID, userID uuid.UUID) (*entity.Entry, error) {
	entry, err := repo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}

	if entry.UserID != userID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeUnauthorizedEntryAccess,
			"not authorized to modify this entry",
			domainerror.ErrUnauthorizedEntryAccess,
		)
	}
	return entry, nil
}
