package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
)

// ListRecurringEntriesInput represents the input for listing recurring entries.
type ListRecurringEntriesInput struct {
	UserID     uuid.UUID
	ActiveOnly bool
}

// ListRecurringEntriesOutput represents the output of listing recurring entries.
type ListRecurringEntriesOutput struct {
	RecurringEntries []*entity.RecurringEntry
}

// ListRecurringEntriesUseCase handles listing a user's recurring entries.
type ListRecurringEntriesUseCase struct {
	recurringRepo adapter.RecurringEntryRepository
}

// NewListRecurringEntriesUseCase creates a new ListRecurringEntriesUseCase instance.
func NewListRecurringEntriesUseCase(recurringRepo adapter.RecurringEntryRepository) *ListRecurringEntriesUseCase {
	return &ListRecurringEntriesUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute lists the recurring entries of the user.
func (uc *ListRecurringEntriesUseCase) Execute(ctx context.Context, input ListRecurringEntriesInput) (*ListRecurringEntriesOutput, error) {
	entries, err := uc.recurringRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring entries: %w", err)
	}

	if input.ActiveOnly {
		active := make([]*entity.RecurringEntry, 0, len(entries))
		for _, e := range entries {
			if e.Active {
				active = append(active, e)
			}
		}
		entries = active
	}

	return &ListRecurringEntriesOutput{
		RecurringEntries: entries,
	}, nil
}
