package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

// EntryFilter defines filter options for listing ledger entries.
// Every query is scoped to a single owner.
type EntryFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time // Inclusive
	EndDate   *time.Time // Inclusive
	Kind      *entity.EntryKind
	Category  string
}

// EntryRepository defines the interface for ledger entry persistence operations.
type EntryRepository interface {
	// Create inserts a new entry. It returns domain error ErrDuplicateInstallment when
	// an installment already exists for the same recurring entry and date.
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByID retrieves an entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// FindByFilter retrieves entries matching the filter, ordered by date descending.
	FindByFilter(ctx context.Context, filter EntryFilter) ([]*entity.Entry, error)

	// ExistsInstallment checks whether an installment of the given recurring entry
	// is already recorded on the given day.
	ExistsInstallment(ctx context.Context, recurringEntryID uuid.UUID, date time.Time) (bool, error)

	// Update updates an existing entry.
	Update(ctx context.Context, entry *entity.Entry) error

	// Delete removes an entry.
	Delete(ctx context.Context, id uuid.UUID) error
}
