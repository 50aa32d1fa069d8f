package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

// RecurringEntryRepository defines the interface for recurring entry persistence operations.
type RecurringEntryRepository interface {
	// Create creates a new recurring entry.
	Create(ctx context.Context, recurring *entity.RecurringEntry) error

	// FindByID retrieves a recurring entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringEntry, error)

	// FindByUserID retrieves all recurring entries of a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringEntry, error)

	// FindActive retrieves every active recurring entry across all users, ordered by creation.
	FindActive(ctx context.Context) ([]*entity.RecurringEntry, error)

	// UpdateProgress persists the generated counter and the active flag.
	UpdateProgress(ctx context.Context, recurring *entity.RecurringEntry) error

	// Deactivate clears only the active flag of id and returns
	// ErrRecurringEntryNotFound when no such entry exists.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
