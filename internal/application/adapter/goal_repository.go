package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

// GoalFilter narrows a goal listing. A nil Status matches every goal.
type GoalFilter struct {
	Status *entity.GoalStatus
}

// GoalRepository stores savings goals. Reads and deletes are scoped to the owner.
type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// ListByUser returns the owner's goals matching filter, highest priority first.
	ListByUser(ctx context.Context, userID uuid.UUID, filter GoalFilter) ([]*entity.Goal, error)
	Update(ctx context.Context, goal *entity.Goal) error
	// Delete soft deletes goal id of userID and returns ErrGoalNotFound when
	// the owner has no such goal.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
