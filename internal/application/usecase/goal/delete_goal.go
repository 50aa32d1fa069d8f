package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/application/adapter"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

// DeleteGoalInput identifies the goal to remove and the caller.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalOutput reports a completed deletion.
type DeleteGoalOutput struct {
	Success bool
}

// DeleteGoalUseCase soft deletes a goal owned by the caller.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{goalRepo: goalRepo}
}

// Execute fails with GOL-010001 when the goal does not exist and with
// GOL-010006 when it belongs to another user.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	if _, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID); err != nil {
		return nil, err
	}

	// The row may disappear between the ownership check and the delete.
	err := uc.goalRepo.Delete(ctx, input.UserID, input.GoalID)
	switch {
	case errors.Is(err, domainerror.ErrGoalNotFound):
		return nil, domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", err)
	case err != nil:
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}
	return &DeleteGoalOutput{Success: true}, nil
}
