// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

const (
	minNameLength = 3
	maxNameLength = 100
	minPriority   = 1
	maxPriority   = 10
)

func validateName(name string) error {
	if n := len([]rune(strings.TrimSpace(name))); n < minNameLength || n > maxNameLength {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			"name must be between 3 and 100 characters",
			domainerror.ErrInvalidGoalName,
		)
	}
	return nil
}

func validateTarget(target decimal.Decimal) error {
	if !target.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	return nil
}

func validateCurrent(current decimal.Decimal) error {
	if current.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current amount cannot be negative",
			domainerror.ErrInvalidCurrentAmount,
		)
	}
	return nil
}

func validatePriority(priority int) error {
	if priority < minPriority || priority > maxPriority {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidPriority,
			"priority must be between 1 and 10",
			domainerror.ErrInvalidPriority,
		)
	}
	return nil
}

// validateStatus checks the status value and that a goal is only completed once reached.
func validateStatus(goal *entity.Goal) error {
	if !goal.Status.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalStatus,
			"status must be 'active', 'completed', or 'cancelled'",
			domainerror.ErrInvalidGoalStatus,
		)
	}
	if goal.Status == entity.GoalStatusCompleted && !goal.IsReached() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotReached,
			"goal can only be completed when the current amount reaches the target",
			domainerror.ErrGoalNotReached,
		)
	}
	return nil
}

// findOwnedGoal loads a goal and checks it belongs to userID.
func findOwnedGoal(ctx context.Context, repo adapter.GoalRepository, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}
	return goal, nil
}
