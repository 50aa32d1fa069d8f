// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// IsValid reports whether s is a known goal status.
func (s GoalStatus) IsValid() bool {
	return s == GoalStatusActive || s == GoalStatusCompleted || s == GoalStatusCancelled
}

// GoalCategoryEmergency is the category that marks a goal as the emergency reserve.
const GoalCategoryEmergency = "emergency"

// reserveKeywords mark a goal as the emergency reserve when found in its name.
var reserveKeywords = []string{"reserve", "emergency"}

// Goal represents a savings target in the Wealth Planner system.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Priority      int // 1 (lowest) to 10 (highest)
	TargetDate    time.Time
	Category      string
	Icon          string
	Status        GoalStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new active Goal.
func NewGoal(
	userID uuid.UUID,
	name string,
	targetAmount decimal.Decimal,
	currentAmount decimal.Decimal,
	priority int,
	targetDate time.Time,
	category string,
	icon string,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Priority:      priority,
		TargetDate:    targetDate,
		Category:      category,
		Icon:          icon,
		Status:        GoalStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsActive reports whether the goal is still being pursued.
func (g *Goal) IsActive() bool {
	return g.Status == GoalStatusActive
}

// IsReached reports whether the saved amount covers the target.
func (g *Goal) IsReached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Remaining returns how much is still missing to reach the target, never negative.
func (g *Goal) Remaining() decimal.Decimal {
	missing := g.TargetAmount.Sub(g.CurrentAmount)
	if missing.IsNegative() {
		return decimal.Zero
	}
	return missing
}

// IsEmergencyReserve reports whether the goal is the account's emergency reserve.
func (g *Goal) IsEmergencyReserve() bool {
	if strings.EqualFold(g.Category, GoalCategoryEmergency) {
		return true
	}
	name := strings.ToLower(g.Name)
	for _, keyword := range reserveKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}
