package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string          `json:"name" binding:"required"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Priority      int             `json:"priority" binding:"required"`
	TargetDate    string          `json:"target_date" binding:"omitempty,datetime=2006-01-02"`
	Category      string          `json:"category" binding:"max=50"`
	Icon          string          `json:"icon" binding:"max=50"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name          *string          `json:"name,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Priority      *int             `json:"priority,omitempty"`
	TargetDate    *string          `json:"target_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Category      *string          `json:"category,omitempty" binding:"omitempty,max=50"`
	Icon          *string          `json:"icon,omitempty" binding:"omitempty,max=50"`
	Status        *string          `json:"status,omitempty" binding:"omitempty,oneof=active completed cancelled"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Remaining     decimal.Decimal `json:"remaining"`
	Priority      int             `json:"priority"`
	TargetDate    *string         `json:"target_date,omitempty"`
	Category      string          `json:"category"`
	Icon          string          `json:"icon"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Remaining:     g.Remaining(),
		Priority:      g.Priority,
		Category:      g.Category,
		Icon:          g.Icon,
		Status:        string(g.Status),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	if !g.TargetDate.IsZero() {
		dateStr := g.TargetDate.Format(valueobject.DateLayout)
		response.TargetDate = &dateStr
	}
	return response
}

// ToGoalListResponse converts a list of goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	response := GoalListResponse{Goals: make([]GoalResponse, len(goals))}
	for i, g := range goals {
		response.Goals[i] = ToGoalResponse(g)
	}
	return response
}
