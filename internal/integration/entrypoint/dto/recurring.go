package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// CreateRecurringEntryRequest represents the request body for recurring entry creation.
type CreateRecurringEntryRequest struct {
	Kind              string          `json:"kind" binding:"required,oneof=income expense"`
	Category          string          `json:"category" binding:"required,max=50"`
	Description       string          `json:"description" binding:"required"`
	Amount            decimal.Decimal `json:"amount"`
	StartDate         string          `json:"start_date" binding:"required,datetime=2006-01-02"`
	TotalInstallments int             `json:"total_installments" binding:"required"`
}

// RecurringEntryResponse represents a recurring entry in API responses.
type RecurringEntryResponse struct {
	ID                    string          `json:"id"`
	Kind                  string          `json:"kind"`
	Category              string          `json:"category"`
	Description           string          `json:"description"`
	Amount                decimal.Decimal `json:"amount"`
	StartDate             string          `json:"start_date"`
	TotalInstallments     int             `json:"total_installments"`
	GeneratedInstallments int             `json:"generated_installments"`
	Active                bool            `json:"active"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// RecurringEntryListResponse represents the response for listing recurring entries.
type RecurringEntryListResponse struct {
	RecurringEntries []RecurringEntryResponse `json:"recurring_entries"`
}

// ToRecurringEntryResponse converts a domain RecurringEntry to its DTO.
func ToRecurringEntryResponse(r *entity.RecurringEntry) RecurringEntryResponse {
	return RecurringEntryResponse{
		ID:                    r.ID.String(),
		Kind:                  string(r.Kind),
		Category:              r.Category,
		Description:           r.Description,
		Amount:                r.Amount,
		StartDate:             r.StartDate.Format(valueobject.DateLayout),
		TotalInstallments:     r.TotalInstallments,
		GeneratedInstallments: r.GeneratedInstallments,
		Active:                r.Active,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

// ToRecurringEntryListResponse converts recurring entries to their list DTO.
func ToRecurringEntryListResponse(entries []*entity.RecurringEntry) RecurringEntryListResponse {
	response := RecurringEntryListResponse{RecurringEntries: make([]RecurringEntryResponse, len(entries))}
	for i, r := range entries {
		response.RecurringEntries[i] = ToRecurringEntryResponse(r)
	}
	return response
}
