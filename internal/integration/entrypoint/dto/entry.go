package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// CreateEntryRequest represents the request body for entry creation.
type CreateEntryRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=income expense"`
	Category    string          `json:"category" binding:"required,max=50"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description" binding:"required"`
}

// UpdateEntryRequest represents the request body for entry update.
type UpdateEntryRequest struct {
	Kind        *string          `json:"kind,omitempty" binding:"omitempty,oneof=income expense"`
	Category    *string          `json:"category,omitempty" binding:"omitempty,max=50"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Description *string          `json:"description,omitempty"`
}

// ListEntriesQuery represents the query parameters for listing entries.
type ListEntriesQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Kind      string `form:"kind" binding:"omitempty,oneof=income expense"`
	Category  string `form:"category"`
}

// EntryResponse represents a single ledger entry in API responses.
type EntryResponse struct {
	ID                  string          `json:"id"`
	Kind                string          `json:"kind"`
	Category            string          `json:"category"`
	Amount              decimal.Decimal `json:"amount"`
	Date                string          `json:"date"`
	Description         string          `json:"description"`
	IsRecurringInstance bool            `json:"is_recurring_instance"`
	RecurringEntryID    *string         `json:"recurring_entry_id,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// EntryListResponse represents the response for listing entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain Entry entity to an EntryResponse DTO.
func ToEntryResponse(e *entity.Entry) EntryResponse {
	response := EntryResponse{
		ID:                  e.ID.String(),
		Kind:                string(e.Kind),
		Category:            e.Category,
		Amount:              e.Amount,
		Date:                e.Date.Format(valueobject.DateLayout),
		Description:         e.Description,
		IsRecurringInstance: e.IsRecurringInstance,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
	if e.RecurringEntryID != nil {
		id := e.RecurringEntryID.String()
		response.RecurringEntryID = &id
	}
	return response
}

// ToEntryListResponse converts a list of entries to an EntryListResponse DTO.
func ToEntryListResponse(entries []*entity.Entry) EntryListResponse {
	response := EntryListResponse{Entries: make([]EntryResponse, len(entries))}
	for i, e := range entries {
		response.Entries[i] = ToEntryResponse(e)
	}
	return response
}
