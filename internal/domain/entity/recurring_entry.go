// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// RecurringEntry is a template for an income or expense that repeats monthly for a
// fixed number of installments. Each due installment is materialized as an Entry.
type RecurringEntry struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	Kind                  EntryKind
	Category              string
	Description           string
	Amount                decimal.Decimal // Per-installment amount
	StartDate             time.Time
	TotalInstallments     int
	GeneratedInstallments int
	Active                bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewRecurringEntry creates a new active RecurringEntry with no installments generated.
func NewRecurringEntry(
	userID uuid.UUID,
	kind EntryKind,
	category string,
	description string,
	amount decimal.Decimal,
	startDate time.Time,
	totalInstallments int,
) *RecurringEntry {
	now := time.Now().UTC()

	return &RecurringEntry{
		ID:                uuid.New(),
		UserID:            userID,
		Kind:              kind,
		Category:          category,
		Description:       description,
		Amount:            amount,
		StartDate:         valueobject.Day(startDate),
		TotalInstallments: totalInstallments,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// IsExhausted reports whether every installment has already been generated.
func (r *RecurringEntry) IsExhausted() bool {
	return r.GeneratedInstallments >= r.TotalInstallments
}

// PeriodsElapsed returns the number of whole calendar months between the start date and now.
func (r *RecurringEntry) PeriodsElapsed(now time.Time) int {
	return valueobject.MonthsBetween(r.StartDate, now)
}

// DueDate returns the installment date for the month of now: the start date's
// day-of-month, clamped to the last day of that month.
func (r *RecurringEntry) DueDate(now time.Time) time.Time {
	return valueobject.ClampedDate(now.Year(), now.Month(), r.StartDate.Day())
}

// RecordInstallment advances the progress counter by one and deactivates the
// entry once the last installment has been generated. It returns the number of
// the installment just recorded.
func (r *RecurringEntry) RecordInstallment() int {
	r.GeneratedInstallments++
	if r.GeneratedInstallments >= r.TotalInstallments {
		r.Active = false
	}
	r.UpdatedAt = time.Now().UTC()
	return r.GeneratedInstallments
}

// Cancel stops further installments from being generated.
func (r *RecurringEntry) Cancel() {
	r.Active = false
	r.UpdatedAt = time.Now().UTC()
}
