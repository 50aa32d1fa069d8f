// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// EntryKind represents the direction of a ledger entry.
// The sign of a movement is carried by the kind, never by the amount.
type EntryKind string

const (
	EntryKindIncome  EntryKind = "income"
	EntryKindExpense EntryKind = "expense"
)

// IsValid reports whether k is a known entry kind.
func (k EntryKind) IsValid() bool {
	return k == EntryKindIncome || k == EntryKindExpense
}

// Entry represents a single dated income or expense in a user's ledger.
type Entry struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Kind                EntryKind
	Category            string
	Amount              decimal.Decimal // Always strictly positive
	Date                time.Time
	Description         string
	IsRecurringInstance bool
	RecurringEntryID    *uuid.UUID // Set only for installments generated from a recurring entry
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewEntry creates a new manually entered ledger Entry.
func NewEntry(
	userID uuid.UUID,
	kind EntryKind,
	category string,
	amount decimal.Decimal,
	date time.Time,
	description string,
) *Entry {
	now := time.Now().UTC()

	return &Entry{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		Category:    category,
		Amount:      amount,
		Date:        valueobject.Day(date),
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewInstallmentEntry creates the ledger Entry for one installment of a recurring entry.
func NewInstallmentEntry(recurring *RecurringEntry, dueDate time.Time) *Entry {
	entry := NewEntry(
		recurring.UserID,
		recurring.Kind,
		recurring.Category,
		recurring.Amount,
		dueDate,
		recurring.Description,
	)
	recurringID := recurring.ID
	entry.IsRecurringInstance = true
	entry.RecurringEntryID = &recurringID
	return entry
}

// IsIncome reports whether the entry is an income.
func (e *Entry) IsIncome() bool {
	return e.Kind == EntryKindIncome
}

// IsExpense reports whether the entry is an expense.
func (e *Entry) IsExpense() bool {
	return e.Kind == EntryKindExpense
}
