package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

// EntryModel represents the entries table in the database.
// The composite unique index keeps at most one installment per recurring entry and day.
type EntryModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind                string          `gorm:"type:varchar(10);not null;index"`
	Category            string          `gorm:"type:varchar(50);not null"`
	Amount              decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date                time.Time       `gorm:"type:date;not null;index;uniqueIndex:idx_entries_installment"`
	Description         string          `gorm:"type:varchar(255);not null"`
	IsRecurringInstance bool            `gorm:"not null;default:false"`
	RecurringEntryID    *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_entries_installment"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity.
func (m *EntryModel) ToEntity() *entity.Entry {
	return &entity.Entry{
		ID:                  m.ID,
		UserID:              m.UserID,
		Kind:                entity.EntryKind(m.Kind),
		Category:            m.Category,
		Amount:              m.Amount,
		Date:                m.Date.UTC(),
		Description:         m.Description,
		IsRecurringInstance: m.IsRecurringInstance,
		RecurringEntryID:    m.RecurringEntryID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// EntryFromEntity creates an EntryModel from a domain Entry entity.
func EntryFromEntity(entry *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:                  entry.ID,
		UserID:              entry.UserID,
		Kind:                string(entry.Kind),
		Category:            entry.Category,
		Amount:              entry.Amount,
		Date:                entry.Date,
		Description:         entry.Description,
		IsRecurringInstance: entry.IsRecurringInstance,
		RecurringEntryID:    entry.RecurringEntryID,
		CreatedAt:           entry.CreatedAt,
		UpdatedAt:           entry.UpdatedAt,
	}
}
