package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

// RecurringEntryModel represents the recurring_entries table in the database.
type RecurringEntryModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind                  string          `gorm:"type:varchar(10);not null"`
	Category              string          `gorm:"type:varchar(50);not null"`
	Description           string          `gorm:"type:varchar(255);not null"`
	Amount                decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartDate             time.Time       `gorm:"type:date;not null"`
	TotalInstallments     int             `gorm:"not null"`
	GeneratedInstallments int             `gorm:"not null;default:0"`
	Active                bool            `gorm:"not null;default:true;index"`
	CreatedAt             time.Time       `gorm:"not null"`
	UpdatedAt             time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringEntryModel.
func (RecurringEntryModel) TableName() string {
	return "recurring_entries"
}

// ToEntity converts a RecurringEntryModel to a domain RecurringEntry entity.
func (m *RecurringEntryModel) ToEntity() *entity.RecurringEntry {
	return &entity.RecurringEntry{
		ID:                    m.ID,
		UserID:                m.UserID,
		Kind:                  entity.EntryKind(m.Kind),
		Category:              m.Category,
		Description:           m.Description,
		Amount:                m.Amount,
		StartDate:             m.StartDate.UTC(),
		TotalInstallments:     m.TotalInstallments,
		GeneratedInstallments: m.GeneratedInstallments,
		Active:                m.Active,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// RecurringEntryFromEntity creates a RecurringEntryModel from a domain RecurringEntry entity.
func RecurringEntryFromEntity(recurring *entity.RecurringEntry) *RecurringEntryModel {
	return &RecurringEntryModel{
		ID:                    recurring.ID,
		UserID:                recurring.UserID,
		Kind:                  string(recurring.Kind),
		Category:              recurring.Category,
		Description:           recurring.Description,
		Amount:                recurring.Amount,
		StartDate:             recurring.StartDate,
		TotalInstallments:     recurring.TotalInstallments,
		GeneratedInstallments: recurring.GeneratedInstallments,
		Active:                recurring.Active,
		CreatedAt:             recurring.CreatedAt,
		UpdatedAt:             recurring.UpdatedAt,
	}
}
