package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

// AssetModel represents the assets table in the database.
type AssetModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind           string          `gorm:"type:varchar(20);not null"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Description    string          `gorm:"type:text"`
	EstimatedValue decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Liquidity      string          `gorm:"type:varchar(20);not null"`
	Metadata       map[string]any  `gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the AssetModel.
func (AssetModel) TableName() string {
	return "assets"
}

// ToEntity converts an AssetModel to a domain Asset entity.
func (m *AssetModel) ToEntity() *entity.Asset {
	metadata := m.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &entity.Asset{
		ID:             m.ID,
		UserID:         m.UserID,
		Kind:           entity.AssetKind(m.Kind),
		Name:           m.Name,
		Description:    m.Description,
		EstimatedValue: m.EstimatedValue,
		Liquidity:      entity.AssetLiquidity(m.Liquidity),
		Metadata:       metadata,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// AssetFromEntity creates an AssetModel from a domain Asset entity.
func AssetFromEntity(asset *entity.Asset) *AssetModel {
	return &AssetModel{
		ID:             asset.ID,
		UserID:         asset.UserID,
		Kind:           string(asset.Kind),
		Name:           asset.Name,
		Description:    asset.Description,
		EstimatedValue: asset.EstimatedValue,
		Liquidity:      string(asset.Liquidity),
		Metadata:       asset.Metadata,
		CreatedAt:      asset.CreatedAt,
		UpdatedAt:      asset.UpdatedAt,
	}
}
