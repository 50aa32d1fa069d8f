package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

// CreateAssetRequest represents the request body for asset creation.
type CreateAssetRequest struct {
	Kind           string          `json:"kind" binding:"required,oneof=property vehicle investment"`
	Name           string          `json:"name" binding:"required,max=100"`
	Description    string          `json:"description"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Liquidity      string          `json:"liquidity" binding:"required,oneof=liquid conditional illiquid"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
}

// UpdateAssetRequest represents the request body for asset update.
type UpdateAssetRequest struct {
	Kind           *string          `json:"kind,omitempty" binding:"omitempty,oneof=property vehicle investment"`
	Name           *string          `json:"name,omitempty" binding:"omitempty,max=100"`
	Description    *string          `json:"description,omitempty"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
	Liquidity      *string          `json:"liquidity,omitempty" binding:"omitempty,oneof=liquid conditional illiquid"`
	Metadata       map[string]any   `json:"metadata,omitempty"`
}

// AssetResponse represents a single asset in API responses.
type AssetResponse struct {
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Liquidity      string          `json:"liquidity"`
	Metadata       map[string]any  `json:"metadata"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AssetListResponse represents the response for listing assets.
type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
}

// ToAssetResponse converts a domain Asset entity to an AssetResponse DTO.
func ToAssetResponse(a *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:             a.ID.String(),
		Kind:           string(a.Kind),
		Name:           a.Name,
		Description:    a.Description,
		EstimatedValue: a.EstimatedValue,
		Liquidity:      string(a.Liquidity),
		Metadata:       a.Metadata,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToAssetListResponse converts a list of assets to an AssetListResponse DTO.
func ToAssetListResponse(assets []*entity.Asset) AssetListResponse {
	response := AssetListResponse{Assets: make([]AssetResponse, len(assets))}
	for i, a := range assets {
		response.Assets[i] = ToAssetResponse(a)
	}
	return response
}
