package asset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
)

// UpdateAssetInput represents the input for asset update. Nil fields are left unchanged.
type UpdateAssetInput struct {
	AssetID        uuid.UUID
	UserID         uuid.UUID
	Kind           *entity.AssetKind
	Name           *string
	Description    *string
	EstimatedValue *decimal.Decimal
	Liquidity      *entity.AssetLiquidity
	Metadata       map[string]any // Replaces the stored metadata when non-nil
}

// UpdateAssetOutput represents the output of asset update.
type UpdateAssetOutput struct {
	Asset *entity.Asset
}

// UpdateAssetUseCase handles asset update logic.
type UpdateAssetUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewUpdateAssetUseCase creates a new UpdateAssetUseCase instance.
func NewUpdateAssetUseCase(assetRepo adapter.AssetRepository) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assetRepo: assetRepo,
	}
}

// Execute performs the asset update.
func (uc *UpdateAssetUseCase) Execute(ctx context.Context, input UpdateAssetInput) (*UpdateAssetOutput, error) {
	asset, err := findOwnedAsset(ctx, uc.assetRepo, input.AssetID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Kind != nil {
		if err := validateKind(*input.Kind); err != nil {
			return nil, err
		}
		asset.Kind = *input.Kind
	}
	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
		asset.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		asset.Description = *input.Description
	}
	if input.EstimatedValue != nil {
		if err := validateValue(*input.EstimatedValue); err != nil {
			return nil, err
		}
		asset.EstimatedValue = *input.EstimatedValue
	}
	if input.Liquidity != nil {
		if err := validateLiquidity(*input.Liquidity); err != nil {
			return nil, err
		}
		asset.Liquidity = *input.Liquidity
	}
	if input.Metadata != nil {
		asset.Metadata = input.Metadata
	}

	asset.UpdatedAt = time.Now().UTC()

	if err := uc.assetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return &UpdateAssetOutput{
		Asset: asset,
	}, nil
}
