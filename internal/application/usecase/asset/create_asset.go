package asset

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
)

// CreateAssetInput represents the input for asset creation.
type CreateAssetInput struct {
	UserID         uuid.UUID
	Kind           entity.AssetKind
	Name           string
	Description    string
	EstimatedValue decimal.Decimal
	Liquidity      entity.AssetLiquidity
	Metadata       map[string]any
}

// CreateAssetOutput represents the output of asset creation.
type CreateAssetOutput struct {
	Asset *entity.Asset
}

// CreateAssetUseCase handles asset creation logic.
type CreateAssetUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewCreateAssetUseCase creates a new CreateAssetUseCase instance.
func NewCreateAssetUseCase(assetRepo adapter.AssetRepository) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo: assetRepo,
	}
}

// Execute performs the asset creation.
func (uc *CreateAssetUseCase) Execute(ctx context.Context, input CreateAssetInput) (*CreateAssetOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateValue(input.EstimatedValue); err != nil {
		return nil, err
	}
	if err := validateLiquidity(input.Liquidity); err != nil {
		return nil, err
	}

	asset := entity.NewAsset(
		input.UserID,
		input.Kind,
		strings.TrimSpace(input.Name),
		input.Description,
		input.EstimatedValue,
		input.Liquidity,
		input.Metadata,
	)

	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return &CreateAssetOutput{
		Asset: asset,
	}, nil
}
