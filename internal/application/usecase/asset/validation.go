// Package asset contains asset-related use cases.
package asset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

const minNameLength = 3

func validateName(name string) error {
	if len([]rune(strings.TrimSpace(name))) < minNameLength {
		return domainerror.NewAssetError(
			domainerror.ErrCodeInvalidAssetName,
			"name must have at least 3 characters",
			domainerror.ErrInvalidAssetName,
		)
	}
	return nil
}

func validateValue(value decimal.Decimal) error {
	if !value.IsPositive() {
		return domainerror.NewAssetError(
			domainerror.ErrCodeInvalidAssetValue,
			"estimated value must be greater than zero",
			domainerror.ErrInvalidAssetValue,
		)
	}
	return nil
}

func validateKind(kind entity.AssetKind) error {
	if !kind.IsValid() {
		return domainerror.NewAssetError(
			domainerror.ErrCodeInvalidAssetKind,
			"kind must be 'property', 'vehicle', or 'investment'",
			domainerror.ErrInvalidAssetKind,
		)
	}
	return nil
}

func validateLiquidity(liquidity entity.AssetLiquidity) error {
	if !liquidity.IsValid() {
		return domainerror.NewAssetError(
			domainerror.ErrCodeInvalidAssetLiquidity,
			"liquidity must be 'liquid', 'conditional', or 'illiquid'",
			domainerror.ErrInvalidAssetLiquidity,
		)
	}
	return nil
}

// findOwnedAsset loads an asset and checks it belongs to userID.
func findOwnedAsset(ctx context.Context, repo adapter.AssetRepository, assetID, userID uuid.UUID) (*entity.Asset, error) {
	asset, err := repo.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAssetNotFound) {
			return nil, domainerror.NewAssetError(
				domainerror.ErrCodeAssetNotFound,
				"asset not found",
				domainerror.ErrAssetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	if asset.UserID != userID {
		return nil, domainerror.NewAssetError(
			domainerror.ErrCodeUnauthorizedAssetAccess,
			"not authorized to access this asset",
			domainerror.ErrUnauthorizedAssetAccess,
		)
	}
	return asset, nil
}
