package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/application/adapter"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

// DeleteAssetInput identifies the asset to remove and the caller.
type DeleteAssetInput struct {
	AssetID uuid.UUID
	UserID  uuid.UUID
}

// DeleteAssetOutput reports a completed deletion.
type DeleteAssetOutput struct {
	Success bool
}

// DeleteAssetUseCase soft deletes an asset owned by the caller.
type DeleteAssetUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewDeleteAssetUseCase creates a new DeleteAssetUseCase instance.
func NewDeleteAssetUseCase(assetRepo adapter.AssetRepository) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{assetRepo: assetRepo}
}

// Execute removes the asset after checking that input.UserID owns it.
func (uc *DeleteAssetUseCase) Execute(ctx context.Context, input DeleteAssetInput) (*DeleteAssetOutput, error) {
	if _, err := findOwnedAsset(ctx, uc.assetRepo, input.AssetID, input.UserID); err != nil {
		return nil, err
	}

	err := uc.assetRepo.Delete(ctx, input.UserID, input.AssetID)
	switch {
	case errors.Is(err, domainerror.ErrAssetNotFound):
		return nil, domainerror.NewAssetError(domainerror.ErrCodeAssetNotFound, "asset not found", err)
	case err != nil:
		return nil, fmt.Errorf("failed to delete asset: %w", err)
	}
	return &DeleteAssetOutput{Success: true}, nil
}
