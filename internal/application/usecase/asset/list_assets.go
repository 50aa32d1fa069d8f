package asset

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
)

// ListAssetsInput represents the input for listing assets.
type ListAssetsInput struct {
	UserID uuid.UUID
}

// ListAssetsOutput represents the output of listing assets.
type ListAssetsOutput struct {
	Assets []*entity.Asset
}

// ListAssetsUseCase handles listing a user's assets.
type ListAssetsUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewListAssetsUseCase creates a new ListAssetsUseCase instance.
func NewListAssetsUseCase(assetRepo adapter.AssetRepository) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo: assetRepo,
	}
}

// Execute performs the asset listing.
func (uc *ListAssetsUseCase) Execute(ctx context.Context, input ListAssetsInput) (*ListAssetsOutput, error) {
	assets, err := uc.assetRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return &ListAssetsOutput{
		Assets: assets,
	}, nil
}
