package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

// AssetRepository stores patrimony items. Reads and deletes are scoped to the owner.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error)
	// ListByUser returns the owner's assets, most valuable first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Asset, error)
	Update(ctx context.Context, asset *entity.Asset) error
	// Delete soft deletes asset id of userID and returns ErrAssetNotFound when
	// the owner has no such asset.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
