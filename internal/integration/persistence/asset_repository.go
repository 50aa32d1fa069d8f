package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/integration/persistence/model"
)

type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository returns a gorm backed adapter.AssetRepository.
func NewAssetRepository(db *gorm.DB) adapter.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	return r.db.WithContext(ctx).Create(model.AssetFromEntity(asset)).Error
}

func (r *assetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	var row model.AssetModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, domainerror.ErrAssetNotFound)
	}
	return row.ToEntity(), nil
}

func (r *assetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Asset, error) {
	var rows []model.AssetModel
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Order("estimated_value DESC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	assets := make([]*entity.Asset, 0, len(rows))
	for i := range rows {
		assets = append(assets, rows[i].ToEntity())
	}
	return assets, nil
}

func (r *assetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	return r.db.WithContext(ctx).Save(model.AssetFromEntity(asset)).Error
}

func (r *assetRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Scopes(ownedBy(userID)).Delete(&model.AssetModel{}, "id = ?", id)
	switch {
	case res.Error != nil:
		return res.Error
	case res.RowsAffected == 0:
		return domainerror.ErrAssetNotFound
	}
	return nil
}
