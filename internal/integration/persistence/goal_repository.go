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

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository returns a gorm backed adapter.GoalRepository.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Create(model.GoalFromEntity(goal)).Error
}

func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var row model.GoalModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, domainerror.ErrGoalNotFound)
	}
	return row.ToEntity(), nil
}

func (r *goalRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter adapter.GoalFilter) ([]*entity.Goal, error) {
	query := r.db.WithContext(ctx).Scopes(ownedBy(userID))
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var rows []model.GoalModel
	if err := query.Order("priority DESC, created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	goals := make([]*entity.Goal, 0, len(rows))
	for i := range rows {
		goals = append(goals, rows[i].ToEntity())
	}
	return goals, nil
}

// Update writes every column of goal, including zero values.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Save(model.GoalFromEntity(goal)).Error
}

func (r *goalRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Scopes(ownedBy(userID)).Delete(&model.GoalModel{}, "id = ?", id)
	switch {
	case res.Error != nil:
		return res.Error
	case res.RowsAffected == 0:
		return domainerror.ErrGoalNotFound
	}
	return nil
}
