package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/integration/persistence/model"
)

// recurringEntryRepository implements the adapter.RecurringEntryRepository interface.
type recurringEntryRepository struct {
	db *gorm.DB
}

// NewRecurringEntryRepository creates a new recurring entry repository instance.
func NewRecurringEntryRepository(db *gorm.DB) adapter.RecurringEntryRepository {
	return &recurringEntryRepository{
		db: db,
	}
}

// Create creates a new recurring entry in the database.
func (r *recurringEntryRepository) Create(ctx context.Context, recurring *entity.RecurringEntry) error {
	result := r.db.WithContext(ctx).Create(model.RecurringEntryFromEntity(recurring))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recurring entry by its ID.
func (r *recurringEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringEntry, error) {
	var recurringModel model.RecurringEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recurringModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringEntryNotFound
		}
		return nil, result.Error
	}
	return recurringModel.ToEntity(), nil
}

// FindByUserID retrieves all recurring entries of a user, newest first.
func (r *recurringEntryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringEntry, error) {
	var recurringModels []model.RecurringEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toRecurringEntities(recurringModels), nil
}

// FindActive retrieves every active recurring entry, oldest first.
func (r *recurringEntryRepository) FindActive(ctx context.Context) ([]*entity.RecurringEntry, error) {
	var recurringModels []model.RecurringEntryModel
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		Order("id ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toRecurringEntities(recurringModels), nil
}

// UpdateProgress persists only the generated counter and the active flag, so a
// concurrent edit of other columns is never overwritten by the materializer.
func (r *recurringEntryRepository) UpdateProgress(ctx context.Context, recurring *entity.RecurringEntry) error {
	result := r.db.WithContext(ctx).
		Model(&model.RecurringEntryModel{}).
		Where("id = ?", recurring.ID).
		Updates(map[string]any{
			"generated_installments": recurring.GeneratedInstallments,
			"active":                 recurring.Active,
			"updated_at":             time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringEntryNotFound
	}
	return nil
}

// Deactivate leaves the generated counter alone, so a cancel racing with the
// materializer never rolls its progress back.
func (r *recurringEntryRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.RecurringEntryModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"active":     false,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringEntryNotFound
	}
	return nil
}

func toRecurringEntities(models []model.RecurringEntryModel) []*entity.RecurringEntry {
	entries := make([]*entity.RecurringEntry, len(models))
	for i := range models {
		entries[i] = models[i].ToEntity()
	}
	return entries
}
