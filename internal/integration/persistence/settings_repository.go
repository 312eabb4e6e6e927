package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetOrCreate retrieves the user's settings, inserting a defaults row on
// first access. The insert ignores conflicts so two concurrent first reads
// both end up with the same stored row.
func (r *settingsRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.CoachingSettings, error) {
	var settingsModel model.CoachingSettingsModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settingsModel)
	if result.Error == nil {
		return settingsModel.ToEntity(), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	defaults := model.CoachingSettingsFromEntity(entity.NewCoachingSettings(userID))
	insert := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(defaults)
	if insert.Error != nil {
		return nil, insert.Error
	}

	result = r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settingsModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Update persists changed settings values for the user.
func (r *settingsRepository) Update(ctx context.Context, settings *entity.CoachingSettings) error {
	settings.UpdatedAt = time.Now().UTC()
	settingsModel := model.CoachingSettingsFromEntity(settings)
	result := r.db.WithContext(ctx).Save(settingsModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
