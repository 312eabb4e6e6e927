package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

// userDirectory implements the adapter.UserDirectory interface.
type userDirectory struct {
	db *gorm.DB
}

// NewUserDirectory creates a new user directory instance.
func NewUserDirectory(db *gorm.DB) adapter.UserDirectory {
	return &userDirectory{
		db: db,
	}
}

// ListUserIDs returns the IDs of all known users, oldest first so run order
// is stable across agent runs.
func (d *userDirectory) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := d.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Order("created_at ASC").
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}
