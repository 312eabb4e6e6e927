// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for coaching settings persistence.
type SettingsRepository interface {
	// GetOrCreate returns the user's settings, creating them with defaults on
	// first use.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.CoachingSettings, error)

	// Update persists changed threshold values for the user.
	Update(ctx context.Context, settings *entity.CoachingSettings) error
}
