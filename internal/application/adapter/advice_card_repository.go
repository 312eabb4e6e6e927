// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// AdviceCardRepository defines the interface for advice card persistence.
type AdviceCardRepository interface {
	// CreateWithCooldown persists the card only if no card with the same
	// (user, tag) was created within the last cooldownDays. The check and the
	// insert are atomic at the storage layer, so two concurrent evaluations
	// cannot both succeed; it reports whether a row was created.
	CreateWithCooldown(ctx context.Context, card *entity.AdviceCard, cooldownDays int) (bool, error)

	// FindRecent returns the user's most recent cards ordered by created_at
	// descending, optionally restricted to unread ones.
	FindRecent(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]entity.AdviceCard, error)

	// MarkRead sets the read flag on one of the user's cards.
	MarkRead(ctx context.Context, userID, cardID uuid.UUID) error
}
